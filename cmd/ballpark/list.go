package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-ballpark/internal/registry"
	"github.com/vovakirdan/tui-ballpark/internal/roster"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List teams and simulator strategies",
	Long:  `Shows every team with a full roster and every batting strategy the simulator knows.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fail("%v", err)
	}
	league, err := roster.Load(cfg.RosterPath)
	if err != nil {
		fail("%v", err)
	}

	fmt.Println("Teams:")
	fmt.Println()
	for _, team := range league.Teams() {
		entries, _ := league.LoadTeam(team)
		fmt.Printf("  %-14s %d players\n", team, len(entries))
	}

	strategies := registry.List()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range strategies {
		if len(s.ID) > maxIDLen {
			maxIDLen = len(s.ID)
		}
	}

	fmt.Println()
	fmt.Println("Strategies:")
	fmt.Println()
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, s := range strategies {
		fmt.Printf("  %-*s  %s\n", maxIDLen, s.ID, s.Title)
	}

	fmt.Println()
	fmt.Println("Run 'ballpark play' to play, or 'ballpark sim --strategy <id>' to simulate.")
}

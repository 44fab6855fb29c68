package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var flagLeadersLimit int

var leadersCmd = &cobra.Command{
	Use:   "leaders",
	Short: "Show career batting leaders",
	Long: `Display batting totals across every recorded game, best run producers
first, followed by each team's record.

Examples:
  ballpark leaders
  ballpark leaders --limit 25`,
	Args: cobra.NoArgs,
	Run:  runLeaders,
}

func init() {
	leadersCmd.Flags().IntVar(&flagLeadersLimit, "limit", 10, "Number of batters to show")
}

func runLeaders(_ *cobra.Command, _ []string) {
	store := openHistory()
	defer store.Close()

	lines, err := store.CareerLines(flagLeadersLimit)
	if err != nil {
		store.Close()
		fail("retrieving leaders: %v", err)
	}

	fmt.Println("Batting Leaders")
	fmt.Println()

	if len(lines) == 0 {
		fmt.Println("No games recorded yet.")
		return
	}

	fmt.Printf("  %-4s  %-22s  %3s  %4s  %4s  %4s  %5s\n", "Rank", "Batter", "G", "AB", "H", "RBI", "AVG")
	fmt.Printf("  %-4s  %-22s  %3s  %4s  %4s  %4s  %5s\n", "----", "------", "-", "--", "-", "---", "---")
	for i, l := range lines {
		fmt.Printf("  %-4d  %-22s  %3d  %4d  %4d  %4d  %5.3f\n", i+1, l.Name, l.Games, l.AtBats, l.Hits, l.RBIs, l.Average())
	}

	stats, err := store.AllTeamStats()
	if err != nil {
		store.Close()
		fail("retrieving team stats: %v", err)
	}

	teams := make([]string, 0, len(stats))
	for t := range stats {
		teams = append(teams, t)
	}
	sort.Strings(teams)

	fmt.Println()
	fmt.Println("Teams")
	fmt.Println()
	fmt.Printf("  %-14s  %5s  %4s  %4s\n", "Team", "W-L", "RS", "RA")
	for _, t := range teams {
		st := stats[t]
		fmt.Printf("  %-14s  %5s  %4d  %4d\n", st.Team, fmt.Sprintf("%d-%d", st.Wins, st.Games-st.Wins), st.RunsFor, st.RunsAgainst)
	}
}

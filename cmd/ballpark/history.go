package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-ballpark/internal/platform/tui"
	"github.com/vovakirdan/tui-ballpark/internal/storage"
)

var (
	flagHistoryLimit  int
	flagHistoryBrowse bool
)

var historyCmd = &cobra.Command{
	Use:   "history [game-id]",
	Short: "Show recent games or one box score",
	Long: `Without arguments, list the most recent games. With a game id (or the
first characters of one, as printed in the list), show that game's box score.

Examples:
  ballpark history
  ballpark history --limit 50
  ballpark history 3f2a9c1e
  ballpark history --browse`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of games to show")
	historyCmd.Flags().BoolVar(&flagHistoryBrowse, "browse", false, "Browse history in a full-screen table")
}

func openHistory() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening history database: %v", err)
	}
	return store
}

func runHistory(_ *cobra.Command, args []string) {
	store := openHistory()
	defer store.Close()

	if flagHistoryBrowse {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunHistory(store, width, height); err != nil {
			store.Close()
			fail("%v", err)
		}
		return
	}

	if len(args) == 1 {
		showBoxScore(store, args[0])
		return
	}

	games, err := store.RecentGames(flagHistoryLimit)
	if err != nil {
		store.Close()
		fail("retrieving games: %v", err)
	}

	fmt.Println("Recent Games")
	fmt.Println()

	if len(games) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'ballpark play' to start the record book!")
		return
	}

	// Print header
	fmt.Printf("  %-8s  %-16s  %-14s  %-7s  %-3s  %s\n", "ID", "Date", "Home", "Score", "Inn", "Opponent")
	fmt.Printf("  %-8s  %-16s  %-14s  %-7s  %-3s  %s\n", "--", "----", "----", "-----", "---", "--------")

	for _, g := range games {
		mark := "L"
		if g.Won() {
			mark = "W"
		}
		fmt.Printf("  %-8s  %-16s  %-14s  %-7s  %-3d  %s\n",
			shortID(g.GameID),
			g.CreatedAt.Format("2006-01-02 15:04"),
			g.Home,
			fmt.Sprintf("%d-%d %s", g.Runs, g.OpponentRuns, mark),
			g.Innings,
			g.Opponent,
		)
	}
}

func showBoxScore(store *storage.Store, id string) {
	game, err := store.GameByPrefix(id)
	if err != nil {
		store.Close()
		fail("retrieving game: %v", err)
	}
	if game == nil {
		store.Close()
		fail("no game with id %q", id)
	}

	lines, err := store.GameLines(game.GameID)
	if err != nil {
		store.Close()
		fail("retrieving box score: %v", err)
	}

	fmt.Printf("%s %d, %s %d (%d innings, seed %d)\n", game.Home, game.Runs, game.Opponent, game.OpponentRuns, game.Innings, game.Seed)
	fmt.Printf("Played %s\n\n", game.CreatedAt.Format("2006-01-02 15:04"))

	fmt.Printf("  %-22s %3s %3s %4s\n", "Batter", "AB", "H", "RBI")
	for _, l := range lines {
		fmt.Printf("  %-22s %3d %3d %4d\n", l.Name, l.AtBats, l.Hits, l.RBIs)
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

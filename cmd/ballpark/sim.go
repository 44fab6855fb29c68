package main

import (
	"fmt"
	"runtime"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-ballpark/internal/baseball"
	"github.com/vovakirdan/tui-ballpark/internal/core"
	"github.com/vovakirdan/tui-ballpark/internal/engine"
	"github.com/vovakirdan/tui-ballpark/internal/registry"
)

var (
	flagSimGames    int
	flagSimStrategy string
	flagSimTeam     string
	flagSimInnings  int
	flagSimRecord   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Simulate games with a batting strategy",
	Long: `Play full games without a player. A batting strategy calls every pitch,
the default batting order is used, and tied games go to extra innings.

Games with the same --seed replay exactly. Without --seed a base seed is
drawn and printed.

Examples:
  ballpark sim
  ballpark sim --games 100 --strategy patient --team Astros
  ballpark sim --games 20 --seed 42 --record`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimGames, "games", 10, "Number of games to play")
	simCmd.Flags().StringVar(&flagSimStrategy, "strategy", "patient", "Batting strategy (see 'ballpark list')")
	simCmd.Flags().StringVar(&flagSimTeam, "team", "", "Team to bat (default: the configured fallback team)")
	simCmd.Flags().IntVar(&flagSimInnings, "innings", 0, "Innings per game (default: from config)")
	simCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Save the games to the history database")
}

// simGame is the outcome of one simulated game.
type simGame struct {
	seed   int64
	result engine.GameResult
}

func runSim(_ *cobra.Command, _ []string) {
	if flagSimGames < 1 {
		fail("--games must be at least 1")
	}
	if !registry.Exists(flagSimStrategy) {
		fail("unknown strategy %q\nRun 'ballpark list' to see available strategies.", flagSimStrategy)
	}

	logger, release, err := newLogger("ballpark-sim")
	if err != nil {
		fail("%v", err)
	}
	defer release()

	deps, err := loadGameDeps(logger, flagSimRecord)
	if err != nil {
		fail("%v", err)
	}
	defer deps.Close()

	base := core.RuntimeConfig{Seed: flagSeed}.ResolvedSeed()
	setup := engine.Setup{
		Innings:  flagSimInnings,
		Team:     flagSimTeam,
		Opponent: "Sim",
		Extras:   true,
	}

	games := make([]simGame, flagSimGames)
	g := new(errgroup.Group)
	g.SetLimit(runtime.NumCPU())
	for i := range games {
		g.Go(func() error {
			seed := base + int64(i)
			strategy, err := registry.Create(flagSimStrategy)
			if err != nil {
				return err
			}
			strategy.Reset(core.RuntimeConfig{Seed: seed})

			// Sessions record nothing themselves; results are saved in order below.
			session, err := gameDeps{cfg: deps.cfg, league: deps.league}.newSession(seed, logger.With("sim", i+1))
			if err != nil {
				return err
			}
			result, err := engine.Autoplay(session, strategy, setup, nil)
			if err != nil {
				return fmt.Errorf("game %d (seed %d): %w", i+1, seed, err)
			}
			games[i] = simGame{seed: seed, result: result}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		deps.Close()
		fail("%v", err)
	}

	printSim(games, base)

	if deps.store != nil {
		for _, game := range games {
			if err := deps.store.RecordGame(game.result); err != nil {
				logger.Warn("could not record game", "game", game.result.ID, "error", err)
			}
		}
	}
}

func printSim(games []simGame, base int64) {
	fmt.Printf("Simulated %d games with strategy %q (base seed %d)\n\n", len(games), flagSimStrategy, base)

	wins := 0
	totals := make(map[string]*baseball.BattingLine)
	var order []string
	for i, game := range games {
		r := game.result
		mark := "L"
		if r.Won() {
			mark = "W"
			wins++
		}
		fmt.Printf("  Game %-4d %s %d, %s %d  (%d inn, %s, seed %d)\n",
			i+1, r.Home, r.Runs, r.Opponent, r.OpponentRuns, r.Innings, mark, game.seed)

		for _, l := range r.Lines {
			t, ok := totals[l.Name]
			if !ok {
				t = &baseball.BattingLine{Name: l.Name}
				totals[l.Name] = t
				order = append(order, l.Name)
			}
			t.AtBats += l.AtBats
			t.Hits += l.Hits
			t.RBIs += l.RBIs
		}
	}

	fmt.Printf("\nRecord: %d-%d\n\n", wins, len(games)-wins)

	sort.SliceStable(order, func(i, j int) bool {
		return totals[order[i]].RBIs > totals[order[j]].RBIs
	})
	fmt.Printf("  %-22s %5s %5s %5s %6s\n", "Batter", "AB", "H", "RBI", "AVG")
	for _, name := range order {
		t := totals[name]
		avg := 0.0
		if t.AtBats > 0 {
			avg = float64(t.Hits) / float64(t.AtBats)
		}
		fmt.Printf("  %-22s %5d %5d %5d %6.3f\n", t.Name, t.AtBats, t.Hits, t.RBIs, avg)
	}
}

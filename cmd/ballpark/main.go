// ballpark is a turn-based baseball game for the terminal.
//
// Usage:
//
//	ballpark play            - Play a game in the terminal
//	ballpark list            - List teams and simulator strategies
//	ballpark sim             - Simulate games with a batting strategy
//	ballpark history         - Show recent games or one box score
//	ballpark leaders         - Show career batting leaders
//	ballpark serve           - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible games
//	--db <path>          - Set database path (default: ~/.ballpark/history.db)
//	--config <path>      - Path to a game config YAML
//	--log-level <level>  - debug, info, warn or error (default: warn)
package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-ballpark/internal/config"
	"github.com/vovakirdan/tui-ballpark/internal/core"
	"github.com/vovakirdan/tui-ballpark/internal/engine"
	"github.com/vovakirdan/tui-ballpark/internal/roster"
	"github.com/vovakirdan/tui-ballpark/internal/storage"

	// Import strategies to register them
	_ "github.com/vovakirdan/tui-ballpark/internal/strategies"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ballpark",
	Short: "Ballpark - Manage a baseball team from your terminal",
	Long: `Ballpark is a turn-based baseball game. Pick a team, set the batting
order, and decide whether each batter swings or watches every pitch.

Available commands:
  play     - Play a game
  list     - Show teams and simulator strategies
  sim      - Simulate games with a batting strategy
  history  - Show recent games or a box score
  leaders  - Show career batting leaders
  serve    - Start SSH server for remote play

Examples:
  ballpark play
  ballpark play --plain --seed 42
  ballpark sim --games 100 --strategy patient --team Astros
  ballpark serve --ssh :2222 --metrics :9090`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.ballpark/history.db", "Path to game history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(leadersCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the shared logger from the global flags. The returned
// func releases the log file, if any.
func newLogger(prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var out io.Writer = os.Stderr
	release := func() {}
	if flagLogFile != "" {
		if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		release = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, release, nil
}

// loadGameConfig reads the config file chain and applies --difficulty.
func loadGameConfig() (config.GameConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty))
		if err := cfg.Validate(); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// gameDeps is everything needed to start a Session.
type gameDeps struct {
	cfg    config.GameConfig
	league *roster.League
	store  *storage.Store
}

// loadGameDeps loads config and roster, and opens the history database.
// A database that cannot be opened is logged and skipped.
func loadGameDeps(logger *log.Logger, withStore bool) (gameDeps, error) {
	cfg, err := loadGameConfig()
	if err != nil {
		return gameDeps{}, err
	}
	league, err := roster.Load(cfg.RosterPath)
	if err != nil {
		return gameDeps{}, err
	}

	deps := gameDeps{cfg: cfg, league: league}
	if withStore {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open history database", "error", err)
		} else {
			deps.store = store
		}
	}
	return deps, nil
}

// Close releases the database.
func (d gameDeps) Close() {
	if d.store != nil {
		d.store.Close()
	}
}

// newSession starts a game. Seed 0 draws one from the clock; the resolved
// seed is kept with the result so the game can be replayed.
func (d gameDeps) newSession(seed int64, logger *log.Logger) (*engine.Session, error) {
	seed = core.RuntimeConfig{Seed: seed}.ResolvedSeed()
	rt := core.RuntimeConfig{Seed: seed}

	opts := engine.Options{
		Config: d.cfg,
		Roster: d.league,
		Rand:   rt.NewRand(),
		Voice:  rand.New(rand.NewSource(seed ^ 0x5eed)),
		Logger: logger,
		Seed:   seed,
	}
	if d.store != nil {
		opts.Recorder = d.store
	}
	return engine.New(opts)
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

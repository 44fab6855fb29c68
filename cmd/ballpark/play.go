package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-ballpark/internal/core"
	"github.com/vovakirdan/tui-ballpark/internal/platform/console"
	"github.com/vovakirdan/tui-ballpark/internal/platform/tui"
)

var flagPlain bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game. You pick the number of innings, your team, the batting
order and the opponent's name, then call every pitch.

Controls:
  s          - Swing
  w          - Watch the pitch
  h or ?     - Help
  q/Ctrl+C   - Quit (asks first)
  PgUp/PgDn  - Scroll the play-by-play

The full-screen interface is used when stdout is a terminal. Use --plain
for a line-by-line game, which is also used automatically when input is
piped.

Examples:
  ballpark play
  ballpark play --plain
  ballpark play --difficulty hard --seed 7`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagPlain, "plain", false, "Line-by-line output instead of the full-screen interface")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, release, err := newLogger("ballpark")
	if err != nil {
		fail("%v", err)
	}
	defer release()

	deps, err := loadGameDeps(logger, true)
	if err != nil {
		fail("%v", err)
	}
	defer deps.Close()

	session, err := deps.newSession(flagSeed, logger)
	if err != nil {
		fail("%v", err)
	}

	// Get terminal size
	cfg := core.DefaultConfig()
	interactive := term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	if flagPlain || !interactive {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		err = console.Run(ctx, session, os.Stdin, os.Stdout, cfg.ScreenW)
	} else {
		err = tui.Run(session, cfg, nil)
	}
	// Running out of input or Ctrl+C at a plain prompt just ends the game.
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, context.Canceled) {
		deps.Close()
		fail("%v", err)
	}
}

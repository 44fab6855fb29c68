package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-ballpark/internal/config"
	"github.com/vovakirdan/tui-ballpark/internal/core"
	"github.com/vovakirdan/tui-ballpark/internal/engine"
	"github.com/vovakirdan/tui-ballpark/internal/roster"
)

func newSession(t *testing.T) *engine.Session {
	t.Helper()
	league, err := roster.Default()
	if err != nil {
		t.Fatalf("roster.Default() failed: %v", err)
	}
	rt := core.RuntimeConfig{Seed: 11}
	s, err := engine.New(engine.Options{
		Config: config.DefaultGameConfig(),
		Roster: league,
		Rand:   rt.NewRand(),
		Seed:   rt.Seed,
	})
	if err != nil {
		t.Fatalf("engine.New() failed: %v", err)
	}
	return s
}

func TestRunFullGame(t *testing.T) {
	s := newSession(t)
	script := "1\nOrioles\n\n\n" + strings.Repeat("s\n", 2000)

	var out bytes.Buffer
	if err := Run(context.Background(), s, strings.NewReader(script), &out, 80); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if !s.Over() {
		t.Fatal("game should be over")
	}

	text := out.String()
	for _, want := range []string{
		"How many innings do you want to play?",
		"Trey Mancini",
		"Great job coach! Here's your lineup:",
		"Batter up!",
		"GAME OVER.",
		"Box score:",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRunQuit(t *testing.T) {
	s := newSession(t)

	var out bytes.Buffer
	if err := Run(context.Background(), s, strings.NewReader("q\ny\n"), &out, 80); err != nil {
		t.Fatalf("Run() = %v, quitting should not be an error", err)
	}
	if !strings.Contains(out.String(), "Are you sure you want to quit") {
		t.Error("quit was not confirmed")
	}
	if !strings.Contains(out.String(), "Thanks for playing!") {
		t.Error("missing goodbye")
	}
}

func TestRunInputExhausted(t *testing.T) {
	s := newSession(t)

	err := Run(context.Background(), s, strings.NewReader("3\n"), io.Discard, 80)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("Run() = %v, expected io.ErrUnexpectedEOF", err)
	}
}

func TestRunCancelled(t *testing.T) {
	s := newSession(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Run(ctx, s, strings.NewReader("3\n"), io.Discard, 80)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() = %v, expected context.Canceled", err)
	}
}

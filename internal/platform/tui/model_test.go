package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-ballpark/internal/config"
	"github.com/vovakirdan/tui-ballpark/internal/core"
	"github.com/vovakirdan/tui-ballpark/internal/engine"
	"github.com/vovakirdan/tui-ballpark/internal/roster"
)

func newTestModel(t *testing.T, onEvent func(engine.Event)) GameModel {
	t.Helper()
	league, err := roster.Default()
	if err != nil {
		t.Fatalf("roster.Default() failed: %v", err)
	}
	rt := core.RuntimeConfig{Seed: 5}
	s, err := engine.New(engine.Options{
		Config: config.DefaultGameConfig(),
		Roster: league,
		Rand:   rt.NewRand(),
	})
	if err != nil {
		t.Fatalf("engine.New() failed: %v", err)
	}
	return NewGameModel(s, 80, 24, onEvent)
}

func press(t *testing.T, m GameModel, msg tea.KeyMsg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return gm, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func submit(t *testing.T, m GameModel, text string) GameModel {
	t.Helper()
	m.input.SetValue(text)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	return m
}

func setUp(t *testing.T, m GameModel) GameModel {
	t.Helper()
	for _, text := range []string{"1", "Orioles", "", ""} {
		m = submit(t, m, text)
	}
	if m.session.Phase() != engine.PhasePitch {
		t.Fatalf("phase = %v after setup, expected pitch", m.session.Phase())
	}
	return m
}

func TestModelStartsWithWelcome(t *testing.T) {
	m := newTestModel(t, nil)
	if len(m.lines) == 0 {
		t.Fatal("welcome screen missing from the log")
	}
	if !strings.Contains(m.View(), "How many innings") {
		t.Error("View() should show the first prompt")
	}
}

func TestModelSetupAndEvents(t *testing.T) {
	var starts int
	m := newTestModel(t, func(ev engine.Event) {
		if _, ok := ev.(engine.GameStartEvent); ok {
			starts++
		}
	})
	m = setUp(t, m)

	if starts != 1 {
		t.Errorf("GameStartEvent seen %d times, expected 1", starts)
	}
	if !strings.Contains(m.View(), "Inning 1/1") {
		t.Errorf("header should show the inning:\n%s", m.View())
	}
}

func TestModelLettersReachInputDuringSetup(t *testing.T) {
	m := newTestModel(t, nil)
	m = submit(t, m, "1")

	m, _ = press(t, m, runes("s"))
	if m.input.Value() != "s" {
		t.Errorf("input = %q, expected the typed letter", m.input.Value())
	}
	if m.session.Phase() != engine.PhaseTeam {
		t.Errorf("phase = %v, expected team", m.session.Phase())
	}
}

func TestModelPitchKeysAnswerDirectly(t *testing.T) {
	m := setUp(t, newTestModel(t, nil))
	before := len(m.lines)

	m, _ = press(t, m, runes("w"))
	if m.input.Value() != "" {
		t.Errorf("input = %q, pitch keys should not be typed", m.input.Value())
	}
	if len(m.lines) <= before {
		t.Error("watching a pitch should log a call")
	}
}

func TestModelQuitFlow(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if m.session.Phase() != engine.PhaseConfirmQuit {
		t.Fatalf("phase = %v, expected confirm-quit", m.session.Phase())
	}

	m, _ = press(t, m, runes("n"))
	if m.session.Phase() != engine.PhaseInnings {
		t.Errorf("phase = %v after declining, expected innings", m.session.Phase())
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	m, cmd := press(t, m, runes("y"))
	if !m.IsQuitting() || cmd == nil {
		t.Error("confirming should quit the program")
	}
	if m.Err() != nil {
		t.Errorf("Err() = %v, quitting is not an error", m.Err())
	}
	if m.View() != "" {
		t.Error("View() should be empty once quitting")
	}
}

func TestModelPlaysToTheEnd(t *testing.T) {
	m := setUp(t, newTestModel(t, nil))

	for i := 0; i < 5000 && !m.session.Over(); i++ {
		if m.session.Phase() == engine.PhaseExtraInnings {
			m, _ = press(t, m, runes("n"))
			continue
		}
		m, _ = press(t, m, runes("s"))
	}
	if !m.session.Over() {
		t.Fatal("game did not finish")
	}
	if !strings.Contains(m.View(), gameOverPrompt) {
		t.Error("View() should show the game over prompt")
	}

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.IsQuitting() || cmd == nil {
		t.Error("enter should leave after the game")
	}
}

func TestKeyMapper(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		phase  engine.Phase
		typing bool
		want   core.Action
	}{
		{"swing", runes("s"), engine.PhasePitch, false, core.ActionSwing},
		{"watch", runes("w"), engine.PhasePitch, false, core.ActionWatch},
		{"swing while typing", runes("s"), engine.PhasePitch, true, core.ActionNone},
		{"swing at setup", runes("s"), engine.PhaseTeam, false, core.ActionNone},
		{"yes to extras", runes("y"), engine.PhaseExtraInnings, false, core.ActionConfirm},
		{"no to quit", runes("n"), engine.PhaseConfirmQuit, false, core.ActionDeny},
		{"yes at pitch", runes("y"), engine.PhasePitch, false, core.ActionNone},
		{"help", runes("?"), engine.PhaseOrder, false, core.ActionHelp},
		{"quit", tea.KeyMsg{Type: tea.KeyCtrlC}, engine.PhaseTeam, true, core.ActionQuit},
		{"scroll", tea.KeyMsg{Type: tea.KeyPgUp}, engine.PhasePitch, false, core.ActionScroll},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, engine.PhasePitch, false, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.MapKey(tc.msg, tc.phase, tc.typing); got != tc.want {
				t.Errorf("MapKey() = %v, expected %v", got, tc.want)
			}
		})
	}
}

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-ballpark/internal/core"
	"github.com/vovakirdan/tui-ballpark/internal/engine"
)

// GameKeyMap defines the key bindings for the play screen.
type GameKeyMap struct {
	Swing  key.Binding
	Watch  key.Binding
	Yes    key.Binding
	No     key.Binding
	Submit key.Binding
	Help   key.Binding
	Quit   key.Binding
	Up     key.Binding
	Down   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Swing, k.Watch, k.Submit, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Swing, k.Watch, k.Submit},
		{k.Up, k.Down, k.Help, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Swing: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "swing"),
		),
		Watch: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "watch"),
		),
		Yes: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "yes"),
		),
		No: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "no"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "answer"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "scroll down"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultGameKeyMap()}
}

// Keys returns the bindings, for the help view.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to an action for the given phase.
// Enter is not mapped; the model submits the text input itself.
// Single-key answers only apply at the pitch and yes/no prompts with
// nothing typed, so letters still reach the text input at setup prompts.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, phase engine.Phase, typing bool) core.Action {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit
	case key.Matches(msg, km.keys.Up), key.Matches(msg, km.keys.Down):
		return core.ActionScroll
	}

	if typing {
		return core.ActionNone
	}

	switch {
	case key.Matches(msg, km.keys.Help):
		return core.ActionHelp
	case phase == engine.PhasePitch && key.Matches(msg, km.keys.Swing):
		return core.ActionSwing
	case phase == engine.PhasePitch && key.Matches(msg, km.keys.Watch):
		return core.ActionWatch
	case askingYesNo(phase) && key.Matches(msg, km.keys.Yes):
		return core.ActionConfirm
	case askingYesNo(phase) && key.Matches(msg, km.keys.No):
		return core.ActionDeny
	}
	return core.ActionNone
}

func askingYesNo(phase engine.Phase) bool {
	return phase == engine.PhaseExtraInnings || phase == engine.PhaseConfirmQuit
}

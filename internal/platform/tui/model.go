// Package tui provides the Bubble Tea front end and SSH server for ballpark.
// It handles the terminal UI loop, key mapping, and the play-by-play log.
package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-ballpark/internal/core"
	"github.com/vovakirdan/tui-ballpark/internal/engine"
)

const gameOverPrompt = "Thanks for playing! Press enter to leave."

// GameModel is the Bubble Tea model for one game. It owns its Session;
// every answer is applied from Update, so a Session is never shared.
type GameModel struct {
	session *engine.Session
	keys    *KeyMapper
	input   textinput.Model
	log     viewport.Model
	help    help.Model
	lines   []string
	width   int
	height  int

	// onEvent sees every event before it is rendered. May be nil.
	onEvent func(engine.Event)

	quitting bool
	err      error
}

// NewGameModel creates a model for s sized to width x height. The welcome
// screen is already in the log.
func NewGameModel(s *engine.Session, width, height int, onEvent func(engine.Event)) GameModel {
	if width <= 0 || height <= 0 {
		def := core.DefaultConfig()
		width, height = def.ScreenW, def.ScreenH
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 64
	ti.Focus()

	m := GameModel{
		session: s,
		keys:    NewKeyMapper(),
		input:   ti,
		log:     viewport.New(width, height),
		help:    help.New(),
		onEvent: onEvent,
	}
	m.resize(width, height)
	m.push(s.Start())
	return m
}

// Init starts the cursor blinking.
func (m GameModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys.Keys()

	if m.session.Over() {
		if key.Matches(msg, keys.Submit) || key.Matches(msg, keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.log, cmd = m.log.Update(msg)
		return m, cmd
	}

	phase := m.session.Phase()
	switch action := m.keys.MapKey(msg, phase, m.input.Value() != ""); action {
	case core.ActionQuit:
		if phase == engine.PhaseConfirmQuit {
			m.quitting = true
			return m, tea.Quit
		}
		return m.answer(action.Answer())
	case core.ActionScroll:
		var cmd tea.Cmd
		m.log, cmd = m.log.Update(msg)
		return m, cmd
	case core.ActionNone:
	default:
		return m.answer(action.Answer())
	}

	if key.Matches(msg, keys.Submit) {
		text := m.input.Value()
		m.input.SetValue("")
		return m.answer(text)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// answer feeds one line to the Session and logs the exchange.
func (m GameModel) answer(text string) (tea.Model, tea.Cmd) {
	prompt := strings.TrimSpace(m.session.Prompt().Text)
	if i := strings.LastIndex(prompt, "\n"); i >= 0 {
		prompt = prompt[i+1:]
	}
	m.lines = append(m.lines, helpStyle.Render(prompt+" "+text))

	events, err := m.session.Answer(text)
	m.push(events)

	switch {
	case errors.Is(err, engine.ErrQuit):
		m.quitting = true
		return m, tea.Quit
	case err != nil:
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}

	m.resize(m.width, m.height)
	return m, nil
}

// push renders events into the log and scrolls to the newest line.
func (m *GameModel) push(events []engine.Event) {
	for _, ev := range events {
		if m.onEvent != nil {
			m.onEvent(ev)
		}
		if text := RenderEvent(ev, m.width); text != "" {
			m.lines = append(m.lines, text)
		}
	}
	m.refresh()
}

func (m *GameModel) refresh() {
	m.log.SetContent(strings.Join(m.lines, "\n"))
	m.log.GotoBottom()
}

// resize fits the log between the header and the prompt block.
func (m *GameModel) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.input.Width = width - 4

	logHeight := height - 1 - lipgloss.Height(m.promptView()) - 2
	if logHeight < 3 {
		logHeight = 3
	}
	m.log.Width = width
	m.log.Height = logHeight
}

func (m GameModel) promptView() string {
	if m.session.Over() {
		return promptStyle.Render(gameOverPrompt)
	}
	return promptStyle.Render(strings.TrimRight(m.session.Prompt().Text, " "))
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	parts := []string{
		renderHeader(m.session.Score(), m.width),
		m.log.View(),
		m.promptView(),
	}
	if !m.session.Over() {
		parts = append(parts, m.input.View())
	}
	parts = append(parts, helpStyle.Render(m.help.View(m.keys.Keys())))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Err returns the error that ended the game, if any.
func (m GameModel) Err() error {
	return m.err
}

// IsQuitting returns true once the program should exit.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for s and blocks until the player leaves.
func Run(s *engine.Session, cfg core.RuntimeConfig, onEvent func(engine.Event)) error {
	model := NewGameModel(s, cfg.ScreenW, cfg.ScreenH, onEvent)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(GameModel); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}

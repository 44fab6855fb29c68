package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-ballpark/internal/storage"
)

// History layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show view list sidebar
	sidebarWidth       = 20  // Width of view list sidebar
	maxRows            = 100 // Max rows to load per view
)

// historyView is one table of the history screen.
type historyView int

const (
	viewRecent historyView = iota
	viewLeaders
	viewTeams
)

var historyViews = []historyView{viewRecent, viewLeaders, viewTeams}

func (v historyView) Title() string {
	switch v {
	case viewRecent:
		return "Recent Games"
	case viewLeaders:
		return "Batting Leaders"
	case viewTeams:
		return "Teams"
	default:
		return ""
	}
}

// HistoryKeyMap defines the key bindings for the history screen.
type HistoryKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Back     key.Binding
	Quit     key.Binding
	NextView key.Binding
	PrevView key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextView, k.PrevView, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextView, k.PrevView},
		{k.Back, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev view"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next view"),
		),
		NextView: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next view"),
		),
		PrevView: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev view"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for browsing saved games.
type HistoryModel struct {
	store       *storage.Store
	cursor      int
	rows        []table.Row
	loadErr     error
	table       table.Model
	help        help.Model
	keys        HistoryKeyMap
	width       int
	height      int
	quitting    bool
	showSidebar bool
}

// NewHistoryModel creates a new history model.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	h := help.New()
	h.ShowAll = false

	m := HistoryModel{
		store:       store,
		keys:        DefaultHistoryKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.load()
	return m
}

func (m HistoryModel) view() historyView {
	return historyViews[m.cursor]
}

// columns returns the table layout for the current view.
func (m *HistoryModel) columns() []table.Column {
	switch m.view() {
	case viewLeaders:
		return []table.Column{
			{Title: "Batter", Width: 20},
			{Title: "G", Width: 4},
			{Title: "AB", Width: 5},
			{Title: "H", Width: 5},
			{Title: "RBI", Width: 5},
			{Title: "AVG", Width: 6},
		}
	case viewTeams:
		return []table.Column{
			{Title: "Team", Width: 14},
			{Title: "W-L", Width: 8},
			{Title: "RS", Width: 5},
			{Title: "RA", Width: 5},
			{Title: "Last", Width: 13},
		}
	default:
		return []table.Column{
			{Title: "Date", Width: 13},
			{Title: "Home", Width: 12},
			{Title: "Score", Width: 7},
			{Title: "Opponent", Width: 14},
			{Title: "Inn", Width: 4},
		}
	}
}

// createTable creates a new table for the current view.
func (m *HistoryModel) createTable() table.Model {
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads the rows for the current view.
func (m *HistoryModel) load() {
	m.rows, m.loadErr = nil, nil
	if m.store != nil {
		m.rows, m.loadErr = loadRows(m.store, m.view())
	}
	m.table.SetRows(m.rows)
	m.table.GotoTop()
}

func loadRows(store *storage.Store, v historyView) ([]table.Row, error) {
	var rows []table.Row

	switch v {
	case viewLeaders:
		lines, err := store.CareerLines(maxRows)
		if err != nil {
			return nil, err
		}
		for _, l := range lines {
			rows = append(rows, table.Row{
				l.Name,
				fmt.Sprintf("%d", l.Games),
				fmt.Sprintf("%d", l.AtBats),
				fmt.Sprintf("%d", l.Hits),
				fmt.Sprintf("%d", l.RBIs),
				fmt.Sprintf("%.3f", l.Average()),
			})
		}

	case viewTeams:
		stats, err := store.AllTeamStats()
		if err != nil {
			return nil, err
		}
		teams := make([]string, 0, len(stats))
		for t := range stats {
			teams = append(teams, t)
		}
		sort.Strings(teams)
		for _, t := range teams {
			st := stats[t]
			rows = append(rows, table.Row{
				st.Team,
				fmt.Sprintf("%d-%d", st.Wins, st.Games-st.Wins),
				fmt.Sprintf("%d", st.RunsFor),
				fmt.Sprintf("%d", st.RunsAgainst),
				st.LastPlayed.Format("Jan 02 15:04"),
			})
		}

	default:
		games, err := store.RecentGames(maxRows)
		if err != nil {
			return nil, err
		}
		for _, g := range games {
			rows = append(rows, table.Row{
				g.CreatedAt.Format("Jan 02 15:04"),
				g.Home,
				fmt.Sprintf("%d-%d", g.Runs, g.OpponentRuns),
				g.Opponent,
				fmt.Sprintf("%d", g.Innings),
			})
		}
	}

	return rows, nil
}

// switchView moves the cursor by delta, wrapping around.
func (m *HistoryModel) switchView(delta int) {
	n := len(historyViews)
	m.cursor = ((m.cursor+delta)%n + n) % n
	m.table = m.createTable()
	m.load()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextView), key.Matches(msg, m.keys.Right):
			m.switchView(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevView), key.Matches(msg, m.keys.Left):
			m.switchView(-1)
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.table.SetRows(m.rows)
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := fmt.Sprintf("BALLPARK HISTORY - %s", m.view().Title())
	b.WriteString(titleStyle.Render(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	content := tableStyle.Render(m.renderTableContent())

	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", content))
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, fmt.Sprintf("< %s >", m.view().Title())))
		b.WriteString("\n\n")
		b.WriteString(content)
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderSidebar lists the views with the current one highlighted.
func (m HistoryModel) renderSidebar() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Views\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, v := range historyViews {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		sidebar.WriteString(style.Render(cursor + v.Title()))
		sidebar.WriteString("\n")
	}

	return sidebarStyle.Render(sidebar.String())
}

// renderTableContent renders the table or an empty message.
func (m HistoryModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	if m.loadErr != nil {
		return errorStyle.Render(fmt.Sprintf("Could not load history: %v", m.loadErr))
	}
	if len(m.rows) == 0 {
		return emptyStyle.Render("No games recorded yet.\nPlay a game to start the record book!")
	}

	return m.table.View()
}

// RunHistory runs the history screen until the player leaves.
func RunHistory(store *storage.Store, width, height int) error {
	model := NewHistoryModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

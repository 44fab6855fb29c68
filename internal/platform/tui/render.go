package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-ballpark/internal/baseball"
	"github.com/vovakirdan/tui-ballpark/internal/engine"
)

// toneStyles maps message tones to lipgloss styles.
var toneStyles = map[engine.Tone]lipgloss.Style{
	engine.ToneInfo:   lipgloss.NewStyle(),
	engine.ToneNotice: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	engine.ToneBanner: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
	engine.TonePlay:   lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
}

var (
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	fieldStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	scoreStyle  = lipgloss.NewStyle().Bold(true)
	hitStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	outStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	promptStyle = lipgloss.NewStyle().Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// RenderEvent converts an event to a styled block for the play log.
// Events without a visible form return an empty string.
func RenderEvent(ev engine.Event, width int) string {
	text := engine.Describe(ev, width)
	if text == "" {
		return ""
	}

	switch e := ev.(type) {
	case engine.MessageEvent:
		style, ok := toneStyles[e.Tone]
		if !ok {
			style = toneStyles[engine.ToneInfo]
		}
		if e.Tone == engine.ToneBanner {
			return lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(" "+e.Text+" "))
		}
		return style.Render(text)
	case engine.HelpEvent:
		return helpStyle.Render(text)
	case engine.FieldEvent:
		return fieldStyle.Render(text)
	case engine.ScoreEvent, engine.FinalScoreEvent:
		return scoreStyle.Render(text)
	case engine.BoxScoreEvent:
		return boxStyle.Render(text)
	case engine.PlateAppearanceEvent:
		if e.Outcome.Bases() > 0 {
			return hitStyle.Render(text)
		}
		if e.Outcome == baseball.StatusOutInPlay || e.Outcome == baseball.StatusStrikeOut {
			return outStyle.Render(text)
		}
		return text
	default:
		return text
	}
}

// renderHeader draws the scoreboard bar above the play log.
func renderHeader(score baseball.Scoreboard, width int) string {
	if score.Home == "" {
		return headerStyle.Width(width).Render("BALLPARK")
	}

	line := fmt.Sprintf("%s %d  |  %s %d", score.Opponent, score.OpponentRuns, score.Home, score.Runs)
	if score.Opponent == "" {
		line = fmt.Sprintf("%s %d", score.Home, score.Runs)
	}
	line += fmt.Sprintf("  |  Inning %d/%d  Outs %d", score.Inning, score.MaxInnings, score.Outs)
	return headerStyle.Width(width).Render(line)
}

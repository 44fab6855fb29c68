package engine

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-ballpark/internal/baseball"
	"github.com/vovakirdan/tui-ballpark/internal/core"
)

// DefaultWidth is the line width the plain renderer centers text in.
const DefaultWidth = 80

// fieldRows is the height of the diamond, second base to home plate.
const fieldRows = 9

// Describe renders an event as plain text for a line-oriented terminal.
func Describe(ev Event, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}

	switch e := ev.(type) {
	case MessageEvent:
		if e.Tone == ToneBanner {
			return center(e.Text, width)
		}
		return e.Text
	case HelpEvent:
		return e.Text
	case CandidatesEvent:
		lines := make([]string, len(e.Names))
		for i, name := range e.Names {
			lines[i] = center(fmt.Sprintf("%d: %s", i, name), width)
		}
		return strings.Join(lines, "\n")
	case LineupEvent:
		var sb strings.Builder
		sb.WriteString("Great job coach! Here's your lineup:")
		for i, name := range e.Names {
			fmt.Fprintf(&sb, "\n%d. %s", i+1, name)
		}
		return sb.String()
	case GameStartEvent:
		return "You're all set, let's play!"
	case OpponentHalfEvent:
		return fmt.Sprintf("The %s scored %d %s at the top of inning %d.", e.Team, e.Runs, plural(e.Runs, "run", "runs"), e.Inning)
	case ScoreEvent:
		return describeScore(e)
	case FieldEvent:
		return RenderField(e, width)
	case BatterUpEvent:
		return fmt.Sprintf("Batter up! %s is at the plate.", e.Batter)
	case CountEvent:
		return fmt.Sprintf("%d %s, %d %s.", e.Balls, plural(e.Balls, "ball", "balls"), e.Strikes, plural(e.Strikes, "strike", "strikes"))
	case PlateAppearanceEvent:
		return describePlay(e)
	case FinalScoreEvent:
		return "Final score:\n" + describeScore(e.Score)
	case BoxScoreEvent:
		var sb strings.Builder
		sb.WriteString("Box score:")
		for _, l := range e.Lines {
			fmt.Fprintf(&sb, "\n%s, %d for %d, %d %s", l.Name, l.Hits, l.AtBats, l.RBIs, plural(l.RBIs, "RBI", "RBIs"))
		}
		return sb.String()
	default:
		return ""
	}
}

func describeScore(e ScoreEvent) string {
	return fmt.Sprintf("%s: %d\n%s: %d", e.Opponent, e.OpponentRuns, e.Home, e.Runs)
}

// PlayHeadline is the one-line call of a finished plate appearance.
func PlayHeadline(e PlateAppearanceEvent) string {
	switch e.Outcome {
	case baseball.StatusStrikeOut:
		return fmt.Sprintf("That's 3. %s strikes out.", e.Batter)
	case baseball.StatusWalk:
		if e.Forced {
			return "That's 4 balls - take a walk."
		}
		return fmt.Sprintf("That's 4 balls. %s takes the empty spot at first base.", e.Batter)
	case baseball.StatusSingle:
		return fmt.Sprintf("%s gets a single through the infield!", e.Batter)
	case baseball.StatusDouble:
		return fmt.Sprintf("%s finds a gap and hits a double!", e.Batter)
	case baseball.StatusTriple:
		return fmt.Sprintf("%s hits it to the fence for a triple!", e.Batter)
	case baseball.StatusHomeRun:
		return fmt.Sprintf("%s sends it out of the park! HOME RUN!", e.Batter)
	case baseball.StatusOutInPlay:
		switch e.Out {
		case baseball.OutBatterRunnersAdvance:
			return fmt.Sprintf("%s hits into an out at first, but the runners advance.", e.Batter)
		case baseball.OutLeadRunner:
			return fmt.Sprintf("%s hits into a play, and the lead runner is out.", e.Batter)
		default:
			return fmt.Sprintf("%s hits into an out at first.", e.Batter)
		}
	default:
		return e.Batter
	}
}

func describePlay(e PlateAppearanceEvent) string {
	lines := []string{PlayHeadline(e)}
	for _, name := range e.Scored {
		lines = append(lines, name+" scores!")
	}
	return strings.Join(lines, "\n")
}

// RenderField draws the diamond with the runners on base and the on-deck
// batter at the plate, framed by the inning and outs.
func RenderField(e FieldEvent, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	scr := core.NewScreen(width, fieldRows)
	c := width / 2

	scr.DrawTextCentered(0, "2nd: "+e.Second)

	// Base paths: 2nd down to 3rd and 1st, then in to home.
	scr.DrawDiagonal(c-3, 1, 3, -4, '/')
	scr.DrawDiagonal(c+2, 1, 3, 4, '\\')
	scr.DrawDiagonal(c-11, 5, 3, 4, '\\')
	scr.DrawDiagonal(c+10, 5, 3, -4, '/')

	scr.DrawText(0, 4, "3rd: "+e.Third)
	scr.DrawTextRight(4, "1st: "+e.First)
	scr.DrawTextCentered(8, "Up next: "+e.UpNext)

	rows := make([]string, 0, fieldRows+5)
	rows = append(rows,
		strings.Repeat("_", width),
		fmt.Sprintf("Inning: %d", e.Inning),
		fmt.Sprintf("Outs: %d", e.Outs),
		"",
	)
	for y := 0; y < fieldRows; y++ {
		rows = append(rows, strings.TrimRight(scr.Row(y), " "))
	}
	rows = append(rows, strings.Repeat("_", width))
	return strings.Join(rows, "\n")
}

func center(text string, width int) string {
	pad := (width - len([]rune(text))) / 2
	if pad <= 0 {
		return text
	}
	return strings.Repeat(" ", pad) + text
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

package engine

import (
	"errors"
	"strconv"

	"github.com/vovakirdan/tui-ballpark/internal/core"
)

// maxAnswers bounds a headless game. A lineup that never makes an out would
// otherwise bat forever.
const maxAnswers = 200_000

// ErrRunaway is returned by Autoplay when a game does not finish within the
// answer limit.
var ErrRunaway = errors.New("engine: game did not finish")

// Decider picks swing or watch from the count.
type Decider interface {
	Decide(balls, strikes int) core.Action
}

// Setup answers the pre-game questions for Autoplay. Empty fields fall back
// to the Session's configured defaults; an empty Order uses the first
// batters in roster order.
type Setup struct {
	Innings  int
	Team     string
	Order    string
	Opponent string

	// Extras answers the tied-game question.
	Extras bool
}

// Autoplay drives s to the end of the game, answering every prompt from
// setup and d. Each event is passed to sink if it is not nil.
func Autoplay(s *Session, d Decider, setup Setup, sink func(Event)) (GameResult, error) {
	publish := func(events []Event) {
		if sink == nil {
			return
		}
		for _, ev := range events {
			sink(ev)
		}
	}
	publish(s.Start())

	for n := 0; !s.Over(); n++ {
		if n >= maxAnswers {
			return GameResult{}, ErrRunaway
		}
		events, err := s.Answer(autoAnswer(s, d, setup))
		publish(events)
		if err != nil {
			return GameResult{}, err
		}
	}

	result, _ := s.Result()
	return result, nil
}

func autoAnswer(s *Session, d Decider, setup Setup) string {
	switch s.Phase() {
	case PhaseInnings:
		if setup.Innings > 0 {
			return strconv.Itoa(setup.Innings)
		}
		return strconv.Itoa(s.cfg.Innings)
	case PhaseTeam:
		if setup.Team != "" {
			return setup.Team
		}
		return s.cfg.FallbackTeam
	case PhaseOrder:
		if setup.Order != "" {
			return setup.Order
		}
		return defaultOrderAnswer(len(s.candidates), s.cfg.Lineup.MaxBatters)
	case PhaseOpponent:
		return setup.Opponent
	case PhasePitch:
		return d.Decide(s.Count()).Answer()
	case PhaseExtraInnings:
		if setup.Extras {
			return core.ActionConfirm.Answer()
		}
		return core.ActionDeny.Answer()
	case PhaseConfirmQuit:
		return core.ActionDeny.Answer()
	default:
		return ""
	}
}

func defaultOrderAnswer(candidates, maxBatters int) string {
	n := min(candidates, maxBatters)
	b := make([]byte, 0, 2*n)
	for i := 0; i < n; i++ {
		if i > 0 {
			b = append(b, ',')
		}
		b = strconv.AppendInt(b, int64(i), 10)
	}
	return string(b)
}

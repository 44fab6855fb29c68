package baseball

import "fmt"

// RunTable maps a uniform draw to runs scored: the index of the first
// boundary >= x is the number of runs. The last boundary should be 1.0.
type RunTable []float64

// DefaultRunTable is the league-wide distribution of runs per half inning
// (0 through 3 runs).
var DefaultRunTable = RunTable{0.7315, 0.8782, 0.9455, 1.0}

// Runs returns the bucket for x. Draws above the last boundary fall in the
// last bucket.
func (t RunTable) Runs(x float64) int {
	for i, bound := range t {
		if x <= bound {
			return i
		}
	}
	return len(t) - 1
}

// Validate checks that boundaries are non-decreasing and end at 1.0.
func (t RunTable) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("baseball: empty run table")
	}
	for i := 1; i < len(t); i++ {
		if t[i] < t[i-1] {
			return fmt.Errorf("baseball: run table not sorted at index %d", i)
		}
	}
	if t[len(t)-1] != 1.0 {
		return fmt.Errorf("baseball: run table must end at 1.0, got %v", t[len(t)-1])
	}
	return nil
}

// Scoreboard holds the game-level counters.
type Scoreboard struct {
	Outs         int
	Runs         int
	OpponentRuns int
	Inning       int
	MaxInnings   int
	Home         string
	Opponent     string
}

// NewScoreboard creates a scoreboard for a game of maxInnings.
func NewScoreboard(maxInnings int) *Scoreboard {
	return &Scoreboard{Inning: 1, MaxInnings: maxInnings}
}

// SetOpponent names the opposing team. A name equal to the home team is
// prefixed with "Anti-"; the second return value reports the rename.
func (s *Scoreboard) SetOpponent(name string) (string, bool) {
	if name == s.Home {
		s.Opponent = "Anti-" + name
		return s.Opponent, true
	}
	s.Opponent = name
	return name, false
}

// SimulateOpponentHalfInning draws the opponent's runs for the top of the
// inning and credits them.
func (s *Scoreboard) SimulateOpponentHalfInning(rng Rand, table RunTable) int {
	runs := table.Runs(rng.Float64())
	s.OpponentRuns += runs
	return runs
}

// StartInning resets the out count.
func (s *Scoreboard) StartInning() {
	s.Outs = 0
}

// NeedsExtraInnings reports whether the last scheduled inning ended tied.
func (s *Scoreboard) NeedsExtraInnings() bool {
	return s.Inning == s.MaxInnings && s.Runs == s.OpponentRuns
}

// AddExtraInning extends the game by one inning.
func (s *Scoreboard) AddExtraInning() {
	s.MaxInnings++
}

// NextInning moves to the next inning and reports whether it is still
// within the scheduled length.
func (s *Scoreboard) NextInning() bool {
	s.Inning++
	return s.Inning <= s.MaxInnings
}

func (s *Scoreboard) String() string {
	return fmt.Sprintf("%s: %d\n%s: %d", s.Opponent, s.OpponentRuns, s.Home, s.Runs)
}

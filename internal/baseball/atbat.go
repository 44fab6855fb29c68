package baseball

// Status is the state of a plate appearance. Batting is the only
// non-terminal state.
type Status int

const (
	StatusBatting Status = iota
	StatusStrikeOut
	StatusWalk
	StatusSingle
	StatusDouble
	StatusTriple
	StatusHomeRun
	StatusOutInPlay
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusBatting:
		return "Batting"
	case StatusStrikeOut:
		return "Strike out"
	case StatusWalk:
		return "Walk"
	case StatusSingle:
		return "Single"
	case StatusDouble:
		return "Double"
	case StatusTriple:
		return "Triple"
	case StatusHomeRun:
		return "Home run"
	case StatusOutInPlay:
		return "Out in play"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the plate appearance is over.
func (s Status) Terminal() bool {
	return s != StatusBatting
}

// Bases returns how many bases a hit is worth, or 0 for anything else.
func (s Status) Bases() int {
	switch s {
	case StatusSingle:
		return 1
	case StatusDouble:
		return 2
	case StatusTriple:
		return 3
	case StatusHomeRun:
		return 4
	default:
		return 0
	}
}

// swingInterval is one slice of the swing partition.
type swingInterval struct {
	status Status
	mass   func(Odds) float64
}

// swingOrder is the fixed partition order of [0, SwingTotal].
// The strikeout slice is reported as StatusBatting and handled as a strike.
var swingOrder = []swingInterval{
	{StatusStrikeOut, func(o Odds) float64 { return o.Strikeout }},
	{StatusOutInPlay, func(o Odds) float64 { return o.OutInPlay }},
	{StatusHomeRun, func(o Odds) float64 { return o.HomeRun }},
	{StatusSingle, func(o Odds) float64 { return o.Single }},
	{StatusDouble, func(o Odds) float64 { return o.Double }},
	{StatusTriple, func(o Odds) float64 { return o.Triple }},
}

// classifySwing maps a draw in [0, SwingTotal] onto the partition.
// Boundaries are inclusive-upper and zero-mass slices are skipped, so a draw
// on a boundary belongs to the earlier non-empty slice.
func classifySwing(o Odds, x float64) Status {
	var (
		cum  float64
		last = StatusTriple
	)
	for _, iv := range swingOrder {
		m := iv.mass(o)
		if m <= 0 {
			continue
		}
		cum += m
		last = iv.status
		if x <= cum {
			return iv.status
		}
	}
	// Only reachable through rounding at the top of the range.
	return last
}

// AtBat tracks the count of one plate appearance.
type AtBat struct {
	batter  *Batter
	rng     Rand
	balls   int
	strikes int
	status  Status
}

// NewAtBat starts a plate appearance for b with an empty count.
func NewAtBat(b *Batter, rng Rand) *AtBat {
	return &AtBat{batter: b, rng: rng, status: StatusBatting}
}

// Batter returns the batter at the plate.
func (a *AtBat) Batter() *Batter { return a.batter }

// Balls returns the current ball count.
func (a *AtBat) Balls() int { return a.balls }

// Strikes returns the current strike count.
func (a *AtBat) Strikes() int { return a.strikes }

// Status returns the current state.
func (a *AtBat) Status() Status { return a.status }

// checkCount moves to a terminal state once the count is full.
// Three strikes win over four balls.
func (a *AtBat) checkCount() {
	switch {
	case a.strikes >= 3:
		a.status = StatusStrikeOut
	case a.balls >= 4:
		a.status = StatusWalk
	}
}

// Watch lets a pitch go by and updates the count.
func (a *AtBat) Watch(p Pitch) Status {
	if a.status.Terminal() {
		return a.status
	}
	if p == Ball {
		a.balls++
	} else {
		a.strikes++
	}
	a.checkCount()
	return a.status
}

// Swing draws from the batter's swing partition. A draw in the strikeout
// slice adds a strike; any other slice ends the plate appearance.
func (a *AtBat) Swing() Status {
	if a.status.Terminal() {
		return a.status
	}
	x := a.rng.Float64() * a.batter.SwingTotal()
	return a.swingAt(x)
}

func (a *AtBat) swingAt(x float64) Status {
	s := classifySwing(a.batter.odds, x)
	if s == StatusStrikeOut {
		a.strikes++
		a.checkCount()
		return a.status
	}
	a.status = s
	return a.status
}

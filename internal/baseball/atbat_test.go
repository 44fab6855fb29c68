package baseball

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestOddsValidate(t *testing.T) {
	tests := []struct {
		name string
		odds Odds
		want error
	}{
		{"balanced", balancedOdds, nil},
		{"negative walk", Odds{Single: 0.5, Walk: -0.1}, ErrNegativeOdds},
		{"only walks", Odds{Walk: 0.5, HitByPitch: 0.5}, ErrNoSwingMass},
		{"empty", Odds{}, ErrNoSwingMass},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.odds.Validate()
			if !errors.Is(err, tc.want) {
				t.Errorf("Validate() = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestSwingTotalExcludesWalks(t *testing.T) {
	got := balancedOdds.SwingTotal()
	want := 0.20 + 0.07 + 0.03 + 0.10 + 0.40 + 0.20
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("SwingTotal() = %v, want %v", got, want)
	}
}

func TestClassifySwingBoundaries(t *testing.T) {
	// K=0.2 | OIP=0.4 | HR=0.1 | 1B=0.2 | 2B=0.07 | 3B=0.03
	o := balancedOdds
	tests := []struct {
		name string
		x    float64
		want Status
	}{
		{"zero", 0, StatusStrikeOut},
		{"strikeout upper bound", 0.2, StatusStrikeOut},
		{"just past strikeout", 0.2000001, StatusOutInPlay},
		{"out in play upper bound", 0.6, StatusOutInPlay},
		{"home run", 0.65, StatusHomeRun},
		{"single", 0.8, StatusSingle},
		{"double", 0.85, StatusDouble},
		{"top of range", o.SwingTotal(), StatusTriple},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := classifySwing(o, tc.x); got != tc.want {
				t.Errorf("classifySwing(%v) = %v, want %v", tc.x, got, tc.want)
			}
		})
	}
}

func TestClassifySwingSkipsZeroMass(t *testing.T) {
	o := Odds{Single: 0.5, OutInPlay: 0.5}

	if got := classifySwing(o, 0); got != StatusOutInPlay {
		t.Errorf("x=0 with no strikeout mass = %v, want Out in play", got)
	}
	if got := classifySwing(o, 1.0); got != StatusSingle {
		t.Errorf("x=total with no triple mass = %v, want Single", got)
	}

	homerOnly := Odds{HomeRun: 1.0}
	for _, x := range []float64{0, 0.5, 1.0} {
		if got := classifySwing(homerOnly, x); got != StatusHomeRun {
			t.Errorf("home-run-only batter at x=%v = %v", x, got)
		}
	}
}

func TestSwingDistribution(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	o := balancedOdds
	total := o.SwingTotal()
	const n = 200000

	counts := make(map[Status]int)
	for range n {
		counts[classifySwing(o, rng.Float64()*total)]++
	}

	want := map[Status]float64{
		StatusStrikeOut: o.Strikeout / total,
		StatusOutInPlay: o.OutInPlay / total,
		StatusHomeRun:   o.HomeRun / total,
		StatusSingle:    o.Single / total,
		StatusDouble:    o.Double / total,
		StatusTriple:    o.Triple / total,
	}
	for s, p := range want {
		got := float64(counts[s]) / n
		if math.Abs(got-p) > 0.01 {
			t.Errorf("%v frequency = %.4f, want %.4f", s, got, p)
		}
	}
}

func TestWatchThreeStrikes(t *testing.T) {
	b := mustBatter(t, 0, "Mancini", balancedOdds)
	ab := NewAtBat(b, &scriptedRand{})

	want := []Status{StatusBatting, StatusBatting, StatusStrikeOut}
	for i, w := range want {
		if got := ab.Watch(Strike); got != w {
			t.Errorf("strike %d: status = %v, want %v", i+1, got, w)
		}
	}
	if ab.Strikes() != 3 || ab.Balls() != 0 {
		t.Errorf("count = %d-%d, want 0-3", ab.Balls(), ab.Strikes())
	}
}

func TestWatchFourBalls(t *testing.T) {
	b := mustBatter(t, 0, "Mancini", balancedOdds)
	ab := NewAtBat(b, &scriptedRand{})

	ab.Watch(Strike)
	ab.Watch(Strike)
	for range 3 {
		if got := ab.Watch(Ball); got != StatusBatting {
			t.Fatalf("status = %v before fourth ball", got)
		}
	}
	if got := ab.Watch(Ball); got != StatusWalk {
		t.Errorf("fourth ball: status = %v, want Walk", got)
	}
}

func TestCheckCountStrikesWin(t *testing.T) {
	b := mustBatter(t, 0, "Mancini", balancedOdds)
	ab := NewAtBat(b, &scriptedRand{})
	ab.balls = 4
	ab.strikes = 3
	ab.checkCount()
	if ab.Status() != StatusStrikeOut {
		t.Errorf("status = %v, want Strike out", ab.Status())
	}
}

func TestSwingStrikeThenHit(t *testing.T) {
	b := mustBatter(t, 0, "Mancini", balancedOdds)
	total := balancedOdds.SwingTotal()
	// Draws are scaled by the swing total: first lands in K, second in 1B.
	rng := &scriptedRand{floats: []float64{0.1 / total, 0.75 / total}}
	ab := NewAtBat(b, rng)

	if got := ab.Swing(); got != StatusBatting {
		t.Fatalf("first swing = %v, want Batting", got)
	}
	if ab.Strikes() != 1 {
		t.Errorf("strikes = %d, want 1", ab.Strikes())
	}
	if got := ab.Swing(); got != StatusSingle {
		t.Errorf("second swing = %v, want Single", got)
	}
}

func TestSwingingStrikeThree(t *testing.T) {
	b := mustBatter(t, 0, "Mancini", balancedOdds)
	rng := &scriptedRand{floats: []float64{0, 0}}
	ab := NewAtBat(b, rng)
	ab.Watch(Strike)

	ab.Swing()
	if got := ab.Swing(); got != StatusStrikeOut {
		t.Errorf("third swinging strike = %v, want Strike out", got)
	}
}

func TestTerminalAtBatIgnoresInput(t *testing.T) {
	b := mustBatter(t, 0, "Mancini", Odds{HomeRun: 1})
	ab := NewAtBat(b, &scriptedRand{floats: []float64{0.3}})

	if got := ab.Swing(); got != StatusHomeRun {
		t.Fatalf("Swing() = %v, want Home run", got)
	}
	// No further draws are consumed.
	if got := ab.Swing(); got != StatusHomeRun {
		t.Errorf("Swing() after terminal = %v", got)
	}
	if got := ab.Watch(Strike); got != StatusHomeRun || ab.Strikes() != 0 {
		t.Errorf("Watch() after terminal changed state: %v, %d strikes", got, ab.Strikes())
	}
}

func TestPitcherIsFair(t *testing.T) {
	p := NewPitcher("Benny", rand.New(rand.NewSource(3)))
	const n = 100000
	strikes := 0
	for range n {
		if p.ThrowPitch() == Strike {
			strikes++
		}
	}
	if frac := float64(strikes) / n; math.Abs(frac-0.5) > 0.01 {
		t.Errorf("strike frequency = %.4f, want ~0.5", frac)
	}
}

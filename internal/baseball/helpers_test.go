package baseball

import "testing"

// scriptedRand replays fixed draws.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		panic("scriptedRand: out of floats")
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		panic("scriptedRand: out of ints")
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

var balancedOdds = Odds{
	Single:     0.20,
	Double:     0.07,
	Triple:     0.03,
	HomeRun:    0.10,
	Walk:       0.08,
	Strikeout:  0.20,
	HitByPitch: 0.01,
	OutInPlay:  0.40,
}

func mustBatter(t *testing.T, id int, name string, odds Odds) *Batter {
	t.Helper()
	b, err := NewBatter(BatterID(id), name, odds)
	if err != nil {
		t.Fatalf("NewBatter(%q) failed: %v", name, err)
	}
	return b
}

// lineup builds n batters named A, B, C, ...
func lineup(t *testing.T, n int) []*Batter {
	t.Helper()
	out := make([]*Batter, n)
	for i := range out {
		out[i] = mustBatter(t, i, string(rune('A'+i)), balancedOdds)
	}
	return out
}

func baseOf(f *Field, b *Batter) int {
	for _, r := range f.runners {
		if r.Batter == b {
			return r.Base
		}
	}
	return -1
}

func inDugout(f *Field, b *Batter) bool {
	for _, d := range f.dugout {
		if d == b {
			return true
		}
	}
	return false
}

package baseball

import "fmt"

// Base indexes. The batter stands at BaseHome while the plate appearance is
// live; anything past BaseThird has scored.
const (
	BaseHome   = 0
	BaseFirst  = 1
	BaseSecond = 2
	BaseThird  = 3
)

// Runner is a batter occupying a base index.
type Runner struct {
	Batter *Batter
	Base   int
}

// Field tracks who is on base and who waits in the dugout.
// A batter is always in exactly one of the two.
type Field struct {
	// runners keeps arrival order; scorers return to the dugout in that order.
	runners []Runner
	dugout  []*Batter
	bullpen []*Pitcher
}

// NewField creates a field with order as the dugout queue.
func NewField(order []*Batter, bullpen ...*Pitcher) *Field {
	f := &Field{
		dugout:  make([]*Batter, len(order)),
		bullpen: bullpen,
	}
	copy(f.dugout, order)
	return f
}

// Dugout returns a copy of the batting queue, next batter first.
func (f *Field) Dugout() []*Batter {
	out := make([]*Batter, len(f.dugout))
	copy(out, f.dugout)
	return out
}

// Runners returns a copy of the base occupants in arrival order.
func (f *Field) Runners() []Runner {
	out := make([]Runner, len(f.runners))
	copy(out, f.runners)
	return out
}

// Bullpen returns the available pitchers.
func (f *Field) Bullpen() []*Pitcher {
	return f.bullpen
}

// UpNext returns the batter at the front of the dugout, or nil.
func (f *Field) UpNext() *Batter {
	if len(f.dugout) == 0 {
		return nil
	}
	return f.dugout[0]
}

// At returns the occupant of a base index.
func (f *Field) At(base int) (*Batter, bool) {
	for _, r := range f.runners {
		if r.Base == base {
			return r.Batter, true
		}
	}
	return nil, false
}

// Occupied reports whether a base index holds a runner.
func (f *Field) Occupied(base int) bool {
	_, ok := f.At(base)
	return ok
}

// StepUp moves the next dugout batter to home plate.
func (f *Field) StepUp() *Batter {
	if len(f.dugout) == 0 {
		panic("baseball: empty dugout")
	}
	b := f.dugout[0]
	f.dugout = f.dugout[1:]
	f.runners = append(f.runners, Runner{Batter: b, Base: BaseHome})
	return b
}

// SendToDugout removes b from the bases and queues it at the end of the dugout.
func (f *Field) SendToDugout(b *Batter) {
	i := f.indexOf(b)
	if i < 0 {
		return
	}
	f.runners = append(f.runners[:i], f.runners[i+1:]...)
	f.dugout = append(f.dugout, b)
}

// Advance moves every occupant n bases. Anyone past third scores a run and,
// unless the movement came from a walk, earns batter an RBI. Scorers leave the
// bases after the whole pass. Returns the runners who scored.
func (f *Field) Advance(n int, batter *Batter, walk bool, sb *Scoreboard) []*Batter {
	var scored []*Batter
	for i := range f.runners {
		f.runners[i].Base += n
		if f.runners[i].Base > BaseThird {
			sb.Runs++
			if !walk {
				batter.rbis++
			}
			scored = append(scored, f.runners[i].Batter)
		}
	}
	for _, b := range scored {
		f.SendToDugout(b)
	}
	f.assertSingleOccupancy()
	return scored
}

// Walk puts batter on first. If first is empty nobody else moves; otherwise
// every occupant is forced up one base and any run scored earns no RBI.
func (f *Field) Walk(batter *Batter, sb *Scoreboard) []*Batter {
	if !f.Occupied(BaseFirst) {
		if i := f.indexOf(batter); i >= 0 {
			f.runners[i].Base = BaseFirst
		}
		return nil
	}
	return f.Advance(1, batter, true, sb)
}

// LeadRunner returns the occupant furthest along, excluding exclude.
func (f *Field) LeadRunner(exclude *Batter) (*Batter, bool) {
	f.assertSingleOccupancy()
	var lead *Runner
	for i := range f.runners {
		r := &f.runners[i]
		if r.Batter == exclude {
			continue
		}
		if lead == nil || r.Base > lead.Base {
			lead = r
		}
	}
	if lead == nil {
		return nil, false
	}
	return lead.Batter, true
}

// ClearBases sends every occupant back to the dugout.
func (f *Field) ClearBases() {
	for _, r := range f.runners {
		f.dugout = append(f.dugout, r.Batter)
	}
	f.runners = f.runners[:0]
}

func (f *Field) indexOf(b *Batter) int {
	for i, r := range f.runners {
		if r.Batter == b {
			return i
		}
	}
	return -1
}

// assertSingleOccupancy panics if two runners share a base index.
func (f *Field) assertSingleOccupancy() {
	var seen [BaseThird + 1]*Batter
	for _, r := range f.runners {
		if r.Base < 0 || r.Base > BaseThird {
			continue
		}
		if other := seen[r.Base]; other != nil {
			panic(fmt.Sprintf("baseball: %s and %s both on base %d", other.name, r.Batter.name, r.Base))
		}
		seen[r.Base] = r.Batter
	}
}

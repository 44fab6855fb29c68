// Package strategies holds the batting strategies used by the headless
// simulator. Importing it registers every strategy.
package strategies

import (
	"math/rand"

	"github.com/vovakirdan/tui-ballpark/internal/core"
	"github.com/vovakirdan/tui-ballpark/internal/registry"
)

func init() {
	registry.Register("always-swing", func() registry.Strategy { return &AlwaysSwing{} })
	registry.Register("patient", func() registry.Strategy { return &Patient{} })
	registry.Register("random", func() registry.Strategy { return NewRandom() })
}

// AlwaysSwing swings at every pitch.
type AlwaysSwing struct{}

func (s *AlwaysSwing) ID() string                  { return "always-swing" }
func (s *AlwaysSwing) Title() string               { return "Free Swinger" }
func (s *AlwaysSwing) Reset(core.RuntimeConfig)    {}
func (s *AlwaysSwing) Decide(_, _ int) core.Action { return core.ActionSwing }

// Patient takes pitches until the count forces a decision: it watches
// until two strikes, or until three balls give it a free look.
type Patient struct{}

func (s *Patient) ID() string               { return "patient" }
func (s *Patient) Title() string            { return "Work the Count" }
func (s *Patient) Reset(core.RuntimeConfig) {}

// Decide swings with two strikes unless a walk is one ball away.
func (s *Patient) Decide(balls, strikes int) core.Action {
	if strikes >= 2 && balls < 3 {
		return core.ActionSwing
	}
	return core.ActionWatch
}

// Random flips a coin for every pitch.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a Random strategy seeded from the clock until Reset.
func NewRandom() *Random {
	return &Random{rng: core.DefaultConfig().NewRand()}
}

func (s *Random) ID() string    { return "random" }
func (s *Random) Title() string { return "Coin Flip" }

// Reset reseeds the coin so simulations are reproducible.
func (s *Random) Reset(cfg core.RuntimeConfig) {
	s.rng = cfg.NewRand()
}

func (s *Random) Decide(_, _ int) core.Action {
	if s.rng.Intn(2) == 0 {
		return core.ActionSwing
	}
	return core.ActionWatch
}

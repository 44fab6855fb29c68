// Package baseball contains the at-bat and base-running rules of the simulation.
// It has no terminal or storage dependencies; randomness is injected through Rand
// so every outcome can be reproduced from a seed.
package baseball

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSwingMass is returned when a batter has no probability mass on any
	// swing outcome, which would make Swing undefined.
	ErrNoSwingMass = errors.New("baseball: batter has zero swing probability")

	// ErrNegativeOdds is returned when any outcome probability is below zero.
	ErrNegativeOdds = errors.New("baseball: negative outcome probability")
)

// Odds holds a batter's probability mass per plate-appearance outcome.
type Odds struct {
	Single     float64
	Double     float64
	Triple     float64
	HomeRun    float64
	Walk       float64
	Strikeout  float64
	HitByPitch float64
	OutInPlay  float64
}

// SwingTotal is the mass of every outcome reachable by swinging.
// Walk and hit-by-pitch only happen through the pitch count.
func (o Odds) SwingTotal() float64 {
	return o.Single + o.Double + o.Triple + o.HomeRun + o.OutInPlay + o.Strikeout
}

// Validate reports whether the odds can drive a swing.
func (o Odds) Validate() error {
	for _, v := range []float64{
		o.Single, o.Double, o.Triple, o.HomeRun,
		o.Walk, o.Strikeout, o.HitByPitch, o.OutInPlay,
	} {
		if v < 0 {
			return ErrNegativeOdds
		}
	}
	if o.SwingTotal() <= 0 {
		return ErrNoSwingMass
	}
	return nil
}

// BatterID identifies a batter within one game's roster.
type BatterID int

// Batter is a player with a fixed odds profile and counting stats that only
// outcome resolution may change.
type Batter struct {
	id   BatterID
	name string
	odds Odds

	atBats int
	hits   int
	rbis   int
}

// NewBatter validates the odds and creates a batter with empty stats.
func NewBatter(id BatterID, name string, odds Odds) (*Batter, error) {
	if err := odds.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", err, name)
	}
	return &Batter{id: id, name: name, odds: odds}, nil
}

// ID returns the roster identifier.
func (b *Batter) ID() BatterID { return b.id }

// Name returns the player's name.
func (b *Batter) Name() string { return b.name }

// Odds returns a copy of the outcome probabilities.
func (b *Batter) Odds() Odds { return b.odds }

// SwingTotal returns the batter's total swing mass.
func (b *Batter) SwingTotal() float64 { return b.odds.SwingTotal() }

// AtBats returns official at-bats (hits and outs, not walks).
func (b *Batter) AtBats() int { return b.atBats }

// Hits returns the number of hits.
func (b *Batter) Hits() int { return b.hits }

// RBIs returns runs batted in.
func (b *Batter) RBIs() int { return b.rbis }

// Line returns the batter's box score line.
func (b *Batter) Line() BattingLine {
	return BattingLine{Name: b.name, AtBats: b.atBats, Hits: b.hits, RBIs: b.rbis}
}

func (b *Batter) String() string { return b.name }

// BattingLine is one row of a box score.
type BattingLine struct {
	Name   string
	AtBats int
	Hits   int
	RBIs   int
}

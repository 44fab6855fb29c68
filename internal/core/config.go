package core

import (
	"math/rand"
	"time"
)

// RuntimeConfig contains configuration passed to a game at initialization.
// Platforms use it to size the field diagram and to seed the simulation.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for reproducible games
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time
	}
}

// ResolvedSeed returns the seed, substituting the clock for zero.
func (c RuntimeConfig) ResolvedSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// NewRand creates the game's random source from the resolved seed.
func (c RuntimeConfig) NewRand() *rand.Rand {
	return rand.New(rand.NewSource(c.ResolvedSeed()))
}

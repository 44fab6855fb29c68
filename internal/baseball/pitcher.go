package baseball

// Rand is the random source used by the simulation.
// *math/rand.Rand satisfies it.
type Rand interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// Pitch is the result of a thrown pitch.
type Pitch int

const (
	Ball Pitch = iota
	Strike
)

// String returns "Ball" or "Strike".
func (p Pitch) String() string {
	if p == Ball {
		return "Ball"
	}
	return "Strike"
}

// Pitcher throws pitches. It keeps no state between throws.
type Pitcher struct {
	name string
	rng  Rand
}

// NewPitcher creates a pitcher drawing from rng.
func NewPitcher(name string, rng Rand) *Pitcher {
	return &Pitcher{name: name, rng: rng}
}

// Name returns the pitcher's name.
func (p *Pitcher) Name() string { return p.name }

// ThrowPitch is a fair coin between Ball and Strike.
func (p *Pitcher) ThrowPitch() Pitch {
	if p.rng.Intn(2) == 0 {
		return Ball
	}
	return Strike
}

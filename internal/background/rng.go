package background

// Source supplies uniform random numbers in [0, 1)
type Source interface {
	Float64() float64
}

// RNG is a simple seeded random number generator (LCG). Sessions seeded
// with the same value animate identically.
type RNG struct {
	state uint64
}

// NewRNG creates a new RNG with the given seed
func NewRNG(seed uint64) *RNG {
	return &RNG{state: seed}
}

// Uint64 returns a pseudo-random uint64
func (r *RNG) Uint64() uint64 {
	// LCG parameters from Numerical Recipes
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Float64 returns a pseudo-random float64 in [0, 1)
func (r *RNG) Float64() float64 {
	return float64(r.Uint64()>>11) / (1 << 53)
}

// between returns a value in [min, min+span)
func between(src Source, min, span float64) float64 {
	return min + src.Float64()*span
}

// centered returns a value in [-span/2, span/2)
func centered(src Source, span float64) float64 {
	return (src.Float64() - 0.5) * span
}

func pick[T any](src Source, items []T) T {
	i := int(src.Float64() * float64(len(items)))
	if i >= len(items) {
		i = len(items) - 1
	}
	return items[i]
}

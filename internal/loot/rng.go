package loot

import "math/rand/v2"

// RandomSource abstracts every random draw made by the loot engine,
// so tests and simulations can replay exact sequences.
type RandomSource interface {
	Float64() float64 // [0, 1)
	IntN(n int) int   // [0, n), n > 0
}

type globalRNG struct{}

func (globalRNG) Float64() float64 { return rand.Float64() }
func (globalRNG) IntN(n int) int   { return rand.IntN(n) }

// DefaultRNG returns the process-wide math/rand/v2 source.
func DefaultRNG() RandomSource { return globalRNG{} }

type seededRNG struct{ r *rand.Rand }

// NewSeededRNG returns a reproducible source (PCG) for simulations and tests.
func NewSeededRNG(seed uint64) RandomSource {
	return &seededRNG{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seededRNG) Float64() float64 { return s.r.Float64() }
func (s *seededRNG) IntN(n int) int   { return s.r.IntN(n) }

// rollChance returns a uniform percentage in [0, 100).
func rollChance(rng RandomSource) float64 {
	return rng.Float64() * 100
}

// urand returns a uniform integer in [lo, hi]; lo when hi <= lo.
func urand(rng RandomSource, lo, hi uint32) uint32 {
	if hi <= lo {
		return lo
	}
	return lo + uint32(rng.IntN(int(hi-lo)+1))
}

package nn

import (
	"math/rand"
)

// Uniform draws a weight from U(-bound, bound).
func Uniform(rng *rand.Rand, bound float64) float64 {
	//nolint:gosec // Using math/rand for weight initialization (not security-critical)
	return (rng.Float64()*2.0 - 1.0) * bound
}

// NewRand returns a deterministic source for weight initialization.
func NewRand(seed int64) *rand.Rand {
	//nolint:gosec // Using math/rand for weight initialization (not security-critical)
	return rand.New(rand.NewSource(seed))
}

package common

import (
	"math/rand"
	"time"
)

// ResolveSeed returns seed unchanged if non-zero, otherwise derives a fresh
// seed from the current time. The resolved seed is always the one actually
// used for generation, so callers can log it for reproducibility.
func ResolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

// NewRand builds a *rand.Rand from a resolved seed. Generation code should
// thread the returned source explicitly rather than reaching for a
// package-level RNG, so that a seed fully determines the run.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

package generator

import (
	"math/rand"
	"time"
)

// Rand is the randomness the generator draws from. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// NewRand returns a seeded source. Seed 0 picks a time-based seed, so two
// runs produce different datasets.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

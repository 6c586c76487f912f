package common

import (
	"math/rand"
	"time"
)

// RNG wraps a seeded generator so runs can be replayed. A zero seed uses the
// current time.
type RNG struct {
	rng  *rand.Rand
	seed int64
}

func NewRNG(seed int64) *RNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RNG{rng: rand.New(rand.NewSource(seed)), seed: seed}
}

func (r *RNG) Seed() int64 { return r.seed }

// Intn returns a value in [0, n). Non-positive n yields 0.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.rng.Intn(n)
}

// Between returns an int in [lo, hi].
func (r *RNG) Between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.rng.Intn(hi-lo+1)
}

func (r *RNG) Float64() float64 {
	return r.rng.Float64()
}

// Range returns a float64 in [lo, hi). It returns lo when hi <= lo.
func (r *RNG) Range(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.rng.Float64()*(hi-lo)
}

// Percent reports true with probability chance/100.
func (r *RNG) Percent(chance int) bool {
	if chance <= 0 {
		return false
	}
	return r.rng.Intn(100) < chance
}

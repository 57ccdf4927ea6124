package main

import (
	"math"
	"math/rand/v2"
)

// Rand is a deterministic random number generator. The ritual takes all of
// its randomness from one Rand seeded from the playthrough, so that replaying
// the same inputs produces the same frames.
// Rand is a plain value: copying it gives a second generator in exactly the
// same state, which is handy for tests and for forking a playthrough.
type Rand struct {
	pcg rand.PCG
}

func NewRand(seed int64) (r Rand) {
	r.pcg.Seed(uint64(seed), 0x9e3779b97f4a7c15)
	return
}

// RInt returns a number in [min, max], both ends included.
func (r *Rand) RInt(min int64, max int64) int64 {
	if max <= min {
		return min
	}
	n := uint64(max - min + 1)
	return min + int64(r.pcg.Uint64()%n)
}

// RFloat returns a number in [min, max).
func (r *Rand) RFloat(min float64, max float64) float64 {
	// 53 random bits give every float64 in [0, 1) with equal spacing.
	f := float64(r.pcg.Uint64()>>11) / (1 << 53)
	return min + f*(max-min)
}

// RIndex returns a random index for a collection of length n.
func (r *Rand) RIndex(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.RInt(0, int64(n-1)))
}

// RChance returns true with probability p.
func (r *Rand) RChance(p float64) bool {
	return r.RFloat(0, 1) < p
}

// RAngle returns an angle in [0, 2*pi).
func (r *Rand) RAngle() float64 {
	return r.RFloat(0, 2*math.Pi)
}

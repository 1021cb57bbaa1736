// Package randsrc provides the one injectable random source every Search
// needs (problem.RNG), so callers never reach for the global math/rand
// functions directly and every run can be seeded for reproducibility.
package randsrc

import "math/rand/v2"

// New builds a *rand.Rand seeded with seed, deterministic across runs with
// the same seed. It satisfies problem.RNG (Float64, IntN) structurally.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// NewUnseeded builds a *rand.Rand seeded from the runtime's default random
// source, for callers that do not need reproducibility.
func NewUnseeded() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Package randvec generates reproducible random inputs for tests, benchmarks
// and the benchmark command.
package randvec

import (
	"math/rand/v2"

	"github.com/samber/lo"
)

// Uint32s returns n uniformly distributed uint32 values. The generator is
// seeded the same way on every call, so equal n gives equal slices.
func Uint32s(n int) []uint32 {
	rng := rand.New(rand.NewPCG(0, 0))
	return lo.Times(n, func(int) uint32 {
		return rng.Uint32()
	})
}

// Ints returns n values in [0, limit) from a generator seeded with seed.
func Ints(n, limit int, seed uint64) []int {
	rng := rand.New(rand.NewPCG(seed, seed))
	return lo.Times(n, func(int) int {
		return rng.IntN(limit)
	})
}

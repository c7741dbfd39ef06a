// Package sampling - RNG policy.
//
// All randomness is caller-scoped: a single *rand.Rand per call, seeded
// explicitly. No global seeding, no hidden time-based sources when a seed
// is supplied.
//
// Concurrency: math/rand.Rand is not goroutine-safe; every call creates
// its own generator, so concurrent calls never share one.
package sampling

import (
	"math/rand"
	"sort"
	"time"
)

// rngFromSeed returns a deterministic *rand.Rand for seed ≥ 0 and an
// entropy-seeded one for negative seeds. Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	if seed < 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// drawIndex samples one index from the distribution described by a
// cumulative weight vector via inverse-CDF binary search.
// cum must be non-decreasing with positive final total.
//
// The predicate cum[i] > u (strict) guarantees that zero-weight entries,
// whose cumulative value ties their predecessor's, are never selected.
// Complexity: O(log n).
func drawIndex(rng *rand.Rand, cum []float64) int {
	u := rng.Float64() * cum[len(cum)-1]
	idx := sort.Search(len(cum), func(i int) bool { return cum[i] > u })
	if idx == len(cum) {
		idx = len(cum) - 1
	}
	return idx
}

// cumulative returns the running sums of w.
func cumulative(w []float64) []float64 {
	cum := make([]float64, len(w))
	var s float64
	for i, v := range w {
		s += v
		cum[i] = s
	}
	return cum
}

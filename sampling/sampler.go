package sampling

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/cellflow/core"
)

// Sample draws nSamples (row, column) index pairs from the coupling of
// the (start, end) sub-problem.
//
// Returns the distinct sampled rows in ascending order and, aligned with
// them, the column indices drawn from each row's conditional distribution
// over the target population — one column per time the row was sampled,
// so Σ len(cols[i]) == nSamples.
//
// Preconditions and validation (in order):
//  1. ps must be non-nil (core.ErrNilProblemSet).
//  2. nSamples > 0 (ErrBadSampleCount), Options.BatchSize > 0
//     (ErrBadBatchSize).
//  3. The (start, end) sub-problem must exist (core.ErrPairNotFound).
//  4. With AccountForUnbalancedness: growth rates must be present
//     (core.ErrNoGrowthRates) and the interpolation parameter must lie in
//     [0, 1] (ErrBadInterpolationParam).
//
// Complexity: O(nSamples·log n) row draws + ⌈distinct/BatchSize⌉ batched
// Apply calls.
func Sample(ps *core.ProblemSet, start, end core.Time, nSamples int, opts Options) (rows []int, cols [][]int, err error) {
	// 1) Validate inputs.
	if ps == nil {
		return nil, nil, core.ErrNilProblemSet
	}
	if nSamples <= 0 {
		return nil, nil, fmt.Errorf("%w: got %d", ErrBadSampleCount, nSamples)
	}
	if opts.BatchSize <= 0 {
		return nil, nil, fmt.Errorf("%w: got %d", ErrBadBatchSize, opts.BatchSize)
	}
	prob, err := ps.Problem(start, end)
	if err != nil {
		return nil, nil, err
	}
	out := prob.Solution
	n, m := out.Shape()

	// 2) Row-selection weights: uniform, or growth^(1-τ) when accounting
	// for unbalancedness.
	rowWeight := make([]float64, n)
	for i := range rowWeight {
		rowWeight[i] = 1
	}
	if opts.AccountForUnbalancedness {
		tau := opts.InterpolationParameter
		if tau < 0 || tau > 1 {
			return nil, nil, fmt.Errorf("%w: got %g", ErrBadInterpolationParam, tau)
		}
		growth := prob.GrowthRates
		if growth == nil {
			return nil, nil, fmt.Errorf("%w: interval (%v, %v)", core.ErrNoGrowthRates, start, end)
		}
		for i, g := range growth {
			rowWeight[i] = math.Pow(g, 1-tau)
		}
	}

	// 3) Draw rows with replacement.
	rng := rngFromSeed(opts.Seed)
	rowCum := cumulative(rowWeight)
	counts := make(map[int]int, nSamples)
	for s := 0; s < nSamples; s++ {
		counts[drawIndex(rng, rowCum)]++
	}
	rows = make([]int, 0, len(counts))
	for r := range counts {
		rows = append(rows, r)
	}
	// Ascending order fixes the rng consumption order independently of the
	// batch boundaries below.
	sort.Ints(rows)

	// 4) Recover each distinct row's target-conditional distribution by
	// pushing batched one-hot indicators, then draw its columns.
	cols = make([][]int, len(rows))
	for lo := 0; lo < len(rows); lo += opts.BatchSize {
		hi := lo + opts.BatchSize
		if hi > len(rows) {
			hi = len(rows)
		}
		indicators := make([][]float64, hi-lo)
		for k, r := range rows[lo:hi] {
			onehot := make([]float64, n)
			onehot[r] = 1
			indicators[k] = onehot
		}
		conds, err := out.ApplyBatch(indicators, true)
		if err != nil {
			return nil, nil, err
		}
		for k, cond := range conds {
			r := rows[lo+k]
			condCum := cumulative(cond)
			if condCum[m-1] <= 0 {
				return nil, nil, fmt.Errorf("%w: row %d", ErrEmptyConditional, r)
			}
			drawn := make([]int, counts[r])
			for c := range drawn {
				drawn[c] = drawIndex(rng, condCum)
			}
			cols[lo+k] = drawn
		}
	}
	return rows, cols, nil
}

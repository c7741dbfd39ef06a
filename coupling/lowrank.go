package coupling

import (
	"fmt"

	"github.com/katalvlaran/cellflow/core"
)

// LowRankOutput is a factored transport coupling P = A·Bᵀ that is never
// materialized. A is n×r, B is m×r; transports go through the rank-r
// bottleneck in O((n+m)·r) instead of O(n·m).
type LowRankOutput struct {
	a, b *core.Dense // factors, shared with the caller
	rank int
}

// NewLowRankOutput wraps the factors of a low-rank plan.
// Stage 1 (Validate): non-nil factors, matching inner rank.
// Stage 2 (Finalize): wrap without copying.
func NewLowRankOutput(a, b *core.Dense) (*LowRankOutput, error) {
	if a == nil || b == nil {
		return nil, ErrNilPlan
	}
	if a.Cols() != b.Cols() {
		return nil, fmt.Errorf("%w: factor ranks %d and %d differ",
			core.ErrDimensionMismatch, a.Cols(), b.Cols())
	}
	return &LowRankOutput{a: a, b: b, rank: a.Cols()}, nil
}

// Rank returns the factorization rank r.
func (o *LowRankOutput) Rank() int { return o.rank }

// Shape returns (n, m). Complexity: O(1).
func (o *LowRankOutput) Shape() (int, int) {
	return o.a.Rows(), o.b.Rows()
}

// Apply transports x through the factored plan.
// forward: y = B·(Aᵀx); backward: y = A·(Bᵀx).
// Complexity: O((n+m)·r); the n×m plan is never formed.
func (o *LowRankOutput) Apply(x []float64, forward bool) ([]float64, error) {
	n, m := o.Shape()
	if err := checkApplyLen(len(x), n, m, forward); err != nil {
		return nil, err
	}
	in, out := o.a, o.b
	if !forward {
		in, out = o.b, o.a
	}

	// t = inᵀ·x, length r.
	t := make([]float64, o.rank)
	for i := 0; i < in.Rows(); i++ {
		row, _ := in.Row(i)
		xi := x[i]
		if xi == 0 {
			continue
		}
		for k, v := range row {
			t[k] += xi * v
		}
	}

	// y = out·t.
	y := make([]float64, out.Rows())
	for j := 0; j < out.Rows(); j++ {
		row, _ := out.Row(j)
		var s float64
		for k, v := range row {
			s += v * t[k]
		}
		y[j] = s
	}
	return y, nil
}

// ApplyBatch transports each vector of a batch-first set through the
// factored plan.
func (o *LowRankOutput) ApplyBatch(xs [][]float64, forward bool) ([][]float64, error) {
	return applyBatch(o, xs, forward)
}

// Materialized always reports false for a factored plan.
func (o *LowRankOutput) Materialized() bool { return false }

// Matrix reports core.ErrNotMaterialized; the factored plan is opaque.
func (o *LowRankOutput) Matrix() (*core.Dense, error) {
	return nil, core.ErrNotMaterialized
}

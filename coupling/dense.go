package coupling

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cellflow/core"
)

// ErrNilPlan indicates that a nil plan or factor matrix was supplied.
var ErrNilPlan = errors.New("coupling: plan matrix is nil")

// MatrixOutput is a dense, materialized transport coupling.
type MatrixOutput struct {
	plan *core.Dense
}

// NewMatrixOutput wraps a dense n×m transport plan. The plan is not
// copied; it must not be mutated afterwards.
func NewMatrixOutput(plan *core.Dense) (*MatrixOutput, error) {
	if plan == nil {
		return nil, ErrNilPlan
	}
	return &MatrixOutput{plan: plan}, nil
}

// Shape returns (n, m). Complexity: O(1).
func (o *MatrixOutput) Shape() (int, int) {
	return o.plan.Rows(), o.plan.Cols()
}

// Apply transports x through the plan.
// forward: y_j = Σ_i x_i·P_ij (len(x)=n → len(y)=m).
// backward: y_i = Σ_j x_j·P_ij (len(x)=m → len(y)=n).
// Complexity: O(n·m).
func (o *MatrixOutput) Apply(x []float64, forward bool) ([]float64, error) {
	n, m := o.Shape()
	if err := checkApplyLen(len(x), n, m, forward); err != nil {
		return nil, err
	}
	if forward {
		y := make([]float64, m)
		for i := 0; i < n; i++ {
			row, _ := o.plan.Row(i)
			xi := x[i]
			if xi == 0 {
				continue
			}
			for j, p := range row {
				y[j] += xi * p
			}
		}
		return y, nil
	}
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		row, _ := o.plan.Row(i)
		var s float64
		for j, p := range row {
			s += x[j] * p
		}
		y[i] = s
	}
	return y, nil
}

// ApplyBatch transports each vector of a batch-first set through the plan.
func (o *MatrixOutput) ApplyBatch(xs [][]float64, forward bool) ([][]float64, error) {
	return applyBatch(o, xs, forward)
}

// Materialized always reports true for a dense plan.
func (o *MatrixOutput) Materialized() bool { return true }

// Matrix returns the underlying plan (shared, not copied).
func (o *MatrixOutput) Matrix() (*core.Dense, error) { return o.plan, nil }

// checkApplyLen validates the input length of Apply against the relevant
// side of the plan shape.
func checkApplyLen(got, n, m int, forward bool) error {
	want := n
	if !forward {
		want = m
	}
	if got != want {
		return fmt.Errorf("%w: vector has length %d, coupling side has %d",
			core.ErrDimensionMismatch, got, want)
	}
	return nil
}

// applyBatch implements ApplyBatch on top of Apply, shared by all
// implementations. Batch boundaries never change results: row k of the
// output is exactly Apply(xs[k], forward).
func applyBatch(o core.Output, xs [][]float64, forward bool) ([][]float64, error) {
	out := make([][]float64, len(xs))
	for k, x := range xs {
		y, err := o.Apply(x, forward)
		if err != nil {
			return nil, err
		}
		out[k] = y
	}
	return out, nil
}

// RowMarginals returns the plan row sums P·1 (the source-side marginal),
// computed through Apply so implicit plans need no materialization.
// Complexity: one backward Apply.
func RowMarginals(o core.Output) ([]float64, error) {
	_, m := o.Shape()
	return o.Apply(ones(m), false)
}

// ColMarginals returns the plan column sums 1ᵀP (the target-side
// marginal). Complexity: one forward Apply.
func ColMarginals(o core.Output) ([]float64, error) {
	n, _ := o.Shape()
	return o.Apply(ones(n), true)
}

// ones returns a length-n vector of ones.
func ones(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = 1
	}
	return v
}

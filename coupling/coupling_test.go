package coupling_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cellflow/core"
	"github.com/katalvlaran/cellflow/coupling"
)

// plan23 is a small 2×3 transport plan used across the tests.
//
//	0.1 0.2 0.3   row sums: 0.6, 0.4
//	0.1 0.1 0.2   col sums: 0.2, 0.3, 0.5
func plan23(t *testing.T) *core.Dense {
	t.Helper()
	m, err := core.NewDenseFromRows([][]float64{
		{0.1, 0.2, 0.3},
		{0.1, 0.1, 0.2},
	})
	require.NoError(t, err)
	return m
}

// TestMatrixOutput_ApplyForward verifies the push direction y = xᵀP.
func TestMatrixOutput_ApplyForward(t *testing.T) {
	out, err := coupling.NewMatrixOutput(plan23(t))
	require.NoError(t, err)

	y, err := out.Apply([]float64{1, 2}, true)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.3, 0.4, 0.7}, y, 1e-12)
}

// TestMatrixOutput_ApplyBackward verifies the pull direction y = Px.
func TestMatrixOutput_ApplyBackward(t *testing.T) {
	out, err := coupling.NewMatrixOutput(plan23(t))
	require.NoError(t, err)

	y, err := out.Apply([]float64{1, 1, 1}, false)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.6, 0.4}, y, 1e-12)
}

// TestMatrixOutput_DimensionMismatch verifies input length validation on
// both directions.
func TestMatrixOutput_DimensionMismatch(t *testing.T) {
	out, err := coupling.NewMatrixOutput(plan23(t))
	require.NoError(t, err)

	_, err = out.Apply([]float64{1, 2, 3}, true)
	assert.ErrorIs(t, err, core.ErrDimensionMismatch, "forward expects source length")
	_, err = out.Apply([]float64{1, 2}, false)
	assert.ErrorIs(t, err, core.ErrDimensionMismatch, "backward expects target length")
}

// TestMatrixOutput_Materialized verifies matrix access on a dense plan.
func TestMatrixOutput_Materialized(t *testing.T) {
	plan := plan23(t)
	out, err := coupling.NewMatrixOutput(plan)
	require.NoError(t, err)

	assert.True(t, out.Materialized())
	got, err := out.Matrix()
	require.NoError(t, err)
	assert.Same(t, plan, got)
}

// TestMarginals verifies the row/column marginal helpers against the
// known sums of plan23.
func TestMarginals(t *testing.T) {
	out, err := coupling.NewMatrixOutput(plan23(t))
	require.NoError(t, err)

	rows, err := coupling.RowMarginals(out)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.6, 0.4}, rows, 1e-12)

	cols, err := coupling.ColMarginals(out)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.2, 0.3, 0.5}, cols, 1e-12)
}

// TestLowRankOutput_MatchesDense verifies that a factored plan transports
// identically to its materialized product A·Bᵀ in both directions.
func TestLowRankOutput_MatchesDense(t *testing.T) {
	a, err := core.NewDenseFromRows([][]float64{
		{0.5, 0.1},
		{0.2, 0.4},
		{0.3, 0.3},
	})
	require.NoError(t, err)
	b, err := core.NewDenseFromRows([][]float64{
		{0.6, 0.2},
		{0.4, 0.8},
	})
	require.NoError(t, err)

	lr, err := coupling.NewLowRankOutput(a, b)
	require.NoError(t, err)
	require.Equal(t, 2, lr.Rank())

	// Materialize A·Bᵀ by hand for the reference dense output.
	prod, err := core.NewDense(3, 2)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		ar, _ := a.Row(i)
		for j := 0; j < 2; j++ {
			br, _ := b.Row(j)
			require.NoError(t, prod.Set(i, j, ar[0]*br[0]+ar[1]*br[1]))
		}
	}
	dense, err := coupling.NewMatrixOutput(prod)
	require.NoError(t, err)

	x := []float64{0.2, 0.5, 0.3}
	wantF, err := dense.Apply(x, true)
	require.NoError(t, err)
	gotF, err := lr.Apply(x, true)
	require.NoError(t, err)
	assert.InDeltaSlice(t, wantF, gotF, 1e-12)

	y := []float64{0.7, 0.3}
	wantB, err := dense.Apply(y, false)
	require.NoError(t, err)
	gotB, err := lr.Apply(y, false)
	require.NoError(t, err)
	assert.InDeltaSlice(t, wantB, gotB, 1e-12)
}

// TestLowRankOutput_NotMaterialized verifies the implicit-plan contract.
func TestLowRankOutput_NotMaterialized(t *testing.T) {
	a, _ := core.NewDense(3, 2)
	b, _ := core.NewDense(4, 2)
	lr, err := coupling.NewLowRankOutput(a, b)
	require.NoError(t, err)

	assert.False(t, lr.Materialized())
	_, err = lr.Matrix()
	assert.ErrorIs(t, err, core.ErrNotMaterialized)

	n, m := lr.Shape()
	assert.Equal(t, 3, n)
	assert.Equal(t, 4, m)
}

// TestLowRankOutput_RankMismatch verifies factor validation.
func TestLowRankOutput_RankMismatch(t *testing.T) {
	a, _ := core.NewDense(3, 2)
	b, _ := core.NewDense(4, 3)
	_, err := coupling.NewLowRankOutput(a, b)
	assert.ErrorIs(t, err, core.ErrDimensionMismatch)

	_, err = coupling.NewLowRankOutput(nil, b)
	assert.ErrorIs(t, err, coupling.ErrNilPlan)
}

// TestApplyBatch verifies that batch rows match individual Apply calls.
func TestApplyBatch(t *testing.T) {
	out, err := coupling.NewMatrixOutput(plan23(t))
	require.NoError(t, err)

	xs := [][]float64{{1, 0}, {0, 1}, {0.5, 0.5}}
	batch, err := out.ApplyBatch(xs, true)
	require.NoError(t, err)
	require.Len(t, batch, 3)
	for k, x := range xs {
		single, err := out.Apply(x, true)
		require.NoError(t, err)
		assert.InDeltaSlice(t, single, batch[k], 1e-12, "batch row %d", k)
	}
}

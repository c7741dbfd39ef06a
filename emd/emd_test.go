package emd_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cellflow/core"
	"github.com/katalvlaran/cellflow/emd"
)

// dense wraps NewDenseFromRows for test fixtures.
func dense(t *testing.T, rows [][]float64) *core.Dense {
	t.Helper()
	m, err := core.NewDenseFromRows(rows)
	require.NoError(t, err)
	return m
}

// TestCostMatrix verifies squared-Euclidean entries and the feature-space
// guard.
func TestCostMatrix(t *testing.T) {
	x := dense(t, [][]float64{{0, 0}, {1, 1}})
	y := dense(t, [][]float64{{3, 4}})

	cost, err := emd.CostMatrix(x, y)
	require.NoError(t, err)
	v, _ := cost.At(0, 0)
	assert.InDelta(t, 25.0, v, 1e-12, "3² + 4²")
	v, _ = cost.At(1, 0)
	assert.InDelta(t, 13.0, v, 1e-12, "2² + 3²")

	_, err = emd.CostMatrix(x, dense(t, [][]float64{{1, 2, 3}}))
	assert.ErrorIs(t, err, core.ErrDimensionMismatch)
	_, err = emd.CostMatrix(nil, y)
	assert.ErrorIs(t, err, core.ErrNilDataset)
}

// TestEMD_RequiresPivot verifies optimality on a cost matrix whose
// northwest-corner start is suboptimal: the solver must pivot off the
// diagonal to reach cost zero.
func TestEMD_RequiresPivot(t *testing.T) {
	cost := dense(t, [][]float64{
		{1, 0},
		{0, 1},
	})
	total, err := emd.EMD(nil, nil, cost, emd.DefaultOptions())
	require.NoError(t, err)
	assert.InDelta(t, 0.0, total, 1e-9, "anti-diagonal routing is free")
}

// TestEMD_WeightValidation exercises the weight guards.
func TestEMD_WeightValidation(t *testing.T) {
	cost := dense(t, [][]float64{{0, 1}, {1, 0}})

	_, err := emd.EMD([]float64{0.5, -0.5}, nil, cost, emd.DefaultOptions())
	assert.ErrorIs(t, err, emd.ErrNegativeWeight)

	_, err = emd.EMD([]float64{0, 0}, nil, cost, emd.DefaultOptions())
	assert.ErrorIs(t, err, emd.ErrZeroTotalMass)

	_, err = emd.EMD([]float64{1, 1, 1}, nil, cost, emd.DefaultOptions())
	assert.ErrorIs(t, err, core.ErrDimensionMismatch)

	_, err = emd.EMD(nil, nil, nil, emd.DefaultOptions())
	assert.ErrorIs(t, err, emd.ErrNilCost)
}

// TestEMD_WeightRenormalization verifies that weight scale does not change
// the result: totals are normalized to 1 on both sides.
func TestEMD_WeightRenormalization(t *testing.T) {
	cost := dense(t, [][]float64{{0, 4}, {4, 0}})

	want, err := emd.EMD([]float64{0.5, 0.5}, []float64{0.5, 0.5}, cost, emd.DefaultOptions())
	require.NoError(t, err)
	got, err := emd.EMD([]float64{10, 10}, []float64{3, 3}, cost, emd.DefaultOptions())
	require.NoError(t, err)
	assert.InDelta(t, want, got, 1e-12)
}

// TestDistance_SelfIsZero verifies d(X, X) ≈ 0.
func TestDistance_SelfIsZero(t *testing.T) {
	x := dense(t, [][]float64{{0, 1}, {2, 3}, {4, 0}})
	d, err := emd.Distance(x, x, nil, nil, emd.DefaultOptions())
	require.NoError(t, err)
	assert.InDelta(t, 0.0, d, 1e-6)
}

// TestDistance_Symmetry verifies d(X, Y) = d(Y, X).
func TestDistance_Symmetry(t *testing.T) {
	x := dense(t, [][]float64{{0, 0}, {1, 2}, {3, 1}})
	y := dense(t, [][]float64{{2, 2}, {4, 0}})

	dxy, err := emd.Distance(x, y, nil, nil, emd.DefaultOptions())
	require.NoError(t, err)
	dyx, err := emd.Distance(y, x, nil, nil, emd.DefaultOptions())
	require.NoError(t, err)
	assert.InDelta(t, dxy, dyx, 1e-9)
	assert.Greater(t, dxy, 0.0)
}

// TestDistance_UnitShift pins the 2-Wasserstein distance of a rigid unit
// translation: every point moves by exactly 1, so the distance is 1.
func TestDistance_UnitShift(t *testing.T) {
	x := dense(t, [][]float64{{0}, {1}})
	y := dense(t, [][]float64{{1}, {2}})

	d, err := emd.Distance(x, y, nil, nil, emd.DefaultOptions())
	require.NoError(t, err)
	assert.InDelta(t, 1.0, d, 1e-9)
}

// TestDistance_PointMasses verifies the two-singleton case: the distance
// is the Euclidean distance between the points.
func TestDistance_PointMasses(t *testing.T) {
	x := dense(t, [][]float64{{0, 0}})
	y := dense(t, [][]float64{{3, 4}})

	d, err := emd.Distance(x, y, nil, nil, emd.DefaultOptions())
	require.NoError(t, err)
	assert.InDelta(t, 5.0, d, 1e-9)
}

// TestDistance_ManyToOne verifies collapse onto a single target point:
// cost is the mean squared distance, and the result its square root.
func TestDistance_ManyToOne(t *testing.T) {
	x := dense(t, [][]float64{{0}, {1}, {2}})
	y := dense(t, [][]float64{{1}})

	d, err := emd.Distance(x, y, nil, nil, emd.DefaultOptions())
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(2.0/3.0), d, 1e-9)
}

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cellflow/core"
)

// TestNewCategorical_DerivedCategories verifies that the category set is
// the sorted distinct non-empty values when none are declared.
func TestNewCategorical_DerivedCategories(t *testing.T) {
	col := core.NewCategorical([]string{"B", "A", "B", "", "C"})
	assert.Equal(t, []string{"A", "B", "C"}, col.Categories)
	assert.True(t, col.Categorical)
	assert.True(t, col.HasMissing(), "empty value counts as missing")
}

// TestNewCategorical_ExplicitCategories verifies that declared categories
// may include empty ones.
func TestNewCategorical_ExplicitCategories(t *testing.T) {
	col := core.NewCategorical([]string{"A", "A"}, "A", "B")
	assert.True(t, col.HasCategory("B"), "declared category with zero members")
	assert.Equal(t, 0, col.Count("B"))
	assert.Equal(t, 2, col.Count("A"))
}

// TestColumn_MaskObserved verifies membership masks and observed-value
// ordering.
func TestColumn_MaskObserved(t *testing.T) {
	col := core.NewCategorical([]string{"y", "x", "y"})
	assert.Equal(t, []bool{true, false, true}, col.Mask("y"))
	assert.Equal(t, []string{"y", "x"}, col.Observed(), "first-appearance order")
}

// TestDataset_ObsValidation verifies column length checks and lookups.
func TestDataset_ObsValidation(t *testing.T) {
	x, err := core.NewDenseFromRows([][]float64{{0, 0}, {1, 1}, {2, 2}})
	require.NoError(t, err)
	ds, err := core.NewDataset(x)
	require.NoError(t, err)
	require.Equal(t, 3, ds.N())
	require.Equal(t, 2, ds.Dim())

	err = ds.SetObs("type", core.NewCategorical([]string{"A", "B"}))
	assert.ErrorIs(t, err, core.ErrDimensionMismatch, "short column must error")

	require.NoError(t, ds.SetObs("type", core.NewCategorical([]string{"A", "B", "A"})))
	col, err := ds.Col("type")
	require.NoError(t, err)
	assert.Equal(t, 2, col.Count("A"))

	_, err = ds.Col("missing")
	assert.ErrorIs(t, err, core.ErrColumnNotFound)
}

// TestNewDataset_Nil verifies the nil guard.
func TestNewDataset_Nil(t *testing.T) {
	_, err := core.NewDataset(nil)
	assert.ErrorIs(t, err, core.ErrNilDataset)
}

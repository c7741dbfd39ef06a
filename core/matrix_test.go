package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cellflow/core"
)

// TestNewDense_InvalidDimensions verifies that non-positive dimensions
// are rejected with ErrInvalidDimensions.
func TestNewDense_InvalidDimensions(t *testing.T) {
	_, err := core.NewDense(0, 3)
	assert.ErrorIs(t, err, core.ErrInvalidDimensions, "zero rows must error")

	_, err = core.NewDense(3, -1)
	assert.ErrorIs(t, err, core.ErrInvalidDimensions, "negative cols must error")
}

// TestDense_AtSetBounds verifies element access and bounds checking.
func TestDense_AtSetBounds(t *testing.T) {
	m, err := core.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 4.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 4.5, v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, core.ErrIndexOutOfBounds, "row past the end must error")
	err = m.Set(0, 3, 1)
	assert.ErrorIs(t, err, core.ErrIndexOutOfBounds, "col past the end must error")
}

// TestNewDenseFromRows verifies copy semantics and ragged-row rejection.
func TestNewDenseFromRows(t *testing.T) {
	m, err := core.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	v, _ := m.At(1, 0)
	assert.Equal(t, 3.0, v)

	_, err = core.NewDenseFromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, core.ErrDimensionMismatch, "ragged rows must error")

	_, err = core.NewDenseFromRows(nil)
	assert.ErrorIs(t, err, core.ErrInvalidDimensions, "empty input must error")
}

// TestDense_RowIsView verifies that Row exposes the backing storage.
func TestDense_RowIsView(t *testing.T) {
	m, err := core.NewDense(2, 2)
	require.NoError(t, err)

	row, err := m.Row(0)
	require.NoError(t, err)
	row[1] = 7

	v, _ := m.At(0, 1)
	assert.Equal(t, 7.0, v, "mutating the row view must reflect in the matrix")
}

// TestDense_SubRows verifies row selection, copying and bounds.
func TestDense_SubRows(t *testing.T) {
	m, err := core.NewDenseFromRows([][]float64{{1, 1}, {2, 2}, {3, 3}})
	require.NoError(t, err)

	sub, err := m.SubRows([]int{2, 0})
	require.NoError(t, err)
	require.Equal(t, 2, sub.Rows())
	v, _ := sub.At(0, 0)
	assert.Equal(t, 3.0, v)

	// SubRows copies: mutating the submatrix leaves the base untouched.
	require.NoError(t, sub.Set(0, 0, 99))
	v, _ = m.At(2, 0)
	assert.Equal(t, 3.0, v)

	_, err = m.SubRows([]int{5})
	assert.ErrorIs(t, err, core.ErrIndexOutOfBounds)
	_, err = m.SubRows(nil)
	assert.ErrorIs(t, err, core.ErrInvalidDimensions)
}

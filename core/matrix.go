package core

import "fmt"

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values, used for point clouds
// (n cells × d features), transport matrices and transition tables.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrInvalidDimensions.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Allocate flat slice
	data := make([]float64, rows*cols)

	// Return initialized Dense
	return &Dense{r: rows, c: cols, data: data}, nil
}

// NewDenseFromRows creates a Dense matrix by copying the given row slices.
// All rows must have identical, positive length; returns
// ErrInvalidDimensions for an empty input and ErrDimensionMismatch for
// ragged rows. Complexity: O(r*c).
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	c := len(rows[0])
	m, err := NewDense(len(rows), c)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrDimensionMismatch, i, len(row), c)
		}
		copy(m.data[i*c:(i+1)*c], row)
	}
	return m, nil
}

// Rows returns the number of rows in the matrix. Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r
}

// Cols returns the number of columns in the matrix. Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c
}

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfBounds.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrIndexOutOfBounds
	}
	return row*m.c + col, nil
}

// At returns the element at (row, col), or ErrIndexOutOfBounds.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf("At", row, col, err)
	}
	return m.data[idx], nil
}

// Set stores v at (row, col), or returns ErrIndexOutOfBounds.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf("Set", row, col, err)
	}
	m.data[idx] = v
	return nil
}

// Row returns the backing slice of one row, without copying. Mutations
// through the returned slice are visible in the matrix; callers that need
// an independent lifetime must copy. Complexity: O(1).
func (m *Dense) Row(row int) ([]float64, error) {
	if row < 0 || row >= m.r {
		return nil, denseErrorf("Row", row, 0, ErrIndexOutOfBounds)
	}
	return m.data[row*m.c : (row+1)*m.c], nil
}

// Clone returns a deep copy of the matrix. Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return &Dense{r: m.r, c: m.c, data: data}
}

// SubRows materializes the submatrix made of the selected rows (copy).
// Returns ErrIndexOutOfBounds for any invalid index and
// ErrInvalidDimensions for an empty selection. Complexity: O(len(rows)*c).
func (m *Dense) SubRows(rows []int) (*Dense, error) {
	if len(rows) == 0 {
		return nil, ErrInvalidDimensions
	}
	sub, err := NewDense(len(rows), m.c)
	if err != nil {
		return nil, err
	}
	for k, i := range rows {
		if i < 0 || i >= m.r {
			return nil, denseErrorf("SubRows", i, 0, ErrIndexOutOfBounds)
		}
		copy(sub.data[k*m.c:(k+1)*m.c], m.data[i*m.c:(i+1)*m.c])
	}
	return sub, nil
}

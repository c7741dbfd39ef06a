// Package transition defines group specifications and the labeled
// transition table.
package transition

import (
	"fmt"

	"github.com/katalvlaran/cellflow/core"
)

// Groups specifies one side of a transition table: a categorical obs
// column and, optionally, an explicit subset of its categories. A nil
// Categories slice selects every category declared on the column.
type Groups struct {
	Key        string
	Categories []string
}

// Options configures CellTransition.
//   - Forward: true builds a row-stochastic table (early → late mass
//     pushed forward); false a column-stochastic one (late mass pulled
//     back).
type Options struct {
	Forward bool
}

// DefaultOptions returns the backward (column-stochastic) default,
// matching the convention of reading a table as "where did late cells
// come from".
func DefaultOptions() Options {
	return Options{}
}

// Table is a labeled transition matrix indexed by (early category, late
// category). Undefined rows/columns are NaN.
type Table struct {
	Early  []string
	Late   []string
	Values *core.Dense
}

// At returns the entry for one (early, late) category pair, or
// core.ErrUnknownCategory for labels outside the table.
func (t *Table) At(early, late string) (float64, error) {
	i := indexOf(t.Early, early)
	if i < 0 {
		return 0, fmt.Errorf("%w: early category %q", core.ErrUnknownCategory, early)
	}
	j := indexOf(t.Late, late)
	if j < 0 {
		return 0, fmt.Errorf("%w: late category %q", core.ErrUnknownCategory, late)
	}
	return t.Values.At(i, j)
}

// indexOf returns the position of s in labels, or -1.
func indexOf(labels []string, s string) int {
	for i, v := range labels {
		if v == s {
			return i
		}
	}
	return -1
}

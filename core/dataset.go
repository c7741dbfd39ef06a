package core

import (
	"fmt"
	"sort"
)

// Column is a labeled per-cell string column. When Categorical is true the
// column carries an explicit category set; the empty string marks a
// missing value and is never a category.
type Column struct {
	Values      []string // one entry per cell; "" = missing
	Categories  []string // declared category set (categorical columns only)
	Categorical bool
}

// NewCategorical builds a categorical column over values. When no explicit
// categories are given, the category set is the sorted distinct non-empty
// values. Explicit categories may include categories with zero members.
// Complexity: O(n log n) without explicit categories, O(n) with.
func NewCategorical(values []string, categories ...string) *Column {
	if len(categories) == 0 {
		seen := make(map[string]struct{}, len(values))
		for _, v := range values {
			if v != "" {
				seen[v] = struct{}{}
			}
		}
		categories = make([]string, 0, len(seen))
		for v := range seen {
			categories = append(categories, v)
		}
		sort.Strings(categories)
	}
	return &Column{Values: values, Categories: categories, Categorical: true}
}

// NewColumn builds a plain (non-categorical) string column.
func NewColumn(values []string) *Column {
	return &Column{Values: values}
}

// Len returns the number of cells covered by the column.
func (c *Column) Len() int { return len(c.Values) }

// HasMissing reports whether any cell carries a missing (empty) value.
func (c *Column) HasMissing() bool {
	for _, v := range c.Values {
		if v == "" {
			return true
		}
	}
	return false
}

// HasCategory reports whether cat is among the declared categories.
func (c *Column) HasCategory(cat string) bool {
	for _, v := range c.Categories {
		if v == cat {
			return true
		}
	}
	return false
}

// Mask returns the boolean membership mask of one category over all cells.
// Complexity: O(n).
func (c *Column) Mask(cat string) []bool {
	mask := make([]bool, len(c.Values))
	for i, v := range c.Values {
		mask[i] = v == cat
	}
	return mask
}

// Count returns the number of cells assigned to one category.
// Complexity: O(n).
func (c *Column) Count(cat string) int {
	n := 0
	for _, v := range c.Values {
		if v == cat {
			n++
		}
	}
	return n
}

// Observed returns the distinct non-missing values in first-appearance
// order. Complexity: O(n).
func (c *Column) Observed() []string {
	seen := make(map[string]struct{}, len(c.Categories))
	out := make([]string, 0, len(c.Categories))
	for _, v := range c.Values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}

// Dataset is the annotated point cloud observed at one time point:
// X holds n cells × d features, Obs the labeled per-cell columns.
type Dataset struct {
	X   *Dense
	obs map[string]*Column
}

// NewDataset wraps a point cloud. Returns ErrNilDataset for a nil matrix.
func NewDataset(x *Dense) (*Dataset, error) {
	if x == nil {
		return nil, ErrNilDataset
	}
	return &Dataset{X: x, obs: make(map[string]*Column)}, nil
}

// N returns the number of cells in the dataset.
func (d *Dataset) N() int { return d.X.Rows() }

// Dim returns the feature dimensionality of the point cloud.
func (d *Dataset) Dim() int { return d.X.Cols() }

// SetObs registers a per-cell column under key. The column length must
// equal the number of cells (ErrDimensionMismatch otherwise).
func (d *Dataset) SetObs(key string, col *Column) error {
	if col == nil {
		return fmt.Errorf("%w: obs column %q is nil", ErrDimensionMismatch, key)
	}
	if col.Len() != d.N() {
		return fmt.Errorf("%w: obs column %q has %d entries, dataset has %d cells",
			ErrDimensionMismatch, key, col.Len(), d.N())
	}
	d.obs[key] = col
	return nil
}

// Col returns the obs column registered under key, or ErrColumnNotFound.
func (d *Dataset) Col(key string) (*Column, error) {
	col, ok := d.obs[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, key)
	}
	return col, nil
}

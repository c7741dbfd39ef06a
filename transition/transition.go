package transition

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/cellflow/core"
	"github.com/katalvlaran/cellflow/propagate"
)

// CellTransition computes the grouped transition table between the
// populations at start and end.
//
// Forward mode pushes each early category's indicator mass to end and
// groups it by late category (rows sum to 1); backward mode pulls each
// late category's indicator mass to start and groups it by early
// category (columns sum to 1). Categories with zero observed members at
// the relevant end — including propagations that report
// propagate.ErrNoMass — produce all-NaN rows/columns.
//
// Validation (before any propagation): both group specs must name
// categorical columns without missing values, and explicit category
// subsets must exist on the column.
func CellTransition(ps *core.ProblemSet, start, end core.Time, early, late Groups, opts Options) (*Table, error) {
	if ps == nil {
		return nil, core.ErrNilProblemSet
	}
	earlyData, err := ps.DataAt(start)
	if err != nil {
		return nil, err
	}
	lateData, err := ps.DataAt(end)
	if err != nil {
		return nil, err
	}

	earlyCol, earlyCats, err := validateGroups(earlyData, early)
	if err != nil {
		return nil, err
	}
	lateCol, lateCats, err := validateGroups(lateData, late)
	if err != nil {
		return nil, err
	}

	values, err := core.NewDense(len(earlyCats), len(lateCats))
	if err != nil {
		return nil, err
	}
	table := &Table{Early: earlyCats, Late: lateCats, Values: values}

	if opts.Forward {
		for i, cat := range earlyCats {
			mass, ok, err := propagateCategory(ps, start, end, early.Key, cat, earlyCol, true)
			if err != nil {
				return nil, err
			}
			if !ok {
				setRow(values, i, math.NaN())
				continue
			}
			if err := fillStochastic(values, i, mass, lateCol, lateCats, true); err != nil {
				return nil, err
			}
		}
		return table, nil
	}

	for j, cat := range lateCats {
		mass, ok, err := propagateCategory(ps, start, end, late.Key, cat, lateCol, false)
		if err != nil {
			return nil, err
		}
		if !ok {
			setCol(values, j, math.NaN())
			continue
		}
		if err := fillStochastic(values, j, mass, earlyCol, earlyCats, false); err != nil {
			return nil, err
		}
	}
	return table, nil
}

// propagateCategory pushes (forward) or pulls (backward) one category's
// indicator mass across the chain. ok is false when the category has no
// observed members or the propagation reports ErrNoMass — the only
// recoverable failure.
func propagateCategory(ps *core.ProblemSet, start, end core.Time, key, cat string, col *core.Column, forward bool) ([]float64, bool, error) {
	if col.Count(cat) == 0 {
		return nil, false, nil
	}
	opts := propagate.Options{
		SubsetKey: key,
		Subset:    cat,
		Normalize: true,
		// Indicator mass is already a probability; marginal rescaling would
		// double-correct for unbalancedness here.
		ScaleByMarginals: false,
	}
	var res *propagate.Result
	var err error
	if forward {
		res, err = propagate.Push(ps, start, end, opts)
	} else {
		res, err = propagate.Pull(ps, start, end, opts)
	}
	if err != nil {
		if errors.Is(err, propagate.ErrNoMass) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return res.Final(), true, nil
}

// fillStochastic groups per-cell mass by category, renormalizes over the
// requested categories and writes one row (forward) or column (backward).
// A zero total over the requested categories leaves the line NaN.
func fillStochastic(values *core.Dense, line int, mass []float64, col *core.Column, cats []string, asRow bool) error {
	if len(mass) != col.Len() {
		return fmt.Errorf("%w: propagated mass has %d entries, grouping column has %d",
			core.ErrDimensionMismatch, len(mass), col.Len())
	}
	sums := make([]float64, len(cats))
	var total float64
	for k, cat := range cats {
		for i, hit := range col.Mask(cat) {
			if hit {
				sums[k] += mass[i]
			}
		}
		total += sums[k]
	}
	if total <= 0 {
		if asRow {
			setRow(values, line, math.NaN())
		} else {
			setCol(values, line, math.NaN())
		}
		return nil
	}
	for k := range sums {
		v := sums[k] / total
		if asRow {
			_ = values.Set(line, k, v)
		} else {
			_ = values.Set(k, line, v)
		}
	}
	return nil
}

// validateGroups resolves one group spec against the dataset observed at
// its end of the chain.
func validateGroups(ds *core.Dataset, g Groups) (*core.Column, []string, error) {
	col, err := ds.Col(g.Key)
	if err != nil {
		return nil, nil, err
	}
	if !col.Categorical {
		return nil, nil, fmt.Errorf("%w: %q", core.ErrNotCategorical, g.Key)
	}
	if col.HasMissing() {
		return nil, nil, fmt.Errorf("%w: %q", core.ErrMissingValues, g.Key)
	}
	cats := g.Categories
	if cats == nil {
		cats = col.Categories
	} else {
		for _, c := range cats {
			if !col.HasCategory(c) {
				return nil, nil, fmt.Errorf("%w: %q in column %q", core.ErrUnknownCategory, c, g.Key)
			}
		}
	}
	if len(cats) == 0 {
		return nil, nil, fmt.Errorf("%w: column %q declares no categories", core.ErrUnknownCategory, g.Key)
	}
	return col, cats, nil
}

// setRow fills one row with v.
func setRow(m *core.Dense, row int, v float64) {
	for j := 0; j < m.Cols(); j++ {
		_ = m.Set(row, j, v)
	}
}

// setCol fills one column with v.
func setCol(m *core.Dense, col int, v float64) {
	for i := 0; i < m.Rows(); i++ {
		_ = m.Set(i, col, v)
	}
}

package propagate

import (
	"fmt"

	"github.com/katalvlaran/cellflow/core"
	"github.com/katalvlaran/cellflow/coupling"
)

// Push propagates a mass distribution forward from start to end through
// the chain of couplings resolved by ps.Path.
//
// Preconditions and validation (in order):
//  1. ps must be non-nil (core.ErrNilProblemSet).
//  2. The hop chain must exist (core.ErrBadInterval, core.ErrTimeNotFound,
//     core.ErrPairNotFound).
//  3. The initial mass must match the starting population
//     (core.ErrDimensionMismatch), be non-negative (ErrNegativeMass) and
//     carry positive total mass (ErrNoMass).
//
// Returns the Result in traversal order start → end; only the final
// vector is retained unless Options.ReturnAll is set or a write-back is
// requested.
func Push(ps *core.ProblemSet, start, end core.Time, opts Options) (*Result, error) {
	return run(ps, start, end, true, opts)
}

// Pull propagates a mass distribution backward from end to start through
// the identical chain traversed in reverse. Validation and result
// semantics mirror Push; traversal order is end → start and the subset
// filter applies to the population at end.
func Pull(ps *core.ProblemSet, start, end core.Time, opts Options) (*Result, error) {
	return run(ps, start, end, false, opts)
}

// run is the shared chain-composition engine behind Push and Pull.
func run(ps *core.ProblemSet, start, end core.Time, forward bool, opts Options) (*Result, error) {
	if ps == nil {
		return nil, core.ErrNilProblemSet
	}
	hops, err := ps.Path(start, end)
	if err != nil {
		return nil, err
	}

	// Starting population: source of the first hop (push) or target of the
	// last hop (pull).
	var startData *core.Dataset
	var startTime core.Time
	if forward {
		first, err := ps.Problem(hops[0].Src, hops[0].Tgt)
		if err != nil {
			return nil, err
		}
		startData, startTime = first.Source, hops[0].Src
	} else {
		last, err := ps.Problem(hops[len(hops)-1].Src, hops[len(hops)-1].Tgt)
		if err != nil {
			return nil, err
		}
		startData, startTime = last.Target, hops[len(hops)-1].Tgt
	}

	mass, err := initialMass(startData, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Times: []core.Time{startTime},
		Mass:  map[core.Time][]float64{startTime: mass},
	}

	// Walk the chain hop by hop.
	for k := 0; k < len(hops); k++ {
		hop := hops[k]
		if !forward {
			hop = hops[len(hops)-1-k]
		}
		prob, err := ps.Problem(hop.Src, hop.Tgt)
		if err != nil {
			return nil, err
		}
		if opts.ScaleByMarginals {
			mass, err = rescale(prob.Solution, mass, forward)
			if err != nil {
				return nil, err
			}
		}
		mass, err = prob.Solution.Apply(mass, forward)
		if err != nil {
			return nil, err
		}
		at := hop.Tgt
		if !forward {
			at = hop.Src
		}
		result.Times = append(result.Times, at)
		result.Mass[at] = mass
	}

	if opts.ResultKey != "" {
		if opts.Sink == nil {
			return nil, ErrNilSink
		}
		if err := opts.Sink.Write(opts.ResultKey, result.Times, result.Flatten()); err != nil {
			return nil, fmt.Errorf("propagate: sink write for %q failed: %w", opts.ResultKey, err)
		}
	}

	if !opts.ReturnAll {
		final := result.Times[len(result.Times)-1]
		result.Times = []core.Time{final}
		result.Mass = map[core.Time][]float64{final: result.Mass[final]}
	}
	return result, nil
}

// initialMass builds the starting mass vector over ds: explicit vector,
// subset indicator, or uniform — validated and optionally normalized.
func initialMass(ds *core.Dataset, opts Options) ([]float64, error) {
	n := ds.N()
	var mass []float64

	switch {
	case opts.Mass != nil:
		if len(opts.Mass) != n {
			return nil, fmt.Errorf("%w: mass has %d entries, population has %d cells",
				core.ErrDimensionMismatch, len(opts.Mass), n)
		}
		mass = make([]float64, n)
		for i, v := range opts.Mass {
			if v < 0 {
				return nil, fmt.Errorf("%w: entry %d is %g", ErrNegativeMass, i, v)
			}
			mass[i] = v
		}

	case opts.SubsetKey != "":
		col, err := ds.Col(opts.SubsetKey)
		if err != nil {
			return nil, err
		}
		mass = make([]float64, n)
		for i, hit := range col.Mask(opts.Subset) {
			if hit {
				mass[i] = 1
			}
		}

	default:
		mass = make([]float64, n)
		for i := range mass {
			mass[i] = 1 / float64(n)
		}
	}

	total := sum(mass)
	if total <= 0 {
		return nil, fmt.Errorf("%w: subset %q of %q", ErrNoMass, opts.Subset, opts.SubsetKey)
	}
	if opts.Normalize {
		for i := range mass {
			mass[i] /= total
		}
	}
	return mass, nil
}

// rescale divides mass elementwise by the hop's source (push) or target
// (pull) marginal, guarded against empty rows/columns.
func rescale(out core.Output, mass []float64, forward bool) ([]float64, error) {
	var marg []float64
	var err error
	if forward {
		marg, err = coupling.RowMarginals(out)
	} else {
		marg, err = coupling.ColMarginals(out)
	}
	if err != nil {
		return nil, err
	}
	if len(marg) != len(mass) {
		return nil, fmt.Errorf("%w: marginal has %d entries, mass has %d",
			core.ErrDimensionMismatch, len(marg), len(mass))
	}
	scaled := make([]float64, len(mass))
	for i, v := range mass {
		scaled[i] = v / (marg[i] + marginalGuard)
	}
	return scaled, nil
}

// sum returns the total of a vector.
func sum(v []float64) float64 {
	var s float64
	for _, x := range v {
		s += x
	}
	return s
}

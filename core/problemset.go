package core

import (
	"fmt"
	"sort"
)

// SubProblem is one solved pairwise interval: the source and target
// datasets the coupling was built from, the coupling itself, and — when
// the interval was solved as an unbalanced problem — the per-source-cell
// growth rates.
type SubProblem struct {
	Source      *Dataset
	Target      *Dataset
	Solution    Output
	GrowthRates []float64 // nil for balanced problems
}

// ProblemSet is the read-only collection of solved sub-problems, keyed by
// ordered (src, tgt) pairs. It is built once via Add and then only read;
// concurrent readers need no locking because there is no writer.
type ProblemSet struct {
	problems map[Pair]*SubProblem
	times    []Time // sorted distinct endpoints, maintained by Add
}

// NewProblemSet returns an empty collection.
func NewProblemSet() *ProblemSet {
	return &ProblemSet{problems: make(map[Pair]*SubProblem)}
}

// Add registers one solved interval.
// Stage 1 (Validate): src < tgt, no duplicate pair, non-nil datasets and
// solution, coupling shape consistent with dataset sizes, growth-rate
// length consistent with the source population.
// Stage 2 (Execute): insert and refresh the sorted time index.
// Complexity: O(T log T) for the index refresh.
func (ps *ProblemSet) Add(src, tgt Time, p *SubProblem) error {
	if src >= tgt {
		return fmt.Errorf("%w: (%v, %v)", ErrBadInterval, src, tgt)
	}
	if p == nil || p.Source == nil || p.Target == nil || p.Solution == nil {
		return ErrNilDataset
	}
	key := Pair{Src: src, Tgt: tgt}
	if _, ok := ps.problems[key]; ok {
		return fmt.Errorf("%w: (%v, %v)", ErrDuplicatePair, src, tgt)
	}
	n, m := p.Solution.Shape()
	if n != p.Source.N() || m != p.Target.N() {
		return fmt.Errorf("%w: coupling is %dx%d, datasets are %dx%d",
			ErrDimensionMismatch, n, m, p.Source.N(), p.Target.N())
	}
	if p.GrowthRates != nil && len(p.GrowthRates) != p.Source.N() {
		return fmt.Errorf("%w: %d growth rates for %d source cells",
			ErrDimensionMismatch, len(p.GrowthRates), p.Source.N())
	}

	ps.problems[key] = p
	ps.refreshTimes()
	return nil
}

// refreshTimes rebuilds the sorted distinct endpoint index.
func (ps *ProblemSet) refreshTimes() {
	seen := make(map[Time]struct{}, 2*len(ps.problems))
	for k := range ps.problems {
		seen[k.Src] = struct{}{}
		seen[k.Tgt] = struct{}{}
	}
	times := make([]Time, 0, len(seen))
	for t := range seen {
		times = append(times, t)
	}
	sort.Float64s(times)
	ps.times = times
}

// Len returns the number of registered sub-problems.
func (ps *ProblemSet) Len() int { return len(ps.problems) }

// Times returns the sorted distinct time points touched by any interval.
// The returned slice is shared; callers must not mutate it.
func (ps *ProblemSet) Times() []Time { return ps.times }

// Problem returns the sub-problem for the exact (src, tgt) interval, or
// ErrPairNotFound.
func (ps *ProblemSet) Problem(src, tgt Time) (*SubProblem, error) {
	p, ok := ps.problems[Pair{Src: src, Tgt: tgt}]
	if !ok {
		return nil, fmt.Errorf("%w: (%v, %v)", ErrPairNotFound, src, tgt)
	}
	return p, nil
}

// Path resolves the ordered chain of consecutive intervals covering
// [start, end].
//
// The time grid considered is every endpoint of an interval fully
// contained in [start, end]; the chain must contain one registered pair
// per consecutive grid step. A direct (start, end) interval therefore
// resolves to a single hop only when no finer grid exists between the
// endpoints.
//
// Stage 1 (Validate): start < end (ErrBadInterval).
// Stage 2 (Prepare): collect and sort the grid (ErrTimeNotFound when the
// endpoints touch nothing).
// Stage 3 (Execute): demand a registered pair per consecutive grid step
// (ErrPairNotFound on the first missing hop).
// Complexity: O(P + G log G) with P intervals and G grid points.
func (ps *ProblemSet) Path(start, end Time) ([]Pair, error) {
	if start >= end {
		return nil, fmt.Errorf("%w: (%v, %v)", ErrBadInterval, start, end)
	}

	// Grid: endpoints of intervals fully inside [start, end].
	seen := make(map[Time]struct{})
	for k := range ps.problems {
		if k.Src >= start && k.Tgt <= end {
			seen[k.Src] = struct{}{}
			seen[k.Tgt] = struct{}{}
		}
	}
	if _, ok := seen[start]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrTimeNotFound, start)
	}
	if _, ok := seen[end]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrTimeNotFound, end)
	}
	grid := make([]Time, 0, len(seen))
	for t := range seen {
		grid = append(grid, t)
	}
	sort.Float64s(grid)

	// One registered pair per consecutive grid step.
	hops := make([]Pair, 0, len(grid)-1)
	for i := 0; i+1 < len(grid); i++ {
		hop := Pair{Src: grid[i], Tgt: grid[i+1]}
		if _, ok := ps.problems[hop]; !ok {
			return nil, fmt.Errorf("%w: missing hop (%v, %v) on chain %v → %v",
				ErrPairNotFound, hop.Src, hop.Tgt, start, end)
		}
		hops = append(hops, hop)
	}
	return hops, nil
}

// DataAt returns the dataset observed at time t: the source side of an
// interval starting at t when one exists, otherwise the target side of an
// interval ending at t. Returns ErrTimeNotFound when no interval touches t.
// Iteration over candidates is made deterministic by preferring the
// earliest matching counterpart.
func (ps *ProblemSet) DataAt(t Time) (*Dataset, error) {
	if p := ps.earliestFrom(t); p != nil {
		return p.Source, nil
	}
	if p := ps.latestInto(t); p != nil {
		return p.Target, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrTimeNotFound, t)
}

// GrowthRatesAt returns the growth rates of the interval starting at t.
// Returns ErrTimeNotFound when no interval starts at t, ErrNoGrowthRates
// when the interval was balanced.
func (ps *ProblemSet) GrowthRatesAt(t Time) ([]float64, error) {
	p := ps.earliestFrom(t)
	if p == nil {
		return nil, fmt.Errorf("%w: %v", ErrTimeNotFound, t)
	}
	if p.GrowthRates == nil {
		return nil, fmt.Errorf("%w: interval starting at %v", ErrNoGrowthRates, t)
	}
	return p.GrowthRates, nil
}

// earliestFrom returns the sub-problem with Src == t whose Tgt is smallest,
// or nil.
func (ps *ProblemSet) earliestFrom(t Time) *SubProblem {
	var best *SubProblem
	var bestTgt Time
	for k, p := range ps.problems {
		if k.Src != t {
			continue
		}
		if best == nil || k.Tgt < bestTgt {
			best, bestTgt = p, k.Tgt
		}
	}
	return best
}

// latestInto returns the sub-problem with Tgt == t whose Src is largest,
// or nil.
func (ps *ProblemSet) latestInto(t Time) *SubProblem {
	var best *SubProblem
	var bestSrc Time
	for k, p := range ps.problems {
		if k.Tgt != t {
			continue
		}
		if best == nil || k.Src > bestSrc {
			best, bestSrc = p, k.Src
		}
	}
	return best
}

package trajectory

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/katalvlaran/cellflow/core"
	"github.com/katalvlaran/cellflow/emd"
	"github.com/katalvlaran/cellflow/sampling"
)

// InterpParam resolves the interpolation parameter for the chain
// start < intermediate < end. A NaN p is inferred linearly:
// (intermediate − start) / (end − start).
//
// Validation (in order): supplied p must lie in [0, 1]
// (ErrBadInterpolationParam); the chain must be strictly monotonic
// (ErrNotMonotonic).
func InterpParam(start, intermediate, end core.Time, p float64) (float64, error) {
	if !math.IsNaN(p) && (p < 0 || p > 1) {
		return 0, fmt.Errorf("%w: got %g", ErrBadInterpolationParam, p)
	}
	if start >= intermediate {
		return 0, fmt.Errorf("%w: start=%v, intermediate=%v", ErrNotMonotonic, start, intermediate)
	}
	if intermediate >= end {
		return 0, fmt.Errorf("%w: intermediate=%v, end=%v", ErrNotMonotonic, intermediate, end)
	}
	if math.IsNaN(p) {
		p = (intermediate - start) / (end - start)
	}
	return p, nil
}

// InterpolatedDistance scores the (start, end) coupling against the
// held-out intermediate time point: it synthesizes an OT-interpolated
// intermediate cloud from transport-consistent index pairs and returns
// its 2-Wasserstein distance to the true intermediate cloud.
//
// The transport matrix is never materialized; sampling runs through the
// coupling's Apply capability.
func InterpolatedDistance(ps *core.ProblemSet, start, intermediate, end core.Time, opts Options) (float64, error) {
	source, interData, target, err := chainData(ps, start, intermediate, end)
	if err != nil {
		return 0, err
	}
	tau, err := InterpParam(start, intermediate, end, opts.InterpolationParameter)
	if err != nil {
		return 0, err
	}
	nCells := opts.NInterpolatedCells
	if nCells <= 0 {
		nCells = interData.N()
	}

	rows, cols, err := sampling.Sample(ps, start, end, nCells, sampling.Options{
		BatchSize:                opts.BatchSize,
		AccountForUnbalancedness: opts.AccountForUnbalancedness,
		InterpolationParameter:   tau,
		Seed:                     opts.Seed,
	})
	if err != nil {
		return 0, err
	}

	interp, err := blendPairs(source.X, target.X, rows, cols, tau)
	if err != nil {
		return 0, err
	}
	return emd.Distance(interData.X, interp, nil, nil, opts.EMD)
}

// RandomDistance scores a random coupling baseline: rows and columns are
// paired independently (rows optionally reweighted by growth^(1−τ),
// columns uniformly) and blended exactly like the OT-guided variant.
func RandomDistance(ps *core.ProblemSet, start, intermediate, end core.Time, opts Options) (float64, error) {
	source, interData, target, err := chainData(ps, start, intermediate, end)
	if err != nil {
		return 0, err
	}
	tau, err := InterpParam(start, intermediate, end, opts.InterpolationParameter)
	if err != nil {
		return 0, err
	}
	nCells := opts.NInterpolatedCells
	if nCells <= 0 {
		nCells = interData.N()
	}

	rowWeight := make([]float64, source.N())
	for i := range rowWeight {
		rowWeight[i] = 1
	}
	if opts.AccountForUnbalancedness {
		growth, err := ps.GrowthRatesAt(start)
		if err != nil {
			return 0, err
		}
		for i, g := range growth {
			rowWeight[i] = math.Pow(g, 1-tau)
		}
	}

	rng := rngFromSeed(opts.Seed)
	rowCum := cumulativeSum(rowWeight)
	interp, err := core.NewDense(nCells, source.Dim())
	if err != nil {
		return 0, err
	}
	if source.Dim() != target.Dim() {
		return 0, fmt.Errorf("%w: source has %d features, target has %d",
			core.ErrDimensionMismatch, source.Dim(), target.Dim())
	}
	for k := 0; k < nCells; k++ {
		srcRow, _ := source.X.Row(drawCum(rng, rowCum))
		tgtRow, _ := target.X.Row(rng.Intn(target.N()))
		out, _ := interp.Row(k)
		for d := range out {
			out[d] = (1-tau)*srcRow[d] + tau*tgtRow[d]
		}
	}
	return emd.Distance(interData.X, interp, nil, nil, opts.EMD)
}

// TimePointDistances returns the direct distances between the true
// (start, intermediate) and (intermediate, end) clouds — the scale
// reference for the interpolation scores.
func TimePointDistances(ps *core.ProblemSet, start, intermediate, end core.Time, opts Options) (float64, float64, error) {
	source, interData, target, err := chainData(ps, start, intermediate, end)
	if err != nil {
		return 0, 0, err
	}
	d1, err := emd.Distance(source.X, interData.X, nil, nil, opts.EMD)
	if err != nil {
		return 0, 0, err
	}
	d2, err := emd.Distance(interData.X, target.X, nil, nil, opts.EMD)
	if err != nil {
		return 0, 0, err
	}
	return d1, d2, nil
}

// BatchDistances returns the mean pairwise 2-Wasserstein distance across
// all unordered pairs of batches observed at one time point — the noise
// floor for the interpolation scores.
//
// The batch column must be categorical (core.ErrNotCategorical); fewer
// than two observed batches fail with ErrNotEnoughBatches.
func BatchDistances(ps *core.ProblemSet, t core.Time, batchKey string, opts Options) (float64, error) {
	if ps == nil {
		return 0, core.ErrNilProblemSet
	}
	ds, err := ps.DataAt(t)
	if err != nil {
		return 0, err
	}
	col, err := ds.Col(batchKey)
	if err != nil {
		return 0, err
	}
	if !col.Categorical {
		return 0, fmt.Errorf("%w: %q", core.ErrNotCategorical, batchKey)
	}

	batches := col.Observed()
	if len(batches) < 2 {
		return 0, fmt.Errorf("%w: found %d at time %v", ErrNotEnoughBatches, len(batches), t)
	}
	clouds := make([]*core.Dense, len(batches))
	for k, batch := range batches {
		var idx []int
		for i, hit := range col.Mask(batch) {
			if hit {
				idx = append(idx, i)
			}
		}
		clouds[k], err = ds.X.SubRows(idx)
		if err != nil {
			return 0, err
		}
	}

	var total float64
	var pairs int
	for i := 0; i < len(clouds); i++ {
		for j := i + 1; j < len(clouds); j++ {
			d, err := emd.Distance(clouds[i], clouds[j], nil, nil, opts.EMD)
			if err != nil {
				return 0, err
			}
			total += d
			pairs++
		}
	}
	return total / float64(pairs), nil
}

// chainData resolves the three true point clouds of a validation chain:
// the source side at start, the source side at intermediate, and the
// target side at end.
func chainData(ps *core.ProblemSet, start, intermediate, end core.Time) (source, inter, target *core.Dataset, err error) {
	if ps == nil {
		return nil, nil, nil, core.ErrNilProblemSet
	}
	if source, err = ps.DataAt(start); err != nil {
		return nil, nil, nil, err
	}
	if inter, err = ps.DataAt(intermediate); err != nil {
		return nil, nil, nil, err
	}
	if target, err = ps.DataAt(end); err != nil {
		return nil, nil, nil, err
	}
	return source, inter, target, nil
}

// blendPairs expands sampled (row, cols) pairs into a synthetic cloud:
// one blended cell per sampled column, (1−τ)·source[row] + τ·target[col].
func blendPairs(source, target *core.Dense, rows []int, cols [][]int, tau float64) (*core.Dense, error) {
	if source.Cols() != target.Cols() {
		return nil, fmt.Errorf("%w: source has %d features, target has %d",
			core.ErrDimensionMismatch, source.Cols(), target.Cols())
	}
	total := 0
	for _, c := range cols {
		total += len(c)
	}
	interp, err := core.NewDense(total, source.Cols())
	if err != nil {
		return nil, err
	}
	k := 0
	for ri, r := range rows {
		srcRow, err := source.Row(r)
		if err != nil {
			return nil, err
		}
		for _, c := range cols[ri] {
			tgtRow, err := target.Row(c)
			if err != nil {
				return nil, err
			}
			out, _ := interp.Row(k)
			for d := range out {
				out[d] = (1-tau)*srcRow[d] + tau*tgtRow[d]
			}
			k++
		}
	}
	return interp, nil
}

// rngFromSeed mirrors the sampling package's seed policy: deterministic
// for seed ≥ 0, per-call entropy otherwise.
func rngFromSeed(seed int64) *rand.Rand {
	if seed < 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// cumulativeSum returns the running sums of w.
func cumulativeSum(w []float64) []float64 {
	cum := make([]float64, len(w))
	var s float64
	for i, v := range w {
		s += v
		cum[i] = s
	}
	return cum
}

// drawCum samples one index via inverse-CDF binary search over a
// cumulative weight vector.
func drawCum(rng *rand.Rand, cum []float64) int {
	u := rng.Float64() * cum[len(cum)-1]
	lo, hi := 0, len(cum)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if cum[mid] > u {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

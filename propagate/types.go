// Package propagate defines options, results and sentinel errors for
// multi-hop mass propagation.
package propagate

import (
	"errors"

	"github.com/katalvlaran/cellflow/core"
)

// Sentinel errors returned by Push and Pull.
var (
	// ErrNoMass indicates that the initial mass vector (typically a
	// category subset indicator) selects zero cells. This is the one
	// recoverable condition of the analysis core; it replaces fragile
	// error-message matching with a structured sentinel.
	ErrNoMass = errors.New("propagate: mass vector has zero total mass")

	// ErrNegativeMass indicates that an explicit mass vector carries a
	// negative entry.
	ErrNegativeMass = errors.New("propagate: mass vector has negative entries")

	// ErrNilSink indicates that Options.ResultKey was set without a sink
	// to receive the flattened column.
	ErrNilSink = errors.New("propagate: result key set but sink is nil")
)

// marginalGuard keeps marginal division finite on empty rows/columns.
const marginalGuard = 1e-12

// Options configures one Push or Pull call. Use DefaultOptions as the
// starting point.
//
//   - Mass             — explicit 1-D initial mass over the starting
//     population; nil means uniform.
//   - SubsetKey/Subset — restrict the initial mass to the cells whose obs
//     column SubsetKey equals Subset. Ignored when empty.
//   - Normalize        — renormalize the initial mass to sum 1.
//   - ScaleByMarginals — divide by each hop's relevant marginal before
//     transporting (see package doc).
//   - ReturnAll        — retain the mass at every visited time point, not
//     just the final one.
//   - ResultKey/Sink   — optional write-back of the flattened result into
//     an external annotation store.
type Options struct {
	Mass             []float64
	SubsetKey        string
	Subset           string
	Normalize        bool
	ScaleByMarginals bool
	ReturnAll        bool
	ResultKey        string
	Sink             Sink
}

// DefaultOptions returns the canonical defaults: uniform normalized mass,
// marginal rescaling on, final vector only, no write-back.
func DefaultOptions() Options {
	return Options{Normalize: true, ScaleByMarginals: true}
}

// Sink receives a flattened propagation result for write-back into an
// external annotation store. times lists the visited time points in
// traversal order; flat concatenates the per-time-point mass vectors in
// that same order, one entry per cell.
type Sink interface {
	Write(key string, times []core.Time, flat []float64) error
}

// MapSink is an in-memory Sink keeping the last column written per key.
type MapSink struct {
	Columns map[string][]float64
}

// NewMapSink returns an empty in-memory sink.
func NewMapSink() *MapSink {
	return &MapSink{Columns: make(map[string][]float64)}
}

// Write stores the flattened column under key.
func (s *MapSink) Write(key string, _ []core.Time, flat []float64) error {
	s.Columns[key] = flat
	return nil
}

// Result holds propagated mass vectors keyed by time point, with Times
// preserving traversal order (start → end for Push, end → start for Pull).
type Result struct {
	Times []core.Time
	Mass  map[core.Time][]float64
}

// Final returns the mass vector at the last visited time point.
func (r *Result) Final() []float64 {
	return r.Mass[r.Times[len(r.Times)-1]]
}

// At returns the mass vector recorded for time t, or nil.
func (r *Result) At(t core.Time) []float64 {
	return r.Mass[t]
}

// Flatten concatenates the per-time-point vectors in traversal order.
func (r *Result) Flatten() []float64 {
	total := 0
	for _, t := range r.Times {
		total += len(r.Mass[t])
	}
	flat := make([]float64, 0, total)
	for _, t := range r.Times {
		flat = append(flat, r.Mass[t]...)
	}
	return flat
}

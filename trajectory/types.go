// Package trajectory defines options and sentinel errors for trajectory
// validation.
package trajectory

import (
	"errors"
	"math"

	"github.com/katalvlaran/cellflow/emd"
	"github.com/katalvlaran/cellflow/sampling"
)

// Sentinel errors returned by the validation operations.
var (
	// ErrBadInterpolationParam indicates a supplied interpolation
	// parameter outside [0, 1].
	ErrBadInterpolationParam = errors.New("trajectory: interpolation parameter must be in [0, 1]")

	// ErrNotMonotonic indicates a chain violating start < intermediate < end.
	ErrNotMonotonic = errors.New("trajectory: expected start < intermediate < end")

	// ErrNotEnoughBatches indicates fewer than two batches at the
	// requested time point.
	ErrNotEnoughBatches = errors.New("trajectory: need at least two batches")
)

// Options configures the validation operations. Use DefaultOptions as the
// starting point.
//
//   - InterpolationParameter   — τ; NaN means infer linearly from the time
//     values (see InterpParam).
//   - NInterpolatedCells       — synthetic cloud size; 0 means the size of
//     the true intermediate cloud.
//   - AccountForUnbalancedness — reweight row draws by growth^(1−τ).
//   - BatchSize                — indicator batch size for transport
//     sampling.
//   - Seed                     — ≥ 0 reproducible, negative per-call
//     entropy.
//   - EMD                      — tolerances for the distance solver.
type Options struct {
	InterpolationParameter   float64
	NInterpolatedCells       int
	AccountForUnbalancedness bool
	BatchSize                int
	Seed                     int64
	EMD                      emd.Options
}

// DefaultOptions returns the canonical defaults: inferred τ, intermediate
// cloud size, balanced draws, entropy seed.
func DefaultOptions() Options {
	return Options{
		InterpolationParameter: math.NaN(),
		BatchSize:              sampling.DefaultBatchSize,
		Seed:                   -1,
		EMD:                    emd.DefaultOptions(),
	}
}

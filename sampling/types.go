// Package sampling defines options and sentinel errors for transport
// sampling.
package sampling

import "errors"

// Sentinel errors returned by Sample.
var (
	// ErrBadSampleCount indicates a non-positive number of samples.
	ErrBadSampleCount = errors.New("sampling: sample count must be > 0")

	// ErrBadBatchSize indicates a non-positive batch size.
	ErrBadBatchSize = errors.New("sampling: batch size must be > 0")

	// ErrBadInterpolationParam indicates an interpolation parameter
	// outside [0, 1].
	ErrBadInterpolationParam = errors.New("sampling: interpolation parameter must be in [0, 1]")

	// ErrEmptyConditional indicates that a sampled source row has an
	// all-zero conditional distribution over the target population.
	ErrEmptyConditional = errors.New("sampling: empty conditional distribution for source row")
)

// DefaultBatchSize is the number of one-hot row indicators grouped into a
// single ApplyBatch call.
const DefaultBatchSize = 256

// Options configures one Sample call.
//
//   - BatchSize                — indicators per ApplyBatch call (throughput
//     only; never affects output).
//   - AccountForUnbalancedness — weight row draws by growth^(1−τ); requires
//     growth rates on the (start, end) sub-problem and a valid
//     InterpolationParameter.
//   - InterpolationParameter   — τ in [0, 1]; only read when accounting for
//     unbalancedness.
//   - Seed                     — ≥ 0 for reproducible draws; negative
//     derives per-call entropy.
type Options struct {
	BatchSize                int
	AccountForUnbalancedness bool
	InterpolationParameter   float64
	Seed                     int64
}

// DefaultOptions returns the canonical defaults: batch of 256, balanced
// uniform rows, entropy-derived seed.
func DefaultOptions() Options {
	return Options{BatchSize: DefaultBatchSize, Seed: -1}
}

// Package emd defines options and sentinel errors for the exact earth
// mover's distance solver.
package emd

import "errors"

// Sentinel errors returned by EMD and Distance.
var (
	// ErrNegativeWeight indicates a negative entry in a weight vector.
	ErrNegativeWeight = errors.New("emd: weight vectors must be non-negative")

	// ErrZeroTotalMass indicates a weight vector whose total is zero.
	ErrZeroTotalMass = errors.New("emd: weight vector has zero total mass")

	// ErrNotConverged indicates that the simplex hit MaxIterations before
	// reaching optimality.
	ErrNotConverged = errors.New("emd: transportation simplex did not converge")

	// ErrNilCost indicates a nil cost matrix.
	ErrNilCost = errors.New("emd: cost matrix is nil")
)

// DefaultEpsilon is the optimality and degeneracy tolerance.
const DefaultEpsilon = 1e-9

// DefaultMaxIterations caps simplex pivots; generous for the population
// sizes this library targets.
const DefaultMaxIterations = 100000

// Options configures the solver.
//   - Epsilon:       reduced costs above -Epsilon count as optimal; flows
//     below Epsilon count as exhausted during initialization.
//   - MaxIterations: pivot cap before ErrNotConverged; ≤ 0 falls back to
//     DefaultMaxIterations.
type Options struct {
	Epsilon       float64
	MaxIterations int
}

// DefaultOptions returns the canonical solver tolerances.
func DefaultOptions() Options {
	return Options{Epsilon: DefaultEpsilon, MaxIterations: DefaultMaxIterations}
}

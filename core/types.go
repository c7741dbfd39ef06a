// Package core defines shared types and sentinel errors for the
// temporal optimal-transport data model.
package core

import "errors"

// Sentinel errors shared by the core container types and their consumers.
var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("core: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	ErrIndexOutOfBounds = errors.New("core: index out of bounds")

	// ErrDimensionMismatch indicates that a vector, matrix or column has a
	// length or rank incompatible with the object it is applied to.
	ErrDimensionMismatch = errors.New("core: dimension mismatch")

	// ErrColumnNotFound indicates that a requested obs column does not exist.
	ErrColumnNotFound = errors.New("core: obs column not found")

	// ErrNotCategorical indicates that an obs column used for grouping or
	// batching is not categorical.
	ErrNotCategorical = errors.New("core: obs column is not categorical")

	// ErrUnknownCategory indicates that a requested category is not among a
	// column's declared categories.
	ErrUnknownCategory = errors.New("core: unknown category")

	// ErrMissingValues indicates that a categorical column contains missing
	// (empty) values where none are allowed.
	ErrMissingValues = errors.New("core: column contains missing values")

	// ErrTimeNotFound indicates that no sub-problem touches the requested
	// time point.
	ErrTimeNotFound = errors.New("core: time point not found")

	// ErrPairNotFound indicates that a required (src, tgt) sub-problem is
	// missing from the collection.
	ErrPairNotFound = errors.New("core: time-point pair not found")

	// ErrDuplicatePair indicates an attempt to register a (src, tgt) pair twice.
	ErrDuplicatePair = errors.New("core: duplicate time-point pair")

	// ErrBadInterval indicates that an interval's endpoints are not strictly
	// increasing.
	ErrBadInterval = errors.New("core: interval endpoints must be strictly increasing")

	// ErrNoGrowthRates indicates that a sub-problem was solved as a balanced
	// problem and carries no per-cell growth rates.
	ErrNoGrowthRates = errors.New("core: sub-problem has no growth rates")

	// ErrNilProblemSet indicates that a nil *ProblemSet was passed to an
	// analysis operation.
	ErrNilProblemSet = errors.New("core: problem set is nil")

	// ErrNilDataset indicates that a nil *Dataset or nil point cloud was
	// supplied where data is required.
	ErrNilDataset = errors.New("core: dataset is nil")

	// ErrNotMaterialized indicates that a coupling does not expose a full
	// transport matrix.
	ErrNotMaterialized = errors.New("core: transport matrix is not materialized")
)

// Time identifies a sampled time point. Time points are totally ordered by
// the usual < on float64; chains always run from earlier to later values.
type Time = float64

// Pair is an ordered interval key (Src earlier, Tgt later) identifying one
// pairwise sub-problem.
type Pair struct {
	Src Time
	Tgt Time
}

// Output is the opaque capability exposed by one pairwise transport solve.
// It is immutable once produced. Implementations live in package coupling;
// analysis code must never depend on the concrete representation.
//
// Apply semantics: forward=true pushes a source-marginal weight vector
// toward the target marginal (xᵀP); forward=false pulls a target-marginal
// vector back (Px). Apply returns ErrDimensionMismatch when len(x) does
// not match the relevant side of Shape.
type Output interface {
	// Shape returns (n, m) — source and target population sizes.
	Shape() (n, m int)

	// Apply transports a 1-D weight vector through the coupling.
	Apply(x []float64, forward bool) ([]float64, error)

	// ApplyBatch transports a batch-first set of weight vectors; row k of
	// the result is Apply(xs[k], forward).
	ApplyBatch(xs [][]float64, forward bool) ([][]float64, error)

	// Materialized reports whether the full transport matrix is held in
	// memory.
	Materialized() bool

	// Matrix returns the materialized transport matrix, or
	// ErrNotMaterialized for implicit (e.g. low-rank factored) couplings.
	Matrix() (*Dense, error)
}

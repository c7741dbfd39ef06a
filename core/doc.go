// Package core provides the fundamental data types for temporal
// optimal-transport analysis: time points, dense matrices, annotated
// datasets (point clouds plus labeled per-cell columns), and the
// ProblemSet — the read-only collection of solved pairwise sub-problems
// that every other package consumes.
//
// 🚀 What lives here?
//
//	• Time / Pair    — ordered time-point keys and ordered interval keys
//	• Dense          — row-major float64 matrix (point clouds, tables)
//	• Column         — labeled per-cell string column, optionally
//	                   categorical with an explicit category set
//	• Dataset        — point cloud (n cells × d features) + obs columns
//	• Output         — the opaque solver-output capability: apply mass
//	                   vectors through a coupling without knowing its
//	                   representation
//	• SubProblem     — one solved interval: source/target datasets,
//	                   coupling, optional per-cell growth rates
//	• ProblemSet     — Pair-keyed SubProblem collection with explicit
//	                   hop-chain resolution (Path) and per-time lookups
//
// Ownership & mutability:
//
//	The ProblemSet is built once by the orchestration layer and then read
//	concurrently by the analysis packages; none of them mutate it. All
//	derived objects (mass vectors, tables, interpolated clouds) are fresh
//	per call.
//
// Errors (sentinel):
//
//	ErrInvalidDimensions, ErrIndexOutOfBounds, ErrDimensionMismatch,
//	ErrColumnNotFound, ErrNotCategorical, ErrUnknownCategory,
//	ErrMissingValues, ErrTimeNotFound, ErrPairNotFound, ErrDuplicatePair,
//	ErrBadInterval, ErrNoGrowthRates, ErrNilProblemSet, ErrNilDataset,
//	ErrNotMaterialized.
//
// All lookups are O(1) or O(log T) in the number of time points; Path is
// O(T) after an O(T log T) sort amortized at insertion time.
package core

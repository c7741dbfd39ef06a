// Package cellflow is an in-memory toolkit for temporal optimal-transport
// analysis of single-cell time courses: compose per-interval transport
// couplings into multi-hop mass propagation, aggregate couplings into
// categorical transition tables, and validate trajectories with exact
// Wasserstein interpolation tests.
//
// 🚀 What is cellflow?
//
//	A library that takes pre-solved pairwise transport couplings between
//	consecutive time points and turns them into biology:
//		• Mass propagation: push/pull cell distributions across chains of
//		  time points, with optional marginal rescaling for unbalanced OT
//		• Transition tables: group-to-group (e.g. cell-type) transition
//		  matrices, row- or column-stochastic
//		• Transport sampling: draw (row, column) pairs from a coupling
//		  without ever materializing the full transport matrix
//		• Trajectory validation: OT-based and random interpolation of a
//		  held-out intermediate time point, scored by exact 2-Wasserstein
//		  distance
//
// ✨ Why choose cellflow?
//
//   - Solver-agnostic: couplings are consumed through a small capability
//     interface; dense and low-rank factored plans behave identically
//   - Deterministic: all sampling is driven by explicit per-call seeds
//   - Pure Go: no cgo, no numeric runtime, no hidden deps
//
// Everything is organized under per-concern subpackages:
//
//	core/       — time points, datasets, dense matrices, the SubProblem set
//	coupling/   — transport-coupling implementations (dense, low-rank)
//	propagate/  — multi-hop push/pull of mass distributions
//	sampling/   — seeded sampling of index pairs from implicit couplings
//	emd/        — exact earth mover's distance (2-Wasserstein primitive)
//	trajectory/ — interpolation-based trajectory validation
//	transition/ — categorical transition tables
//
// Quick sketch of a three-time-point analysis:
//
//	t=0 ──P01──▶ t=1 ──P12──▶ t=2
//
//	push mass from t=0 to t=2 through P01 then P12, or interpolate t=1
//	from (t=0, t=2) and compare against the real t=1 population.
//
// Dive into each package's doc.go for contracts, error semantics and
// complexity notes.
package cellflow

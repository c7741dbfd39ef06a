// Package coupling implements the transport-coupling capability
// (core.Output) consumed by the propagation, sampling and validation
// packages.
//
// 🚀 What is a coupling?
//
//	The result of one pairwise optimal-transport solve between a source
//	population of n cells and a target population of m cells: an n×m
//	non-negative plan P whose entries say how much mass flows from source
//	cell i to target cell j. Downstream analysis only ever needs to
//	transport weight vectors through P, never P itself.
//
// Implementations:
//
//   - MatrixOutput  — a dense, fully materialized plan. Apply is a plain
//     matrix-vector product. Memory O(n·m).
//   - LowRankOutput — a factored plan P = A·Bᵀ with A (n×r), B (m×r).
//     Apply goes through the factors in O((n+m)·r) and the full matrix is
//     never formed; Matrix() reports core.ErrNotMaterialized.
//
// Both transports agree exactly: for any x,
// MatrixOutput(A·Bᵀ).Apply(x, f) == LowRankOutput(A, B).Apply(x, f)
// up to floating-point rounding.
//
// Marginal helpers:
//
//	RowMarginals(o) — plan row sums  (P·1), the source-side marginal
//	ColMarginals(o) — plan column sums (1ᵀP), the target-side marginal
//
// computed through Apply on a ones vector, so they work for implicit
// plans too.
package coupling

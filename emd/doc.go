// Package emd computes the exact (non-regularized) earth mover's
// distance between weighted point clouds — the 2-Wasserstein primitive
// behind all trajectory validation scores.
//
// 🚀 What is EMD?
//
//	Given source weights a (n), target weights b (m) and a pairwise cost
//	matrix C, EMD finds the coupling F ≥ 0 with row sums a and column
//	sums b minimizing Σ F_ij·C_ij. With squared-Euclidean costs, the
//	square root of the optimal value is the 2-Wasserstein distance
//	between the clouds.
//
// ⚙️ Pipeline:
//
//	CostMatrix(x, y)          — pairwise squared-Euclidean costs
//	EMD(a, b, cost, opts)     — optimal transport cost (exact)
//	Distance(x, y, a, b, opts) — √EMD, i.e. the 2-Wasserstein distance
//
// Algorithm (transportation simplex):
//
//  1. Normalize a and b to total mass 1 (nil means uniform).
//  2. Northwest-corner rule builds an initial basic feasible solution
//     with exactly n+m-1 basic cells (degenerate zeros included).
//  3. MODI iteration: solve potentials u, v over the basis tree, pick the
//     non-basic cell with the most negative reduced cost C_ij - u_i - v_j,
//     find the unique pivot cycle in basis ∪ {entering}, shift θ = min
//     flow over the cycle's minus cells, drop the blocking cell.
//  4. Stop when no reduced cost is below -Epsilon (optimal), or fail with
//     ErrNotConverged after MaxIterations pivots.
//
// Complexity:
//
//   - Time:  O(n·m) per pivot (potentials + pricing); pivots are
//     problem-dependent, bounded by Options.MaxIterations.
//   - Memory: O(n·m) for flow and basis state.
//
// Determinism: no randomness anywhere; identical inputs produce identical
// transports.
package emd

// Package trajectory validates inferred cell trajectories by comparing
// interpolated intermediate distributions against the truly observed one,
// scored with the exact 2-Wasserstein distance.
//
// 🚀 The validation quartet, for a chain start < intermediate < end:
//
//   - InterpolatedDistance — sample transport-consistent (row, column)
//     pairs from the (start, end) coupling, blend the matched source and
//     target cells by the interpolation parameter τ, and measure the
//     distance between this synthetic cloud and the real intermediate
//     cloud. The headline score: small means the coupling explains the
//     held-out time point.
//   - RandomDistance       — identical blending, but rows and columns are
//     paired independently at random (rows optionally reweighted by
//     growth). The naive baseline OT-guided interpolation must beat.
//   - TimePointDistances   — direct distances (start, intermediate) and
//     (intermediate, end). The scale reference.
//   - BatchDistances       — mean pairwise distance between batches within
//     one time point. The noise floor.
//
// Interpolation parameter:
//
//	τ ∈ [0, 1] weights the blend (1−τ)·source + τ·target. When NaN it is
//	inferred linearly from the time values:
//	τ = (intermediate − start) / (end − start). InterpParam exposes the
//	inference; non-monotonic chains fail with ErrNotMonotonic and
//	out-of-range supplied values with ErrBadInterpolationParam.
//
// All stochastic operations accept an explicit seed (negative = per-call
// entropy) and are reproducible for fixed seeds.
package trajectory

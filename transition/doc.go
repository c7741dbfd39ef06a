// Package transition aggregates continuous cell-to-cell transport
// couplings into categorical group-to-group transition tables, e.g.
// cell-type → cell-type.
//
// 🚀 How a table is built (forward mode):
//
//	For every early category, the indicator mass of its member cells at
//	start is pushed to end through the coupling chain (normalized, not
//	marginal-rescaled), the arriving per-cell mass is grouped by late
//	category and summed, and the row is renormalized to sum 1 — a
//	row-stochastic table. Backward mode pulls late-category indicators to
//	start instead, producing a column-stochastic table.
//
// Undefined entries:
//
//	A category with zero observed members at the relevant end yields an
//	all-NaN row/column rather than an error; the same applies when the
//	propagation itself reports propagate.ErrNoMass. Every other
//	propagation failure propagates unchanged — the empty-mass condition
//	is the only recoverable one, and it is recognized structurally via
//	errors.Is, never by matching message text.
//
// Group specifications:
//
//	Groups names a categorical obs column and, optionally, an explicit
//	subset of its categories. Validation fails with
//	core.ErrNotCategorical, core.ErrUnknownCategory or
//	core.ErrMissingValues before any propagation runs.
//
// Complexity: one Push/Pull per requested category.
package transition

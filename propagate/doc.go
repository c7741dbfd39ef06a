// Package propagate composes chains of transport couplings to push or
// pull cell mass distributions across multiple time points.
//
// 🚀 What is mass propagation?
//
//	Given solved couplings P(t0,t1), P(t1,t2), …, pushing a mass vector
//	from t0 to tk applies each hop's coupling in turn:
//
//	    mass(t1) = mass(t0)ᵀ·P(t0,t1),  mass(t2) = mass(t1)ᵀ·P(t1,t2), …
//
//	Pulling runs the identical chain in reverse through the transposed
//	transports. The hop chain is resolved explicitly by
//	core.ProblemSet.Path; a missing hop fails with core.ErrPairNotFound.
//
// Marginal rescaling:
//
//	OT couplings conserve mass, not probability. With
//	Options.ScaleByMarginals the mass is divided elementwise by the hop's
//	source (push) or target (pull) marginal before each transport, so
//	multi-hop composition neither shrinks nor inflates total mass under
//	unbalanced couplings.
//
// Initial mass:
//
//	Uniform over the starting population by default; alternatively an
//	explicit vector (Options.Mass) or a categorical subset indicator
//	(Options.SubsetKey/Subset). A subset that selects zero cells fails
//	with the structured sentinel ErrNoMass — callers that can recover
//	(the transition aggregator) test for it with errors.Is.
//
// Write-back:
//
//	When Options.ResultKey and Options.Sink are set, the per-time-point
//	vectors are flattened in traversal order into a single column and
//	handed to the injected sink. MapSink is the in-memory implementation
//	used in tests.
//
// Complexity: one Apply per hop; everything else is O(cells) per hop.
package propagate

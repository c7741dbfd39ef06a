// Package sampling draws discrete (row, column) index pairs from a
// transport coupling without materializing the transport matrix.
//
// 🚀 How it works:
//
//  1. Row draws. nSamples source rows are drawn with replacement. The row
//     distribution is uniform unless Options.AccountForUnbalancedness is
//     set, in which case row i is drawn with probability proportional to
//     growth(i)^(1−τ) where τ is the interpolation parameter — cells with
//     higher projected growth are oversampled the closer the target lies
//     to the source snapshot's future.
//
//  2. Column draws. For each distinct sampled row the row's conditional
//     distribution over the target population is recovered by pushing a
//     one-hot indicator through the coupling's Apply — the plan itself is
//     never formed, so dense and low-rank factored plans cost the same.
//     Indicators are grouped into batches of Options.BatchSize per
//     ApplyBatch call purely for throughput; distinct rows are consumed
//     in ascending order, so the batch size can never change the output
//     for a fixed seed.
//
// Determinism:
//
//	A non-negative Options.Seed makes the draw fully reproducible; the
//	default negative seed derives entropy per call. There is no global
//	seeding — concurrent calls are independent.
//
// Complexity: O(nSamples·log n) for row draws plus one Apply per distinct
// row (batched), each O(cost of Apply).
package sampling

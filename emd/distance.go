package emd

import (
	"math"

	"github.com/katalvlaran/cellflow/core"
)

// Distance returns the 2-Wasserstein distance between two weighted point
// clouds: the square root of the exact transport cost under pairwise
// squared-Euclidean ground costs. nil weight vectors mean uniform.
// Complexity: CostMatrix O(n·m·d) + EMD.
func Distance(x, y *core.Dense, a, b []float64, opts Options) (float64, error) {
	cost, err := CostMatrix(x, y)
	if err != nil {
		return 0, err
	}
	total, err := EMD(a, b, cost, opts)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(total), nil
}

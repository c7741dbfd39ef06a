package emd

import (
	"fmt"

	"github.com/katalvlaran/cellflow/core"
)

// CostMatrix builds the pairwise squared-Euclidean cost matrix between
// two point clouds sharing one feature space.
// Stage 1 (Validate): non-nil clouds, matching feature dimensionality.
// Stage 2 (Execute): C_ij = Σ_k (x_ik - y_jk)².
// Complexity: O(n·m·d).
func CostMatrix(x, y *core.Dense) (*core.Dense, error) {
	if x == nil || y == nil {
		return nil, core.ErrNilDataset
	}
	if x.Cols() != y.Cols() {
		return nil, fmt.Errorf("%w: clouds have %d and %d features",
			core.ErrDimensionMismatch, x.Cols(), y.Cols())
	}
	n, m := x.Rows(), y.Rows()
	cost, err := core.NewDense(n, m)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		xi, _ := x.Row(i)
		ci, _ := cost.Row(i)
		for j := 0; j < m; j++ {
			yj, _ := y.Row(j)
			var s float64
			for k, v := range xi {
				d := v - yj[k]
				s += d * d
			}
			ci[j] = s
		}
	}
	return cost, nil
}

package propagate_test

import (
	"fmt"

	"github.com/katalvlaran/cellflow/core"
	"github.com/katalvlaran/cellflow/coupling"
	"github.com/katalvlaran/cellflow/propagate"
)

// ExamplePush pushes a one-hot mass through a tiny 2×3 coupling without
// rescaling: the result is the selected plan row.
func ExamplePush() {
	x, _ := core.NewDenseFromRows([][]float64{{0}, {1}})
	source, _ := core.NewDataset(x)
	y, _ := core.NewDenseFromRows([][]float64{{0}, {1}, {2}})
	target, _ := core.NewDataset(y)

	plan, _ := core.NewDenseFromRows([][]float64{
		{0.1, 0.2, 0.3},
		{0.1, 0.1, 0.2},
	})
	out, _ := coupling.NewMatrixOutput(plan)

	ps := core.NewProblemSet()
	_ = ps.Add(0, 1, &core.SubProblem{Source: source, Target: target, Solution: out})

	opts := propagate.DefaultOptions()
	opts.ScaleByMarginals = false
	opts.Normalize = false
	opts.Mass = []float64{1, 0}

	res, _ := propagate.Push(ps, 0, 1, opts)
	fmt.Printf("%.1f\n", res.Final())
	// Output:
	// [0.1 0.2 0.3]
}

package emd

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cellflow/core"
)

// EMD solves the exact transportation problem min Σ F_ij·C_ij subject to
// row sums a and column sums b, and returns the optimal cost.
//
// nil a or b means uniform weights. Supplied weights are validated
// (ErrNegativeWeight, ErrZeroTotalMass, core.ErrDimensionMismatch) and
// renormalized to total mass 1 on both sides.
//
// Complexity: O(n·m) per pivot; see package doc for the full outline.
func EMD(a, b []float64, cost *core.Dense, opts Options) (float64, error) {
	if cost == nil {
		return 0, ErrNilCost
	}
	n, m := cost.Rows(), cost.Cols()
	a, err := normalizeWeights(a, n)
	if err != nil {
		return 0, err
	}
	b, err = normalizeWeights(b, m)
	if err != nil {
		return 0, err
	}
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = DefaultMaxIterations
	}

	s := newSimplexState(n, m)
	s.northwestCorner(a, b, opts.Epsilon)

	for iter := 0; ; iter++ {
		if iter >= opts.MaxIterations {
			return 0, fmt.Errorf("%w: after %d pivots", ErrNotConverged, iter)
		}
		if err := s.solvePotentials(cost); err != nil {
			return 0, err
		}
		ei, ej, rc := s.pricing(cost)
		if rc >= -opts.Epsilon {
			break // optimal
		}
		if err := s.pivot(ei, ej); err != nil {
			return 0, err
		}
	}

	total := s.totalCost(cost)
	if total < 0 {
		total = 0
	}
	return total, nil
}

// simplexState carries the basis, flows and potentials of one solve.
type simplexState struct {
	n, m  int
	flow  []float64 // n*m row-major
	basic []bool    // n*m row-major
	u, v  []float64 // row / column potentials
}

func newSimplexState(n, m int) *simplexState {
	return &simplexState{
		n:     n,
		m:     m,
		flow:  make([]float64, n*m),
		basic: make([]bool, n*m),
		u:     make([]float64, n),
		v:     make([]float64, m),
	}
}

func (s *simplexState) idx(i, j int) int { return i*s.m + j }

// northwestCorner builds the initial basic feasible solution. The
// staircase walk marks exactly n+m-1 cells basic (degenerate zeros
// included), which keeps the basis graph a spanning tree.
func (s *simplexState) northwestCorner(a, b []float64, eps float64) {
	supply := append([]float64(nil), a...)
	demand := append([]float64(nil), b...)
	i, j := 0, 0
	for {
		q := math.Min(supply[i], demand[j])
		s.flow[s.idx(i, j)] = q
		s.basic[s.idx(i, j)] = true
		supply[i] -= q
		demand[j] -= q
		if i == s.n-1 && j == s.m-1 {
			return
		}
		// Exhausted supply moves down, otherwise move right; boundary rows
		// and columns absorb rounding leftovers.
		switch {
		case supply[i] <= eps && i < s.n-1:
			i++
		case j < s.m-1:
			j++
		default:
			i++
		}
	}
}

// solvePotentials assigns u, v so that u_i + v_j = C_ij on every basic
// cell, via BFS over the basis spanning tree rooted at row 0 (u_0 = 0).
func (s *simplexState) solvePotentials(cost *core.Dense) error {
	uSet := make([]bool, s.n)
	vSet := make([]bool, s.m)
	s.u[0] = 0
	uSet[0] = true

	// Nodes: rows are 0..n-1, columns are n..n+m-1.
	queue := make([]int, 0, s.n+s.m)
	queue = append(queue, 0)
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if node < s.n {
			i := node
			for j := 0; j < s.m; j++ {
				if s.basic[s.idx(i, j)] && !vSet[j] {
					c, _ := cost.At(i, j)
					s.v[j] = c - s.u[i]
					vSet[j] = true
					queue = append(queue, s.n+j)
				}
			}
		} else {
			j := node - s.n
			for i := 0; i < s.n; i++ {
				if s.basic[s.idx(i, j)] && !uSet[i] {
					c, _ := cost.At(i, j)
					s.u[i] = c - s.v[j]
					uSet[i] = true
					queue = append(queue, i)
				}
			}
		}
	}

	for i, ok := range uSet {
		if !ok {
			return fmt.Errorf("%w: basis tree disconnected at row %d", ErrNotConverged, i)
		}
	}
	for j, ok := range vSet {
		if !ok {
			return fmt.Errorf("%w: basis tree disconnected at column %d", ErrNotConverged, j)
		}
	}
	return nil
}

// pricing scans the non-basic cells for the most negative reduced cost
// C_ij - u_i - v_j and returns the entering cell with its reduced cost.
func (s *simplexState) pricing(cost *core.Dense) (ei, ej int, rc float64) {
	ei, ej, rc = -1, -1, math.Inf(1)
	for i := 0; i < s.n; i++ {
		row, _ := cost.Row(i)
		for j := 0; j < s.m; j++ {
			if s.basic[s.idx(i, j)] {
				continue
			}
			r := row[j] - s.u[i] - s.v[j]
			if r < rc {
				ei, ej, rc = i, j, r
			}
		}
	}
	return ei, ej, rc
}

// pivot brings (ei, ej) into the basis: it finds the unique alternating
// cycle through the basis tree, shifts θ = min flow over the minus cells
// around it, and drops the blocking cell.
func (s *simplexState) pivot(ei, ej int) error {
	path, err := s.basisPath(ei, ej)
	if err != nil {
		return err
	}

	// Cells along the cycle, excluding the entering cell: consecutive node
	// pairs of the tree path, alternating minus/plus starting at minus.
	type cell struct{ i, j int }
	cells := make([]cell, 0, len(path)-1)
	for k := 0; k+1 < len(path); k++ {
		x, y := path[k], path[k+1]
		if x >= s.n {
			x, y = y, x
		}
		cells = append(cells, cell{i: x, j: y - s.n})
	}

	// θ = min flow over the minus cells (even positions).
	theta := math.Inf(1)
	leave := -1
	for k := 0; k < len(cells); k += 2 {
		f := s.flow[s.idx(cells[k].i, cells[k].j)]
		if f < theta {
			theta = f
			leave = k
		}
	}

	// Shift flow around the cycle.
	s.flow[s.idx(ei, ej)] += theta
	s.basic[s.idx(ei, ej)] = true
	for k, c := range cells {
		if k%2 == 0 {
			s.flow[s.idx(c.i, c.j)] -= theta
		} else {
			s.flow[s.idx(c.i, c.j)] += theta
		}
	}

	// Drop exactly one blocking cell to keep the basis a spanning tree.
	drop := cells[leave]
	s.flow[s.idx(drop.i, drop.j)] = 0
	s.basic[s.idx(drop.i, drop.j)] = false
	return nil
}

// basisPath finds the tree path from row node ei to column node n+ej
// through basic cells via BFS, returning the node sequence starting at
// n+ej and ending at ei. Closing it with the entering cell (ei, ej)
// yields the unique pivot cycle.
func (s *simplexState) basisPath(ei, ej int) ([]int, error) {
	total := s.n + s.m
	parent := make([]int, total)
	for i := range parent {
		parent[i] = -1
	}
	visited := make([]bool, total)
	visited[ei] = true
	queue := []int{ei}
	target := s.n + ej

	for len(queue) > 0 && !visited[target] {
		node := queue[0]
		queue = queue[1:]
		if node < s.n {
			i := node
			for j := 0; j < s.m; j++ {
				if s.basic[s.idx(i, j)] && !visited[s.n+j] {
					visited[s.n+j] = true
					parent[s.n+j] = node
					queue = append(queue, s.n+j)
				}
			}
		} else {
			j := node - s.n
			for i := 0; i < s.n; i++ {
				if s.basic[s.idx(i, j)] && !visited[i] {
					visited[i] = true
					parent[i] = node
					queue = append(queue, i)
				}
			}
		}
	}
	if !visited[target] {
		return nil, fmt.Errorf("%w: no pivot cycle for cell (%d,%d)", ErrNotConverged, ei, ej)
	}

	path := []int{target}
	for node := target; node != ei; {
		node = parent[node]
		path = append(path, node)
	}
	return path, nil
}

// totalCost sums flow·cost over the transport plan.
func (s *simplexState) totalCost(cost *core.Dense) float64 {
	var total float64
	for i := 0; i < s.n; i++ {
		row, _ := cost.Row(i)
		for j := 0; j < s.m; j++ {
			if f := s.flow[s.idx(i, j)]; f != 0 {
				total += f * row[j]
			}
		}
	}
	return total
}

// normalizeWeights validates a weight vector against the expected length
// and rescales it to total mass 1; nil means uniform.
func normalizeWeights(w []float64, n int) ([]float64, error) {
	if w == nil {
		w = make([]float64, n)
		for i := range w {
			w[i] = 1 / float64(n)
		}
		return w, nil
	}
	if len(w) != n {
		return nil, fmt.Errorf("%w: %d weights for %d points", core.ErrDimensionMismatch, len(w), n)
	}
	var total float64
	for i, v := range w {
		if v < 0 {
			return nil, fmt.Errorf("%w: entry %d is %g", ErrNegativeWeight, i, v)
		}
		total += v
	}
	if total <= 0 {
		return nil, ErrZeroTotalMass
	}
	out := make([]float64, n)
	for i, v := range w {
		out[i] = v / total
	}
	return out, nil
}

package solver

import (
	"context"
	"math"

	"github.com/katalvlaran/tabopt/matrix"
	"github.com/katalvlaran/tabopt/model"
)

// Hungarian computes minimum-cost perfect matchings.
type Hungarian struct{}

// NewHungarian returns the assignment solver.
func NewHungarian() *Hungarian { return &Hungarian{} }

var _ AssignmentSolver = (*Hungarian)(nil)

// SolveAssignment implements AssignmentSolver.
//
// The returned Rows are 0..n-1 in order and Cols[i] is the column matched to
// row i. A well-formed square matrix always admits a perfect matching, so
// there is no infeasible or unbounded outcome.
//
// Complexity: O(n³) time, O(n²) extra space for the working copy.
func (h *Hungarian) SolveAssignment(ctx context.Context, cm *model.CostMatrix) (*AssignmentOutcome, error) {
	if cm == nil {
		return nil, model.ErrNilModel
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	grid := cm.Dense()
	if grid == nil {
		return nil, model.Errorf(model.ErrShape, "matrix has no cells")
	}
	if err := matrix.ValidateSquare(grid); err != nil {
		return nil, model.Errorf(model.ErrShape, "%v", err)
	}
	if err := matrix.ValidateFinite(grid); err != nil {
		return nil, model.Errorf(model.ErrNumericCoercion, "%v", err)
	}
	n := grid.Rows()
	if len(cm.RowLabels) != n || len(cm.ColLabels) != n {
		return nil, model.Errorf(model.ErrShape, "%d×%d labels for a %d×%d matrix", len(cm.RowLabels), len(cm.ColLabels), n, n)
	}

	rowOf := hungarian(grid.ToRows(), n)

	out := &AssignmentOutcome{Rows: make([]int, n), Cols: make([]int, n)}
	for j := 1; j <= n; j++ {
		i := rowOf[j] - 1
		out.Rows[i] = i
		out.Cols[i] = j - 1
	}

	return out, nil
}

// hungarian runs the potentials method on a 1-based frame.
// It returns p where p[j] (j ∈ 1..n) is the 1-based row matched to column j.
//
// Invariant: after row i is inserted, u[r] + v[c] ≤ a[r][c] for all r, c,
// with equality on matched pairs; the matching is therefore optimal.
func hungarian(a [][]float64, n int) []int {
	var (
		u   = make([]float64, n+1) // row potentials
		v   = make([]float64, n+1) // column potentials
		p   = make([]int, n+1)     // column → row, 0 = free (p[0] is the row being inserted)
		way = make([]int, n+1)     // predecessor column on the augmenting path
	)
	minv := make([]float64, n+1)
	used := make([]bool, n+1)

	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0
		for j := range minv {
			minv[j] = math.Inf(1)
			used[j] = false
		}

		// Grow the alternating tree until a free column is reached.
		for {
			used[j0] = true
			i0 := p[j0]
			delta := math.Inf(1)
			j1 := 0
			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur := a[i0-1][j-1] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			for j := 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}

		// Augment along the recorded path.
		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	return p
}

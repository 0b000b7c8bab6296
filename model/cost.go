package model

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tabopt/matrix"
)

// CostMatrix is a labeled square matrix of assignment costs (or utilities).
//
// Cell (i, j) is the cost of giving column j (task) to row i (agent).
// Construct with NewCostMatrix; the zero value has no cells and is rejected
// by the solvers.
type CostMatrix struct {
	RowLabels []string
	ColLabels []string
	cells     *matrix.Dense
}

// NewCostMatrix validates and copies its inputs.
//
// Stage 1 (Labels): n ≥ 1 rows, one value row per label.
// Stage 2 (Grid): matrix.NewDense(n, len(cols)) + ValidateSquare, then
// every cell through Dense.Set (finite only).
// Errors: *FieldError wrapping ErrShape or ErrNumericCoercion.
// Complexity: O(n²).
func NewCostMatrix(rows, cols []string, values [][]float64) (*CostMatrix, error) {
	n := len(rows)
	if n == 0 {
		return nil, Errorf(ErrShape, "matrix has no rows")
	}
	if len(values) != n {
		return nil, Errorf(ErrShape, "%d labels but %d value rows", n, len(values))
	}

	cells, err := matrix.NewDense(n, len(cols))
	if err != nil {
		return nil, Errorf(ErrShape, "%d rows × %d columns: %v", n, len(cols), err)
	}
	if err = matrix.ValidateSquare(cells); err != nil {
		return nil, Errorf(ErrShape, "%d rows × %d columns, matrix must be square", n, len(cols))
	}
	for i, row := range values {
		if len(row) != n {
			return nil, &FieldError{Kind: ErrShape, Row: i + 1, Reason: fmt.Sprintf("row has %d cells, want %d", len(row), n)}
		}
		for j, v := range row {
			if err = cells.Set(i, j, v); err != nil {
				if errors.Is(err, matrix.ErrNaNInf) {
					return nil, &FieldError{Kind: ErrNumericCoercion, Column: cols[j], Row: i + 1, Value: v}
				}

				return nil, err
			}
		}
	}

	return &CostMatrix{
		RowLabels: append([]string(nil), rows...),
		ColLabels: append([]string(nil), cols...),
		cells:     cells,
	}, nil
}

// Size returns n for an n×n matrix, 0 for the zero value.
func (c *CostMatrix) Size() int {
	if c.cells == nil {
		return 0
	}

	return c.cells.Rows()
}

// At returns the cell (i, j); indices outside the matrix read as 0.
func (c *CostMatrix) At(i, j int) float64 {
	if c.cells == nil {
		return 0
	}
	v, _ := c.cells.At(i, j)

	return v
}

// Dense exposes the backing grid (nil for the zero value). Callers must
// not mutate it; use Clone first.
func (c *CostMatrix) Dense() *matrix.Dense { return c.cells }

// Values returns the cells as a fresh [][]float64.
func (c *CostMatrix) Values() [][]float64 {
	if c.cells == nil {
		return nil
	}

	return c.cells.ToRows()
}

// Clone returns a deep copy.
func (c *CostMatrix) Clone() *CostMatrix {
	out := &CostMatrix{
		RowLabels: append([]string(nil), c.RowLabels...),
		ColLabels: append([]string(nil), c.ColLabels...),
	}
	if c.cells != nil {
		out.cells = c.cells.Clone()
	}

	return out
}

// Negated returns a copy with every cell negated, turning a utility
// maximization into a cost minimization.
func (c *CostMatrix) Negated() *CostMatrix {
	out := c.Clone()
	if out.cells != nil {
		// Negating a finite value is finite; Apply cannot fail here.
		_ = out.cells.Apply(func(_, _ int, v float64) float64 { return -v })
	}

	return out
}

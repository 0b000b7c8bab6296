package schema

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/tabopt/model"
	"github.com/katalvlaran/tabopt/table"
)

// AssignmentInput wraps the validated square cost matrix.
type AssignmentInput struct {
	Matrix *model.CostMatrix
}

// ValidateAssignment checks a square agents × tasks table.
//
// Row labels come from t.Index; missing or blank labels default to
// "Agente i". Column labels are the headers.
//
// Stage 1 (Shape): rows ≥ 1 and rows == columns, else ErrShape; checked
// before any cell is read so a 3×4 table fails fast.
// Stage 2 (Cells): every cell must coerce; a blank cell is an error here
// (ErrNumericCoercion), not zero.
//
// Complexity: O(n²).
func ValidateAssignment(t *table.Table) (*AssignmentInput, error) {
	if t == nil {
		return nil, model.Errorf(model.ErrShape, "table is missing")
	}

	// Stage 1: shape.
	rows, cols := t.Len(), t.Width()
	if rows == 0 || cols == 0 {
		return nil, &model.FieldError{Kind: model.ErrShape, Table: t.Name, Reason: fmt.Sprintf("%d×%d matrix is empty", rows, cols)}
	}
	if rows != cols {
		return nil, &model.FieldError{Kind: model.ErrShape, Table: t.Name, Reason: fmt.Sprintf("%d rows × %d columns, matrix must be square", rows, cols)}
	}

	// Column labels must be unique: they become pair labels in the result.
	colLabels := make([]string, cols)
	colSeen := make(map[string]struct{}, cols)
	for j, c := range t.Columns {
		colLabels[j] = strings.TrimSpace(c)
		if colLabels[j] == "" {
			colLabels[j] = fmt.Sprintf("%s %d", TaskLabel, j+1)
		}
		if _, dup := colSeen[colLabels[j]]; dup {
			return nil, &model.FieldError{Kind: model.ErrSchema, Table: t.Name, Column: colLabels[j], Reason: "duplicate column label"}
		}
		colSeen[colLabels[j]] = struct{}{}
	}

	// Stage 2: cells.
	var (
		rowLabels = make([]string, rows)
		values    = make([][]float64, rows)
		seen      = make(map[string]struct{}, rows)
	)
	for i := 0; i < rows; i++ {
		rowLabels[i] = strings.TrimSpace(t.Label(i))
		if rowLabels[i] == "" {
			rowLabels[i] = fmt.Sprintf("%s %d", AgentLabel, i+1)
		}
		if _, dup := seen[rowLabels[i]]; dup {
			return nil, &model.FieldError{Kind: model.ErrSchema, Table: t.Name, Row: i + 1, Value: rowLabels[i], Reason: "duplicate row label"}
		}
		seen[rowLabels[i]] = struct{}{}

		values[i] = make([]float64, cols)
		for j, col := range colLabels {
			v, ok, err := coerce(t, i, col, t.CellAt(i, j))
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, &model.FieldError{Kind: model.ErrNumericCoercion, Table: t.Name, Column: col, Row: i + 1, Reason: "cell is empty"}
			}
			values[i][j] = v
		}
	}

	cm, err := model.NewCostMatrix(rowLabels, colLabels, values)
	if err != nil {
		return nil, err
	}

	return &AssignmentInput{Matrix: cm}, nil
}

// SPDX-License-Identifier: MIT

package schema

import (
	"github.com/katalvlaran/tabopt/model"
	"github.com/katalvlaran/tabopt/table"
)

// ConstraintRow is one validated row of the restricciones table.
type ConstraintRow struct {
	Name     string
	Relation model.Relation
	RHS      float64
}

// LinearInput is the validated, fully numeric form of a linear problem.
//
// Coefficients[i][k] is the value of the k-th Coef_R# column in variable
// row i. The binding is positional: CoefPositions[k] is that column's index
// in the table and CoefColumns[k] its header, so two columns with the same
// header still feed two different constraints.
type LinearInput struct {
	Variables     []string
	Objective     []float64
	CoefColumns   []string
	CoefPositions []int
	Coefficients  [][]float64
	Constraints   []ConstraintRow
}

// ValidateLinear checks the variable table (vars) and the constraint table
// (cons) and returns their typed form.
//
// Stage 1 (Schema): required columns in both tables, ≥1 Coef_R# column.
// Stage 2 (Variables): unique non-empty names; Coef_FO and Coef_R# coerced,
// blanks → 0. Coef_R# cells are read by column position, never by header.
// Stage 3 (Constraints): unique non-empty names; Tipo ∈ {<=, =, >=};
// RHS coerced, blank → 0.
//
// The constraint-row / coefficient-column count is NOT checked here; that is
// a structural property enforced by build.Linear.
//
// Complexity: O(V·K + R) for V variables, K coefficient columns, R constraints.
func ValidateLinear(vars, cons *table.Table) (*LinearInput, error) {
	// Stage 1: columns.
	if err := requireColumns(vars, ColVariable, ColObjective); err != nil {
		return nil, err
	}
	coefCols := vars.ColumnsWithPrefix(CoefPrefix)
	coefPos := vars.ColumnPositionsWithPrefix(CoefPrefix)
	if len(coefCols) == 0 {
		return nil, &model.FieldError{Kind: model.ErrSchema, Table: vars.Name, Column: CoefPrefix + "#",
			Reason: "at least one constraint coefficient column is required"}
	}
	if err := requireColumns(cons, ColConstraint, ColRelation, ColRHS); err != nil {
		return nil, err
	}

	in := &LinearInput{
		Variables:     make([]string, 0, vars.Len()),
		Objective:     make([]float64, 0, vars.Len()),
		CoefColumns:   coefCols,
		CoefPositions: coefPos,
		Coefficients:  make([][]float64, 0, vars.Len()),
		Constraints:   make([]ConstraintRow, 0, cons.Len()),
	}

	// Stage 2: variable rows.
	var (
		seen = make(map[string]int, vars.Len())
		name string
		obj  float64
		err  error
	)
	for i := 0; i < vars.Len(); i++ {
		if name, err = uniqueName(vars, i, ColVariable, seen); err != nil {
			return nil, err
		}
		if obj, err = numberOrZero(vars, i, ColObjective); err != nil {
			return nil, err
		}
		row := make([]float64, len(coefCols))
		for k, j := range coefPos {
			if row[k], _, err = coerce(vars, i, coefCols[k], vars.CellAt(i, j)); err != nil {
				return nil, err
			}
		}
		in.Variables = append(in.Variables, name)
		in.Objective = append(in.Objective, obj)
		in.Coefficients = append(in.Coefficients, row)
	}

	// Stage 3: constraint rows.
	seen = make(map[string]int, cons.Len())
	var (
		rel model.Relation
		rhs float64
	)
	for i := 0; i < cons.Len(); i++ {
		if name, err = uniqueName(cons, i, ColConstraint, seen); err != nil {
			return nil, err
		}
		tipo := textAt(cons, i, ColRelation)
		if rel, err = model.ParseRelation(tipo); err != nil {
			return nil, &model.FieldError{Kind: model.ErrRelation, Table: cons.Name, Column: ColRelation, Row: i + 1,
				Value: tipo, Reason: "allowed: <=, =, >="}
		}
		if rhs, err = numberOrZero(cons, i, ColRHS); err != nil {
			return nil, err
		}
		in.Constraints = append(in.Constraints, ConstraintRow{Name: name, Relation: rel, RHS: rhs})
	}

	return in, nil
}

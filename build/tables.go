package build

import (
	"fmt"

	"github.com/katalvlaran/tabopt/model"
	"github.com/katalvlaran/tabopt/schema"
	"github.com/katalvlaran/tabopt/table"
)

// Tables re-derives the modelo / restricciones tables from a model:
// Variable, Coef_FO, Coef_R1..Coef_Rr on one side and Restriccion, Tipo, RHS
// on the other. Constraint k is written to column Coef_R(k+1), so feeding the
// tables back through schema.ValidateLinear and Linear reproduces the model.
//
// Complexity: O(V·R).
func Tables(m *model.OptimizationModel) (vars, cons *table.Table, err error) {
	if m == nil {
		return nil, nil, model.ErrNilModel
	}

	cols := []string{schema.ColVariable, schema.ColObjective}
	for k := range m.Constraints {
		cols = append(cols, fmt.Sprintf("%s%d", schema.CoefPrefix, k+1))
	}
	vars = table.New(schema.SheetModel, cols...)
	for _, v := range m.Variables {
		row := make([]any, 0, len(cols))
		row = append(row, v.Name, v.Objective)
		for _, c := range m.Constraints {
			row = append(row, c.Coefficient(v.Name))
		}
		if err = vars.Append(row...); err != nil {
			return nil, nil, err
		}
	}

	cons = table.New(schema.SheetConstraints, schema.ColConstraint, schema.ColRelation, schema.ColRHS)
	for _, c := range m.Constraints {
		if err = cons.Append(c.Name, c.Relation.String(), c.RHS); err != nil {
			return nil, nil, err
		}
	}

	return vars, cons, nil
}

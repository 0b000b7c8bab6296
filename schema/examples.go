package schema

import "github.com/katalvlaran/tabopt/table"

// MaximizeExample is the production-mix example:
//
//	max 40·X1 + 30·X2
//	R1: 2·X1 + X2   ≤ 100
//	R2: 3·X1 + 2·X2 ≤ 80
func MaximizeExample() (vars, cons *table.Table) {
	vars = table.MustFromRows(SheetModel,
		[]string{ColVariable, ColObjective, "Coef_R1", "Coef_R2"},
		[]any{"X1", 40.0, 2.0, 3.0},
		[]any{"X2", 30.0, 1.0, 2.0},
	)
	cons = table.MustFromRows(SheetConstraints,
		[]string{ColConstraint, ColRelation, ColRHS},
		[]any{"R1", "<=", 100.0},
		[]any{"R2", "<=", 80.0},
	)

	return vars, cons
}

// MinimizeExample is the diet-style example:
//
//	min 2·X1 + 3·X2
//	R1: 5·X1 + 10·X2 ≥ 90
//	R2: 4·X1 + 3·X2  ≥ 48
//	R3: 0.5·X1       ≥ 1.5
func MinimizeExample() (vars, cons *table.Table) {
	vars = table.MustFromRows(SheetModel,
		[]string{ColVariable, ColObjective, "Coef_R1", "Coef_R2", "Coef_R3"},
		[]any{"X1", 2.0, 5.0, 4.0, 0.5},
		[]any{"X2", 3.0, 10.0, 3.0, 0.0},
	)
	cons = table.MustFromRows(SheetConstraints,
		[]string{ColConstraint, ColRelation, ColRHS},
		[]any{"R1", ">=", 90.0},
		[]any{"R2", ">=", 48.0},
		[]any{"R3", ">=", 1.5},
	)

	return vars, cons
}

// TransportExample ships from O1 (100) and O2 (200) to D1 (120) and D2 (180).
func TransportExample() *table.Table {
	return table.MustFromRows(SheetCosts,
		[]string{ColOrigin, ColDestination, ColCost, ColSupply, ColDemand},
		[]any{"O1", "D1", 5.0, 100.0, 120.0},
		[]any{"O1", "D2", 8.0, nil, 180.0},
		[]any{"O2", "D1", 4.0, 200.0, nil},
		[]any{"O2", "D2", 3.0, nil, nil},
	)
}

// AssignmentExample is a 3×3 cost matrix whose optimum is 5
// (Agente 1→Tarea 2, Agente 2→Tarea 1, Agente 3→Tarea 3).
func AssignmentExample() *table.Table {
	t := table.New(SheetCosts, "Tarea 1", "Tarea 2", "Tarea 3")
	_ = t.AppendLabeled("Agente 1", 4.0, 1.0, 3.0)
	_ = t.AppendLabeled("Agente 2", 2.0, 0.0, 5.0)
	_ = t.AppendLabeled("Agente 3", 3.0, 2.0, 2.0)

	return t
}

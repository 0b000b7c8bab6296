package schema

import (
	"fmt"

	"github.com/katalvlaran/tabopt/table"
)

// LinearTemplate returns zero-filled modelo / restricciones tables for v
// variables and r constraints: X1..Xv, Coef_R1..Coef_Rr, R1..Rr with "<=".
// Non-positive sizes are raised to 1.
func LinearTemplate(v, r int) (vars, cons *table.Table) {
	v, r = atLeastOne(v), atLeastOne(r)

	cols := []string{ColVariable, ColObjective}
	for k := 1; k <= r; k++ {
		cols = append(cols, fmt.Sprintf("%s%d", CoefPrefix, k))
	}
	vars = table.New(SheetModel, cols...)
	for i := 1; i <= v; i++ {
		row := make([]any, len(cols))
		row[0] = fmt.Sprintf("X%d", i)
		for j := 1; j < len(cols); j++ {
			row[j] = 0.0
		}
		_ = vars.Append(row...) // width matches by construction
	}

	cons = table.New(SheetConstraints, ColConstraint, ColRelation, ColRHS)
	for k := 1; k <= r; k++ {
		_ = cons.Append(fmt.Sprintf("R%d", k), "<=", 0.0)
	}

	return vars, cons
}

// TransportTemplate returns an o×d long-format grid O1..Oo × D1..Dd with zero
// costs. Supply placeholders sit on each origin's first row and demand
// placeholders on the first origin's rows, matching the sparse convention.
func TransportTemplate(o, d int) *table.Table {
	o, d = atLeastOne(o), atLeastOne(d)

	t := table.New(SheetCosts, ColOrigin, ColDestination, ColCost, ColSupply, ColDemand)
	for i := 1; i <= o; i++ {
		for j := 1; j <= d; j++ {
			var supply, demand any
			if j == 1 {
				supply = 20.0
			}
			if i == 1 {
				demand = 30.0
			}
			_ = t.Append(fmt.Sprintf("O%d", i), fmt.Sprintf("D%d", j), 0.0, supply, demand)
		}
	}

	return t
}

// AssignmentTemplate returns an n×n zero matrix labeled Agente i × Tarea j.
// n is raised to 2 when smaller.
func AssignmentTemplate(n int) *table.Table {
	if n < 2 {
		n = 2
	}
	cols := make([]string, n)
	for j := range cols {
		cols[j] = fmt.Sprintf("%s %d", TaskLabel, j+1)
	}
	t := table.New(SheetCosts, cols...)
	for i := 1; i <= n; i++ {
		row := make([]any, n)
		for j := range row {
			row[j] = 0.0
		}
		_ = t.AppendLabeled(fmt.Sprintf("%s %d", AgentLabel, i), row...)
	}

	return t
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}

	return n
}

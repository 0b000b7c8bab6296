package result_test

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/tabopt/model"
	"github.com/katalvlaran/tabopt/result"
	"github.com/katalvlaran/tabopt/solver"
)

// ExampleLinear normalizes a raw solver outcome and renders it as JSON.
func ExampleLinear() {
	m := &model.OptimizationModel{
		Name:      "mix",
		Sense:     model.Maximize,
		Variables: []model.VariableSpec{{Name: "X1", Objective: 40}, {Name: "X2", Objective: 30}},
	}
	raw := &solver.LinearOutcome{Status: "Optimal", Objective: 1200, Values: map[string]float64{"X1": 0, "X2": 40}}

	res, err := result.Linear(model.KindMaximize, m, raw)
	if err != nil {
		fmt.Println(err)
		return
	}
	b, _ := json.Marshal(res)
	fmt.Println(string(b))
	// Output:
	// {"kind":"maximize","shape":"variables","status":"OPTIMAL","objective":1200,"variables":[{"name":"X1","value":0},{"name":"X2","value":40}]}
}

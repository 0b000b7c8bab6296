package runner_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/tabopt/model"
	"github.com/katalvlaran/tabopt/runner"
	"github.com/katalvlaran/tabopt/schema"
)

// ExampleRunner_SolveLinear solves the production-mix example.
func ExampleRunner_SolveLinear() {
	vars, cons := schema.MaximizeExample()
	res, err := runner.New().SolveLinear(context.Background(), model.Maximize, vars, cons)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Status, *res.Objective)
	for _, v := range res.Variables {
		fmt.Printf("%s = %g\n", v.Name, v.Value)
	}
	// Output:
	// OPTIMAL 1200
	// X1 = 0
	// X2 = 40
}

// ExampleRunner_SolveAssignment matches agents to tasks at minimum cost.
func ExampleRunner_SolveAssignment() {
	res, err := runner.New().SolveAssignment(context.Background(), model.Minimize, schema.AssignmentExample())
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, p := range res.Pairs {
		fmt.Printf("%s -> %s (%g)\n", p.Row, p.Col, p.Cost)
	}
	fmt.Println("total:", *res.Objective)
	// Output:
	// Agente 1 -> Tarea 2 (1)
	// Agente 2 -> Tarea 1 (2)
	// Agente 3 -> Tarea 3 (2)
	// total: 5
}

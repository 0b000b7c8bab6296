package build

import (
	"github.com/katalvlaran/tabopt/model"
	"github.com/katalvlaran/tabopt/schema"
)

// AssignmentPlan is what the assignment variant hands to the solving service.
//
// Original holds the user's matrix and is what results are reported
// against. Solve is the matrix the minimum-cost matcher receives: the same
// matrix for Minimize, the cell-wise negation for Maximize.
type AssignmentPlan struct {
	Sense    model.Sense
	Original *model.CostMatrix
	Solve    *model.CostMatrix
}

// Assignment prepares a validated square matrix for perfect matching.
// The sense is explicit: callers never negate costs themselves.
// Complexity: O(n²) for the maximize copy, O(1) otherwise.
func Assignment(in *schema.AssignmentInput, sense model.Sense) (*AssignmentPlan, error) {
	if in == nil || in.Matrix == nil {
		return nil, model.ErrNilModel
	}

	plan := &AssignmentPlan{Sense: sense, Original: in.Matrix, Solve: in.Matrix}
	if sense == model.Maximize {
		plan.Solve = in.Matrix.Negated()
	}

	return plan, nil
}

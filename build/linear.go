// SPDX-License-Identifier: MIT

package build

import (
	"fmt"

	"github.com/katalvlaran/tabopt/model"
	"github.com/katalvlaran/tabopt/schema"
)

// Model names given to built programs.
const (
	MaximizeModelName  = "Modelo_de_Maximizacion"
	MinimizeModelName  = "Modelo_de_Minimizacion"
	TransportModelName = "Problema_de_Transporte"
)

// Linear builds the OptimizationModel of a maximization or minimization
// problem.
//
// Stage 1 (Structure): the number of constraint rows must equal the number
// of coefficient columns, otherwise ErrStructuralMismatch; this is checked
// before any constraint is allocated so a short table can never index past its
// last column.
// Stage 2 (Variables): one VariableSpec per row, Objective = Coef_FO.
// Stage 3 (Constraints): row k → Synthesize(in, k).
// Stage 4 (Finalize): model.Validate.
//
// Complexity: O(V·R).
func Linear(in *schema.LinearInput, sense model.Sense) (*model.OptimizationModel, error) {
	if in == nil {
		return nil, model.ErrNilModel
	}

	// Stage 1: structure.
	if len(in.Constraints) != len(in.CoefColumns) {
		return nil, model.Errorf(model.ErrStructuralMismatch,
			"%d constraint rows but %d coefficient columns (%v)",
			len(in.Constraints), len(in.CoefColumns), in.CoefColumns)
	}

	name := MinimizeModelName
	if sense == model.Maximize {
		name = MaximizeModelName
	}
	m := &model.OptimizationModel{
		Name:        name,
		Sense:       sense,
		Variables:   make([]model.VariableSpec, len(in.Variables)),
		Constraints: make([]model.ConstraintSpec, len(in.Constraints)),
	}

	// Stage 2: variables.
	for i, v := range in.Variables {
		m.Variables[i] = model.VariableSpec{Name: v, Objective: in.Objective[i]}
	}

	// Stage 3: constraints, positional.
	var err error
	for k := range in.Constraints {
		if m.Constraints[k], err = Synthesize(in, k); err != nil {
			return nil, err
		}
	}

	// Stage 4: invariants.
	if err = m.Validate(); err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}

	return m, nil
}

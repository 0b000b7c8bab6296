// SPDX-License-Identifier: MIT

package model

import (
	"fmt"
	"math"
)

// VariableSpec is one decision variable and its objective coefficient.
type VariableSpec struct {
	Name      string  `json:"name" yaml:"name"`
	Objective float64 `json:"objective" yaml:"objective"`
}

// ConstraintSpec is one linear constraint: Σ Coefficients[v]·v  Relation  RHS.
// Coefficients is keyed by VariableSpec.Name; absent keys mean 0.
type ConstraintSpec struct {
	Name         string             `json:"name" yaml:"name"`
	Relation     Relation           `json:"relation" yaml:"relation"`
	RHS          float64            `json:"rhs" yaml:"rhs"`
	Coefficients map[string]float64 `json:"coefficients" yaml:"coefficients"`
}

// Coefficient returns the coefficient of a variable, 0 when absent.
func (c ConstraintSpec) Coefficient(variable string) float64 {
	return c.Coefficients[variable]
}

// OptimizationModel is a linear program over non-negative variables.
//
// Invariants (checked by Validate):
//   - variable names are non-empty and unique;
//   - constraint names are non-empty and unique;
//   - every coefficient key references an existing variable;
//   - every relation is valid and every number is finite.
type OptimizationModel struct {
	Name        string           `json:"name" yaml:"name"`
	Sense       Sense            `json:"sense" yaml:"sense"`
	Variables   []VariableSpec   `json:"variables" yaml:"variables"`
	Constraints []ConstraintSpec `json:"constraints" yaml:"constraints"`
}

// Validate enforces the model invariants. It returns a *FieldError wrapping
// ErrSchema, ErrRelation or ErrNumericCoercion that names the offending
// variable or constraint.
//
// Complexity: O(V + Σ|coefficients|).
func (m *OptimizationModel) Validate() error {
	if m == nil {
		return ErrNilModel
	}

	// Stage 1: variables.
	vars := make(map[string]struct{}, len(m.Variables))
	for i, v := range m.Variables {
		if v.Name == "" {
			return &FieldError{Kind: ErrSchema, Table: m.Name, Row: i + 1, Reason: "empty variable name"}
		}
		if _, dup := vars[v.Name]; dup {
			return &FieldError{Kind: ErrSchema, Table: m.Name, Row: i + 1, Value: v.Name, Reason: "duplicate variable name"}
		}
		if !finite(v.Objective) {
			return &FieldError{Kind: ErrNumericCoercion, Table: m.Name, Row: i + 1, Value: v.Objective, Reason: "objective coefficient of " + v.Name}
		}
		vars[v.Name] = struct{}{}
	}

	// Stage 2: constraints and their coefficient keys.
	cons := make(map[string]struct{}, len(m.Constraints))
	for i, c := range m.Constraints {
		if c.Name == "" {
			return &FieldError{Kind: ErrSchema, Table: m.Name, Row: i + 1, Reason: "empty constraint name"}
		}
		if _, dup := cons[c.Name]; dup {
			return &FieldError{Kind: ErrSchema, Table: m.Name, Row: i + 1, Value: c.Name, Reason: "duplicate constraint name"}
		}
		cons[c.Name] = struct{}{}
		if !c.Relation.Valid() {
			return &FieldError{Kind: ErrRelation, Table: m.Name, Row: i + 1, Value: c.Relation.String(), Reason: "constraint " + c.Name}
		}
		if !finite(c.RHS) {
			return &FieldError{Kind: ErrNumericCoercion, Table: m.Name, Row: i + 1, Value: c.RHS, Reason: "rhs of " + c.Name}
		}
		for name, coef := range c.Coefficients {
			if _, ok := vars[name]; !ok {
				return &FieldError{Kind: ErrSchema, Table: m.Name, Row: i + 1, Value: name,
					Reason: fmt.Sprintf("constraint %s references unknown variable", c.Name)}
			}
			if !finite(coef) {
				return &FieldError{Kind: ErrNumericCoercion, Table: m.Name, Row: i + 1, Value: coef,
					Reason: fmt.Sprintf("coefficient of %s in %s", name, c.Name)}
			}
		}
	}

	return nil
}

// VariableIndex maps each variable name to its position.
func (m *OptimizationModel) VariableIndex() map[string]int {
	idx := make(map[string]int, len(m.Variables))
	for i, v := range m.Variables {
		idx[v.Name] = i
	}

	return idx
}

// Variable looks a variable up by name.
func (m *OptimizationModel) Variable(name string) (VariableSpec, bool) {
	for _, v := range m.Variables {
		if v.Name == name {
			return v, true
		}
	}

	return VariableSpec{}, false
}

// Constraint looks a constraint up by name.
func (m *OptimizationModel) Constraint(name string) (ConstraintSpec, bool) {
	for _, c := range m.Constraints {
		if c.Name == name {
			return c, true
		}
	}

	return ConstraintSpec{}, false
}

// VariableNames returns the variable names in model order.
func (m *OptimizationModel) VariableNames() []string {
	out := make([]string, len(m.Variables))
	for i, v := range m.Variables {
		out[i] = v.Name
	}

	return out
}

// ConstraintNames returns the constraint names in model order.
func (m *OptimizationModel) ConstraintNames() []string {
	out := make([]string, len(m.Constraints))
	for i, c := range m.Constraints {
		out[i] = c.Name
	}

	return out
}

// Evaluate computes the objective at the given point; absent names count as 0.
func (m *OptimizationModel) Evaluate(values map[string]float64) float64 {
	var z float64
	for _, v := range m.Variables {
		z += v.Objective * values[v.Name]
	}

	return z
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

// SPDX-License-Identifier: MIT

package result

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/tabopt/build"
	"github.com/katalvlaran/tabopt/model"
	"github.com/katalvlaran/tabopt/solver"
)

// ParseStatus maps the external solver vocabulary onto Status.
// Matching is case-insensitive; anything unrecognized is StatusError.
func ParseStatus(raw string) Status {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case solver.StatusOptimal:
		return StatusOptimal
	case solver.StatusInfeasible:
		return StatusInfeasible
	case solver.StatusUnbounded:
		return StatusUnbounded
	}

	return StatusError
}

// Linear normalizes the outcome of a maximization, minimization or
// transportation model.
//
// Stage 1 (Status): map the raw vocabulary.
// Stage 2 (Coverage): when OPTIMAL, every model variable must be present in
// raw.Values, otherwise ErrResultIntegrity naming the first missing one.
// Stage 3 (Payload): variables in model order; objective only when OPTIMAL.
//
// Complexity: O(V).
func Linear(kind model.Kind, m *model.OptimizationModel, raw *solver.LinearOutcome) (*SolveResult, error) {
	if m == nil || raw == nil {
		return nil, model.ErrNilModel
	}

	res := &SolveResult{
		Kind:      kind,
		Shape:     ShapeVariables,
		Status:    ParseStatus(raw.Status),
		Variables: make([]VariableValue, 0, len(m.Variables)),
		Message:   raw.Message,
	}

	if res.Status != StatusOptimal {
		// Non-optimal outcomes report whatever the solver returned, in model order.
		for _, v := range m.Variables {
			if val, ok := raw.Values[v.Name]; ok {
				res.Variables = append(res.Variables, VariableValue{Name: v.Name, Value: val})
			}
		}
		return res, nil
	}

	for _, v := range m.Variables {
		val, ok := raw.Values[v.Name]
		if !ok {
			return nil, &model.FieldError{Kind: model.ErrResultIntegrity, Table: m.Name, Value: v.Name,
				Reason: "variable missing from solver output"}
		}
		res.Variables = append(res.Variables, VariableValue{Name: v.Name, Value: val})
	}
	obj := raw.Objective
	res.Objective = &obj

	return res, nil
}

// Assignment normalizes a matching against the plan's original matrix.
//
// Stage 1 (Integrity): equal-length index sequences, indices in range, each
// row and each column used exactly once, n pairs for an n×n matrix.
// Stage 2 (Payload): pairs zipped in solver order; objective = Σ original
// cells of the matched pairs (utilities for a maximize plan). Status is
// always OPTIMAL.
//
// Complexity: O(n).
func Assignment(plan *build.AssignmentPlan, raw *solver.AssignmentOutcome) (*SolveResult, error) {
	if plan == nil || plan.Original == nil || raw == nil {
		return nil, model.ErrNilModel
	}
	cm := plan.Original
	n := cm.Size()

	// Stage 1: integrity.
	if len(raw.Rows) != len(raw.Cols) {
		return nil, model.Errorf(model.ErrResultIntegrity, "%d row indices but %d column indices", len(raw.Rows), len(raw.Cols))
	}
	if len(raw.Rows) != n {
		return nil, model.Errorf(model.ErrResultIntegrity, "%d pairs for a %d×%d matrix", len(raw.Rows), n, n)
	}
	rowSeen := make([]bool, n)
	colSeen := make([]bool, n)
	for k := range raw.Rows {
		i, j := raw.Rows[k], raw.Cols[k]
		if i < 0 || i >= n || j < 0 || j >= n {
			return nil, model.Errorf(model.ErrResultIntegrity, "pair %d (%d, %d) out of range", k+1, i, j)
		}
		if rowSeen[i] || colSeen[j] {
			return nil, model.Errorf(model.ErrResultIntegrity, "pair %d (%d, %d) reuses a row or column", k+1, i, j)
		}
		rowSeen[i], colSeen[j] = true, true
	}

	// Stage 2: payload.
	res := &SolveResult{
		Kind:   model.KindAssignment,
		Shape:  ShapePairs,
		Status: StatusOptimal,
		Pairs:  make([]Pair, n),
	}
	var total float64
	for k := range raw.Rows {
		i, j := raw.Rows[k], raw.Cols[k]
		c := cm.At(i, j)
		res.Pairs[k] = Pair{Row: cm.RowLabels[i], Col: cm.ColLabels[j], Cost: c}
		total += c
	}
	res.Objective = &total

	return res, nil
}

// Errorf builds an ERROR-status result for a variant whose solver failed
// outright; the message keeps the cause.
func Errorf(kind model.Kind, format string, args ...any) *SolveResult {
	shape := ShapeVariables
	if kind == model.KindAssignment {
		shape = ShapePairs
	}

	return &SolveResult{Kind: kind, Shape: shape, Status: StatusError, Message: fmt.Sprintf(format, args...)}
}

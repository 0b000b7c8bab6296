// SPDX-License-Identifier: MIT

package solver

import (
	"context"
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/katalvlaran/tabopt/model"
)

// Simplex solves OptimizationModels with gonum's simplex method.
// The zero value is not usable; construct with NewSimplex.
type Simplex struct {
	opts Options
}

// NewSimplex returns a Simplex configured with opts.
func NewSimplex(opts Options) *Simplex {
	return &Simplex{opts: opts}
}

var _ LinearSolver = (*Simplex)(nil)

// standardForm is  min c·x  s.t.  A·x = b, x ≥ 0.
//
// Columns [0, len(cols)) are the model variables that appear in at least one
// constraint; the rest are one slack/surplus column per row.
type standardForm struct {
	c    []float64
	a    *mat.Dense
	b    []float64
	cols []int // standard column → model variable index

	// free lists model variables absent from every constraint; they stay at
	// 0 unless their (minimization) cost is negative, which makes the
	// program unbounded as soon as it is feasible.
	free          []int
	improvingFree bool
}

// SolveLinear implements LinearSolver.
//
// Stage 1 (Guard): nil model, cancelled context, model invariants.
// Stage 2 (Convert): build the standard form.
// Stage 3 (Solve): lp.Simplex; ErrInfeasible / ErrUnbounded become statuses,
// any other numeric failure becomes StatusOther with its message.
// Stage 4 (Finalize): map columns back to names, round, evaluate objective.
func (s *Simplex) SolveLinear(ctx context.Context, m *model.OptimizationModel) (*LinearOutcome, error) {
	// Stage 1: guards.
	if m == nil {
		return nil, model.ErrNilModel
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	// Stage 2: standard form.
	sf := toStandardForm(m)

	// Stage 3: solve (or short-circuit when no constraint binds anything).
	x, status, msg := s.run(sf)
	if status == StatusOptimal && sf.improvingFree {
		status = StatusUnbounded
	}

	out := &LinearOutcome{Status: status, Message: msg}
	if status != StatusOptimal {
		return out, nil
	}

	// Stage 4: values by name, rounded; objective in model sense.
	out.Values = make(map[string]float64, len(m.Variables))
	for _, v := range m.Variables {
		out.Values[v.Name] = 0
	}
	for k, j := range sf.cols {
		out.Values[m.Variables[j].Name] = s.opts.round(x[k])
	}
	out.Objective = s.opts.round(m.Evaluate(out.Values))

	return out, nil
}

// run calls lp.Simplex and classifies its error. Programmer-error panics
// inside gonum (shape contracts) are reported as StatusOther.
func (s *Simplex) run(sf *standardForm) (x []float64, status, msg string) {
	if len(sf.b) == 0 {
		// No rows: every variable is free and sits at 0.
		return nil, StatusOptimal, ""
	}

	defer func() {
		if r := recover(); r != nil {
			x, status, msg = nil, StatusOther, fmt.Sprintf("simplex: %v", r)
		}
	}()

	_, x, err := lp.Simplex(sf.c, sf.a, sf.b, s.opts.Tolerance, nil)
	switch {
	case err == nil:
		return x, StatusOptimal, ""
	case errors.Is(err, lp.ErrInfeasible):
		return nil, StatusInfeasible, err.Error()
	case errors.Is(err, lp.ErrUnbounded):
		return nil, StatusUnbounded, err.Error()
	default:
		return nil, StatusOther, err.Error()
	}
}

// toStandardForm converts m. Each ≤ row gets +slack, each ≥ row −surplus,
// each = row becomes a ≤ row and a ≥ row; every row therefore owns a unit
// column, which keeps A at full row rank with no all-zero row or column.
// Rows with a negative right-hand side are multiplied by −1.
//
// Complexity: O(R·(V+R)).
func toStandardForm(m *model.OptimizationModel) *standardForm {
	sf := &standardForm{}

	// Columns: only variables with at least one non-zero coefficient.
	used := make([]bool, len(m.Variables))
	for _, c := range m.Constraints {
		for j, v := range m.Variables {
			if c.Coefficient(v.Name) != 0 {
				used[j] = true
			}
		}
	}
	sign := 1.0
	if m.Sense == model.Maximize {
		sign = -1.0
	}
	for j, v := range m.Variables {
		if !used[j] {
			sf.free = append(sf.free, j)
			if sign*v.Objective < 0 {
				sf.improvingFree = true
			}
			continue
		}
		sf.cols = append(sf.cols, j)
		sf.c = append(sf.c, sign*v.Objective)
	}

	// Rows: expand equalities.
	type row struct {
		coef  []float64 // over sf.cols
		rhs   float64
		slack float64 // +1 for ≤, −1 for ≥
	}
	var rows []row
	for _, c := range m.Constraints {
		coef := make([]float64, len(sf.cols))
		for k, j := range sf.cols {
			coef[k] = c.Coefficient(m.Variables[j].Name)
		}
		switch c.Relation {
		case model.LessEqual:
			rows = append(rows, row{coef: coef, rhs: c.RHS, slack: 1})
		case model.GreaterEqual:
			rows = append(rows, row{coef: coef, rhs: c.RHS, slack: -1})
		case model.Equal:
			rows = append(rows, row{coef: coef, rhs: c.RHS, slack: 1})
			rows = append(rows, row{coef: append([]float64(nil), coef...), rhs: c.RHS, slack: -1})
		}
	}
	if len(rows) == 0 {
		return sf
	}

	// Dense A: [ structural | one unit column per row ].
	var (
		nr   = len(rows)
		nc   = len(sf.cols) + nr
		data = make([]float64, nr*nc)
	)
	sf.b = make([]float64, nr)
	for i, r := range rows {
		flip := 1.0
		if r.rhs < 0 {
			flip = -1.0
		}
		for k, v := range r.coef {
			data[i*nc+k] = flip * v
		}
		data[i*nc+len(sf.cols)+i] = flip * r.slack
		sf.b[i] = flip * r.rhs
	}
	sf.a = mat.NewDense(nr, nc, data)
	sf.c = append(sf.c, make([]float64, nr)...)

	return sf
}

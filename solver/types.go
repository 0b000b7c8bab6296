package solver

import (
	"context"
	"math"

	"github.com/katalvlaran/tabopt/model"
)

// Raw status vocabulary reported in LinearOutcome.Status.
const (
	StatusOptimal    = "optimal"
	StatusInfeasible = "infeasible"
	StatusUnbounded  = "unbounded"
	StatusOther      = "other"
)

// LinearOutcome is the raw result of solving an OptimizationModel.
//
// Values is keyed by variable name. Objective is expressed in the model's
// own sense (a maximization reports the maximum). Message carries the
// solver's explanation when Status is StatusOther.
type LinearOutcome struct {
	Status    string
	Objective float64
	Values    map[string]float64
	Message   string
}

// AssignmentOutcome is the raw result of a perfect matching: Rows[k] is
// matched to Cols[k]. Both are 0-based indices into the cost matrix.
type AssignmentOutcome struct {
	Rows []int
	Cols []int
}

// LinearSolver solves linear programs over non-negative variables.
type LinearSolver interface {
	SolveLinear(ctx context.Context, m *model.OptimizationModel) (*LinearOutcome, error)
}

// AssignmentSolver computes a minimum-cost perfect matching.
type AssignmentSolver interface {
	SolveAssignment(ctx context.Context, cm *model.CostMatrix) (*AssignmentOutcome, error)
}

// Options configures the shipped solvers.
//   - Tolerance: reduced-cost tolerance passed to the simplex (default 1e-10).
//   - RoundScale: values are rounded to 1/RoundScale (default 1e9); 0 disables.
type Options struct {
	Tolerance  float64
	RoundScale float64
}

// DefaultOptions returns production defaults.
func DefaultOptions() Options {
	return Options{
		Tolerance:  1e-10,
		RoundScale: 1e9,
	}
}

// round snaps x to the configured grid to prevent FP drift in reports.
func (o Options) round(x float64) float64 {
	if o.RoundScale <= 0 {
		return x
	}
	r := math.Round(x*o.RoundScale) / o.RoundScale
	if r == 0 {
		return 0 // drop negative zero
	}

	return r
}

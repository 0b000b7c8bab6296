package runner

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/tabopt/journal"
	"github.com/katalvlaran/tabopt/metrics"
	"github.com/katalvlaran/tabopt/solver"
)

// Option configures a Runner.
type Option func(*Runner)

// WithLogger attaches a logger; the default discards.
func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithMetrics attaches a recorder.
func WithMetrics(m *metrics.Recorder) Option {
	return func(r *Runner) { r.metrics = m }
}

// WithJournal appends every normalized result to j.
func WithJournal(j *journal.Journal) Option {
	return func(r *Runner) { r.journal = j }
}

// WithSolverOptions configures the shipped simplex.
func WithSolverOptions(o solver.Options) Option {
	return func(r *Runner) { r.linear = solver.NewSimplex(o) }
}

// WithLinearSolver replaces the linear solving service.
func WithLinearSolver(s solver.LinearSolver) Option {
	return func(r *Runner) { r.linear = s }
}

// WithAssignmentSolver replaces the assignment solving service.
func WithAssignmentSolver(s solver.AssignmentSolver) Option {
	return func(r *Runner) { r.assign = s }
}

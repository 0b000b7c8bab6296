// SPDX-License-Identifier: MIT

package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/tabopt/build"
	"github.com/katalvlaran/tabopt/journal"
	"github.com/katalvlaran/tabopt/metrics"
	"github.com/katalvlaran/tabopt/model"
	"github.com/katalvlaran/tabopt/result"
	"github.com/katalvlaran/tabopt/schema"
	"github.com/katalvlaran/tabopt/solver"
	"github.com/katalvlaran/tabopt/table"
)

// ErrTables is returned by Solve when the number of tables does not fit the kind.
var ErrTables = errors.New("runner: wrong number of tables for problem kind")

// Runner executes solve requests.
type Runner struct {
	linear  solver.LinearSolver
	assign  solver.AssignmentSolver
	log     *zap.Logger
	metrics *metrics.Recorder
	journal *journal.Journal
}

// New builds a Runner with the shipped solvers and a no-op logger.
func New(opts ...Option) *Runner {
	r := &Runner{
		linear: solver.NewSimplex(solver.DefaultOptions()),
		assign: solver.NewHungarian(),
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Solve dispatches on kind. Linear kinds take (variables, constraints);
// transport and assignment take one table. The sense applies to assignment
// only; linear kinds imply their own and transport always minimizes.
func (r *Runner) Solve(ctx context.Context, kind model.Kind, sense model.Sense, tables ...*table.Table) (*result.SolveResult, error) {
	switch kind {
	case model.KindMaximize, model.KindMinimize:
		if len(tables) != 2 {
			return nil, fmt.Errorf("%s: %d tables: %w", kind, len(tables), ErrTables)
		}
		return r.SolveLinear(ctx, kind.Sense(), tables[0], tables[1])
	case model.KindTransport:
		if len(tables) != 1 {
			return nil, fmt.Errorf("%s: %d tables: %w", kind, len(tables), ErrTables)
		}
		return r.SolveTransport(ctx, tables[0])
	case model.KindAssignment:
		if len(tables) != 1 {
			return nil, fmt.Errorf("%s: %d tables: %w", kind, len(tables), ErrTables)
		}
		return r.SolveAssignment(ctx, sense, tables[0])
	}

	return nil, fmt.Errorf("runner: unsupported kind %s", kind)
}

// SolveLinear runs a maximization or minimization request.
func (r *Runner) SolveLinear(ctx context.Context, sense model.Sense, vars, cons *table.Table) (*result.SolveResult, error) {
	kind := model.KindMinimize
	if sense == model.Maximize {
		kind = model.KindMaximize
	}
	start := time.Now()
	log := r.log.With(zap.Stringer("kind", kind))

	// Stage 1: validate.
	in, err := schema.ValidateLinear(vars, cons)
	if err != nil {
		return nil, r.reject(log, kind, "validate", err)
	}

	// Stage 2: build.
	m, err := build.Linear(in, sense)
	if err != nil {
		return nil, r.reject(log, kind, "build", err)
	}
	log.Debug("model built",
		zap.String("model", m.Name),
		zap.Int("variables", len(m.Variables)),
		zap.Int("constraints", len(m.Constraints)))

	return r.solveModel(ctx, log, kind, m, start, vars, cons)
}

// SolveTransport runs a transportation request.
func (r *Runner) SolveTransport(ctx context.Context, t *table.Table) (*result.SolveResult, error) {
	kind := model.KindTransport
	start := time.Now()
	log := r.log.With(zap.Stringer("kind", kind))

	in, err := schema.ValidateTransport(t)
	if err != nil {
		return nil, r.reject(log, kind, "validate", err)
	}
	m, err := build.Transport(in)
	if err != nil {
		return nil, r.reject(log, kind, "build", err)
	}
	log.Debug("network aggregated",
		zap.Int("routes", len(in.Routes)),
		zap.Int("variables", len(m.Variables)),
		zap.Int("constraints", len(m.Constraints)))

	return r.solveModel(ctx, log, kind, m, start, t)
}

// SolveAssignment runs an assignment request with an explicit sense.
func (r *Runner) SolveAssignment(ctx context.Context, sense model.Sense, t *table.Table) (*result.SolveResult, error) {
	kind := model.KindAssignment
	start := time.Now()
	log := r.log.With(zap.Stringer("kind", kind), zap.Stringer("sense", sense))

	in, err := schema.ValidateAssignment(t)
	if err != nil {
		return nil, r.reject(log, kind, "validate", err)
	}
	plan, err := build.Assignment(in, sense)
	if err != nil {
		return nil, r.reject(log, kind, "build", err)
	}
	log.Debug("matrix prepared", zap.Int("size", plan.Original.Size()))

	raw, err := r.assign.SolveAssignment(ctx, plan.Solve)
	if err != nil {
		return nil, r.reject(log, kind, "solve", err)
	}
	res, err := result.Assignment(plan, raw)
	if err != nil {
		return nil, r.reject(log, kind, "normalize", err)
	}

	return r.finish(log, res, start, t), nil
}

func (r *Runner) solveModel(ctx context.Context, log *zap.Logger, kind model.Kind, m *model.OptimizationModel,
	start time.Time, inputs ...*table.Table) (*result.SolveResult, error) {
	raw, err := r.linear.SolveLinear(ctx, m)
	if err != nil {
		return nil, r.reject(log, kind, "solve", err)
	}
	res, err := result.Linear(kind, m, raw)
	if err != nil {
		return nil, r.reject(log, kind, "normalize", err)
	}

	return r.finish(log, res, start, inputs...), nil
}

// finish logs, counts and journals a normalized result. A journal failure
// is logged, never returned: the solve itself succeeded.
func (r *Runner) finish(log *zap.Logger, res *result.SolveResult, start time.Time, inputs ...*table.Table) *result.SolveResult {
	elapsed := time.Since(start)
	fields := []zap.Field{zap.Stringer("status", res.Status), zap.Duration("duration", elapsed)}
	if v, ok := res.ObjectiveValue(); ok {
		fields = append(fields, zap.Float64("objective", v))
	}
	if res.Message != "" {
		fields = append(fields, zap.String("message", res.Message))
	}
	log.Info("solved", fields...)

	if r.metrics != nil {
		r.metrics.Solve(res.Kind.String(), res.Status.String(), elapsed)
	}
	if r.journal != nil {
		if err := r.journal.Record(res, inputs...); err != nil {
			log.Warn("journal append failed", zap.String("path", r.journal.Path()), zap.Error(err))
		}
	}

	return res
}

func (r *Runner) reject(log *zap.Logger, kind model.Kind, stage string, err error) error {
	reason := Reason(err)
	log.Warn("request rejected", zap.String("stage", stage), zap.String("reason", reason), zap.Error(err))
	if r.metrics != nil {
		r.metrics.InputError(kind.String(), reason)
	}

	return err
}

// Reason classifies an error into a short label for metrics and CLI exit
// handling.
func Reason(err error) string {
	switch {
	case errors.Is(err, model.ErrSchema):
		return "schema"
	case errors.Is(err, model.ErrRelation):
		return "relation"
	case errors.Is(err, model.ErrNumericCoercion):
		return "numeric"
	case errors.Is(err, model.ErrShape):
		return "shape"
	case errors.Is(err, model.ErrStructuralMismatch):
		return "structure"
	case errors.Is(err, model.ErrResultIntegrity):
		return "integrity"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	}

	return "other"
}

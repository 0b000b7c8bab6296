package metrics

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const namespace = "tabopt"

// Recorder owns the collectors.
type Recorder struct {
	reg       *prometheus.Registry
	solves    *prometheus.CounterVec
	failures  *prometheus.CounterVec
	durations *prometheus.HistogramVec
}

// New builds a Recorder with a fresh registry.
func New() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		solves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "solves_total",
				Help:      "Solves by problem kind and result status.",
			},
			[]string{"kind", "status"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "input_errors_total",
				Help:      "Rejected inputs by problem kind and error class.",
			},
			[]string{"kind", "reason"},
		),
		durations: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "solve_duration_seconds",
				Help:      "Wall time of the validate-to-normalize pipeline.",
				Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
			},
			[]string{"kind"},
		),
	}
	r.reg.MustRegister(r.solves, r.failures, r.durations)

	return r
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// Solve records one completed solve.
func (r *Recorder) Solve(kind, status string, d time.Duration) {
	r.solves.WithLabelValues(kind, status).Inc()
	r.durations.WithLabelValues(kind).Observe(d.Seconds())
}

// InputError records one rejected input.
func (r *Recorder) InputError(kind, reason string) {
	r.failures.WithLabelValues(kind, reason).Inc()
}

// SolveCount returns the solves counter for (kind, status); used by tests and
// the CLI summary.
func (r *Recorder) SolveCount(kind, status string) prometheus.Counter {
	return r.solves.WithLabelValues(kind, status)
}

// WriteText encodes every gathered family in the text exposition format.
func (r *Recorder) WriteText(w io.Writer) error {
	families, err := r.reg.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	var errs []error
	for _, mf := range families {
		if err = enc.Encode(mf); err != nil {
			errs = append(errs, err)
		}
	}
	if err = errors.Join(errs...); err != nil {
		return fmt.Errorf("metrics: encode: %w", err)
	}

	return nil
}

// SPDX-License-Identifier: MIT

package build

import (
	"fmt"

	"github.com/katalvlaran/tabopt/model"
	"github.com/katalvlaran/tabopt/schema"
)

// Constraint and variable name prefixes of the transportation model.
const (
	FlowPrefix   = "X"
	SupplyPrefix = "Oferta"
	DemandPrefix = "Demanda"
)

// FlowName is the deterministic variable name of a route: X_<origin>_<destination>.
func FlowName(origin, destination string) string {
	return FlowPrefix + "_" + origin + "_" + destination
}

// firstValues records, per key, the first non-missing value seen in a single
// left-to-right scan, plus the keys in first-appearance order.
// Later values for a known key are ignored: never summed, never overwritten.
type firstValues struct {
	order  []string
	value  map[string]float64
	routes map[string][]string // key → flow variables touching it, table order
}

func newFirstValues(n int) *firstValues {
	return &firstValues{value: make(map[string]float64, n), routes: make(map[string][]string, n)}
}

func (f *firstValues) observe(key, flow string, v *float64) {
	if _, known := f.routes[key]; !known {
		f.order = append(f.order, key)
	}
	f.routes[key] = append(f.routes[key], flow)
	if v == nil {
		return
	}
	if _, set := f.value[key]; set {
		return
	}
	f.value[key] = *v
}

// Transport is the Network Aggregator.
//
// Stage 1 (Flows): one variable per route, objective = cost; names must not
// collide across different routes (ErrSchema).
// Stage 2 (Scan): one pass recording first supply per origin and first
// demand per destination.
// Stage 3 (Constraints): Oferta_<o>: Σ flows out of o ≤ supply, for origins
// with a declared supply, in first-appearance order; then
// Demanda_<d>: Σ flows into d ≥ demand, likewise.
// Stage 4 (Finalize): sense Minimize, model.Validate.
//
// Balance is not required: total supply < total demand builds fine and
// surfaces as an INFEASIBLE status at solve time.
//
// Complexity: O(R) for R routes.
func Transport(in *schema.TransportInput) (*model.OptimizationModel, error) {
	if in == nil {
		return nil, model.ErrNilModel
	}

	m := &model.OptimizationModel{
		Name:      TransportModelName,
		Sense:     model.Minimize,
		Variables: make([]model.VariableSpec, 0, len(in.Routes)),
	}

	var (
		origins = newFirstValues(len(in.Routes))
		dests   = newFirstValues(len(in.Routes))
		names   = make(map[string]int, len(in.Routes))
	)
	// Stage 1 + 2: flows and first-value scan.
	for i, r := range in.Routes {
		name := FlowName(r.Origin, r.Destination)
		if prev, clash := names[name]; clash {
			return nil, &model.FieldError{Kind: model.ErrSchema, Table: schema.SheetCosts, Row: i + 1, Value: name,
				Reason: fmt.Sprintf("variable name collides with route in row %d", prev+1)}
		}
		names[name] = i
		m.Variables = append(m.Variables, model.VariableSpec{Name: name, Objective: r.Cost})

		origins.observe(r.Origin, name, r.Supply)
		dests.observe(r.Destination, name, r.Demand)
	}

	// Stage 3: constraints.
	m.Constraints = append(m.Constraints, aggregate(origins, SupplyPrefix, model.LessEqual)...)
	m.Constraints = append(m.Constraints, aggregate(dests, DemandPrefix, model.GreaterEqual)...)

	// Stage 4: invariants.
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}

	return m, nil
}

// aggregate emits one constraint per key that has a declared value.
func aggregate(f *firstValues, prefix string, rel model.Relation) []model.ConstraintSpec {
	out := make([]model.ConstraintSpec, 0, len(f.value))
	for _, key := range f.order {
		rhs, ok := f.value[key]
		if !ok {
			continue
		}
		coefs := make(map[string]float64, len(f.routes[key]))
		for _, flow := range f.routes[key] {
			coefs[flow] = 1
		}
		out = append(out, model.ConstraintSpec{
			Name:         prefix + "_" + key,
			Relation:     rel,
			RHS:          rhs,
			Coefficients: coefs,
		})
	}

	return out
}

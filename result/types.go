package result

import (
	"fmt"

	"github.com/katalvlaran/tabopt/model"
)

// Status is the uniform solve status.
type Status int

const (
	StatusOptimal Status = iota + 1
	StatusInfeasible
	StatusUnbounded
	StatusError
)

var statusNames = map[Status]string{
	StatusOptimal:    "OPTIMAL",
	StatusInfeasible: "INFEASIBLE",
	StatusUnbounded:  "UNBOUNDED",
	StatusError:      "ERROR",
}

func (s Status) String() string {
	if n, ok := statusNames[s]; ok {
		return n
	}

	return fmt.Sprintf("Status(%d)", int(s))
}

// MarshalText renders the status name.
func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText parses a status name.
func (s *Status) UnmarshalText(b []byte) error {
	for k, n := range statusNames {
		if n == string(b) {
			*s = k
			return nil
		}
	}

	return fmt.Errorf("result: unknown status %q", string(b))
}

// Shape tags which assignment payload a SolveResult carries.
type Shape int

const (
	ShapeVariables Shape = iota + 1
	ShapePairs
)

func (s Shape) String() string {
	switch s {
	case ShapeVariables:
		return "variables"
	case ShapePairs:
		return "pairs"
	}

	return fmt.Sprintf("Shape(%d)", int(s))
}

// MarshalText renders the shape name.
func (s Shape) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// VariableValue is one decision variable of a linear result.
type VariableValue struct {
	Name  string  `json:"name" yaml:"name"`
	Value float64 `json:"value" yaml:"value"`
}

// Pair is one matched (row, column) of an assignment result, with its cost
// in the user's original matrix.
type Pair struct {
	Row  string  `json:"row" yaml:"row"`
	Col  string  `json:"col" yaml:"col"`
	Cost float64 `json:"cost" yaml:"cost"`
}

// SolveResult is the uniform result of every variant.
//
// Objective is nil when the status is not OPTIMAL. Shape tags the payload:
// Variables for ShapeVariables, Pairs for ShapePairs; the other slice is
// always nil. An ERROR result (see Errorf) keeps the tag but may carry no
// payload at all, and a non-optimal linear result only holds the values the
// solver reported. Message carries the solver's explanation for
// non-optimal statuses.
type SolveResult struct {
	Kind      model.Kind      `json:"kind" yaml:"kind"`
	Shape     Shape           `json:"shape" yaml:"shape"`
	Status    Status          `json:"status" yaml:"status"`
	Objective *float64        `json:"objective,omitempty" yaml:"objective,omitempty"`
	Variables []VariableValue `json:"variables,omitempty" yaml:"variables,omitempty"`
	Pairs     []Pair          `json:"pairs,omitempty" yaml:"pairs,omitempty"`
	Message   string          `json:"message,omitempty" yaml:"message,omitempty"`
}

// ObjectiveValue returns the objective and whether it is present.
func (r *SolveResult) ObjectiveValue() (float64, bool) {
	if r.Objective == nil {
		return 0, false
	}

	return *r.Objective, true
}

// Mapping returns the variable values as a name → value map (nil for pairs).
func (r *SolveResult) Mapping() map[string]float64 {
	if r.Shape != ShapeVariables {
		return nil
	}
	out := make(map[string]float64, len(r.Variables))
	for _, v := range r.Variables {
		out[v.Name] = v.Value
	}

	return out
}

// Value returns one variable's value.
func (r *SolveResult) Value(name string) (float64, bool) {
	for _, v := range r.Variables {
		if v.Name == name {
			return v.Value, true
		}
	}

	return 0, false
}

// Optimal reports whether the status is OPTIMAL.
func (r *SolveResult) Optimal() bool { return r.Status == StatusOptimal }

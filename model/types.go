package model

import (
	"fmt"
	"strings"
)

// Sense tells whether the objective is maximized or minimized.
type Sense int

const (
	// Minimize is the zero value; transportation always uses it.
	Minimize Sense = iota
	Maximize
)

func (s Sense) String() string {
	if s == Maximize {
		return "MAXIMIZE"
	}

	return "MINIMIZE"
}

// ParseSense accepts max/maximize/min/minimize in any case.
func ParseSense(s string) (Sense, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "max", "maximize", "maximizacion", "maximización":
		return Maximize, nil
	case "min", "minimize", "minimizacion", "minimización":
		return Minimize, nil
	}

	return Minimize, fmt.Errorf("model: unknown sense %q", s)
}

// Relation binds a constraint's linear expression to its right-hand side.
type Relation int

const (
	LessEqual Relation = iota + 1
	Equal
	GreaterEqual
)

func (r Relation) String() string {
	switch r {
	case LessEqual:
		return "<="
	case Equal:
		return "="
	case GreaterEqual:
		return ">="
	}

	return fmt.Sprintf("Relation(%d)", int(r))
}

// Valid reports whether r is one of the three relations.
func (r Relation) Valid() bool { return r >= LessEqual && r <= GreaterEqual }

// ParseRelation maps a Tipo cell to a Relation. Surrounding whitespace is
// ignored; the unicode forms ≤ and ≥ and the doubled "==" are accepted.
// Anything else returns ErrRelation.
func ParseRelation(s string) (Relation, error) {
	switch strings.TrimSpace(s) {
	case "<=", "≤":
		return LessEqual, nil
	case "=", "==":
		return Equal, nil
	case ">=", "≥":
		return GreaterEqual, nil
	}

	return 0, fmt.Errorf("%q: %w", s, ErrRelation)
}

// Kind is the problem variant a request belongs to.
type Kind int

const (
	KindMaximize Kind = iota + 1
	KindMinimize
	KindTransport
	KindAssignment
)

var kindNames = map[Kind]string{
	KindMaximize:   "maximize",
	KindMinimize:   "minimize",
	KindTransport:  "transport",
	KindAssignment: "assignment",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// Linear reports whether the variant is solved as a linear program
// with a caller-chosen sense.
func (k Kind) Linear() bool { return k == KindMaximize || k == KindMinimize }

// Sense returns the objective sense implied by a linear variant.
// Transportation is always a minimization; assignment has no implied sense.
func (k Kind) Sense() Sense {
	if k == KindMaximize {
		return Maximize
	}

	return Minimize
}

// ParseKind accepts the variant names used on the command line.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "max", "maximize", "maximization":
		return KindMaximize, nil
	case "min", "minimize", "minimization":
		return KindMinimize, nil
	case "transport", "transportation":
		return KindTransport, nil
	case "assign", "assignment":
		return KindAssignment, nil
	}

	return 0, fmt.Errorf("model: unknown problem kind %q", s)
}

// MarshalText renders the relation symbol in JSON/YAML output.
func (r Relation) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%d: %w", int(r), ErrRelation)
	}

	return []byte(r.String()), nil
}

// UnmarshalText parses a relation symbol.
func (r *Relation) UnmarshalText(b []byte) error {
	v, err := ParseRelation(string(b))
	if err != nil {
		return err
	}
	*r = v

	return nil
}

// MarshalText renders MAXIMIZE / MINIMIZE.
func (s Sense) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText parses a sense name.
func (s *Sense) UnmarshalText(b []byte) error {
	v, err := ParseSense(string(b))
	if err != nil {
		return err
	}
	*s = v

	return nil
}

// MarshalText renders the variant name.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText parses a variant name.
func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v

	return nil
}

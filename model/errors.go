// SPDX-License-Identifier: MIT
// Package model: error taxonomy.
//
// Every sentinel is prefixed with "model: ..." so messages are greppable.
// Stages never recover from these errors: they are raised at the boundary
// closest to the violation (validator or builder) and propagated as-is.
// Infeasible or unbounded solves are NOT errors; they are result statuses.

package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSchema marks a missing or renamed required column, a missing sheet,
	// or an empty/duplicate name where a unique one is required.
	ErrSchema = errors.New("model: schema violation")

	// ErrRelation marks a constraint relation outside {<=, =, >=}.
	ErrRelation = errors.New("model: invalid relation")

	// ErrNumericCoercion marks a value in a numeric column that cannot be
	// turned into a finite real number.
	ErrNumericCoercion = errors.New("model: value is not numeric")

	// ErrShape marks a non-square (or empty) assignment matrix.
	ErrShape = errors.New("model: invalid matrix shape")

	// ErrStructuralMismatch marks a constraint-row / coefficient-column count mismatch.
	ErrStructuralMismatch = errors.New("model: constraint rows do not match coefficient columns")

	// ErrResultIntegrity marks solver output that does not cover the model
	// (missing variable, bad index sequence).
	ErrResultIntegrity = errors.New("model: solver output inconsistent with model")

	// ErrNilModel is returned when a nil model or matrix reaches a stage.
	ErrNilModel = errors.New("model: nil model")
)

// FieldError locates a violation inside the tabular input or the model.
//
// Row is 1-based (spreadsheet style); 0 means "not row specific".
// Kind is one of the sentinels above and is what errors.Is matches.
type FieldError struct {
	Kind   error
	Table  string
	Column string
	Row    int
	Value  any
	Reason string
}

// Error renders e.g.
//
//	model: value is not numeric: table "modelo", column "Coef_FO", row 2, value "a"
func (e *FieldError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	sep := ": "
	if e.Table != "" {
		fmt.Fprintf(&b, "%stable %q", sep, e.Table)
		sep = ", "
	}
	if e.Column != "" {
		fmt.Fprintf(&b, "%scolumn %q", sep, e.Column)
		sep = ", "
	}
	if e.Row > 0 {
		fmt.Fprintf(&b, "%srow %d", sep, e.Row)
		sep = ", "
	}
	if e.Value != nil {
		fmt.Fprintf(&b, "%svalue %q", sep, fmt.Sprint(e.Value))
		sep = ", "
	}
	if e.Reason != "" {
		fmt.Fprintf(&b, "%s%s", sep, e.Reason)
	}

	return b.String()
}

// Unwrap exposes the sentinel to errors.Is.
func (e *FieldError) Unwrap() error { return e.Kind }

// Errorf builds a FieldError without location, for violations that concern
// the table as a whole (counts, shapes).
func Errorf(kind error, format string, args ...any) error {
	return &FieldError{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}

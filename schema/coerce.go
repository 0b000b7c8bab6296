package schema

import (
	"math"
	"strings"

	"github.com/spf13/cast"

	"github.com/katalvlaran/tabopt/model"
	"github.com/katalvlaran/tabopt/table"
)

// numberAt reads (row, column) as a finite float.
//
// A blank cell yields (0, false, nil): the caller decides whether blank means
// zero, absent, or an error. A non-blank cell that cast cannot convert, or
// that converts to NaN/±Inf, yields ErrNumericCoercion located at the cell.
func numberAt(t *table.Table, row int, column string) (float64, bool, error) {
	return coerce(t, row, column, t.Cell(row, column))
}

// coerce converts an already fetched cell; column and row only locate errors.
func coerce(t *table.Table, row int, column string, raw any) (float64, bool, error) {
	if table.IsBlank(raw) {
		return 0, false, nil
	}
	v := raw
	if s, ok := raw.(string); ok {
		v = strings.TrimSpace(s)
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false, &model.FieldError{
			Kind:   model.ErrNumericCoercion,
			Table:  t.Name,
			Column: column,
			Row:    row + 1,
			Value:  raw,
		}
	}

	return f, true, nil
}

// numberOrZero treats a blank cell as 0.
func numberOrZero(t *table.Table, row int, column string) (float64, error) {
	f, _, err := numberAt(t, row, column)

	return f, err
}

// textAt reads (row, column) as a trimmed string; numbers are formatted
// the way cast prints them (2 → "2").
func textAt(t *table.Table, row int, column string) string {
	raw := t.Cell(row, column)
	if raw == nil {
		return ""
	}
	s, err := cast.ToStringE(raw)
	if err != nil {
		return ""
	}

	return strings.TrimSpace(s)
}

// requireColumns fails with ErrSchema listing every missing header.
func requireColumns(t *table.Table, names ...string) error {
	if t == nil {
		return model.Errorf(model.ErrSchema, "table is missing")
	}
	missing := t.MissingColumns(names...)
	if len(missing) == 0 {
		return nil
	}

	return &model.FieldError{
		Kind:   model.ErrSchema,
		Table:  t.Name,
		Column: strings.Join(missing, ", "),
		Reason: "required column missing; table must contain " + strings.Join(names, ", "),
	}
}

// uniqueName checks a name column cell: non-empty and unseen.
func uniqueName(t *table.Table, row int, column string, seen map[string]int) (string, error) {
	name := textAt(t, row, column)
	if name == "" {
		return "", &model.FieldError{Kind: model.ErrSchema, Table: t.Name, Column: column, Row: row + 1, Reason: "name is empty"}
	}
	if first, dup := seen[name]; dup {
		return "", &model.FieldError{Kind: model.ErrSchema, Table: t.Name, Column: column, Row: row + 1, Value: name,
			Reason: "duplicate name, first seen in row " + cast.ToString(first+1)}
	}
	seen[name] = row

	return name, nil
}

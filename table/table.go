// SPDX-License-Identifier: MIT

package table

import (
	"errors"
	"fmt"
	"strings"
)

// ErrRowWidth is returned when a row does not carry one cell per column.
var ErrRowWidth = errors.New("table: row width does not match column count")

// ErrDuplicateColumn is returned when two columns share a header.
var ErrDuplicateColumn = errors.New("table: duplicate column")

// Table is a named, column-ordered grid of cells.
//
// Index is optional; when non-empty it holds one label per row and is used
// by matrix-shaped inputs (agents × tasks).
type Table struct {
	Name    string
	Columns []string
	Index   []string
	Rows    [][]any
}

// New creates an empty table with the given column headers.
// Complexity: O(c).
func New(name string, columns ...string) *Table {
	cols := make([]string, len(columns))
	copy(cols, columns)

	return &Table{Name: name, Columns: cols}
}

// FromRows builds a table in one call. It fails with ErrRowWidth if any row
// is not exactly len(columns) wide, and with ErrDuplicateColumn on repeated
// headers.
// Complexity: O(r·c).
func FromRows(name string, columns []string, rows ...[]any) (*Table, error) {
	t := New(name, columns...)
	if err := t.checkColumns(); err != nil {
		return nil, err
	}
	var err error
	for _, row := range rows {
		if err = t.Append(row...); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// MustFromRows is FromRows for literals in tests and examples; it panics on error.
func MustFromRows(name string, columns []string, rows ...[]any) *Table {
	t, err := FromRows(name, columns, rows...)
	if err != nil {
		panic(err)
	}

	return t
}

// Append adds one row. The cells are copied.
func (t *Table) Append(cells ...any) error {
	if len(cells) != len(t.Columns) {
		return fmt.Errorf("%s: row %d has %d cells, want %d: %w",
			t.Name, len(t.Rows)+1, len(cells), len(t.Columns), ErrRowWidth)
	}
	row := make([]any, len(cells))
	copy(row, cells)
	t.Rows = append(t.Rows, row)

	return nil
}

// AppendLabeled adds one row together with its index label.
// If the table had no index yet, earlier rows get empty labels.
func (t *Table) AppendLabeled(label string, cells ...any) error {
	if err := t.Append(cells...); err != nil {
		return err
	}
	for len(t.Index) < len(t.Rows)-1 {
		t.Index = append(t.Index, "")
	}
	t.Index = append(t.Index, label)

	return nil
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.Rows) }

// Width returns the number of columns.
func (t *Table) Width() int { return len(t.Columns) }

// ColumnIndex returns the position of the column with the given header,
// or -1. Headers are compared after trimming surrounding whitespace.
// Complexity: O(c).
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if strings.TrimSpace(c) == name {
			return i
		}
	}

	return -1
}

// HasColumn reports whether the column exists.
func (t *Table) HasColumn(name string) bool { return t.ColumnIndex(name) >= 0 }

// MissingColumns returns the subset of names absent from the table, in the
// order given.
func (t *Table) MissingColumns(names ...string) []string {
	var missing []string
	for _, n := range names {
		if !t.HasColumn(n) {
			missing = append(missing, n)
		}
	}

	return missing
}

// ColumnsWithPrefix returns the headers starting with prefix, in declared
// table order (never sorted).
func (t *Table) ColumnsWithPrefix(prefix string) []string {
	var out []string
	for _, c := range t.Columns {
		if strings.HasPrefix(strings.TrimSpace(c), prefix) {
			out = append(out, strings.TrimSpace(c))
		}
	}

	return out
}

// ColumnPositionsWithPrefix is ColumnsWithPrefix by position: the indices of
// the matching headers in declared order. Repeated headers each keep their
// own position.
func (t *Table) ColumnPositionsWithPrefix(prefix string) []int {
	var out []int
	for j, c := range t.Columns {
		if strings.HasPrefix(strings.TrimSpace(c), prefix) {
			out = append(out, j)
		}
	}

	return out
}

// CellAt returns the cell at (row, column position); out-of-range yields nil.
func (t *Table) CellAt(row, col int) any {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Rows[row]) {
		return nil
	}

	return t.Rows[row][col]
}

// Cell returns the cell at (row, column name). Unknown columns and short
// rows yield nil, which callers treat as an empty cell.
func (t *Table) Cell(row int, column string) any {
	j := t.ColumnIndex(column)
	if j < 0 || row < 0 || row >= len(t.Rows) || j >= len(t.Rows[row]) {
		return nil
	}

	return t.Rows[row][j]
}

// Label returns the index label of a row, or "" when the table has none.
func (t *Table) Label(row int) string {
	if row < 0 || row >= len(t.Index) {
		return ""
	}

	return t.Index[row]
}

// Clone returns a deep copy of the grid (cells are shallow-copied values).
func (t *Table) Clone() *Table {
	c := &Table{Name: t.Name}
	c.Columns = append([]string(nil), t.Columns...)
	c.Index = append([]string(nil), t.Index...)
	c.Rows = make([][]any, len(t.Rows))
	for i, r := range t.Rows {
		c.Rows[i] = append([]any(nil), r...)
	}

	return c
}

// IsBlank reports whether a cell counts as empty: nil, or a string made
// only of whitespace.
func IsBlank(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(x) == ""
	default:
		return false
	}
}

func (t *Table) checkColumns() error {
	seen := make(map[string]struct{}, len(t.Columns))
	for _, c := range t.Columns {
		key := strings.TrimSpace(c)
		if _, ok := seen[key]; ok {
			return fmt.Errorf("%s: %q: %w", t.Name, key, ErrDuplicateColumn)
		}
		seen[key] = struct{}{}
	}

	return nil
}

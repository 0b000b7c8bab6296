// SPDX-License-Identifier: MIT

package sheet

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/tabopt/model"
	"github.com/katalvlaran/tabopt/schema"
	"github.com/katalvlaran/tabopt/table"
)

// ReadLinear reads the variables sheet and the constraints sheet of a
// maximization or minimization workbook.
func ReadLinear(r io.Reader) (vars, cons *table.Table, err error) {
	f, err := open(r)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	if err = requireSheets(f, schema.SheetModel, schema.SheetConstraints); err != nil {
		return nil, nil, err
	}
	if vars, err = readPlain(f, schema.SheetModel); err != nil {
		return nil, nil, err
	}
	if cons, err = readPlain(f, schema.SheetConstraints); err != nil {
		return nil, nil, err
	}

	return vars, cons, nil
}

// ReadTransport reads the routes sheet of a transportation workbook.
func ReadTransport(r io.Reader) (*table.Table, error) {
	f, err := open(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if err = requireSheets(f, schema.SheetCosts); err != nil {
		return nil, err
	}

	return readPlain(f, schema.SheetCosts)
}

// ReadAssignment reads the cost matrix sheet of an assignment workbook.
// The first column holds the row labels and its header cell is ignored.
func ReadAssignment(r io.Reader) (*table.Table, error) {
	f, err := open(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if err = requireSheets(f, schema.SheetCosts); err != nil {
		return nil, err
	}
	rows, err := f.GetRows(schema.SheetCosts)
	if err != nil {
		return nil, fmt.Errorf("sheet: %s: %w", schema.SheetCosts, err)
	}
	if len(rows) == 0 {
		return table.New(schema.SheetCosts), nil
	}

	header := trimTrailing(rows[0])
	if len(header) == 0 {
		return table.New(schema.SheetCosts), nil
	}
	t := table.New(schema.SheetCosts, header[1:]...)
	width := len(header)
	for _, raw := range rows[1:] {
		if blankRow(raw) {
			continue
		}
		if len(raw) > width && !blankRow(raw[width:]) {
			return nil, fmt.Errorf("sheet: %s: row has %d cells, header has %d: %w",
				schema.SheetCosts, len(raw), width, table.ErrRowWidth)
		}
		row := pad(raw, width)
		if err = t.AppendLabeled(row[0], toCells(row[1:])...); err != nil {
			return nil, fmt.Errorf("sheet: %w", err)
		}
	}

	return t, nil
}

func open(r io.Reader) (*excelize.File, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("sheet: open workbook: %w", err)
	}

	return f, nil
}

// requireSheets reports every missing sheet at once.
func requireSheets(f *excelize.File, names ...string) error {
	present := make(map[string]bool)
	for _, s := range f.GetSheetList() {
		present[s] = true
	}
	var missing []string
	for _, n := range names {
		if !present[n] {
			missing = append(missing, n)
		}
	}
	if len(missing) > 0 {
		return &model.FieldError{Kind: model.ErrSchema, Reason: "missing sheets: " + strings.Join(missing, ", ")}
	}

	return nil
}

// readPlain reads a header row followed by data rows. Trailing blank rows are
// dropped; short rows are padded with blank cells.
func readPlain(f *excelize.File, name string) (*table.Table, error) {
	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("sheet: %s: %w", name, err)
	}
	if len(rows) == 0 {
		return table.New(name), nil
	}

	header := trimTrailing(rows[0])
	t := table.New(name, header...)
	for _, raw := range rows[1:] {
		if blankRow(raw) {
			continue
		}
		if len(raw) > len(header) && !blankRow(raw[len(header):]) {
			return nil, fmt.Errorf("sheet: %s: row has %d cells, header has %d: %w",
				name, len(raw), len(header), table.ErrRowWidth)
		}
		if err = t.Append(toCells(pad(raw, len(header)))...); err != nil {
			return nil, fmt.Errorf("sheet: %w", err)
		}
	}

	return t, nil
}

func pad(row []string, width int) []string {
	out := make([]string, width)
	copy(out, row)

	return out
}

func trimTrailing(row []string) []string {
	n := len(row)
	for n > 0 && strings.TrimSpace(row[n-1]) == "" {
		n--
	}

	return row[:n]
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}

	return true
}

// toCells maps empty strings to nil so blanks survive as blanks.
func toCells(row []string) []any {
	out := make([]any, len(row))
	for i, c := range row {
		if strings.TrimSpace(c) == "" {
			continue
		}
		out[i] = c
	}

	return out
}

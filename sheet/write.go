// SPDX-License-Identifier: MIT

package sheet

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/tabopt/result"
	"github.com/katalvlaran/tabopt/table"
)

// SheetResult is the name of the result sheet written by WriteResult.
const SheetResult = "resultado"

const defaultSheet = "Sheet1"

// ErrNoTables is returned when nothing would be written.
var ErrNoTables = errors.New("sheet: no tables to write")

// WriteTables writes one sheet per table, named after the table, in order.
// Tables with an index get a leading label column.
func WriteTables(w io.Writer, tables ...*table.Table) error {
	var sheets []*table.Table
	for _, t := range tables {
		if t != nil {
			sheets = append(sheets, t)
		}
	}
	if len(sheets) == 0 {
		return ErrNoTables
	}

	return write(w, sheets)
}

// WriteResult writes the result sheet first, then the input tables.
func WriteResult(w io.Writer, res *result.SolveResult, inputs ...*table.Table) error {
	if res == nil {
		return fmt.Errorf("sheet: nil result")
	}
	sheets := []*table.Table{ResultTable(res)}
	for _, t := range inputs {
		if t != nil {
			sheets = append(sheets, t)
		}
	}

	return write(w, sheets)
}

// ResultTable flattens a result into rows: a header block with kind,
// status and objective, then one row per variable or pair.
func ResultTable(res *result.SolveResult) *table.Table {
	t := table.New(SheetResult, "Campo", "Valor", "Costo")
	_ = t.Append("Problema", res.Kind.String(), nil)
	_ = t.Append("Estado", res.Status.String(), nil)
	if v, ok := res.ObjectiveValue(); ok {
		_ = t.Append("Objetivo", v, nil)
	}
	if res.Message != "" {
		_ = t.Append("Mensaje", res.Message, nil)
	}
	switch res.Shape {
	case result.ShapeVariables:
		for _, v := range res.Variables {
			_ = t.Append(v.Name, v.Value, nil)
		}
	case result.ShapePairs:
		for _, p := range res.Pairs {
			_ = t.Append(p.Row, p.Col, p.Cost)
		}
	}

	return t
}

func write(w io.Writer, sheets []*table.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, t := range sheets {
		name := t.Name
		if name == "" {
			name = fmt.Sprintf("Hoja%d", i+1)
		}
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("sheet: %s: %w", name, err)
		}
		if err := writeTable(f, name, t); err != nil {
			return err
		}
	}
	if err := dropDefault(f, sheets); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("sheet: write workbook: %w", err)
	}

	return nil
}

// dropDefault removes the blank sheet every new workbook starts with unless
// one of the tables claimed its name.
func dropDefault(f *excelize.File, sheets []*table.Table) error {
	for _, t := range sheets {
		if t.Name == defaultSheet {
			return nil
		}
	}
	if err := f.DeleteSheet(defaultSheet); err != nil {
		return fmt.Errorf("sheet: %w", err)
	}
	f.SetActiveSheet(0)

	return nil
}

func writeTable(f *excelize.File, name string, t *table.Table) error {
	labeled := len(t.Index) > 0
	header := make([]any, 0, len(t.Columns)+1)
	if labeled {
		header = append(header, "")
	}
	for _, c := range t.Columns {
		header = append(header, c)
	}
	if err := setRow(f, name, 1, header); err != nil {
		return err
	}

	for i, row := range t.Rows {
		cells := make([]any, 0, len(row)+1)
		if labeled {
			cells = append(cells, t.Label(i))
		}
		cells = append(cells, row...)
		if err := setRow(f, name, i+2, cells); err != nil {
			return err
		}
	}

	return nil
}

func setRow(f *excelize.File, name string, row int, cells []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("sheet: %w", err)
	}
	if err = f.SetSheetRow(name, cell, &cells); err != nil {
		return fmt.Errorf("sheet: %s row %d: %w", name, row, err)
	}

	return nil
}

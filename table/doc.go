// Package table provides the in-memory tabular structure consumed by the
// schema validators.
//
// A Table is an ordered list of named columns, an optional row index
// (row labels) and rows of untyped cells. Cells keep whatever the ingestion
// layer produced (strings from a spreadsheet, numbers from Go code, nil for
// an empty cell); typing and coercion are the job of package schema.
//
// Column order is significant: validators that bind columns by position
// (the dynamic Coef_R# convention) read Columns in declared order.
package table

// Package sheet moves tables in and out of .xlsx workbooks.
//
// Reading:
//
//	ReadLinear      - sheets "modelo" and "restricciones"
//	ReadTransport   - sheet "costos", one row per route
//	ReadAssignment  - sheet "costos", first column holds the row labels
//
// Cells are handed to the tables as strings; numeric coercion and all
// schema checks stay in package schema.
//
// Writing:
//
//	WriteTables - one sheet per table (templates, worked examples)
//	WriteResult - a "resultado" sheet followed by the input tables
package sheet

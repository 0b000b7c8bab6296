// Package schema validates user tables against the expected shape of each
// problem variant and turns them into typed inputs for package build.
//
// Contracts, per variant:
//
//   - Linear (max/min): table "modelo" with Variable, Coef_FO and one or more
//     Coef_R# columns; table "restricciones" with Restriccion, Tipo, RHS.
//     Blank numeric cells become 0. The Coef_R# columns are captured once,
//     in declared order, by position (LinearInput.CoefPositions): the k-th
//     constraint row consumes the k-th column regardless of its name, even
//     when two headers repeat.
//   - Transportation: one long-format table with Origen, Destino, Costo and
//     the sparse Oferta / Demanda columns.
//   - Assignment: a square numeric table, rows = agents (Index), columns = tasks.
//
// Violations are reported as *model.FieldError wrapping model.ErrSchema,
// model.ErrRelation, model.ErrNumericCoercion or model.ErrShape.
//
// The package also ships zero-filled templates and the worked examples used
// throughout the documentation and tests.
package schema

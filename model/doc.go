// Package model defines the normalized mathematical programs produced from
// tabular input and the error taxonomy shared by every pipeline stage.
//
// Two shapes exist:
//
//   - OptimizationModel - sense + ordered variables + ordered constraints,
//     used by the maximization, minimization and transportation variants.
//   - CostMatrix - a labeled square matrix, used by the assignment variant.
//
// Both are constructed fresh per request, validated once on construction
// and never mutated afterwards.
//
// # Errors
//
// All stages report violations with the sentinels in errors.go, usually
// wrapped in a *FieldError that names the table, column, row and value at
// fault. Match with errors.Is(err, model.ErrSchema) and friends; extract the
// location with errors.As(err, &fe).
package model

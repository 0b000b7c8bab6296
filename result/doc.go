// Package result normalizes raw solver outcomes into SolveResult, the single
// result contract shared by the four problem variants.
//
// SolveResult is a tagged variant: Shape says which payload is populated.
//
//	ShapeVariables - Variables (name → value), for maximize / minimize / transport
//	ShapePairs     - Pairs (row label, column label), for assignment
//
// Normalization never hides inconsistencies: an optimal linear outcome that
// omits a model variable, or an assignment outcome that is not a perfect
// matching, is a model.ErrResultIntegrity error.
package result

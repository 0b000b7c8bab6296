// Package solver provides the solving services consumed by the pipeline.
//
// The pipeline only depends on the two contracts in types.go:
//
//	LinearSolver.SolveLinear(ctx, *model.OptimizationModel) → *LinearOutcome
//	AssignmentSolver.SolveAssignment(ctx, *model.CostMatrix) → *AssignmentOutcome
//
// Two implementations ship with the module:
//
//   - Simplex - converts the model to standard form (slack / surplus columns,
//     equalities split into a ≤ / ≥ pair, negative right-hand sides flipped)
//     and runs gonum's Bland-rule simplex (gonum.org/v1/gonum/optimize/convex/lp).
//     Infeasible and unbounded programs are reported through Status, not errors.
//   - Hungarian - O(n³) shortest-augmenting-path method with row/column
//     potentials for minimum-cost perfect matching on a square matrix.
//
// Raw outcomes use the solver vocabulary ("optimal", "infeasible",
// "unbounded", "other"); package result maps them to the uniform contract.
//
// Complexity:
//   - Simplex:   per pivot O(m·(n+m)) on the dense standard form; exponential worst case.
//   - Hungarian: O(n³) time, O(n) extra memory besides the matrix.
package solver

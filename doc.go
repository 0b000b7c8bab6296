// Package tabopt turns optimization problems written as tables into
// mathematical programs, solves them and reports a uniform result.
//
// Four problem variants are supported:
//
//	• Maximization / Minimization - linear objective under ≤ / = / ≥ constraints
//	• Transportation - long-format origin/destination/cost/supply/demand table
//	• Assignment - square agent × task cost (or utility) matrix
//
// The pipeline is organized as one package per stage:
//
//	table/   - in-memory tabular input (ordered columns, optional row index)
//	schema/  - per-variant validation, coercion, templates and worked examples
//	matrix/  - dense finite-valued grid with shape and numeric validators
//	model/   - OptimizationModel, CostMatrix and the error taxonomy
//	build/   - model builder, constraint synthesizer, network aggregator
//	solver/  - simplex (gonum) and Hungarian solving services
//	result/  - normalization into a tagged SolveResult
//	runner/  - per-request pipeline with logging, metrics and journaling
//	sheet/   - .xlsx ingestion and export
//	journal/ - append-only CSV solve log
//
// Quick example (maximize 40·X1 + 30·X2):
//
//	vars, cons := schema.MaximizeExample()
//	res, err := runner.New().SolveLinear(ctx, model.Maximize, vars, cons)
//
// The command-line front end lives in cmd/tabopt.
package tabopt

// Package runner wires the stages of one solve request together:
//
//	validate (schema) → build → solve (solver) → normalize (result) → record
//
// Recording is optional and pluggable: a zap logger, a metrics.Recorder and
// a journal.Journal can each be attached with an Option. A Runner holds no
// per-request state and is safe for concurrent use when its collaborators are.
//
// Errors from validation, building and normalization are returned unchanged
// in meaning (errors.Is still matches the model sentinels); infeasible and
// unbounded problems are reported through SolveResult.Status.
package runner

// Package journal keeps an append-only CSV log of solves.
//
// Each row records when a problem was solved, which variant it was, the
// status and objective, the solution (JSON) and the input tables (JSON):
//
//	timestamp,kind,status,objective,solution,inputs
//
// Appends are serialized in-process by a mutex and across processes by an
// exclusive advisory lock on "<path>.lock" (github.com/gofrs/flock), so
// several CLI invocations may share one journal file.
package journal

// Package build turns validated tabular inputs into normalized models.
//
//   - Linear     - Model Builder for the maximization / minimization variants.
//     Delegates each constraint row to Synthesize, the Constraint Synthesizer,
//     which binds constraint row k to coefficient column k by position.
//   - Transport  - Network Aggregator: collapses the long-format table into
//     one flow variable per route, one supply constraint per origin and one
//     demand constraint per destination (first declared value wins).
//     Supply constraints come first, then demand; within each group the
//     order is first appearance in the table, not sorted by label, so a
//     table listing O2 before O1 yields Oferta_O2 before Oferta_O1.
//   - Assignment - wraps the cost matrix for the Hungarian service, applying
//     the requested sense explicitly.
//   - Tables     - re-derives modelo / restricciones tables from a model.
//
// Every OptimizationModel returned here has passed model.Validate.
package build

// Package metrics counts solves and validation failures with Prometheus
// collectors held in a private registry.
//
// A Recorder is safe for concurrent use. The CLI dumps it in the text
// exposition format after a run (--metrics-file); a long-lived embedder can
// register Registry() with its own HTTP handler instead.
package metrics

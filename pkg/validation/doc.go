// Package validation derives per-field rules from a field catalog and
// evaluates them against raw form values. The schema is built once; only
// evaluation runs on every change. Validation failures are returned as data
// in Result, never as errors. The only error path is BuildSchema rejecting a
// catalog that carries an unknown format tag.
package validation

// Package reconcile runs a reconciliation end to end: it checks that every
// input exists, loads and validates the questionnaire, aggregates the
// coverage ledger, applies the evidence gate, extracts the template's form
// fields, and commits every output artifact in a single all-or-nothing
// write.
//
// Configuration errors (see diagnostic.ConfigError) are raised before
// anything is written. Coverage gaps and evidence gaps are data: they are
// reported through Result.Diagnostics and the artifacts, never as errors.
package reconcile

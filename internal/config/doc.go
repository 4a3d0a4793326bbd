// Package config resolves the settings of a reconciliation run.
//
// Values are layered in increasing precedence: built-in defaults, the
// YAML file (reqcover.yaml unless another path is given), environment
// variables, and finally command-line overrides. Paths left empty after
// layering are derived from the fixtures directory the same way every
// time, so a bare invocation reads ./Fixes/questions.csv and writes to
// ./Fixes/reports.
package config

// Package report serializes a coverage ledger and its evidence gaps into
// the run artifacts: the coverage table, the evidence-gap table and the
// JSON summary.
//
// Artifacts are committed together (see Commit): each one is staged to a
// temporary file next to its destination, and destinations are only
// replaced once every artifact has been staged successfully.
package report

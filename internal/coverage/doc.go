// Package coverage folds questionnaire records into a coverage ledger:
// for every requirement code, the ordered list of record ids that support
// it.
//
// A ledger always holds exactly one entry per code of its requirement.Set,
// even for empty input. Ids are kept in first-seen input order and never
// repeated under the same code, no matter how many tag columns or match
// paths (tag or free-text fallback) produced the hit.
//
// Aggregation is single-pass and sequential. Very large inputs could be
// partitioned and aggregated independently, then merged by unioning id
// lists and re-sorting them by each record's global row index; Record.Row
// already carries that index, but no merge step is provided here.
package coverage

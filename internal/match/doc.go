// Package match provides tag normalization, column-name normalization,
// edit-distance similarity for column names, and the synonym-based column discovery
// used to read loosely structured questionnaire sheets.
//
// Key functions:
//   - NormalizeTags: splits a raw tag cell into a canonical TagSet
//   - NormalizeIdent: normalizes a column name for synonym comparison
//   - Discover: picks the id, text, evidence and tag columns of a header
//   - Suggest: ranks near-miss columns when a required column is absent
package match

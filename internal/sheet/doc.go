// Package sheet reads questionnaire tables into Records.
//
// Tables are read schema-on-read: the header is passed through
// match.Discover to find the identifier, text, evidence and tag columns,
// and every data row becomes one immutable Record. Rows that cannot be
// parsed cleanly are absorbed (missing cells read as empty strings) and
// reported as malformed_row warnings.
package sheet

// Package diagnostic provides structured warnings and infos for a
// reconciliation run, plus the configuration error taxonomy that decides
// the process exit status.
//
// Key capabilities:
//   - Malformed row warnings (rows are absorbed, never fatal)
//   - Coverage gap and evidence gap findings
//   - ConfigError for missing input files and undiscoverable columns
//   - Exit status mapping (2 missing file, 3 missing columns, 1 other)
package diagnostic

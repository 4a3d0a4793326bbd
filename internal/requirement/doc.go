// Package requirement defines the closed enumeration of requirement codes
// that questionnaire records are reconciled against, and the matcher that
// maps tag tokens and free text onto those codes.
//
// The enumeration is an explicit value (Set) rather than a package global:
// callers build it once with Default and hand it to every component that
// needs it.
//
// Key functions:
//   - Default: the standard CR1..CR10, A..G set in report order
//   - Set.MatchTag: exact-token matching for tag columns (CR and letter codes)
//   - Set.MatchText: CR-only pattern matching for free-text columns
package requirement

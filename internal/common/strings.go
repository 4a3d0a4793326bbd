// Package common holds small helpers shared across reqcover packages.
package common

import "strings"

// UnknownStr is printed for enum values without a name.
const UnknownStr = "unknown"

// IsBlank reports whether s is empty after trimming whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Process exit statuses.
const (
	ExitOK             = 0
	ExitFailure        = 1
	ExitMissingFile    = 2
	ExitMissingColumns = 3
)

// ConfigErrorKind classifies a ConfigError.
type ConfigErrorKind int

const (
	_ ConfigErrorKind = iota

	// MissingFile means a required input file does not exist.
	MissingFile
	// MissingColumns means the input table has neither an identifier-like
	// nor a tag-like column.
	MissingColumns
)

// String returns the diagnostic code for the kind.
func (k ConfigErrorKind) String() string {
	switch k {
	case MissingFile:
		return CodeMissingFile
	case MissingColumns:
		return CodeMissingColumns
	default:
		return "config_error"
	}
}

// ConfigError is a fatal, discovery-time failure. It is always raised
// before any report is written.
type ConfigError struct {
	Kind    ConfigErrorKind
	Subject string
	Detail  string
	// Suggestions holds near-miss column names for MissingColumns.
	Suggestions []string
}

// NewMissingFile builds the error for an absent input file.
func NewMissingFile(role, path string) *ConfigError {
	return &ConfigError{
		Kind:    MissingFile,
		Subject: path,
		Detail:  role + " file not found",
	}
}

// NewMissingColumns builds the error for a table without id and tag columns.
func NewMissingColumns(path string, suggestions []string) *ConfigError {
	return &ConfigError{
		Kind:        MissingColumns,
		Subject:     path,
		Detail:      "table must contain an identifier column (id, question_id, ...) or a tag column (tags, controls, ...)",
		Suggestions: suggestions,
	}
}

// Error implements error.
func (e *ConfigError) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s: %s", e.Kind, e.Detail)

	if e.Subject != "" {
		fmt.Fprintf(&b, ": %s", e.Subject)
	}

	if len(e.Suggestions) > 0 {
		fmt.Fprintf(&b, " (did you mean %s?)", strings.Join(e.Suggestions, ", "))
	}

	return b.String()
}

// ExitCode returns the process status for the error kind.
func (e *ConfigError) ExitCode() int {
	switch e.Kind {
	case MissingFile:
		return ExitMissingFile
	case MissingColumns:
		return ExitMissingColumns
	default:
		return ExitFailure
	}
}

// ExitCode maps any error returned by a run to a process status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var ce *ConfigError
	if errors.As(err, &ce) {
		return ce.ExitCode()
	}

	return ExitFailure
}

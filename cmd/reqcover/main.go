// Package main provides the CLI entrypoint for reqcover.
//
// reqcover reconciles a questionnaire against the tracked requirement
// codes:
//   - Reads the questions CSV and discovers its id, tag, text and evidence columns
//   - Builds the coverage ledger and the evidence-gap list
//   - Extracts the form fields of a PDF template into a binding map
//   - Writes every report in one all-or-nothing commit
//
// Exit status is 0 on success, 2 when an input file is missing, 3 when the
// questions table has neither an id nor a tag column, and 1 otherwise.
package main

import (
	"os"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

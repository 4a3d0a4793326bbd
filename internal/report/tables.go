package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"reqcover/internal/coverage"
	"reqcover/internal/evidence"
)

// Coverage table columns.
const (
	ColRequirement = "Requirement"
	ColCovered     = "Covered"
	ColCount       = "Count"
	ColQuestionIDs = "QuestionIDs"
	ColProposal    = "ProposedAddIfGap"
)

// GapHeader is the header of the evidence-gap table.
var GapHeader = []string{"id", "tags"}

// Options controls table layout.
type Options struct {
	// Proposals adds the ProposedAddIfGap column.
	Proposals bool
}

// CoverageHeader returns the coverage table header for opts.
func CoverageHeader(opts Options) []string {
	h := []string{ColRequirement, ColCovered, ColCount, ColQuestionIDs}
	if opts.Proposals {
		h = append(h, ColProposal)
	}

	return h
}

// Proposal returns the suggested action for an uncovered requirement,
// e.g. "ADD_CR3_QUESTION", or "" when the entry is covered.
func Proposal(e coverage.Entry) string {
	if e.Covered() {
		return ""
	}

	return "ADD_" + e.Code.String() + "_QUESTION"
}

// CoverageRows renders one row per entry, in the order given.
func CoverageRows(entries []coverage.Entry, opts Options) [][]string {
	rows := make([][]string, 0, len(entries))

	for _, e := range entries {
		covered := "N"
		if e.Covered() {
			covered = "Y"
		}

		row := []string{e.Code.String(), covered, strconv.Itoa(e.Count()), strings.Join(e.IDs, ";")}
		if opts.Proposals {
			row = append(row, Proposal(e))
		}

		rows = append(rows, row)
	}

	return rows
}

// GapRows renders one row per gap.
func GapRows(gaps []evidence.Gap) [][]string {
	rows := make([][]string, 0, len(gaps))
	for _, g := range gaps {
		rows = append(rows, []string{g.ID, g.Tags})
	}

	return rows
}

// EncodeCoverage writes the coverage table as CSV.
func EncodeCoverage(w io.Writer, entries []coverage.Entry, opts Options) error {
	return writeCSV(w, CoverageHeader(opts), CoverageRows(entries, opts))
}

// EncodeGaps writes the evidence-gap table as CSV. An empty gap list
// yields a header-only table.
func EncodeGaps(w io.Writer, gaps []evidence.Gap) error {
	return writeCSV(w, GapHeader, GapRows(gaps))
}

func writeCSV(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write rows: %w", err)
	}

	return nil
}

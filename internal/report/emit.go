package report

import (
	"io"

	"reqcover/internal/coverage"
	"reqcover/internal/evidence"
)

// Paths are the destinations of the three run artifacts.
type Paths struct {
	Coverage        string
	MissingEvidence string
	Summary         string
}

// Input is everything the emitter renders, taken from a single aggregation.
type Input struct {
	Total   int
	Entries []coverage.Entry
	Gaps    []evidence.Gap
}

// Build returns the coverage, gap and summary artifacts for in, along
// with the summary they describe. Nothing is written.
func Build(p Paths, in Input, opts Options) ([]Artifact, Summary) {
	summary := NewSummary(in.Total, in.Entries, in.Gaps, Artifacts{
		CoverageCSV:        p.Coverage,
		MissingEvidenceCSV: p.MissingEvidence,
	})

	return []Artifact{
		{Path: p.Coverage, Encode: func(w io.Writer) error { return EncodeCoverage(w, in.Entries, opts) }},
		{Path: p.MissingEvidence, Encode: func(w io.Writer) error { return EncodeGaps(w, in.Gaps) }},
		{Path: p.Summary, Encode: func(w io.Writer) error { return EncodeSummary(w, summary) }},
	}, summary
}

// Write renders and commits the three artifacts.
func Write(p Paths, in Input, opts Options) (Summary, error) {
	artifacts, summary := Build(p, in, opts)
	if err := Commit(artifacts...); err != nil {
		return Summary{}, err
	}

	return summary, nil
}

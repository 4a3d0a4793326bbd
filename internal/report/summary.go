package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"reqcover/internal/coverage"
	"reqcover/internal/evidence"
	"reqcover/internal/requirement"
)

// Summary is the structured run summary.
type Summary struct {
	TotalQuestions       int       `json:"total_questions"`
	Requirements         Counts    `json:"requirements"`
	MissingEvidenceCount int       `json:"missing_evidence_count"`
	Artifacts            Artifacts `json:"artifacts"`
}

// Artifacts references the tables a summary describes.
type Artifacts struct {
	CoverageCSV        string `json:"coverage_csv"`
	MissingEvidenceCSV string `json:"missing_evidence_csv"`
}

// CodeCount is the number of records supporting one requirement.
type CodeCount struct {
	Code  requirement.Code
	Count int
}

// Counts is an ordered code -> count mapping. It marshals as a JSON object
// whose keys keep enumeration order (CR1..CR10, A..G).
type Counts []CodeCount

// NewSummary builds the summary for a run.
func NewSummary(total int, entries []coverage.Entry, gaps []evidence.Gap, artifacts Artifacts) Summary {
	counts := make(Counts, 0, len(entries))
	for _, e := range entries {
		counts = append(counts, CodeCount{Code: e.Code, Count: e.Count()})
	}

	return Summary{
		TotalQuestions:       total,
		Requirements:         counts,
		MissingEvidenceCount: len(gaps),
		Artifacts:            artifacts,
	}
}

// Get returns the count recorded for code.
func (c Counts) Get(code requirement.Code) (int, bool) {
	for _, cc := range c {
		if cc.Code == code {
			return cc.Count, true
		}
	}

	return 0, false
}

// MarshalJSON implements json.Marshaler.
func (c Counts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, cc := range c {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(cc.Code.String())
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		fmt.Fprintf(&buf, "%d", cc.Count)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler, keeping document key order.
func (c *Counts) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}

	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("requirements: expected object, got %v", tok)
	}

	out := Counts{}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}

		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("requirements: expected key, got %v", tok)
		}

		var n int
		if err := dec.Decode(&n); err != nil {
			return fmt.Errorf("requirements: %s: %w", key, err)
		}

		out = append(out, CodeCount{Code: requirement.Code(key), Count: n})
	}

	*c = out

	return nil
}

// EncodeSummary writes s as indented JSON followed by a newline.
func EncodeSummary(w io.Writer, s Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}

	return nil
}

// DecodeSummary reads a summary written by EncodeSummary.
func DecodeSummary(r io.Reader) (Summary, error) {
	var s Summary
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return Summary{}, fmt.Errorf("failed to decode summary: %w", err)
	}

	return s, nil
}

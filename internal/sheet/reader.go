package sheet

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"reqcover/internal/diagnostic"
	"reqcover/internal/match"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Table is a fully loaded questionnaire sheet.
type Table struct {
	// Source is the path the table was read from, if any.
	Source string
	// Header holds the column names; empty when the input had no header.
	Header []string
	// Fields are the columns discovered in Header.
	Fields  match.Fields
	Records []Record
	// Diagnostics collects per-row anomalies.
	Diagnostics diagnostic.Diagnostics
}

// LoadFile reads the table at path. A missing file yields a
// *diagnostic.ConfigError.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, diagnostic.NewMissingFile("questions", path)
		}

		return nil, fmt.Errorf("failed to open questions file %s: %w", path, err)
	}
	defer f.Close()

	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read questions file %s: %w", path, err)
	}

	t.Source = path

	return t, nil
}

// Parse reads a CSV table with a header row. A leading UTF-8 byte-order
// mark is ignored. An empty input yields a table with no header and no
// records.
func Parse(r io.Reader) (*Table, error) {
	br := bufio.NewReader(r)
	if lead, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(lead, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	t := &Table{}

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return t, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	t.Header = header
	t.Fields = match.Discover(header)
	l := newLayout(header, t.Fields)

	for row := 1; ; row++ {
		cells, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			var pe *csv.ParseError
			if !errors.As(err, &pe) {
				return nil, fmt.Errorf("failed to read row %d: %w", row, err)
			}

			t.Diagnostics.AddWarning(diagnostic.CodeMalformedRow,
				fmt.Sprintf("line %d: %v; missing cells read as empty", pe.Line, pe.Err), SyntheticID(row), "")
		}

		t.Records = append(t.Records, l.record(row, cells))
	}

	return t, nil
}

// HasHeader reports whether the input contained a header row.
func (t *Table) HasHeader() bool {
	return len(t.Header) > 0
}

// RequireColumns checks that the table can be reconciled: it must have an
// identifier-like column or a tag-like column. Tables without a header
// (empty input) pass, since there is nothing to reconcile.
func (t *Table) RequireColumns() error {
	if !t.HasHeader() || t.Fields.HasID() || t.Fields.HasTags() {
		return nil
	}

	var suggestions []string

	suggestions = append(suggestions, match.Suggest(t.Header, match.IDCandidates, match.DefaultSuggestThreshold).Top(2).Columns()...)
	suggestions = append(suggestions, match.Suggest(t.Header, match.TagCandidates, match.DefaultSuggestThreshold).Top(2).Columns()...)

	return diagnostic.NewMissingColumns(t.Source, dedupe(suggestions))
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := in[:0]

	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}

		seen[s] = struct{}{}
		out = append(out, s)
	}

	return out
}

package sheet

import (
	"strconv"
	"strings"

	"reqcover/internal/match"
)

// syntheticIDPrefix is used for records without an identifier cell.
const syntheticIDPrefix = "row"

// Record is one parsed input row.
type Record struct {
	// Row is the 1-based data row index (the header is not counted).
	Row int
	// ID is the identifier cell, or "row<Row>" when the table has no
	// identifier column or the cell is blank.
	ID string
	// Tags is the union of the normalized tokens of every tag column.
	Tags match.TagSet
	// Text is the free-text cell, empty when the table has no text column.
	Text string
	// Evidence is the evidence reference cell, untrimmed.
	Evidence string
}

// SyntheticID returns the positional identifier for a data row.
func SyntheticID(row int) string {
	return syntheticIDPrefix + strconv.Itoa(row)
}

// layout maps discovered fields to header positions.
type layout struct {
	id       int
	text     int
	evidence int
	tags     []int
}

func newLayout(header []string, f match.Fields) layout {
	pos := make(map[string]int, len(header))
	for i, col := range header {
		if _, dup := pos[col]; !dup {
			pos[col] = i
		}
	}

	at := func(col string) int {
		if col == "" {
			return -1
		}

		if i, ok := pos[col]; ok {
			return i
		}

		return -1
	}

	l := layout{
		id:       at(f.ID),
		text:     at(f.Text),
		evidence: at(f.Evidence),
	}

	for _, col := range f.Tags {
		if i := at(col); i >= 0 {
			l.tags = append(l.tags, i)
		}
	}

	return l
}

// record builds a Record from raw cells. Cells beyond the end of a short
// row read as empty strings.
func (l layout) record(row int, cells []string) Record {
	cell := func(i int) string {
		if i < 0 || i >= len(cells) {
			return ""
		}

		return cells[i]
	}

	rec := Record{
		Row:      row,
		ID:       strings.TrimSpace(cell(l.id)),
		Text:     cell(l.text),
		Evidence: cell(l.evidence),
		Tags:     match.TagSet{},
	}

	if rec.ID == "" {
		rec.ID = SyntheticID(row)
	}

	for _, i := range l.tags {
		rec.Tags = rec.Tags.Union(match.NormalizeTags(cell(i)))
	}

	return rec
}

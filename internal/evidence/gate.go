// Package evidence implements the evidence gate: records tagged as
// requiring evidence must carry a non-blank evidence reference.
package evidence

import (
	"reqcover/internal/common"
	"reqcover/internal/sheet"
)

// RequiredTag marks a record whose answer must be backed by evidence.
const RequiredTag = "EVIDENCE_REQUIRED"

// Gap is a record that requires evidence but has none.
type Gap struct {
	ID string
	// Tags is the record's sorted, comma-joined tag set.
	Tags string
}

// Check returns the gap for rec, if any. Records without RequiredTag never
// produce a gap, even when their evidence cell is empty.
func Check(rec sheet.Record) (Gap, bool) {
	if !rec.Tags.Has(RequiredTag) || !common.IsBlank(rec.Evidence) {
		return Gap{}, false
	}

	return Gap{ID: rec.ID, Tags: rec.Tags.Joined()}, true
}

// FindGaps returns one gap per offending record, in input order.
func FindGaps(records []sheet.Record) []Gap {
	gaps := []Gap{}

	for i := range records {
		if g, ok := Check(records[i]); ok {
			gaps = append(gaps, g)
		}
	}

	return gaps
}

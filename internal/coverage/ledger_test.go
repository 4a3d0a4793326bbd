package coverage

import (
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reqcover/internal/match"
	"reqcover/internal/requirement"
	"reqcover/internal/sheet"
)

func rec(row int, id, tags, text string) sheet.Record {
	return sheet.Record{Row: row, ID: id, Tags: match.NormalizeTags(tags), Text: text}
}

func ids(t *testing.T, l *Ledger, code requirement.Code) []string {
	t.Helper()

	e, ok := l.Entry(code)
	require.True(t, ok, "missing entry for %s", code)

	return e.IDs
}

func TestAggregateEmpty(t *testing.T) {
	l := Aggregate(requirement.Default(), nil)

	entries := l.Entries()
	require.Len(t, entries, 17)

	for i, code := range requirement.Default().Codes() {
		assert.Equal(t, code, entries[i].Code)
		assert.False(t, entries[i].Covered())
		assert.Equal(t, 0, entries[i].Count())
		assert.Empty(t, entries[i].IDs)
	}

	assert.Len(t, l.Uncovered(), 17)
	assert.Equal(t, 0, l.Records())
}

func TestAggregateTagAndText(t *testing.T) {
	records := []sheet.Record{
		rec(1, "Q1", "cr1, EVIDENCE_REQUIRED", ""),
		rec(2, "Q2", "", "See CR-03 and CR10 for details"),
		rec(3, "Q3", "A;b", "A question about letter C"),
		rec(4, "Q4", "CR3", "also CR3 in text"),
	}

	l := Aggregate(requirement.Default(), records)

	assert.Equal(t, []string{"Q1"}, ids(t, l, "CR1"))
	assert.Equal(t, []string{"Q2", "Q4"}, ids(t, l, "CR3"))
	assert.Equal(t, []string{"Q2"}, ids(t, l, "CR10"))
	assert.Equal(t, []string{"Q3"}, ids(t, l, "A"))
	assert.Equal(t, []string{"Q3"}, ids(t, l, "B"))
	assert.Empty(t, ids(t, l, "C"), "letters in prose must not match")
	assert.Equal(t, 4, l.Records())
}

func TestAggregateOrderAndDedup(t *testing.T) {
	records := []sheet.Record{
		rec(1, "Q9", "CR2", ""),
		rec(2, "Q1", "cr-02", "CR2 again"),
		rec(3, "Q9", "CR02", ""),
		rec(4, "Q5", "", "cr2"),
	}

	l := Aggregate(requirement.Default(), records)

	want := []string{"Q9", "Q1", "Q5"}
	if diff := cmp.Diff(want, ids(t, l, "CR2")); diff != "" {
		t.Errorf("CR2 ids mismatch (-want +got):\n%s\nledger:\n%s", diff, spew.Sdump(l.Entries()))
	}
}

func TestAggregateInvariants(t *testing.T) {
	var records []sheet.Record

	tags := []string{"CR1", "CR2;A", "B|CR1", "", "G", "CR10 CR1"}
	for i := 0; i < 60; i++ {
		id := "Q" + strings.Repeat("x", i%7)
		records = append(records, rec(i+1, id, tags[i%len(tags)], "mentions CR5"))
	}

	l := Aggregate(requirement.Default(), records)

	for _, e := range l.Entries() {
		seen := map[string]bool{}
		for _, id := range e.IDs {
			assert.False(t, seen[id], "duplicate %s under %s", id, e.Code)
			seen[id] = true
		}

		assert.Equal(t, len(e.IDs), e.Count())
	}
}

func TestAggregateIdempotent(t *testing.T) {
	records := []sheet.Record{
		rec(1, "Q1", "CR1|A", "CR7"),
		rec(2, "Q2", "CR1", ""),
	}

	first := Aggregate(requirement.Default(), records).Entries()
	second := Aggregate(requirement.Default(), records).Entries()

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("aggregation not deterministic (-first +second):\n%s", diff)
	}
}

func TestLedgerEntryCopies(t *testing.T) {
	l := Aggregate(requirement.Default(), []sheet.Record{rec(1, "Q1", "CR1", "")})

	e, ok := l.Entry("CR1")
	require.True(t, ok)
	e.IDs[0] = "mutated"

	assert.Equal(t, []string{"Q1"}, ids(t, l, "CR1"))

	_, ok = l.Entry("Z")
	assert.False(t, ok)
}

func TestMatches(t *testing.T) {
	got := Matches(requirement.Default(), rec(1, "Q1", "CARD, cr4, x", "cr4 and CR9"))
	assert.Equal(t, []requirement.Code{"CR4", "CR9"}, got)
}

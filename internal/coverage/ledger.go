package coverage

import (
	"reqcover/internal/common"
	"reqcover/internal/requirement"
	"reqcover/internal/sheet"
)

// Entry is the coverage state of one requirement code.
type Entry struct {
	Code requirement.Code
	// IDs lists supporting record ids in first-seen order.
	IDs []string
}

// Covered reports whether at least one record supports the code.
func (e Entry) Covered() bool {
	return !common.IsEmpty(e.IDs)
}

// Count returns the number of supporting records.
func (e Entry) Count() int {
	return len(e.IDs)
}

// Ledger accumulates coverage entries for a fixed requirement set.
type Ledger struct {
	set     requirement.Set
	entries []Entry
	seen    []map[string]struct{}
	records int
}

// NewLedger returns a ledger with an empty entry for every code in set.
func NewLedger(set requirement.Set) *Ledger {
	codes := set.Codes()

	l := &Ledger{
		set:     set,
		entries: make([]Entry, len(codes)),
		seen:    make([]map[string]struct{}, len(codes)),
	}

	for i, c := range codes {
		l.entries[i] = Entry{Code: c, IDs: []string{}}
		l.seen[i] = map[string]struct{}{}
	}

	return l
}

// Aggregate folds records, in order, into a new ledger.
func Aggregate(set requirement.Set, records []sheet.Record) *Ledger {
	l := NewLedger(set)
	for i := range records {
		l.Fold(records[i])
	}

	return l
}

// Fold adds one record: every code matched by its tags or its text gains
// the record id once.
func (l *Ledger) Fold(rec sheet.Record) {
	l.records++

	for _, c := range Matches(l.set, rec) {
		l.add(c, rec.ID)
	}
}

// add appends id under code unless it is already there.
// Returns false for duplicates and codes outside the set.
func (l *Ledger) add(code requirement.Code, id string) bool {
	i, ok := l.set.Index(code)
	if !ok {
		return false
	}

	if _, dup := l.seen[i][id]; dup {
		return false
	}

	l.seen[i][id] = struct{}{}
	l.entries[i].IDs = append(l.entries[i].IDs, id)

	return true
}

// Matches returns the codes a record supports: tag matches (in sorted tag
// order) followed by free-text matches, without duplicates.
func Matches(set requirement.Set, rec sheet.Record) []requirement.Code {
	var out []requirement.Code

	seen := map[requirement.Code]struct{}{}
	push := func(c requirement.Code) {
		if _, dup := seen[c]; dup {
			return
		}

		seen[c] = struct{}{}
		out = append(out, c)
	}

	for _, tag := range rec.Tags.Sorted() {
		if c, ok := set.MatchTag(tag); ok {
			push(c)
		}
	}

	for _, c := range set.MatchText(rec.Text) {
		push(c)
	}

	return out
}

// Records returns the number of records folded so far.
func (l *Ledger) Records() int {
	return l.records
}

// Entries returns a copy of all entries in enumeration order.
func (l *Ledger) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	for i, e := range l.entries {
		ids := make([]string, len(e.IDs))
		copy(ids, e.IDs)
		out[i] = Entry{Code: e.Code, IDs: ids}
	}

	return out
}

// Entry returns the entry for code.
func (l *Ledger) Entry(code requirement.Code) (Entry, bool) {
	i, ok := l.set.Index(code)
	if !ok {
		return Entry{}, false
	}

	e := l.entries[i]

	return Entry{Code: e.Code, IDs: append([]string{}, e.IDs...)}, true
}

// Uncovered lists the codes without any supporting record, in enumeration order.
func (l *Ledger) Uncovered() []requirement.Code {
	var out []requirement.Code

	for _, e := range l.entries {
		if !e.Covered() {
			out = append(out, e.Code)
		}
	}

	return out
}

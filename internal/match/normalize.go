package match

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// tagDelimiters covers every delimiter style seen in questionnaire sheets:
// comma, semicolon, pipe, slash and runs of whitespace are all equivalent.
var tagDelimiters = regexp.MustCompile(`[,;|/\s]+`)

// TagSet is a deduplicated set of upper-case tag tokens.
type TagSet map[string]struct{}

// NormalizeTags splits a raw tag cell into its canonical token set.
// Tokens are trimmed, stripped of internal whitespace and upper-cased;
// empty tokens are dropped. Malformed input yields a partial or empty set.
func NormalizeTags(raw string) TagSet {
	set := TagSet{}
	if strings.TrimSpace(raw) == "" {
		return set
	}

	for _, tok := range tagDelimiters.Split(raw, -1) {
		tok = strings.ToUpper(stripSpace(strings.TrimSpace(tok)))
		if tok == "" {
			continue
		}

		set[tok] = struct{}{}
	}

	return set
}

// Has reports whether tag is in the set.
func (s TagSet) Has(tag string) bool {
	_, ok := s[tag]
	return ok
}

// Len returns the number of tags.
func (s TagSet) Len() int {
	return len(s)
}

// Union returns a new set holding the tags of s and other.
func (s TagSet) Union(other TagSet) TagSet {
	out := make(TagSet, len(s)+len(other))
	for t := range s {
		out[t] = struct{}{}
	}

	for t := range other {
		out[t] = struct{}{}
	}

	return out
}

// Sorted returns the tags in lexical order.
func (s TagSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for t := range s {
		out = append(out, t)
	}

	sort.Strings(out)

	return out
}

// Joined returns the sorted tags joined with commas, e.g. "CR1,EVIDENCE_REQUIRED".
func (s TagSet) Joined() string {
	return strings.Join(s.Sorted(), ",")
}

// NormalizeIdent normalizes a column name for synonym comparison.
// The normalization pipeline:
// 1. Trim surrounding whitespace.
// 2. Case-fold to lower.
// 3. Strip separators (_, -, spaces).
//
// "Question ID", "question_id" and "QUESTION-ID" all become "questionid".
func NormalizeIdent(s string) string {
	return stripSeparators(strings.ToLower(strings.TrimSpace(s)))
}

// isSeparator returns true if the rune is a common separator.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || unicode.IsSpace(r)
}

// stripSeparators removes common separators from a string.
func stripSeparators(s string) string {
	var result strings.Builder

	result.Grow(len(s))

	for _, r := range s {
		if !isSeparator(r) {
			result.WriteRune(r)
		}
	}

	return result.String()
}

// stripSpace removes every whitespace rune from s.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return r
	}, s)
}

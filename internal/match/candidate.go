package match

import (
	"sort"
)

// Candidate is a header column that resembles one of the synonyms of a
// concern without matching it exactly.
type Candidate struct {
	Column  string
	Synonym string
	// Score is the ColumnSimilarity of Column and Synonym.
	Score float64
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// DefaultSuggestThreshold is the minimum similarity for a column to be
// offered as a "did you mean" hint.
const DefaultSuggestThreshold = 0.6

// Suggest ranks header columns by their closest synonym.
// Only columns scoring at least threshold are returned, best first.
func Suggest(columns []string, synonyms []string, threshold float64) CandidateList {
	var candidates CandidateList

	for _, col := range columns {
		best := Candidate{Column: col}

		for _, syn := range synonyms {
			score := ColumnSimilarity(col, syn)
			if score > best.Score {
				best.Score = score
				best.Synonym = syn
			}
		}

		if best.Synonym == "" || best.Score < threshold {
			continue
		}

		candidates = append(candidates, best)
	}

	sort.Sort(candidates)

	return candidates
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by score descending, then by column name for determinism.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Column < c[j].Column
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// Columns returns the candidate column names in rank order.
func (c CandidateList) Columns() []string {
	out := make([]string, 0, len(c))
	for _, cand := range c {
		out = append(out, cand.Column)
	}

	return out
}

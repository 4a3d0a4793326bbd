package match

// editDistance returns the Levenshtein distance between a and b, counted
// in runes so accented header names are not penalized per byte.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)

	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	if len(ra) == 0 {
		return len(rb)
	}

	// Single row plus the diagonal; ra is the shorter of the two.
	row := make([]int, len(ra)+1)
	for i := range row {
		row[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		diag := row[0]
		row[0] = j

		for i := 1; i <= len(ra); i++ {
			sub := diag
			if ra[i-1] != rb[j-1] {
				sub++
			}

			diag = row[i]
			row[i] = min(row[i]+1, row[i-1]+1, sub)
		}
	}

	return row[len(ra)]
}

// similarity maps the edit distance onto 0..1, 1 meaning identical.
func similarity(a, b string) float64 {
	longest := max(len([]rune(a)), len([]rune(b)))
	if longest == 0 {
		return 1
	}

	return 1 - float64(editDistance(a, b))/float64(longest)
}

// ColumnSimilarity scores a header column against a synonym after both
// are normalized with NormalizeIdent, so "Question ID" and "question_id"
// score 1.
func ColumnSimilarity(column, synonym string) float64 {
	return similarity(NormalizeIdent(column), NormalizeIdent(synonym))
}

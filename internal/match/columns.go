package match

// Column synonym lists. For single-valued concerns the first header column
// matching any synonym wins.
var (
	IDCandidates       = []string{"id", "question_id", "qid", "key", "ref"}
	TextCandidates     = []string{"text", "question", "prompt", "body", "label"}
	TagCandidates      = []string{"tags", "tag", "controls", "control", "categories", "category", "cr", "mapping"}
	EvidenceCandidates = []string{"evidence", "evidence_path", "evidence_ref", "evidence_url"}
)

// Fields names the header columns that hold each concern of a record.
// Empty strings mean the concern has no column.
type Fields struct {
	ID       string
	Text     string
	Evidence string
	// Tags lists every tag-like column; a record's tags are their union.
	Tags []string
}

// HasID reports whether an identifier column was found.
func (f Fields) HasID() bool {
	return f.ID != ""
}

// HasTags reports whether at least one tag column was found.
func (f Fields) HasTags() bool {
	return len(f.Tags) > 0
}

// Discover picks the record columns out of a header.
// Matching is case-insensitive and ignores separators, so "Question ID"
// matches the question_id synonym. Header order decides ties.
func Discover(columns []string) Fields {
	var f Fields

	for _, col := range columns {
		norm := NormalizeIdent(col)
		if norm == "" {
			continue
		}

		if f.ID == "" && isCandidate(norm, IDCandidates) {
			f.ID = col
		}

		if f.Text == "" && isCandidate(norm, TextCandidates) {
			f.Text = col
		}

		if f.Evidence == "" && isCandidate(norm, EvidenceCandidates) {
			f.Evidence = col
		}

		if isCandidate(norm, TagCandidates) {
			f.Tags = append(f.Tags, col)
		}
	}

	return f
}

func isCandidate(norm string, candidates []string) bool {
	for _, c := range candidates {
		if NormalizeIdent(c) == norm {
			return true
		}
	}

	return false
}

package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiscover(t *testing.T) {
	tests := []struct {
		name    string
		columns []string
		want    Fields
	}{
		{
			name:    "canonical names",
			columns: []string{"id", "text", "tags", "evidence"},
			want:    Fields{ID: "id", Text: "text", Evidence: "evidence", Tags: []string{"tags"}},
		},
		{
			name:    "case and separators",
			columns: []string{"Question ID", "Prompt", "CATEGORY", "Evidence-Path"},
			want:    Fields{ID: "Question ID", Text: "Prompt", Evidence: "Evidence-Path", Tags: []string{"CATEGORY"}},
		},
		{
			name:    "all tag columns collected in header order",
			columns: []string{"cr", "qid", "category", "body", "mapping"},
			want:    Fields{ID: "qid", Text: "body", Tags: []string{"cr", "category", "mapping"}},
		},
		{
			name:    "first id column wins",
			columns: []string{"ref", "id", "key"},
			want:    Fields{ID: "ref"},
		},
		{
			name:    "no id column",
			columns: []string{"question", "tags"},
			want:    Fields{Text: "question", Tags: []string{"tags"}},
		},
		{
			name:    "nothing recognised",
			columns: []string{"owner", "status", ""},
			want:    Fields{},
		},
		{
			name: "empty header",
			want: Fields{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Discover(tt.columns)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFieldsPredicates(t *testing.T) {
	f := Discover([]string{"id", "text"})
	assert.True(t, f.HasID())
	assert.False(t, f.HasTags())

	f = Discover([]string{"controls"})
	assert.False(t, f.HasID())
	assert.True(t, f.HasTags())
}

package binding

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func page(n int) *int { return &n }

func sample() *Map {
	return New("./Fixes/pdf_temp_export.pdf", map[string]Field{
		"applicant_name": {Page: page(0), Type: "/Tx"},
		"consent":        {Type: "/Btn"},
		"signature":      {BindTo: "profile.signature", Page: page(2)},
	})
}

func TestNewAppliesDefaults(t *testing.T) {
	m := sample()

	assert.Equal(t, Version, m.Version)
	assert.Equal(t, UnknownType, m.Fields["signature"].Type)
	assert.Equal(t, []string{"applicant_name", "consent", "signature"}, m.Names())
	assert.Equal(t, []string{"applicant_name", "consent"}, m.Unbound())

	empty := New("t.pdf", nil)
	assert.NotNil(t, empty.Fields)
	assert.Empty(t, empty.Names())
}

func TestMarshalJSON(t *testing.T) {
	data, err := Marshal(New("t.pdf", map[string]Field{
		"name":  {Page: page(1), Type: "/Tx"},
		"other": {Type: "/Ch"},
	}), FormatJSON)
	require.NoError(t, err)

	want := `{
  "template_pdf": "t.pdf",
  "version": 1,
  "fields": {
    "name": {
      "bind_to": "",
      "page": 1,
      "type": "/Tx"
    },
    "other": {
      "bind_to": "",
      "page": null,
      "type": "/Ch"
    }
  }
}
`
	assert.Equal(t, want, string(data))
}

func TestRoundTrip(t *testing.T) {
	for _, format := range []Format{FormatJSON, FormatYAML} {
		data, err := Marshal(sample(), format)
		require.NoError(t, err)

		back, err := Parse(data, format)
		require.NoError(t, err)
		assert.Equal(t, sample(), back)
	}
}

func TestParseDefaults(t *testing.T) {
	m, err := Parse([]byte(`
template_pdf: form.pdf
fields:
  a:
    page: 3
`), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, 1, m.Version)
	require.NotNil(t, m.Fields["a"].Page)
	assert.Equal(t, 3, *m.Fields["a"].Page)
	assert.Equal(t, UnknownType, m.Fields["a"].Type)
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte(`{"fields": [1]}`), FormatJSON)
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"map.json", "map.yaml"} {
		path := filepath.Join(dir, name)

		data, err := Marshal(sample(), FormatFor(path))
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(path, data, 0o644))

		m, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, sample(), m, name)
	}

	_, err := LoadFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestFormatFor(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatFor("a/b.YML"))
	assert.Equal(t, FormatYAML, FormatFor("b.yaml"))
	assert.Equal(t, FormatJSON, FormatFor("b.json"))
	assert.Equal(t, FormatJSON, FormatFor("b"))
}

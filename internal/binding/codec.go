package binding

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is a binding map serialization.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatFor picks the format from a file extension; anything other than
// .yaml/.yml is JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// LoadFile loads and parses a binding map from the given path.
func LoadFile(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read binding map %s: %w", path, err)
	}

	return Parse(data, FormatFor(path))
}

// Parse parses binding map data.
func Parse(data []byte, format Format) (*Map, error) {
	var m Map

	var err error

	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &m)
	default:
		err = json.Unmarshal(data, &m)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to parse binding map: %w", err)
	}

	applyDefaults(&m)

	return &m, nil
}

// Marshal serializes a binding map.
func Marshal(m *Map, format Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, m, format); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Encode writes a binding map to w. JSON output is indented with two spaces.
func Encode(w io.Writer, m *Map, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(m); err != nil {
			return fmt.Errorf("failed to marshal binding map: %w", err)
		}

		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		if err := enc.Encode(m); err != nil {
			return fmt.Errorf("failed to marshal binding map: %w", err)
		}

		return nil
	}
}

package binding

import (
	"sort"
)

// Version is the binding map format version written by this package.
const Version = 1

// UnknownType is recorded for fields whose type cannot be determined.
const UnknownType = "Unknown"

// Field is one fillable form field.
type Field struct {
	// BindTo names the data source; empty until a binding step fills it.
	BindTo string `json:"bind_to" yaml:"bind_to"`
	// Page is the 0-based page index, nil when the field was found
	// without page information.
	Page *int `json:"page" yaml:"page"`
	// Type is the PDF field type name, e.g. "/Tx", "/Btn", or "Unknown".
	Type string `json:"type" yaml:"type"`
}

// Map is the binding map document.
type Map struct {
	TemplatePDF string           `json:"template_pdf" yaml:"template_pdf"`
	Version     int              `json:"version" yaml:"version"`
	Fields      map[string]Field `json:"fields" yaml:"fields"`
}

// New builds a binding map for template.
func New(template string, fields map[string]Field) *Map {
	m := &Map{TemplatePDF: template, Version: Version, Fields: fields}
	applyDefaults(m)

	return m
}

// Names returns the field names in lexical order.
func (m *Map) Names() []string {
	names := make([]string, 0, len(m.Fields))
	for name := range m.Fields {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Unbound returns the names of fields without a binding, in lexical order.
func (m *Map) Unbound() []string {
	var out []string

	for _, name := range m.Names() {
		if m.Fields[name].BindTo == "" {
			out = append(out, name)
		}
	}

	return out
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(m *Map) {
	if m.Version == 0 {
		m.Version = Version
	}

	if m.Fields == nil {
		m.Fields = map[string]Field{}
	}

	for name, f := range m.Fields {
		if f.Type == "" {
			f.Type = UnknownType
			m.Fields[name] = f
		}
	}
}

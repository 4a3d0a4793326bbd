package formfields

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"reqcover/internal/binding"
	"reqcover/internal/diagnostic"
)

func TestExtractMissingFile(t *testing.T) {
	_, err := Extract(context.Background(), filepath.Join(t.TempDir(), "none.pdf"), zap.NewNop())

	var ce *diagnostic.ConfigError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, diagnostic.MissingFile, ce.Kind)
}

func TestExtractNotAPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "form.pdf")
	require.NoError(t, os.WriteFile(path, []byte("id,tags\n"), 0o644))

	_, err := Extract(context.Background(), path, zap.NewNop())
	require.Error(t, err)
	assert.Equal(t, diagnostic.ExitFailure, diagnostic.ExitCode(err))
}

func TestExtractPageWidgets(t *testing.T) {
	got, err := Extract(context.Background(), filepath.Join("testdata", "form.pdf"), zap.NewNop())
	require.NoError(t, err)

	first, second := 0, 1
	assert.Equal(t, map[string]binding.Field{
		"applicant": {Page: &first, Type: "/Tx"},
		"consent":   {Page: &first, Type: "/Btn"},
		"signature": {Page: &second, Type: "/Sig"},
	}, got, "fields without a page widget are not listed when pages carry widgets")
}

func TestExtractFallsBackToAcroForm(t *testing.T) {
	got, err := Extract(context.Background(), filepath.Join("testdata", "acroform_only.pdf"), zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, map[string]binding.Field{
		"address.street": {Type: "/Tx"},
		"address.city":   {Type: "/Ch"},
	}, got)
}

func TestExtractCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Extract(ctx, filepath.Join("testdata", "form.pdf"), zap.NewNop())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWidgetField(t *testing.T) {
	xrt := &model.XRefTable{}

	tests := []struct {
		name     string
		dict     types.Dict
		wantName string
		wantType string
		wantOK   bool
	}{
		{
			name:     "named text widget",
			dict:     types.Dict{"T": types.StringLiteral("applicant"), "FT": types.Name("Tx")},
			wantName: "applicant",
			wantType: "/Tx",
			wantOK:   true,
		},
		{
			name:     "type missing",
			dict:     types.Dict{"T": types.StringLiteral("notes")},
			wantName: "notes",
			wantType: binding.UnknownType,
			wantOK:   true,
		},
		{
			name: "inherits from parent",
			dict: types.Dict{
				"Subtype": types.Name("Widget"),
				"Parent":  types.Dict{"T": types.StringLiteral("consent"), "FT": types.Name("Btn")},
			},
			wantName: "consent",
			wantType: "/Btn",
			wantOK:   true,
		},
		{
			name:   "unnamed link annotation",
			dict:   types.Dict{"Subtype": types.Name("Link")},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, typ, ok := widgetField(xrt, tt.dict)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantType, typ)
		})
	}
}

func TestWalkAcroForm(t *testing.T) {
	xrt := &model.XRefTable{
		RootDict: types.Dict{
			"AcroForm": types.Dict{
				"Fields": types.Array{
					types.Dict{"T": types.StringLiteral("name"), "FT": types.Name("Tx")},
					types.Dict{
						"T":  types.StringLiteral("address"),
						"FT": types.Name("Tx"),
						"Kids": types.Array{
							types.Dict{"T": types.StringLiteral("street")},
							types.Dict{"T": types.StringLiteral("city"), "FT": types.Name("Ch")},
						},
					},
					types.Dict{
						"T":    types.StringLiteral("agree"),
						"FT":   types.Name("Btn"),
						"Kids": types.Array{types.Dict{"Subtype": types.Name("Widget")}},
					},
					types.Dict{"Subtype": types.Name("Widget")},
				},
			},
		},
	}

	got := walkAcroForm(xrt, zap.NewNop())

	assert.Equal(t, map[string]binding.Field{
		"name":           {Type: "/Tx"},
		"address.street": {Type: "/Tx"},
		"address.city":   {Type: "/Ch"},
		"agree":          {Type: "/Btn"},
	}, got)
}

func TestWalkAcroFormMissing(t *testing.T) {
	got := walkAcroForm(&model.XRefTable{RootDict: types.Dict{}}, zap.NewNop())
	assert.Empty(t, got)
}

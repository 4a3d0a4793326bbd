package formfields

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	"go.uber.org/zap"

	"reqcover/internal/binding"
	"reqcover/internal/diagnostic"
)

// maxFieldDepth bounds the AcroForm tree walk.
const maxFieldDepth = 32

func init() {
	// pdfcpu would otherwise create a configuration directory under the
	// user's config home on first use.
	api.DisableConfigDir()
}

// Extract reads the template at path and returns its fields keyed by name.
// A missing file yields a *diagnostic.ConfigError.
func Extract(ctx context.Context, path string, logger *zap.Logger) (map[string]binding.Field, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, diagnostic.NewMissingFile("template", path)
		}

		return nil, fmt.Errorf("failed to stat template %s: %w", path, err)
	}

	pdf, err := readContext(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", path, err)
	}

	return extractFrom(ctx, pdf.XRefTable, logger)
}

// readContext parses the template without validating it, so templates
// exported by lenient producers still yield their fields.
func readContext(path string) (*model.Context, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	pdf, err := api.ReadContext(f, model.NewDefaultConfiguration())
	if err != nil {
		return nil, err
	}

	if err := pdf.EnsurePageCount(); err != nil {
		return nil, err
	}

	return pdf, nil
}

// extractFrom prefers page widgets and falls back to the AcroForm tree
// only when no page carries a named widget.
func extractFrom(ctx context.Context, xrt *model.XRefTable, logger *zap.Logger) (map[string]binding.Field, error) {
	fields, err := scanPages(ctx, xrt, logger)
	if err != nil {
		return nil, err
	}

	if len(fields) > 0 {
		logger.Debug("fields discovered from page annotations", zap.Int("fields", len(fields)))
		return fields, nil
	}

	fields = walkAcroForm(xrt, logger)
	logger.Debug("fields discovered from AcroForm tree", zap.Int("fields", len(fields)))

	return fields, nil
}

// scanPages collects named widget annotations from every page.
// Unreadable pages and annotations are skipped.
func scanPages(ctx context.Context, xrt *model.XRefTable, logger *zap.Logger) (map[string]binding.Field, error) {
	fields := map[string]binding.Field{}

	for pageNr := 1; pageNr <= xrt.PageCount; pageNr++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		pageDict, _, _, err := xrt.PageDict(pageNr, false)
		if err != nil || pageDict == nil {
			logger.Debug("skipping unreadable page", zap.Int("page", pageNr), zap.Error(err))
			continue
		}

		obj, found := pageDict.Find("Annots")
		if !found {
			continue
		}

		annots, err := xrt.DereferenceArray(obj)
		if err != nil {
			logger.Debug("skipping unreadable annotations", zap.Int("page", pageNr), zap.Error(err))
			continue
		}

		for _, a := range annots {
			d, err := xrt.DereferenceDict(a)
			if err != nil || d == nil {
				continue
			}

			name, typ, ok := widgetField(xrt, d)
			if !ok {
				continue
			}

			page := pageNr - 1
			fields[name] = binding.Field{Page: &page, Type: typ}
		}
	}

	return fields, nil
}

// widgetField returns the name and type of a widget annotation. Both are
// looked up on the widget first and on its parent field second, since
// widgets of a field with several appearances carry neither.
func widgetField(xrt *model.XRefTable, d types.Dict) (name, typ string, ok bool) {
	parent := parentDict(xrt, d)

	name = textEntry(xrt, d, "T")
	if name == "" && parent != nil {
		name = textEntry(xrt, parent, "T")
	}

	if name == "" {
		return "", "", false
	}

	typ = nameEntry(xrt, d, "FT")
	if typ == "" && parent != nil {
		typ = nameEntry(xrt, parent, "FT")
	}

	if typ == "" {
		typ = binding.UnknownType
	}

	return name, typ, true
}

// walkAcroForm collects the terminal fields of the document's AcroForm.
func walkAcroForm(xrt *model.XRefTable, logger *zap.Logger) map[string]binding.Field {
	fields := map[string]binding.Field{}

	root, err := xrt.Catalog()
	if err != nil {
		logger.Debug("unreadable catalog", zap.Error(err))
		return fields
	}

	obj, found := root.Find("AcroForm")
	if !found {
		return fields
	}

	acro, err := xrt.DereferenceDict(obj)
	if err != nil || acro == nil {
		logger.Debug("unreadable AcroForm", zap.Error(err))
		return fields
	}

	obj, found = acro.Find("Fields")
	if !found {
		return fields
	}

	roots, err := xrt.DereferenceArray(obj)
	if err != nil {
		logger.Debug("unreadable AcroForm fields", zap.Error(err))
		return fields
	}

	for _, r := range roots {
		walkField(xrt, r, "", "", 0, fields)
	}

	return fields
}

func walkField(xrt *model.XRefTable, obj types.Object, prefix, inheritedType string, depth int, out map[string]binding.Field) {
	if depth > maxFieldDepth {
		return
	}

	d, err := xrt.DereferenceDict(obj)
	if err != nil || d == nil {
		return
	}

	name := prefix
	if partial := textEntry(xrt, d, "T"); partial != "" {
		if name != "" {
			name += "."
		}

		name += partial
	}

	typ := nameEntry(xrt, d, "FT")
	if typ == "" {
		typ = inheritedType
	}

	var namedKids []types.Object

	if kidsObj, found := d.Find("Kids"); found {
		if kids, err := xrt.DereferenceArray(kidsObj); err == nil {
			for _, k := range kids {
				kd, err := xrt.DereferenceDict(k)
				if err == nil && kd != nil && textEntry(xrt, kd, "T") != "" {
					namedKids = append(namedKids, k)
				}
			}
		}
	}

	if len(namedKids) == 0 {
		if name == "" {
			return
		}

		if typ == "" {
			typ = binding.UnknownType
		}

		out[name] = binding.Field{Type: typ}

		return
	}

	for _, k := range namedKids {
		walkField(xrt, k, name, typ, depth+1, out)
	}
}

func parentDict(xrt *model.XRefTable, d types.Dict) types.Dict {
	obj, found := d.Find("Parent")
	if !found {
		return nil
	}

	parent, err := xrt.DereferenceDict(obj)
	if err != nil {
		return nil
	}

	return parent
}

// textEntry returns a string or hex literal entry, decoded.
func textEntry(xrt *model.XRefTable, d types.Dict, key string) string {
	obj, found := d.Find(key)
	if !found {
		return ""
	}

	obj, err := xrt.Dereference(obj)
	if err != nil || obj == nil {
		return ""
	}

	s, err := types.StringOrHexLiteral(obj)
	if err != nil || s == nil {
		return ""
	}

	return *s
}

// nameEntry returns a name entry with its leading slash, e.g. "/Tx".
func nameEntry(xrt *model.XRefTable, d types.Dict, key string) string {
	obj, found := d.Find(key)
	if !found {
		return ""
	}

	obj, err := xrt.Dereference(obj)
	if err != nil {
		return ""
	}

	n, ok := obj.(types.Name)
	if !ok || n == "" {
		return ""
	}

	return "/" + string(n)
}

// Package formfields discovers the fillable fields of a PDF form template.
//
// Discovery first scans every page's annotations for named widgets, which
// yields page numbers and works even for documents whose AcroForm field
// tree is empty or broken. When no widget is found it falls back to
// walking the AcroForm /Fields tree, which yields fully qualified names but
// no page information.
//
// The PDF object model is provided by github.com/pdfcpu/pdfcpu.
package formfields

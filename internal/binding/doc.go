// Package binding provides the binding map document: the list of fillable
// fields of a form template, each waiting to be bound to a data source.
//
// The document is produced from PDF form-field discovery and passed
// through unchanged; only a later binding step fills bind_to.
//
// # Schema Overview
//
//	{
//	  "template_pdf": "./Fixes/pdf_temp_export.pdf",
//	  "version": 1,
//	  "fields": {
//	    "applicant_name": {"bind_to": "", "page": 0, "type": "/Tx"},
//	    "consent":        {"bind_to": "", "page": null, "type": "/Btn"}
//	  }
//	}
//
// The same schema can be written as YAML when the target path ends in
// .yaml or .yml:
//
//	template_pdf: ./Fixes/pdf_temp_export.pdf
//	version: 1
//	fields:
//	  applicant_name:
//	    bind_to: ""
//	    page: 0
//	    type: /Tx
package binding

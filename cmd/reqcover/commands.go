package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"reqcover/internal/diagnostic"
	"reqcover/internal/reconcile"
	"reqcover/internal/requirement"
)

func (a *app) coverageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coverage",
		Short: "Write the coverage, missing-evidence and summary reports",
		Args:  cobra.NoArgs,
		RunE:  a.runCoverage,
	}

	cmd.Flags().StringVar(&a.questions, "questions", "", "questions CSV (default $QCSV or <fixtures>/questions.csv)")

	return cmd
}

func (a *app) fieldsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fields",
		Short: "Extract the template's form fields into a binding map",
		Long: `Reads the PDF template and writes its form fields, keyed by name, with
their page and field type. The map is written as JSON unless the
configured binding_map name ends in .yaml or .yml.`,
		Args: cobra.NoArgs,
		RunE: a.runFields,
	}

	cmd.Flags().StringVar(&a.template, "template", "", "PDF template (default $PDF or <fixtures>/pdf_temp_export.pdf)")

	return cmd
}

func (a *app) runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Produce the coverage reports and the binding map together",
		Long: `Runs coverage and fields in one pass. Both inputs must exist and both
must be readable before anything is written.`,
		Args: cobra.NoArgs,
		RunE: a.runAll,
	}

	cmd.Flags().StringVar(&a.questions, "questions", "", "questions CSV (default $QCSV or <fixtures>/questions.csv)")
	cmd.Flags().StringVar(&a.template, "template", "", "PDF template (default $PDF or <fixtures>/pdf_temp_export.pdf)")

	return cmd
}

func (a *app) runCoverage(cmd *cobra.Command, _ []string) error {
	return a.reconcile(cmd, true, false)
}

func (a *app) runFields(cmd *cobra.Command, _ []string) error {
	return a.reconcile(cmd, false, true)
}

func (a *app) runAll(cmd *cobra.Command, _ []string) error {
	return a.reconcile(cmd, true, true)
}

func (a *app) reconcile(cmd *cobra.Command, withCoverage, withFields bool) error {
	set, err := a.cfg.RequirementSet()
	if err != nil {
		return err
	}

	opts := reconcile.Options{
		Paths:        a.cfg.ReportPaths(),
		BindingMap:   a.cfg.BindingMapPath(),
		Report:       a.cfg.ReportOptions(),
		Requirements: set,
	}

	if withCoverage {
		opts.Questions = a.cfg.Questions
	}

	if withFields {
		opts.Template = a.cfg.Template
	}

	res, err := reconcile.Run(cmd.Context(), opts, a.logger)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "OK: wrote %s\n", strings.Join(res.Written, ", "))

	if withCoverage {
		out, err := json.MarshalIndent(res.Summary, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal summary: %w", err)
		}

		fmt.Fprintln(a.stdout, string(out))

		if gaps := res.Ledger.Uncovered(); len(gaps) > 0 {
			fmt.Fprintf(a.stdout, "GAPS: %s\n", joinCodes(gaps))
		}
	}

	if withFields {
		fmt.Fprintf(a.stdout, "FIELDS: %d\n", len(res.Binding.Fields))
		fmt.Fprintf(a.stdout, "UNBOUND: %d\n", len(res.Binding.Unbound()))
	}

	a.printDiagnostics(res.Diagnostics)

	return nil
}

// printDiagnostics writes one line per warning. Infos are only printed
// with --verbose.
func (a *app) printDiagnostics(d diagnostic.Diagnostics) {
	for _, diag := range d.All() {
		switch diag.Severity {
		case diagnostic.DiagnosticWarning:
			fmt.Fprintf(a.stdout, "WARN: %s\n", diag)
		case diagnostic.DiagnosticInfo:
			if a.verbose {
				fmt.Fprintf(a.stdout, "INFO: %s\n", diag)
			}
		}
	}
}

func joinCodes(codes []requirement.Code) string {
	s := make([]string, len(codes))
	for i, c := range codes {
		s[i] = c.String()
	}

	return strings.Join(s, ", ")
}

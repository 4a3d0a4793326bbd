package reconcile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"reqcover/internal/binding"
	"reqcover/internal/coverage"
	"reqcover/internal/diagnostic"
	"reqcover/internal/evidence"
	"reqcover/internal/formfields"
	"reqcover/internal/report"
	"reqcover/internal/requirement"
	"reqcover/internal/sheet"
)

// Options selects the inputs and outputs of a run. An empty Questions
// skips the coverage stage; an empty Template skips field extraction.
type Options struct {
	Questions string
	Template  string

	// Paths are the coverage artifact destinations.
	Paths report.Paths
	// BindingMap is the binding map destination; its extension selects
	// JSON or YAML.
	BindingMap string

	Report report.Options
	// Requirements defaults to requirement.Default when empty.
	Requirements requirement.Set
}

// Result is what a successful run produced.
type Result struct {
	// Summary is zero when the coverage stage was skipped.
	Summary report.Summary
	Ledger  *coverage.Ledger
	Gaps    []evidence.Gap
	// Binding is nil when field extraction was skipped.
	Binding     *binding.Map
	Diagnostics diagnostic.Diagnostics
	// Written lists the committed artifact paths, in commit order.
	Written []string
}

// Run executes the stages selected by opts.
func Run(ctx context.Context, opts Options, logger *zap.Logger) (*Result, error) {
	if opts.Questions == "" && opts.Template == "" {
		return nil, errors.New("nothing to do: neither questions nor template given")
	}

	if opts.Requirements.Len() == 0 {
		opts.Requirements = requirement.Default()
	}

	if err := preflight(opts); err != nil {
		return nil, err
	}

	res := &Result{}

	var artifacts []report.Artifact

	if opts.Questions != "" {
		a, err := runCoverage(opts, res, logger)
		if err != nil {
			return nil, err
		}

		artifacts = append(artifacts, a...)
	}

	if opts.Template != "" {
		a, err := runFields(ctx, opts, res, logger)
		if err != nil {
			return nil, err
		}

		artifacts = append(artifacts, a)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := report.Commit(artifacts...); err != nil {
		return nil, fmt.Errorf("failed to write reports: %w", err)
	}

	for _, a := range artifacts {
		res.Written = append(res.Written, a.Path)
	}

	logger.Info("reports written", zap.Strings("paths", res.Written))

	return res, nil
}

// preflight fails with a ConfigError if any selected input is missing, so
// a run with one absent input writes nothing at all.
func preflight(opts Options) error {
	inputs := []struct{ role, path string }{
		{"questions", opts.Questions},
		{"template", opts.Template},
	}

	for _, in := range inputs {
		if in.path == "" {
			continue
		}

		if _, err := os.Stat(in.path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return diagnostic.NewMissingFile(in.role, in.path)
			}

			return fmt.Errorf("failed to stat %s file %s: %w", in.role, in.path, err)
		}
	}

	return nil
}

func runCoverage(opts Options, res *Result, logger *zap.Logger) ([]report.Artifact, error) {
	table, err := sheet.LoadFile(opts.Questions)
	if err != nil {
		return nil, err
	}

	if err := table.RequireColumns(); err != nil {
		return nil, err
	}

	logger.Debug("questions loaded",
		zap.String("path", opts.Questions),
		zap.Int("records", len(table.Records)),
		zap.String("id_column", table.Fields.ID),
		zap.Strings("tag_columns", table.Fields.Tags),
		zap.String("text_column", table.Fields.Text),
		zap.String("evidence_column", table.Fields.Evidence),
	)

	for _, d := range table.Diagnostics.Warnings {
		logger.Warn(d.Message, zap.String("code", d.Code), zap.String("subject", d.Subject))
	}

	res.Diagnostics.Merge(table.Diagnostics)

	res.Ledger = coverage.Aggregate(opts.Requirements, table.Records)
	res.Gaps = evidence.FindGaps(table.Records)

	for _, code := range res.Ledger.Uncovered() {
		res.Diagnostics.AddInfo(diagnostic.CodeCoverageGap, "no question covers requirement", code.String(), "")
	}

	for _, g := range res.Gaps {
		res.Diagnostics.AddWarning(diagnostic.CodeEvidenceGap, "evidence required but not supplied", g.ID, table.Fields.Evidence)
	}

	artifacts, summary := report.Build(opts.Paths, report.Input{
		Total:   res.Ledger.Records(),
		Entries: res.Ledger.Entries(),
		Gaps:    res.Gaps,
	}, opts.Report)
	res.Summary = summary

	logger.Info("coverage aggregated",
		zap.Int("total_questions", summary.TotalQuestions),
		zap.Int("uncovered", len(res.Ledger.Uncovered())),
		zap.Int("missing_evidence", summary.MissingEvidenceCount),
	)

	return artifacts, nil
}

func runFields(ctx context.Context, opts Options, res *Result, logger *zap.Logger) (report.Artifact, error) {
	fields, err := formfields.Extract(ctx, opts.Template, logger)
	if err != nil {
		return report.Artifact{}, err
	}

	m := binding.New(opts.Template, fields)
	res.Binding = m

	logger.Info("form fields extracted",
		zap.String("template", opts.Template),
		zap.Int("fields", len(m.Fields)),
	)

	format := binding.FormatFor(opts.BindingMap)

	return report.Artifact{
		Path:   opts.BindingMap,
		Encode: func(w io.Writer) error { return binding.Encode(w, m, format) },
	}, nil
}

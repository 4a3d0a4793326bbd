package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"reqcover/internal/config"
	"reqcover/internal/diagnostic"
	"reqcover/internal/logging"
)

// app holds the flags and the state built before a command runs.
type app struct {
	// Global flags
	configPath string
	verbose    bool
	outDir     string

	// Command flags
	questions string
	template  string

	cfg    *config.Config
	logger *zap.Logger
	stdout io.Writer
}

// execute runs the CLI with args and returns the process exit status.
func execute(args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout}

	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := root.ExecuteContext(ctx)

	if a.logger != nil {
		_ = a.logger.Sync()
	}

	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return diagnostic.ExitCode(err)
	}

	return diagnostic.ExitOK
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "reqcover",
		Short: "Reconcile questionnaire coverage against requirement codes",
		Long: `reqcover maps every question of a questionnaire CSV to the requirement
codes it covers (CR1..CR10 and A..G), lists the questions that need
evidence but have none, and extracts PDF form fields into a binding map.

Run without a subcommand to produce the coverage reports.

Settings are read from reqcover.yaml (or --config), then the FIX, QCSV,
OUT, PDF and REQCOVER_LOG_LEVEL environment variables, then flags.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.runCoverage,
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "configuration file (default reqcover.yaml, or $REQCOVER_CONFIG)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&a.outDir, "out", "", "output directory (default $OUT or <fixtures>/reports)")
	root.Flags().StringVar(&a.questions, "questions", "", "questions CSV (default $QCSV or <fixtures>/questions.csv)")

	root.AddCommand(a.coverageCmd(), a.fieldsCmd(), a.runCmd())

	return root
}

// setup resolves the configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath, nil)
	if err != nil {
		return err
	}

	cfg.Override(config.Overrides{
		Questions: a.questions,
		Template:  a.template,
		OutputDir: a.outDir,
		Verbose:   a.verbose,
	})
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("failed to validate config: %w", err)
	}

	logger, _, err := logging.New(logging.Options{
		Level:    cfg.Logging.Level,
		Encoding: cfg.Logging.Encoding,
	})
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger.With(zap.String("command", cmd.Name()))

	return nil
}

// Package logging builds the zap logger shared by a run.
package logging

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects the level and encoding of the logger.
type Options struct {
	// Level is a zap level name; empty means info.
	Level string
	// Encoding is "json" or "console"; empty means json.
	Encoding string
	// RunID tags every entry; empty generates one.
	RunID string
}

// New returns a production logger writing to stderr, tagged with the
// run id. The run id is also returned so callers can echo it.
func New(opts Options) (*zap.Logger, string, error) {
	config := zap.NewProductionConfig()

	if opts.Level != "" {
		level, err := zapcore.ParseLevel(opts.Level)
		if err != nil {
			return nil, "", fmt.Errorf("failed to parse log level: %w", err)
		}

		config.Level = zap.NewAtomicLevelAt(level)
	}

	if opts.Encoding != "" {
		config.Encoding = opts.Encoding
	}

	if config.Encoding == "console" {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	logger, err := config.Build()
	if err != nil {
		return nil, "", fmt.Errorf("failed to initialize logger: %w", err)
	}

	runID := opts.RunID
	if runID == "" {
		runID = uuid.NewString()
	}

	return logger.With(zap.String("run_id", runID)), runID, nil
}

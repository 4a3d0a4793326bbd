package logging

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		opts      Options
		debugOn   bool
		infoOn    bool
		wantError bool
	}{
		{name: "defaults", opts: Options{}, debugOn: false, infoOn: true},
		{name: "debug", opts: Options{Level: "debug"}, debugOn: true, infoOn: true},
		{name: "warn console", opts: Options{Level: "warn", Encoding: "console"}, debugOn: false, infoOn: false},
		{name: "bad level", opts: Options{Level: "loud"}, wantError: true},
		{name: "bad encoding", opts: Options{Encoding: "xml"}, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, runID, err := New(tt.opts)
			if tt.wantError {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.debugOn, logger.Core().Enabled(zapcore.DebugLevel))
			assert.Equal(t, tt.infoOn, logger.Core().Enabled(zapcore.InfoLevel))

			_, err = uuid.Parse(runID)
			assert.NoError(t, err)
		})
	}
}

func TestNewKeepsRunID(t *testing.T) {
	_, runID, err := New(Options{RunID: "fixed"})
	require.NoError(t, err)
	assert.Equal(t, "fixed", runID)
}

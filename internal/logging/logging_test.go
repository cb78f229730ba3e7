package logging_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/promptlib/backend/internal/logging"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api.log")
	logger, out := logging.New(logging.Options{Level: "debug", File: path, MaxSizeMB: 1})

	logger.Debug("seeded", "count", 3)
	require.NoError(t, out.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	var line map[string]any
	require.NoError(t, json.Unmarshal(b, &line))
	assert.Equal(t, "DEBUG", line["level"])
	assert.Equal(t, "seeded", line["msg"])
	assert.Equal(t, float64(3), line["count"])
}

func TestNew_LevelParsing(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"", slog.LevelInfo},
		{"chatty", slog.LevelInfo},
	}
	for _, tc := range tests {
		t.Run(tc.level, func(t *testing.T) {
			logger, out := logging.New(logging.Options{Level: tc.level})
			defer out.Close()

			assert.True(t, logger.Enabled(context.Background(), tc.want))
			assert.False(t, logger.Enabled(context.Background(), tc.want-1))
		})
	}
}

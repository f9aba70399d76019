package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for input, want := range tests {
		require.Equal(t, want, parseLevel(input), "input %q", input)
	}
}

func TestNewJSONLoggerToTagsService(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLoggerTo(&buf, "content-analyzer-api", "info")

	logger.Debug("hidden")
	logger.Info("pipeline_completed", "score", 53)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "content-analyzer-api", entry["service"])
	require.Equal(t, "pipeline_completed", entry["msg"])
	require.Equal(t, 53.0, entry["score"])
}

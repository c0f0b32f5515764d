package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xalexb/hjarta-yaml/logging"
)

func TestNewLogger_JSONOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := logging.NewLogger(logging.LoggerConfig{Level: "INFO"}, &buf)
	logger.Info("document loaded", slog.String("path", "app.yml"))

	var entry map[string]any

	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "output should be valid JSON")
	assert.Equal(t, "document loaded", entry["msg"])
	assert.Equal(t, "app.yml", entry["path"])
	assert.Equal(t, "INFO", entry["level"])
}

func TestNewLogger_TextOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := logging.NewLogger(logging.LoggerConfig{Format: "TEXT"}, &buf)
	logger.Warn("header replaced", slog.String("path", "app.yml"))

	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), `msg="header replaced"`)
	assert.Contains(t, buf.String(), "path=app.yml")
}

func TestNewLogger_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		level     string
		logLevel  slog.Level
		shouldLog bool
	}{
		{name: "debug logs debug", level: "debug", logLevel: slog.LevelDebug, shouldLog: true},
		{name: "info skips debug", level: "INFO", logLevel: slog.LevelDebug, shouldLog: false},
		{name: "warning alias", level: "WARNING", logLevel: slog.LevelWarn, shouldLog: true},
		{name: "warn skips info", level: "WARN", logLevel: slog.LevelInfo, shouldLog: false},
		{name: "error logs error", level: "ERROR", logLevel: slog.LevelError, shouldLog: true},
		{name: "error skips warn", level: "error", logLevel: slog.LevelWarn, shouldLog: false},
		{name: "empty defaults to info", level: "", logLevel: slog.LevelInfo, shouldLog: true},
		{name: "invalid defaults to info", level: "verbose", logLevel: slog.LevelDebug, shouldLog: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			logger := logging.NewLogger(logging.LoggerConfig{Level: tt.level}, &buf)
			logger.Log(t.Context(), tt.logLevel, "message")

			if tt.shouldLog {
				assert.NotEmpty(t, buf.String())
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

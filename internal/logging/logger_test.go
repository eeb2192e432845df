package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/23skdu/colfilter/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewLogger verifies basic logger creation
func TestNewLogger(t *testing.T) {
	tests := []struct {
		name   string
		format string
		level  string
	}{
		{"JSON Info", "json", "info"},
		{"JSON Debug", "json", "debug"},
		{"JSON Error", "json", "error"},
		{"Console Info", "console", "info"},
		{"Text Warn", "text", "warn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := NewLogger(Config{
				Format: tt.format,
				Level:  tt.level,
				Output: &buf,
			})
			require.NoError(t, err)
			logger.Error().Msg("heartbeat")
			assert.Contains(t, buf.String(), "heartbeat")
		})
	}
}

// TestNewLogger_InvalidLevel verifies error handling for invalid log level
func TestNewLogger_InvalidLevel(t *testing.T) {
	_, err := NewLogger(Config{
		Format: "json",
		Level:  "invalid",
	})
	assert.Error(t, err)
}

func TestNewLogger_InvalidFormat(t *testing.T) {
	_, err := NewLogger(Config{
		Format: "xml",
		Level:  "info",
	})
	assert.Error(t, err)
}

// TestStructuredLogging verifies structured logging with fields
func TestStructuredLogging(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(Config{Format: "json", Level: "info", Output: &buf})
	require.NoError(t, err)

	logger.Info().
		Str("package", "filter").
		Int("cases", 256).
		Msg("generated case table")

	output := buf.String()
	assert.Contains(t, output, "generated case table")
	assert.Contains(t, output, "package")
	assert.Contains(t, output, "filter")
}

// TestLogLevelFiltering verifies that log levels are properly filtered
func TestLogLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(Config{Format: "json", Level: "warn", Output: &buf})
	require.NoError(t, err)

	logger.Debug().Msg("debug message")
	logger.Info().Msg("info message")
	logger.Warn().Msg("warn message")
	logger.Error().Msg("error message")

	output := buf.String()
	if strings.Contains(output, "debug message") {
		t.Error("Debug message should be filtered at Warn level")
	}
	if strings.Contains(output, "info message") {
		t.Error("Info message should be filtered at Warn level")
	}
	if !strings.Contains(output, "warn message") {
		t.Error("Warn message should be present")
	}
	if !strings.Contains(output, "error message") {
		t.Error("Error message should be present")
	}
}

// TestJSONOutput verifies JSON format output
func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(Config{Format: "json", Level: "info", Output: &buf})
	require.NoError(t, err)

	logger.Info().Str("foo", "bar").Msg("json test")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to parse JSON output: %v, output: %s", err, buf.String())
	}

	assert.Equal(t, "json test", entry["message"])
	assert.Equal(t, "bar", entry["foo"])
	assert.Equal(t, "info", entry["level"])
	assert.Contains(t, entry, "time")
}

// TestDiscardLogger verifies the discard logger for tests
func TestDiscardLogger(t *testing.T) {
	logger := DiscardLogger()
	// Should not panic
	logger.Info().Msg("this should be discarded")
	logger.Error().Msg("this too")
}

// TestLoggerWithFields verifies logger.With() for adding default fields
func TestLoggerWithFields(t *testing.T) {
	var buf bytes.Buffer
	baseLogger, err := NewLogger(Config{Format: "json", Level: "info", Output: &buf})
	require.NoError(t, err)

	childLogger := baseLogger.With().Str("component", "compactor").Logger()
	childLogger.Info().Msg("message with component")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "compactor", entry["component"])
}

// TestLoggingMetrics verifies the hook feeds the Prometheus counters
func TestLoggingMetrics(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(Config{Format: "json", Level: "debug", Output: &buf})
	require.NoError(t, err)

	infoBefore := testutil.ToFloat64(metrics.LogEntriesTotal.WithLabelValues("info"))
	errorsBefore := testutil.ToFloat64(metrics.LogErrorsTotal)

	logger.Info().Msg("one")
	logger.Info().Msg("two")
	logger.Error().Msg("three")

	assert.Equal(t, infoBefore+2, testutil.ToFloat64(metrics.LogEntriesTotal.WithLabelValues("info")))
	assert.Equal(t, errorsBefore+1, testutil.ToFloat64(metrics.LogErrorsTotal))
}

// TestDefaultConfig verifies default configuration values
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "info", cfg.Level)
	assert.NotNil(t, cfg.Output)
}

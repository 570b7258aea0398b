package common

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLogger_ReturnsNonNil(t *testing.T) {
	logger := NewLoggerFromOptions(LoggingOptions{Level: "error", Outputs: []string{"console"}})
	if logger == nil {
		t.Fatal("NewLoggerFromOptions returned nil")
	}
}

func TestNewLogger_FluentAPI(t *testing.T) {
	logger := NewLoggerFromOptions(LoggingOptions{Level: "error", Outputs: []string{"console"}})
	logger.Info().Str("key", "value").Msg("test message")
	logger.Warn().Int("count", 42).Msg("warning")
	logger.Error().Err(nil).Msg("error message")
	logger.Debug().Bool("ok", true).Msg("debug")
}

func TestNewLoggerWithOutput_WritesToProvidedWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithOutput("info", &buf)
	logger.Info().Str("board", "hackup").Msg("hello")

	output := buf.String()
	if output == "" {
		t.Fatal("expected output to provided writer, got empty string")
	}
	if !strings.Contains(output, "hello") {
		t.Errorf("expected message in output, got %q", output)
	}
}

func TestNewSilentLogger_DiscardsOutput(t *testing.T) {
	logger := NewSilentLogger()
	if logger == nil {
		t.Fatal("NewSilentLogger returned nil")
	}
	logger.Error().Str("key", "value").Msg("should be discarded")
}

func TestWithCorrelationId_ReturnsChild(t *testing.T) {
	logger := NewSilentLogger()
	child := logger.WithCorrelationId("abc-123")
	if child == nil {
		t.Fatal("WithCorrelationId returned nil")
	}
	if child == logger {
		t.Error("expected a new logger instance")
	}
	child.Info().Msg("tagged")
}

package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNew(t *testing.T) {
	log := New()
	if log.GetLevel() == zerolog.Disabled {
		t.Error("Expected logger to be enabled")
	}
}

func TestNewWithWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter(buf)

	log.Info().Msg("test message")

	output := buf.String()
	if output == "" {
		t.Error("Expected log output, got empty string")
	}
	if !strings.Contains(output, "test message") {
		t.Errorf("Expected output to contain 'test message', got: %s", output)
	}
}

func TestFor(t *testing.T) {
	buf := &bytes.Buffer{}
	log := For(NewWithWriter(buf), "flow")

	log.Info().Msg("test")

	output := buf.String()
	if !strings.Contains(output, "component") || !strings.Contains(output, "flow") {
		t.Errorf("Expected output to carry the component field, got: %s", output)
	}
}

package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{" Info ", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"verbose", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level slog.Level
		want  string
	}{
		{slog.LevelDebug, "DEBUG"},
		{slog.LevelInfo, "INFO"},
		{slog.LevelWarn, "WARN"},
		{slog.LevelError, "ERROR"},
		{slog.Level(2), "LEVEL(2)"},
	}

	for _, tt := range tests {
		if got := LevelString(tt.level); got != tt.want {
			t.Errorf("LevelString(%v) = %q, want %q", tt.level, got, tt.want)
		}
	}
}

// TestNew_FiltersBelowLevel verifies that entries under the minimum level are
// dropped.
func TestNew_FiltersBelowLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(buf, slog.LevelWarn)

	logger.Info("hidden")
	logger.Warn("shown", "provider", "ollama")

	output := buf.String()
	if strings.Contains(output, "hidden") {
		t.Errorf("did not expect INFO entry, got:\n%s", output)
	}
	if !strings.Contains(output, "shown") || !strings.Contains(output, "provider=ollama") {
		t.Errorf("expected WARN entry with attribute, got:\n%s", output)
	}
}

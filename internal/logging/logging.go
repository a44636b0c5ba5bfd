// Package logging builds the chatbot's slog logger. Logs are kept off the
// chat transcript: the CLI points them at stderr.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// New returns a text-handler logger writing to w at the given minimum level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// ParseLevel parses a log level string into slog.Level.
// Supported values: DEBUG, INFO, WARN, WARNING, ERROR (case-insensitive)
// Returns INFO for unknown values and prints a warning to stderr.
func ParseLevel(level string) slog.Level {
	parsed, ok := lookupLevel(level)
	if !ok {
		fmt.Fprintf(os.Stderr, "Warning: Unknown log level '%s', using INFO\n", level)
	}
	return parsed
}

func lookupLevel(level string) (slog.Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug, true
	case "INFO":
		return slog.LevelInfo, true
	case "WARN", "WARNING":
		return slog.LevelWarn, true
	case "ERROR":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// LevelString returns a human-readable string for the log level.
func LevelString(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return "DEBUG"
	case slog.LevelInfo:
		return "INFO"
	case slog.LevelWarn:
		return "WARN"
	case slog.LevelError:
		return "ERROR"
	default:
		return fmt.Sprintf("LEVEL(%d)", level)
	}
}

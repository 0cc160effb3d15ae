/*
PURPOSE:
  Provides a structured logger for benchplot.
  Wraps slog for consistent output.

REQUIREMENTS:
  User-specified:
  - "Sane" CLI output. Not spammy.

  Implementation-discovered:
  - Needs Info/Error by default and Debug behind --verbose.
  - Logs go to stderr so `table` output on stdout stays clean.

ARCHITECTURE INTEGRATION:
  - Used everywhere.

IMPLEMENTATION RULES:
  - Use `log/slog` (Go 1.21+).

USAGE:
  output.Logger.Info("message", "key", "value")
*/

package output

import (
	"io"
	"log/slog"
	"os"
)

var Logger *slog.Logger

var level = new(slog.LevelVar)

func init() {
	Logger = NewLogger(os.Stderr)
}

// NewLogger returns a text logger on w that follows the shared level.
func NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// SetLogger allows overriding the default logger (e.g. for testing or config changes)
func SetLogger(l *slog.Logger) {
	Logger = l
}

// SetVerbose toggles debug logging.
func SetVerbose(v bool) {
	if v {
		level.Set(slog.LevelDebug)
		return
	}
	level.Set(slog.LevelInfo)
}

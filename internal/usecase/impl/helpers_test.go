package impl

import (
	"io"
	"log/slog"
)

// discardLogger returns a logger whose output goes nowhere. Tests assert on
// behavior, not log lines.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

package app

import (
	"io"
	"log/slog"
)

// newLogger builds the run logger. Every record carries runID so the lines of
// concurrent runs sharing one stream can be told apart. Unknown levels fall
// back to info. The global logger is left alone.
func newLogger(w io.Writer, levelStr, formatStr, runID string) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelStr)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler = slog.NewTextHandler(w, opts)
	if formatStr == "json" {
		handler = slog.NewJSONHandler(w, opts)
	}
	return slog.New(handler).With("run_id", runID)
}

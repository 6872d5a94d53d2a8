package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

func New(lvl string, format string, addSource bool) *slog.Logger {
	return NewWithWriter(os.Stdout, lvl, format, addSource)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, lvl string, format string, addSource bool) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(lvl),
		AddSource: addSource,
	}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

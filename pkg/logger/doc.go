// Package logger builds slog loggers with a configurable level and
// either text or JSON output.
package logger

package main

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
)

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// setupLogging installs a stderr text logger tagged with a per-run id
func setupLogging(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})

	logger := slog.New(handler).With("run_id", uuid.NewString())
	slog.SetDefault(logger)

	return logger
}

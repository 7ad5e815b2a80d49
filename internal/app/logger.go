package app

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

func newLogger(env string) *slog.Logger {
	return newLoggerTo(os.Stdout, env)
}

func newLoggerTo(w io.Writer, env string) *slog.Logger {
	level := slog.LevelInfo
	if strings.EqualFold(env, "development") {
		level = slog.LevelDebug
	}

	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h)
}

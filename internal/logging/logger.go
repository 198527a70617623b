package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Setup installs a JSON slog logger on stdout as the process default.
// Development builds log at debug level.
func Setup(env string) *slog.JSONHandler {
	handler := newJSONHandler(os.Stdout, levelFor(env))
	slog.SetDefault(slog.New(handler))
	return handler
}

func newJSONHandler(w io.Writer, level slog.Level) *slog.JSONHandler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
}

func levelFor(env string) slog.Level {
	if strings.EqualFold(env, "development") {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/PratikDhanave/satisfaction-survey-service/internal/config"
)

// New creates a *slog.Logger writing to stderr and installs it as the
// slog default. Format "text" adds source locations; anything else is JSON.
func New(cfg config.LogConfig) *slog.Logger {
	logger := newWithWriter(cfg, os.Stderr)
	slog.SetDefault(logger)
	return logger
}

func newWithWriter(cfg config.LogConfig, w io.Writer) *slog.Logger {
	text := strings.EqualFold(strings.TrimSpace(cfg.Format), "text")
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: text,
	}

	var handler slog.Handler
	if text {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}
	return slog.New(handler)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

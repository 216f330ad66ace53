// Package observability provides structured logging and Prometheus metrics
// for the report pipeline.
package observability

import (
	"log/slog"
	"os"
	"strings"

	"github.com/couchcryptid/storm-impact-report/internal/config"
)

// NewLogger builds a slog.Logger from the configured level and format.
// Logs go to stderr so the report artifacts own stdout.
func NewLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if strings.EqualFold(cfg.LogFormat, "json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}

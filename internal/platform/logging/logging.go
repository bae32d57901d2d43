// Package logging builds the storefront's slog loggers and carries them
// through request contexts. Every logger it builds masks registrar
// credentials and session ids with masq before a record is written.
//
//	logger := logging.New(cfg.Log, os.Stderr, slog.String("service", cfg.Telemetry.ServiceName))
//	ctx = logging.WithLogger(ctx, logger)
//	logging.FromContext(ctx).WarnContext(ctx, "cart write failed",
//	    slog.String("domain", line.Domain()),
//	    slog.Any("error", err),
//	)
package logging

import (
	"context"
	"io"
	"log/slog"

	"github.com/jsamuelsen11/domain-storefront/internal/platform/config"
)

type contextKey struct{}

// New builds a logger writing cfg.Format ("text", otherwise JSON) at
// cfg.Level. Debug loggers also record the source location. attrs are
// attached to every record.
func New(cfg config.LogConfig, w io.Writer, attrs ...slog.Attr) *slog.Logger {
	level := ParseLevel(cfg.Level)
	opts := &slog.HandlerOptions{
		Level:       level,
		AddSource:   level <= slog.LevelDebug,
		ReplaceAttr: redactAttr(),
	}

	var h slog.Handler
	if cfg.Format == "text" {
		h = slog.NewTextHandler(w, opts)
	} else {
		h = slog.NewJSONHandler(w, opts)
	}
	if len(attrs) > 0 {
		h = h.WithAttrs(attrs)
	}
	return slog.New(h)
}

// ParseLevel reads a level name the way slog does ("debug", "WARN",
// "info+2"). Anything unreadable is info.
func ParseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// WithLogger returns ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

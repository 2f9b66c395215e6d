package sink

import (
	"context"
	"log/slog"

	"github.com/mikeCenters/SystemLogger/core"
	"github.com/mikeCenters/SystemLogger/formatter"
)

// SlogSink forwards log entries to a log/slog Logger, allowing the
// facade to use the standard library's structured logging backend.
type SlogSink struct {
	logger        *slog.Logger
	revealPrivate bool
}

// SlogConfig holds configuration for the slog sink
type SlogConfig struct {
	// Logger is the slog logger to forward to (default: slog.Default())
	Logger *slog.Logger
	// RevealPrivate renders redacted payloads verbatim instead of the
	// placeholder. Intended for authorized viewers only.
	RevealPrivate bool
}

// NewSlogSink creates a new slog-backed sink
func NewSlogSink(cfg SlogConfig) *SlogSink {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &SlogSink{
		logger:        cfg.Logger,
		revealPrivate: cfg.RevealPrivate,
	}
}

// slogLevel maps a facade level to the nearest slog level. slog has no
// level above Error, so Critical maps to Error and is distinguished by
// a critical=true attribute in Emit.
func slogLevel(level core.Level) slog.Level {
	switch level {
	case core.DebugLevel:
		return slog.LevelDebug
	case core.WarningLevel:
		return slog.LevelWarn
	case core.ErrorLevel, core.CriticalLevel:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Emit forwards the entry to the slog logger
func (s *SlogSink) Emit(entry *core.Entry) error {
	msg := entry.Message
	if entry.Redacted && !s.revealPrivate {
		msg = formatter.RedactedPlaceholder
	}

	attrs := make([]slog.Attr, 0, 4)
	attrs = append(attrs,
		slog.String("subsystem", entry.Subsystem),
		slog.String("category", entry.Category),
	)
	if entry.Redacted {
		attrs = append(attrs, slog.Bool("redacted", true))
	}
	if entry.Level == core.CriticalLevel {
		attrs = append(attrs, slog.Bool("critical", true))
	}

	s.logger.LogAttrs(context.Background(), slogLevel(entry.Level), msg, attrs...)
	return nil
}

// Close is a no-op; slog loggers hold no resources of their own
func (s *SlogSink) Close() error {
	return nil
}

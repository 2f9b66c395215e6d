package sink

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mikeCenters/SystemLogger/core"
	"github.com/mikeCenters/SystemLogger/formatter"
)

// ZapSink forwards log entries to a zap.Logger
type ZapSink struct {
	logger        *zap.Logger
	revealPrivate bool
}

// ZapConfig holds configuration for the zap sink
type ZapConfig struct {
	// Logger is the zap logger to forward to (default: zap production
	// logger to stderr)
	Logger *zap.Logger
	// RevealPrivate renders redacted payloads verbatim instead of the
	// placeholder. Intended for authorized viewers only.
	RevealPrivate bool
}

// NewZapSink creates a new zap-backed sink
func NewZapSink(cfg ZapConfig) *ZapSink {
	if cfg.Logger == nil {
		// NewProduction only fails for bad output paths; the defaults
		// cannot trigger that, but degrade to a no-op logger anyway
		// rather than surface an error from construction.
		l, err := zap.NewProduction()
		if err != nil {
			l = zap.NewNop()
		}
		cfg.Logger = l
	}
	return &ZapSink{
		logger:        cfg.Logger,
		revealPrivate: cfg.RevealPrivate,
	}
}

// zapLevels maps facade levels to zap levels. Critical maps to DPanic,
// zap's highest level that does not terminate the process under a
// production configuration.
var zapLevels = [...]zapcore.Level{
	core.DebugLevel:    zapcore.DebugLevel,
	core.InfoLevel:     zapcore.InfoLevel,
	core.WarningLevel:  zapcore.WarnLevel,
	core.ErrorLevel:    zapcore.ErrorLevel,
	core.CriticalLevel: zapcore.DPanicLevel,
}

// Emit forwards the entry to the zap logger, tagging it with subsystem
// and category fields and honoring the redaction flag.
func (s *ZapSink) Emit(entry *core.Entry) error {
	lvl := zapcore.InfoLevel
	if int(entry.Level) >= 0 && int(entry.Level) < len(zapLevels) {
		lvl = zapLevels[entry.Level]
	}

	msg := entry.Message
	if entry.Redacted && !s.revealPrivate {
		msg = formatter.RedactedPlaceholder
	}

	if entry.Redacted {
		s.logger.Log(lvl, msg,
			zap.String("subsystem", entry.Subsystem),
			zap.String("category", entry.Category),
			zap.Bool("redacted", true),
		)
		return nil
	}

	s.logger.Log(lvl, msg,
		zap.String("subsystem", entry.Subsystem),
		zap.String("category", entry.Category),
	)
	return nil
}

// Close flushes buffered zap output
func (s *ZapSink) Close() error {
	return s.logger.Sync()
}

package logger

import (
	"fmt"

	"github.com/mikeCenters/SystemLogger/core"
	"github.com/mikeCenters/SystemLogger/sink"
)

// DefaultCategory is used when no category is given
const DefaultCategory = "default"

// Logger is a leveled, privacy-aware logging facade bound to a
// (subsystem, category) pair (immutable)
type Logger struct {
	subsystem string
	category  string
	sink      sink.Sink
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	subsystem string
	category  string
	sink      sink.Sink
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		category: DefaultCategory,
	}
}

// WithSubsystem sets the subsystem. An empty subsystem is resolved
// from the host application at Build time.
func (b *Builder) WithSubsystem(subsystem string) *Builder {
	b.subsystem = subsystem
	return b
}

// WithCategory sets the category. An empty category falls back to
// DefaultCategory.
func (b *Builder) WithCategory(category string) *Builder {
	b.category = category
	return b
}

// WithSink sets the sink
func (b *Builder) WithSink(s sink.Sink) *Builder {
	b.sink = s
	return b
}

// Build creates the Logger instance. Construction never fails: missing
// values degrade to defaults instead of returning an error.
func (b *Builder) Build() *Logger {
	subsystem := b.subsystem
	if subsystem == "" {
		subsystem = resolveSubsystem()
	}
	category := b.category
	if category == "" {
		category = DefaultCategory
	}
	s := b.sink
	if s == nil {
		s = sink.NewWriterSink(sink.WriterConfig{})
	}
	return &Logger{
		subsystem: subsystem,
		category:  category,
		sink:      s,
	}
}

// New creates a Logger with the given subsystem and category and the
// default sink. Empty arguments degrade as in Builder.Build.
func New(subsystem, category string) *Logger {
	return NewBuilder().
		WithSubsystem(subsystem).
		WithCategory(category).
		Build()
}

// Subsystem returns the subsystem this logger tags entries with
func (l *Logger) Subsystem() string {
	return l.subsystem
}

// Category returns the category this logger tags entries with
func (l *Logger) Category() string {
	return l.category
}

// emit writes one entry to the sink. Sink errors are swallowed:
// logging must never disrupt the calling application.
func (l *Logger) emit(level core.Level, msg string, redacted bool) {
	entry := core.GetEntry()
	entry.Level = level
	entry.Subsystem = l.subsystem
	entry.Category = l.category
	entry.Message = msg
	entry.Redacted = redacted

	_ = l.sink.Emit(entry)

	core.PutEntry(entry)
}

// Info logs an informational message
func (l *Logger) Info(msg string) {
	l.emit(core.InfoLevel, msg, false)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string) {
	l.emit(core.DebugLevel, msg, false)
}

// Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.emit(core.WarningLevel, msg, false)
}

// Error logs an error message
func (l *Logger) Error(msg string) {
	l.emit(core.ErrorLevel, msg, false)
}

// Critical logs a critical message
func (l *Logger) Critical(msg string) {
	l.emit(core.CriticalLevel, msg, false)
}

// Private logs an informational message whose payload is marked
// redacted, so sinks and viewers hide it by default
func (l *Logger) Private(msg string) {
	l.emit(core.InfoLevel, msg, true)
}

// Infof logs an informational message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	l.emit(core.InfoLevel, fmt.Sprintf(format, args...), false)
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.emit(core.DebugLevel, fmt.Sprintf(format, args...), false)
}

// Warningf logs a warning message with formatting
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.emit(core.WarningLevel, fmt.Sprintf(format, args...), false)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.emit(core.ErrorLevel, fmt.Sprintf(format, args...), false)
}

// Criticalf logs a critical message with formatting
func (l *Logger) Criticalf(format string, args ...interface{}) {
	l.emit(core.CriticalLevel, fmt.Sprintf(format, args...), false)
}

// Privatef logs a redacted informational message with formatting
func (l *Logger) Privatef(format string, args ...interface{}) {
	l.emit(core.InfoLevel, fmt.Sprintf(format, args...), true)
}

// Close closes the logger's sink
func (l *Logger) Close() error {
	return l.sink.Close()
}

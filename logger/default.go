package logger

import "sync"

var (
	defaultOnce   sync.Once
	defaultLogger *Logger
)

// Default returns the process-wide shared logger: default subsystem,
// DefaultCategory, default sink. It is built lazily exactly once and
// immutable thereafter, so every access observes the same instance.
func Default() *Logger {
	defaultOnce.Do(func() {
		defaultLogger = NewBuilder().Build()
	})
	return defaultLogger
}

// Package-level convenience functions using the default logger

// Info logs an informational message using the default logger
func Info(msg string) {
	Default().Info(msg)
}

// Debug logs a debug message using the default logger
func Debug(msg string) {
	Default().Debug(msg)
}

// Warning logs a warning message using the default logger
func Warning(msg string) {
	Default().Warning(msg)
}

// Error logs an error message using the default logger
func Error(msg string) {
	Default().Error(msg)
}

// Critical logs a critical message using the default logger
func Critical(msg string) {
	Default().Critical(msg)
}

// Private logs a redacted informational message using the default logger
func Private(msg string) {
	Default().Private(msg)
}

// Infof logs a formatted informational message using the default logger
func Infof(format string, args ...interface{}) {
	Default().Infof(format, args...)
}

// Debugf logs a formatted debug message using the default logger
func Debugf(format string, args ...interface{}) {
	Default().Debugf(format, args...)
}

// Warningf logs a formatted warning message using the default logger
func Warningf(format string, args ...interface{}) {
	Default().Warningf(format, args...)
}

// Errorf logs a formatted error message using the default logger
func Errorf(format string, args ...interface{}) {
	Default().Errorf(format, args...)
}

// Criticalf logs a formatted critical message using the default logger
func Criticalf(format string, args ...interface{}) {
	Default().Criticalf(format, args...)
}

// Privatef logs a formatted redacted message using the default logger
func Privatef(format string, args ...interface{}) {
	Default().Privatef(format, args...)
}

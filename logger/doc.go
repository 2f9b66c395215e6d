// Package logger is the public API of SystemLogger. Most users only
// need to import this package.
//
// A Logger is an immutable (subsystem, category) pair bound to a
// sink. Immutability makes Logger inherently safe for concurrent use
// without any locking; any number of goroutines may log through the
// same or different instances with no ordering guarantee between
// them. Every emit operation is fire-and-forget: it returns nothing,
// never panics for any message, and swallows sink failures.
//
// Six emit operations are exposed: Info, Debug, Warning, Error and
// Critical tag the message with the corresponding severity, while
// Private logs at informational severity with the payload marked
// redacted, so sinks and log viewers hide it by default. Severity and
// redaction are not freely combinable beyond these six operations.
//
// The package builds a shared default Logger lazily on first access:
// subsystem resolved from the host application, category "default",
// text output to stderr. The package-level functions Info, Error,
// Privatef, etc. delegate to it, so simple programs can log without
// any setup:
//
//	logger.Info("application started")
//	logger.Private("user email is sensitive@example.com")
//
// For custom configuration, use the Builder:
//
//	log := logger.NewBuilder().
//	    WithSubsystem("com.example.app").
//	    WithCategory("Networking").
//	    WithSink(sink.NewZapSink(sink.ZapConfig{})).
//	    Build()
//
// Construction never fails. A missing subsystem is resolved from the
// build info of the running binary, falling back to the executable
// name and finally to FallbackSubsystem; a missing category becomes
// DefaultCategory; a missing sink becomes a text writer on stderr.
package logger

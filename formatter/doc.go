// Package formatter renders log entries into bytes for writer-backed
// sinks.
//
// Two formatters are provided: TextFormatter for human-readable
// output and JSONFormatter for structured output. Both implement the
// optional WriterFormatter interface so sinks can stream directly
// into an io.Writer without an intermediate allocation, and both use
// a shared buffer pool on the hot path.
//
// Redaction is honored at render time: a redacted entry's payload is
// replaced by RedactedPlaceholder unless the formatter was built with
// Config.RevealPrivate, which is the escape hatch for authorized
// viewers. The JSON formatter additionally emits a "redacted":true
// marker so downstream collectors can apply their own policy.
package formatter

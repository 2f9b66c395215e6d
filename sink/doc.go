// Package sink provides the Sink interface and its built-in
// implementations for dispatching log entries to an underlying
// logging facility.
//
// All sinks are synchronous: Emit returns once the underlying write
// returns, there is no queuing and no overflow handling. Serializing
// concurrent writes is each sink's own responsibility; every built-in
// sink is safe for concurrent use.
//
// Built-in sinks:
//
//   - WriterSink writes formatted entries to any io.Writer (default: stderr).
//   - ZapSink forwards entries to a zap.Logger, mapping Critical to
//     zap's DPanic level and tagging subsystem/category as fields.
//   - SlogSink forwards entries to a log/slog Logger.
//   - MultiSink fans out a single entry to multiple child sinks.
//   - RecorderSink captures entries in memory for assertions in tests.
//
// Redacted entries reach zap and slog with their payload replaced by
// the redaction placeholder plus a redacted=true field, so collectors
// downstream can honor the marker. Sinks built for authorized viewers
// can opt into RevealPrivate to render the payload verbatim.
package sink

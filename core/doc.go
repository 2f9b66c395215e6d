// Package core defines the shared types used across the SystemLogger
// module.
//
// It provides the Level type for severity tagging and the Entry type
// that represents a single log event: a timestamp, a severity level,
// the (subsystem, category) pair identifying the log stream, the
// message payload, and a redaction flag for sensitive content.
//
// Entry objects are pooled via sync.Pool to keep the emit path
// allocation-free. Callers get an Entry with GetEntry and must
// return it with PutEntry once the sink has consumed it. Sinks in
// this module are synchronous, so recycling after Emit returns is
// always safe.
package core

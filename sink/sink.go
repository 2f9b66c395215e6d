package sink

import "github.com/mikeCenters/SystemLogger/core"

// Sink is the capability the logger facade emits into. Implementations
// must be safe for concurrent use; the facade performs no locking of
// its own.
//
// Emit may return an error for the benefit of sink composition and
// tests, but the facade swallows it: logging must never disrupt the
// calling application.
type Sink interface {
	// Emit writes one log entry to the underlying facility. The entry
	// is only valid for the duration of the call; implementations that
	// retain it must copy it first.
	Emit(entry *core.Entry) error

	// Close closes the sink and releases resources
	Close() error
}

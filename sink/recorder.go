package sink

import (
	"sync"

	"github.com/mikeCenters/SystemLogger/core"
)

// RecorderSink records emitted entries in memory instead of writing
// them anywhere. It exists so tests can assert on exactly what a
// Logger emitted: levels, subsystem/category tags, and redaction
// flags. Safe for concurrent use.
type RecorderSink struct {
	mu      sync.Mutex
	entries []core.Entry
	closed  bool
}

// NewRecorderSink creates a new recorder sink
func NewRecorderSink() *RecorderSink {
	return &RecorderSink{}
}

// Emit records a copy of the entry
func (r *RecorderSink) Emit(entry *core.Entry) error {
	r.mu.Lock()
	r.entries = append(r.entries, *entry)
	r.mu.Unlock()
	return nil
}

// Entries returns a snapshot of all recorded entries
func (r *RecorderSink) Entries() []core.Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]core.Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of recorded entries
func (r *RecorderSink) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Reset discards all recorded entries
func (r *RecorderSink) Reset() {
	r.mu.Lock()
	r.entries = nil
	r.mu.Unlock()
}

// Close marks the sink closed; recorded entries remain readable
func (r *RecorderSink) Close() error {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()
	return nil
}

// Closed reports whether Close has been called
func (r *RecorderSink) Closed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}

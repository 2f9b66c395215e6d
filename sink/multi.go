package sink

import "github.com/mikeCenters/SystemLogger/core"

// MultiSink sends log entries to multiple sinks
type MultiSink struct {
	sinks []Sink
}

// NewMultiSink creates a new multi-sink
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

// Emit sends the entry to all child sinks
func (m *MultiSink) Emit(entry *core.Entry) error {
	var lastErr error
	for _, s := range m.sinks {
		if err := s.Emit(entry); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

// Close closes all child sinks
func (m *MultiSink) Close() error {
	var lastErr error
	for _, s := range m.sinks {
		if err := s.Close(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

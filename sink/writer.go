package sink

import (
	"io"
	"os"
	"sync"

	"github.com/mikeCenters/SystemLogger/core"
	"github.com/mikeCenters/SystemLogger/formatter"
)

// WriterSink writes formatted log entries to an io.Writer
type WriterSink struct {
	writer          io.Writer
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	mu              sync.Mutex
}

// WriterConfig holds configuration for the writer sink
type WriterConfig struct {
	// Writer to write to (default: os.Stderr)
	Writer io.Writer
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
}

// NewWriterSink creates a new writer sink
func NewWriterSink(cfg WriterConfig) *WriterSink {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}

	s := &WriterSink{
		writer:    cfg.Writer,
		formatter: cfg.Formatter,
	}

	// Cache WriterFormatter for the zero-alloc path
	s.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)

	return s
}

// Emit formats and writes an entry
func (s *WriterSink) Emit(entry *core.Entry) error {
	if s.writerFormatter != nil {
		s.mu.Lock()
		err := s.writerFormatter.FormatTo(entry, s.writer)
		s.mu.Unlock()
		return err
	}

	data, err := s.formatter.Format(entry)
	if err != nil {
		return err
	}

	s.mu.Lock()
	_, writeErr := s.writer.Write(data)
	s.mu.Unlock()
	return writeErr
}

// Close closes the sink. The writer itself is owned by the caller and
// is not closed here.
func (s *WriterSink) Close() error {
	return nil
}

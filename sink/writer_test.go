package sink

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/mikeCenters/SystemLogger/core"
	"github.com/mikeCenters/SystemLogger/formatter"
)

func TestWriterSink_Emit(t *testing.T) {
	var buf bytes.Buffer
	s := NewWriterSink(WriterConfig{
		Writer:    &buf,
		Formatter: formatter.NewTextFormatter(formatter.Config{}),
	})

	entry := &core.Entry{
		Time:      time.Now(),
		Level:     core.ErrorLevel,
		Subsystem: "com.test.app",
		Category:  "Net",
		Message:   "timeout",
	}

	if err := s.Emit(entry); err != nil {
		t.Fatalf("Emit() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "[ERROR]") {
		t.Errorf("Expected '[ERROR]' in output, got: %s", output)
	}
	if !strings.Contains(output, "[com.test.app/Net]") {
		t.Errorf("Expected '[com.test.app/Net]' in output, got: %s", output)
	}
	if !strings.Contains(output, "timeout") {
		t.Errorf("Expected 'timeout' in output, got: %s", output)
	}
}

func TestWriterSink_Defaults(t *testing.T) {
	// Zero-value config must not panic and must fall back to stderr
	// plus the text formatter.
	s := NewWriterSink(WriterConfig{})
	if s.writer == nil {
		t.Error("Expected default writer")
	}
	if s.formatter == nil {
		t.Error("Expected default formatter")
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestWriterSink_Redacted(t *testing.T) {
	var buf bytes.Buffer
	s := NewWriterSink(WriterConfig{
		Writer: &buf,
	})

	entry := &core.Entry{
		Time:      time.Now(),
		Level:     core.InfoLevel,
		Subsystem: "com.test.app",
		Category:  "Auth",
		Message:   "password=hunter2",
		Redacted:  true,
	}

	if err := s.Emit(entry); err != nil {
		t.Fatalf("Emit() error = %v", err)
	}

	if strings.Contains(buf.String(), "hunter2") {
		t.Errorf("Redacted payload leaked: %s", buf.String())
	}
	if !strings.Contains(buf.String(), formatter.RedactedPlaceholder) {
		t.Errorf("Expected placeholder in output, got: %s", buf.String())
	}
}

// syncWriter is an io.Writer safe for concurrent use, for race tests.
type syncWriter struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (w *syncWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.Write(p)
}

func (w *syncWriter) Lines() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return strings.Count(w.buf.String(), "\n")
}

func TestWriterSink_Concurrent(t *testing.T) {
	w := &syncWriter{}
	s := NewWriterSink(WriterConfig{Writer: w})

	const goroutines = 16
	const perGoroutine = 50

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				entry := &core.Entry{
					Time:      time.Now(),
					Level:     core.InfoLevel,
					Subsystem: "com.test.app",
					Category:  "Concurrency",
					Message:   "message",
				}
				if err := s.Emit(entry); err != nil {
					t.Errorf("Emit() error = %v", err)
				}
			}
		}()
	}
	wg.Wait()

	if got := w.Lines(); got != goroutines*perGoroutine {
		t.Errorf("Expected %d lines, got %d", goroutines*perGoroutine, got)
	}
}

func BenchmarkWriterSink_Emit(b *testing.B) {
	s := NewWriterSink(WriterConfig{Writer: &bytes.Buffer{}})
	entry := &core.Entry{
		Time:      time.Now(),
		Level:     core.InfoLevel,
		Subsystem: "com.test.app",
		Category:  "Bench",
		Message:   "benchmark message",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Emit(entry)
	}
}

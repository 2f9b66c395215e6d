package formatter

import (
	"bytes"
	"io"
	"sync"

	"github.com/mikeCenters/SystemLogger/core"
)

// RedactedPlaceholder is the payload rendered in place of a redacted
// message. It mirrors the marker used by the platform log viewers this
// facade is modeled on.
const RedactedPlaceholder = "<private>"

// Formatter defines the interface for log formatters
type Formatter interface {
	// Format formats a log entry into bytes
	Format(entry *core.Entry) ([]byte, error)
}

// WriterFormatter is an optional interface that formatters can implement
// to write directly to a writer without intermediate byte slice allocation.
type WriterFormatter interface {
	// FormatTo formats a log entry and writes it directly to the writer
	FormatTo(entry *core.Entry, w io.Writer) error
}

// Config holds common formatter configuration
type Config struct {
	// TimestampFormat specifies the time format (empty for RFC3339)
	TimestampFormat string
	// RevealPrivate renders redacted payloads verbatim instead of the
	// placeholder. Intended for authorized viewers only.
	RevealPrivate bool
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}

// payload returns the message to render for an entry, applying the
// redaction placeholder unless the formatter reveals private content.
func (c Config) payload(entry *core.Entry) string {
	if entry.Redacted && !c.RevealPrivate {
		return RedactedPlaceholder
	}
	return entry.Message
}

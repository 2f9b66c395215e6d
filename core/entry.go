package core

import (
	"sync"
	"time"
)

// Entry represents a single log event with all its metadata
type Entry struct {
	Time      time.Time
	Level     Level
	Subsystem string
	Category  string
	Message   string
	// Redacted marks the message as sensitive; formatters and sinks
	// replace the payload with a placeholder unless explicitly
	// configured to reveal it.
	Redacted bool
}

// entryPool is a pool of Entry objects to reduce allocations
var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{}
	},
}

// GetEntry retrieves an Entry from the pool
func GetEntry() *Entry {
	e := entryPool.Get().(*Entry)
	e.Time = time.Now()
	return e
}

// PutEntry returns an Entry to the pool
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	e.Subsystem = ""
	e.Category = ""
	e.Message = ""
	e.Redacted = false
	entryPool.Put(e)
}

package core

import (
	"testing"
	"time"
)

func TestEntryPool_Reset(t *testing.T) {
	e := GetEntry()
	e.Level = ErrorLevel
	e.Subsystem = "com.test.app"
	e.Category = "Net"
	e.Message = "timeout"
	e.Redacted = true
	PutEntry(e)

	// The recycled entry must come back clean
	e2 := GetEntry()
	if e2.Subsystem != "" || e2.Category != "" || e2.Message != "" || e2.Redacted {
		t.Errorf("Recycled entry not reset: %+v", e2)
	}
	PutEntry(e2)
}

func TestGetEntry_SetsTime(t *testing.T) {
	before := time.Now()
	e := GetEntry()
	after := time.Now()

	if e.Time.Before(before) || e.Time.After(after) {
		t.Errorf("GetEntry() time %v not in [%v, %v]", e.Time, before, after)
	}
	PutEntry(e)
}

func TestPutEntry_Nil(t *testing.T) {
	// Must not panic
	PutEntry(nil)
}

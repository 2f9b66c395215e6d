package logger

import "testing"

func TestResolveSubsystem_Deterministic(t *testing.T) {
	first := resolveSubsystem()
	for i := 0; i < 10; i++ {
		if got := resolveSubsystem(); got != first {
			t.Fatalf("resolveSubsystem() = %q on call %d, want %q", got, i, first)
		}
	}
}

func TestResolveSubsystem_NonEmpty(t *testing.T) {
	if resolveSubsystem() == "" {
		t.Error("resolveSubsystem() must never return an empty string")
	}
}

func TestLookupSubsystem_NonEmpty(t *testing.T) {
	// Under `go test`, build info is available and carries the module
	// path; either way the lookup must produce something usable.
	if lookupSubsystem() == "" {
		t.Error("lookupSubsystem() must never return an empty string")
	}
}

package logger

import (
	"os"
	"path/filepath"
	"runtime/debug"
	"sync"
)

// FallbackSubsystem is used when the host application identifier
// cannot be resolved (degraded mode, not an error)
const FallbackSubsystem = "go.application"

var (
	subsystemOnce sync.Once
	subsystem     string
)

// resolveSubsystem returns the host application identifier: the main
// module path when build info is available, else the executable name,
// else FallbackSubsystem. Resolved once per process so repeated
// construction is deterministic.
func resolveSubsystem() string {
	subsystemOnce.Do(func() {
		subsystem = lookupSubsystem()
	})
	return subsystem
}

func lookupSubsystem() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Path != "" {
		return info.Main.Path
	}
	if exe, err := os.Executable(); err == nil {
		if name := filepath.Base(exe); name != "" && name != "." && name != string(filepath.Separator) {
			return name
		}
	}
	return FallbackSubsystem
}

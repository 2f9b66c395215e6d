package formatter_test

import (
	"fmt"
	"time"

	"github.com/mikeCenters/SystemLogger/core"
	"github.com/mikeCenters/SystemLogger/formatter"
)

func ExampleTextFormatter() {
	f := formatter.NewTextFormatter(formatter.Config{})

	out, _ := f.Format(&core.Entry{
		Time:      time.Date(2026, 2, 18, 13, 0, 0, 0, time.UTC),
		Level:     core.ErrorLevel,
		Subsystem: "com.example.app",
		Category:  "Networking",
		Message:   "timeout",
	})
	fmt.Print(string(out))
	// Output: 2026-02-18T13:00:00Z [ERROR] [com.example.app/Networking] timeout
}

func ExampleJSONFormatter_redacted() {
	f := formatter.NewJSONFormatter(formatter.Config{
		TimestampFormat: time.RFC3339,
	})

	out, _ := f.Format(&core.Entry{
		Time:      time.Date(2026, 2, 18, 13, 0, 0, 0, time.UTC),
		Level:     core.InfoLevel,
		Subsystem: "com.example.app",
		Category:  "Auth",
		Message:   "token=abc123",
		Redacted:  true,
	})
	fmt.Print(string(out))
	// Output: {"time":"2026-02-18T13:00:00Z","level":"INFO","subsystem":"com.example.app","category":"Auth","message":"<private>","redacted":true}
}

// Package logging provides the shared zerolog setup for Waymark.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu   sync.RWMutex
	base = newBase(os.Stderr, zerolog.InfoLevel)
)

func newBase(out io.Writer, level zerolog.Level) zerolog.Logger {
	writer := zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// Setup configures the process-wide logger. Unknown level strings fall back
// to info.
func Setup(level string) {
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || level == "" {
		parsed = zerolog.InfoLevel
	}

	mu.Lock()
	base = newBase(os.Stderr, parsed)
	mu.Unlock()
}

// SetOutput redirects all loggers to the given writer. Used by tests and by
// the TUI, which must keep stderr clean while the program owns the terminal.
func SetOutput(out io.Writer) {
	mu.Lock()
	base = newBase(out, base.GetLevel())
	mu.Unlock()
}

// Component returns a logger tagged with a component name.
func Component(name string) zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base.With().Str("component", name).Logger()
}

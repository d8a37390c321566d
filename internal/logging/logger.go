// Package logging configures charmbracelet/log loggers for jirai and
// carries them through a context.
package logging

import (
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
)

//nolint:gochecknoglobals // Process-wide fallback logger.
var defaultLogger atomic.Pointer[log.Logger]

// New returns a plain stderr logger at level.
func New(level string) *log.Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter returns a plain logger writing to w at level. Unknown
// levels mean info.
func NewWithWriter(w io.Writer, level string) *log.Logger {
	return log.NewWithOptions(w, log.Options{Level: parseLevel(level)})
}

// NewInteractive returns the info-level stderr logger used on a terminal,
// with a "jirai" prefix and wall-clock timestamps.
func NewInteractive() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           log.InfoLevel,
		Prefix:          "jirai",
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})
}

// parseLevel accepts the charmbracelet level names in any case, plus
// "warning".
func parseLevel(name string) log.Level {
	name = strings.ToLower(name)
	if name == "warning" {
		name = "warn"
	}
	level, err := log.ParseLevel(name)
	if err != nil || level == log.FatalLevel {
		return log.InfoLevel
	}
	return level
}

// Default returns the process-wide logger, creating an info-level stderr
// logger on first use.
func Default() *log.Logger {
	if logger := defaultLogger.Load(); logger != nil {
		return logger
	}
	defaultLogger.CompareAndSwap(nil, New("info"))
	return defaultLogger.Load()
}

// SetDefault replaces the process-wide logger.
func SetDefault(logger *log.Logger) {
	defaultLogger.Store(logger)
}

// SetLevel changes the level of the process-wide logger.
func SetLevel(level string) {
	Default().SetLevel(parseLevel(level))
}

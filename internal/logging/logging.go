// Package logging builds the charmbracelet loggers used by the loader and the CLI.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// TimeFormat renders timestamps as "HH:MM:SS.ms" (e.g., "14:32:01.45").
const TimeFormat = "15:04:05.00"

// ErrInvalidLevel indicates an unrecognized level name.
var ErrInvalidLevel = errors.New("invalid log level")

// New creates a logger writing to w that filters messages below level.
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      TimeFormat,
		Level:           level,
	})
}

// ParseLevel maps "debug", "info", "warn" and "error" to a level.
// The empty string maps to info.
func ParseLevel(s string) (log.Level, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(strings.ToLower(s))
	if err != nil {
		return log.InfoLevel, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
	return lvl, nil
}

var (
	defaultLogger     *log.Logger
	defaultLoggerOnce sync.Once
)

// Default returns the shared info-level logger writing to stderr.
func Default() *log.Logger {
	defaultLoggerOnce.Do(func() {
		defaultLogger = New(os.Stderr, log.InfoLevel)
	})
	return defaultLogger
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return New(io.Discard, log.FatalLevel)
}

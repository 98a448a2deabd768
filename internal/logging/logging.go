// Package logging builds the charmbracelet loggers used across the arcade.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

// New creates a timestamped logger writing to w with the given prefix.
// An unknown level falls back to info.
func New(w io.Writer, prefix, level string) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          prefix,
	})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	l.SetLevel(lvl)
	return l
}

// Discard returns a logger that drops everything. Interactive sessions use
// it when no log file is configured, since stderr belongs to the TUI.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// OpenFile creates a logger appending to the file at path.
// The returned closer must be called when the logger is no longer used.
func OpenFile(path, prefix, level string) (*log.Logger, io.Closer, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("logging: cannot create directory %s: %w", dir, err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: cannot open %s: %w", path, err)
	}
	return New(f, prefix, level), f, nil
}

// ============================================================================
// scripter - Input Automation Scripts
// ============================================================================
//
// Package:     logging
// Description: Factory for the application logger
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"
	"path/filepath"

	scerr "github.com/msto63/scripter/pkg/core/errors"
	sclog "github.com/msto63/scripter/pkg/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	Name string

	// Log level (trace, debug, info, warn, error)
	Level string

	// Output format, "text" or "json" (default: text)
	Format string

	// Verbose forces debug level
	Verbose bool

	// Output is the console writer (default: stderr)
	Output io.Writer

	// File additionally receives every entry when set
	File string
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "info",
		Format: "text",
	}
}

// NewLogger creates a logger from cfg. The returned closer releases the
// log file and must be called when the logger is no longer used.
func NewLogger(cfg LoggerConfig) (*sclog.Logger, io.Closer, error) {
	level, err := sclog.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, scerr.Wrap(err, "invalid log level").WithCode(scerr.CodeConfigError)
	}
	if cfg.Verbose {
		level = sclog.LevelDebug
	}

	format, err := sclog.ParseFormat(cfg.Format)
	if err != nil {
		return nil, nil, scerr.Wrap(err, "invalid log format").WithCode(scerr.CodeConfigError)
	}

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}

	var closer io.Closer = nopCloser{}
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
			return nil, nil, scerr.Wrap(err, "failed to create log directory").
				WithCode(scerr.CodeConfigError).
				WithDetail("path", cfg.File)
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, scerr.Wrap(err, "failed to open log file").
				WithCode(scerr.CodeConfigError).
				WithDetail("path", cfg.File)
		}
		output = io.MultiWriter(output, f)
		closer = f
	}

	logger := sclog.NewWithConfig(sclog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   cfg.Name,
	})

	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// ============================================================================
// scripter - Input Automation Scripts
// ============================================================================
//
// Package:     input
// Description: Backend selection
// Created:     2026-10-16
// License:     MIT
// ============================================================================

// Package input provides the devices commands execute against: a robotgo
// backend for real desktop sessions and a dry-run backend that prints
// each primitive.
package input

import (
	"io"

	"github.com/msto63/scripter/internal/command"
	"github.com/msto63/scripter/pkg/core/config"
	scerr "github.com/msto63/scripter/pkg/core/errors"
	sclog "github.com/msto63/scripter/pkg/core/log"
)

// Options selects and configures a backend
type Options struct {
	// Backend is config.BackendRobotgo or config.BackendDryRun
	Backend string
	Logger  *sclog.Logger
	// Output receives dry-run events
	Output io.Writer
}

// Open acquires a device handle for the configured backend
func Open(opts Options) (command.Handle, error) {
	if opts.Logger == nil {
		opts.Logger = sclog.GetDefault()
	}
	logger := opts.Logger.WithField("component", "input")

	switch opts.Backend {
	case config.BackendDryRun:
		return NewDryRun(opts.Output, logger), nil
	case config.BackendRobotgo, "":
		dev, err := OpenRobotgo(logger)
		if err != nil {
			return nil, err
		}
		return dev, nil
	default:
		return nil, scerr.Newf("unknown backend %q", opts.Backend).
			WithCode(scerr.CodeBackendUnavailable)
	}
}

// ============================================================================
// scripter - Input Automation Scripts
// ============================================================================
//
// Package:     executor
// Description: Sequential run engine for parsed scripts
// Created:     2026-10-16
// License:     MIT
// ============================================================================

// Package executor plays a parsed script against an input device.
//
// A run acquires one device handle, executes every statement in file
// order, and releases the handle when the run ends. The first failing
// statement aborts the run; events already sent are not undone.
package executor

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/msto63/scripter/internal/command"
	"github.com/msto63/scripter/internal/parser"
	scerr "github.com/msto63/scripter/pkg/core/errors"
	sclog "github.com/msto63/scripter/pkg/core/log"
)

// Opener acquires the device handle for one run
type Opener interface {
	Open() (command.Handle, error)
}

// OpenerFunc adapts a function to Opener
type OpenerFunc func() (command.Handle, error)

// Open calls f
func (f OpenerFunc) Open() (command.Handle, error) { return f() }

// Sleeper blocks for a duration
type Sleeper func(time.Duration)

// Status values of runs and steps
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Engine executes scripts
type Engine struct {
	opener  Opener
	logger  *sclog.Logger
	options Options
}

// Options configures the engine
type Options struct {
	Logger *sclog.Logger
	Opener Opener
	// Sleeper performs waits; defaults to time.Sleep
	Sleeper Sleeper
	// DryRun logs waits instead of sleeping
	DryRun bool
	// Backend is recorded in results
	Backend string
	// Now defaults to time.Now
	Now func() time.Time
}

// RunResult describes one run
type RunResult struct {
	RunID      string
	Source     string
	Backend    string
	DryRun     bool
	StartedAt  time.Time
	FinishedAt time.Time
	Status     string
	Total      int
	Steps      []StepResult
	Err        error
}

// Executed returns the number of statements that completed
func (r *RunResult) Executed() int {
	n := 0
	for _, s := range r.Steps {
		if s.Status == StatusCompleted {
			n++
		}
	}
	return n
}

// Elapsed returns the wall time of the run
func (r *RunResult) Elapsed() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// OK reports whether every statement completed
func (r *RunResult) OK() bool {
	return r.Status == StatusCompleted
}

// StepResult describes one executed statement
type StepResult struct {
	Line    int
	Command string
	Status  string
	Elapsed time.Duration
	Err     error
}

// New creates an engine. An Opener is required.
func New(opts Options) (*Engine, error) {
	if opts.Logger == nil {
		opts.Logger = sclog.GetDefault()
	}
	if opts.Sleeper == nil {
		opts.Sleeper = time.Sleep
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Opener == nil {
		return nil, scerr.New("opener is required").WithCode(scerr.CodeInternal)
	}

	return &Engine{
		opener:  opts.Opener,
		logger:  opts.Logger.WithField("component", "executor"),
		options: opts,
	}, nil
}

// Run executes the script. The returned result is never nil; its Err
// matches the returned error.
func (e *Engine) Run(script *parser.Script) (*RunResult, error) {
	result := &RunResult{
		RunID:     uuid.New().String(),
		Source:    script.Source,
		Backend:   e.options.Backend,
		DryRun:    e.options.DryRun,
		StartedAt: e.options.Now(),
		Total:     script.Len(),
	}
	logger := e.logger.WithCorrelationID(result.RunID)

	err := e.run(logger, script, result)

	result.FinishedAt = e.options.Now()
	result.Err = err
	if err != nil {
		result.Status = StatusFailed
		logger.ErrorWithErr("Run failed", err, sclog.Fields{
			"executed": result.Executed(),
			"total":    result.Total,
		})
		return result, err
	}

	result.Status = StatusCompleted
	logger.Info("Run completed", sclog.Fields{
		"statements": result.Total,
		"elapsed":    result.Elapsed().String(),
	})
	return result, nil
}

func (e *Engine) run(logger *sclog.Logger, script *parser.Script, result *RunResult) error {
	handle, err := e.opener.Open()
	if err != nil {
		return scerr.Wrap(err, "input backend unavailable").
			WithCode(scerr.CodeBackendUnavailable).
			WithDetail("backend", e.options.Backend)
	}
	defer func() {
		if cerr := handle.Close(); cerr != nil {
			logger.WarnWithErr("Failed to release input device", cerr)
		}
	}()

	logger.Info("Run started", sclog.Fields{
		"source":     script.Source,
		"statements": script.Len(),
		"backend":    e.options.Backend,
		"dry_run":    e.options.DryRun,
	})

	for _, st := range script.Statements {
		start := e.options.Now()
		execErr := e.execute(logger, st, handle)

		step := StepResult{
			Line:    st.Line,
			Command: st.Command.String(),
			Status:  StatusCompleted,
			Elapsed: e.options.Now().Sub(start),
		}
		if execErr != nil {
			step.Status = StatusFailed
			step.Err = execErr
		}
		result.Steps = append(result.Steps, step)

		if execErr != nil {
			return scerr.Wrap(execErr, fmt.Sprintf("line %d", st.Line)).
				WithDetail("line", st.Line).
				WithDetail("text", st.Text)
		}
	}
	return nil
}

// execute performs one statement. Waits are the only suspension point.
func (e *Engine) execute(logger *sclog.Logger, st parser.Statement, dev command.Device) error {
	logger.Debug("Executing", sclog.Fields{
		"line":    st.Line,
		"command": st.Command.String(),
	})

	w, ok := st.Command.(command.Wait)
	if !ok {
		return st.Command.Execute(dev)
	}

	d := w.Duration.Std()
	if e.options.DryRun {
		logger.Info("Wait skipped", sclog.Fields{"line": st.Line, "duration": d.String()})
		return nil
	}
	if d > 0 {
		e.options.Sleeper(d)
	}
	return nil
}

// ============================================================================
// scripter - Input Automation Scripts
// ============================================================================
//
// Package:     health
// Description: Environment checks run by the doctor command
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package health

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Status represents the outcome of a check
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusDegraded  Status = "degraded"
	StatusUnhealthy Status = "unhealthy"
)

// CheckResult represents the result of a check
type CheckResult struct {
	Name     string
	Status   Status
	Message  string
	Duration time.Duration
}

// Checker is a single named check
type Checker interface {
	Name() string
	Check(ctx context.Context) CheckResult
}

type namedCheck struct {
	name string
	fn   func(ctx context.Context) CheckResult
}

// NewChecker creates a named checker from a function
func NewChecker(name string, fn func(ctx context.Context) CheckResult) Checker {
	return &namedCheck{name: name, fn: fn}
}

func (c *namedCheck) Name() string                          { return c.name }
func (c *namedCheck) Check(ctx context.Context) CheckResult { return c.fn(ctx) }

// Registry runs checks one after another in registration order
type Registry struct {
	checkers []Checker
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a checker
func (r *Registry) Register(checker Checker) {
	r.checkers = append(r.checkers, checker)
}

// RegisterFunc adds a check function
func (r *Registry) RegisterFunc(name string, fn func(ctx context.Context) CheckResult) {
	r.Register(NewChecker(name, fn))
}

// Check runs every check and aggregates the worst status
func (r *Registry) Check(ctx context.Context) *Report {
	report := &Report{
		Status: StatusHealthy,
		Checks: make([]CheckResult, 0, len(r.checkers)),
	}

	for _, c := range r.checkers {
		start := time.Now()
		result := c.Check(ctx)
		result.Duration = time.Since(start)
		if result.Name == "" {
			result.Name = c.Name()
		}
		report.Checks = append(report.Checks, result)

		switch result.Status {
		case StatusUnhealthy:
			report.Status = StatusUnhealthy
		case StatusDegraded:
			if report.Status != StatusUnhealthy {
				report.Status = StatusDegraded
			}
		}
	}

	return report
}

// Report is the outcome of all checks
type Report struct {
	Status Status
	Checks []CheckResult
}

// String returns a one-line summary
func (r *Report) String() string {
	return fmt.Sprintf("Status: %s, Checks: %d", r.Status, len(r.Checks))
}

// Healthy returns a passing result
func Healthy(msg string) CheckResult {
	return CheckResult{Status: StatusHealthy, Message: msg}
}

// Degraded returns a warning result
func Degraded(msg string) CheckResult {
	return CheckResult{Status: StatusDegraded, Message: msg}
}

// Unhealthy returns a failing result
func Unhealthy(err error) CheckResult {
	return CheckResult{Status: StatusUnhealthy, Message: err.Error()}
}

// WritableDirCheck verifies that dir exists or can be created and accepts
// new files
func WritableDirCheck(name, dir string) Checker {
	return NewChecker(name, func(ctx context.Context) CheckResult {
		if dir == "" {
			return Degraded("not configured")
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return Unhealthy(err)
		}
		f, err := os.CreateTemp(dir, ".scripter-check-*")
		if err != nil {
			return Unhealthy(err)
		}
		name := f.Name()
		f.Close()
		os.Remove(name)
		return Healthy(filepath.Clean(dir))
	})
}

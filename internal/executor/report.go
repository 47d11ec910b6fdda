// ============================================================================
// scripter - Input Automation Scripts
// ============================================================================
//
// Package:     executor
// Description: YAML run reports
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package executor

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	scerr "github.com/msto63/scripter/pkg/core/errors"
)

// Report is the serialized form of a RunResult
type Report struct {
	OK        bool         `yaml:"ok"`
	RunID     string       `yaml:"run_id"`
	Script    string       `yaml:"script"`
	Backend   string       `yaml:"backend"`
	DryRun    bool         `yaml:"dry_run,omitempty"`
	StartedAt string       `yaml:"started_at"`
	Elapsed   string       `yaml:"elapsed"`
	Steps     int          `yaml:"steps"`
	Completed int          `yaml:"completed"`
	Error     string       `yaml:"error,omitempty"`
	Results   []StepReport `yaml:"results"`
}

// StepReport is the serialized form of a StepResult
type StepReport struct {
	Line    int    `yaml:"line"`
	OK      bool   `yaml:"ok"`
	Command string `yaml:"command"`
	Elapsed string `yaml:"elapsed"`
	Error   string `yaml:"error,omitempty"`
}

// NewReport converts a run result into a report
func NewReport(r *RunResult) Report {
	rep := Report{
		OK:        r.OK(),
		RunID:     r.RunID,
		Script:    r.Source,
		Backend:   r.Backend,
		DryRun:    r.DryRun,
		StartedAt: r.StartedAt.Format(time.RFC3339),
		Elapsed:   r.Elapsed().String(),
		Steps:     r.Total,
		Completed: r.Executed(),
		Results:   make([]StepReport, 0, len(r.Steps)),
	}
	if r.Err != nil {
		rep.Error = r.Err.Error()
	}

	for _, s := range r.Steps {
		sr := StepReport{
			Line:    s.Line,
			OK:      s.Status == StatusCompleted,
			Command: s.Command,
			Elapsed: s.Elapsed.String(),
		}
		if s.Err != nil {
			sr.Error = s.Err.Error()
		}
		rep.Results = append(rep.Results, sr)
	}
	return rep
}

// Encode writes the report as YAML
func (rep Report) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return err
	}
	return enc.Close()
}

// WriteReport writes the report for r to path, creating parent directories
func WriteReport(path string, r *RunResult) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return scerr.Wrap(err, "failed to create report directory").
				WithCode(scerr.CodeInternal).
				WithDetail("path", dir)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return scerr.Wrap(err, "failed to create report").
			WithCode(scerr.CodeInternal).
			WithDetail("path", path)
	}
	defer f.Close()

	return NewReport(r).Encode(f)
}

// ReportPath returns the default report location for a run in dir
func ReportPath(dir string, r *RunResult) string {
	name := "run-" + r.StartedAt.Format("20060102-150405") + "-" + shortID(r.RunID) + ".yaml"
	return filepath.Join(dir, name)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

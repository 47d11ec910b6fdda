// ============================================================================
// scripter - Input Automation Scripts
// ============================================================================
//
// Package:     input
// Description: Dry-run device that prints primitives instead of injecting
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package input

import (
	"fmt"
	"io"

	"github.com/msto63/scripter/internal/command"
	sclog "github.com/msto63/scripter/pkg/core/log"
)

// DryRun writes one line per primitive and never touches the OS
type DryRun struct {
	out    io.Writer
	logger *sclog.Logger
	events int
}

// NewDryRun creates a dry-run device writing to out. A nil out only logs.
func NewDryRun(out io.Writer, logger *sclog.Logger) *DryRun {
	if out == nil {
		out = io.Discard
	}
	return &DryRun{out: out, logger: logger}
}

// Events returns the number of primitives received
func (d *DryRun) Events() int {
	return d.events
}

func (d *DryRun) emit(format string, args ...interface{}) error {
	d.events++
	line := fmt.Sprintf(format, args...)
	d.logger.Debug("Dry-run event", sclog.Fields{"event": line})
	_, err := fmt.Fprintln(d.out, line)
	return err
}

// KeyEvent prints the key transition
func (d *DryRun) KeyEvent(key command.KeySpec, dir command.Direction) error {
	return d.emit("key %s %s", dir, key)
}

// TypeText prints the text
func (d *DryRun) TypeText(text string) error {
	return d.emit("type %q", text)
}

// ButtonEvent prints the button transition
func (d *DryRun) ButtonEvent(button command.ButtonSpec, dir command.Direction) error {
	return d.emit("button %s %s", dir, button)
}

// Scroll prints the scroll
func (d *DryRun) Scroll(amount int, axis command.Axis) error {
	return d.emit("scroll %d %s", amount, axis)
}

// MovePointer prints the move
func (d *DryRun) MovePointer(x, y int, mode command.CoordMode) error {
	return d.emit("move %d %d %s", x, y, mode)
}

// Close logs the event count
func (d *DryRun) Close() error {
	d.logger.Debug("Dry-run device closed", sclog.Fields{"events": d.events})
	return nil
}

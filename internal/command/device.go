// ============================================================================
// scripter - Input Automation Scripts
// ============================================================================
//
// Package:     command
// Description: Input device capability used by command execution
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package command

import "io"

// Direction is the transition of a key or button
type Direction int

const (
	Down Direction = iota
	Up
	// Click is a down followed by an up
	Click
)

// String returns the direction name
func (d Direction) String() string {
	switch d {
	case Down:
		return "down"
	case Up:
		return "up"
	case Click:
		return "click"
	default:
		return "unknown"
	}
}

// Device synthesizes OS-level input events. Implementations report
// rejected events as errors; events are never retried.
type Device interface {
	// KeyEvent presses, releases or clicks a key
	KeyEvent(key KeySpec, dir Direction) error

	// TypeText types a string as a sequence of characters
	TypeText(text string) error

	// ButtonEvent presses, releases or clicks a mouse button
	ButtonEvent(button ButtonSpec, dir Direction) error

	// Scroll scrolls by a signed amount along an axis
	Scroll(amount int, axis Axis) error

	// MovePointer moves the pointer to (x, y) or by (x, y)
	MovePointer(x, y int, mode CoordMode) error
}

// Handle is a Device acquired for the duration of one run
type Handle interface {
	Device
	io.Closer
}

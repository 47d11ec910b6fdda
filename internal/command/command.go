// ============================================================================
// scripter - Input Automation Scripts
// ============================================================================
//
// Package:     command
// Description: Typed script commands (wait, keyboard, mouse) and their
//              argument specs
// Created:     2026-10-16
// License:     MIT
// ============================================================================

// Package command defines the closed set of script commands and the
// input device capability they execute against.
//
// A Command is produced once by the parser from one script line and is
// executed exactly once. All command types are plain values and compare
// with ==.
package command

import (
	"fmt"
	"math"
	"time"
)

// Kind identifies the command category selected by a line's verb
type Kind int

const (
	KindWait Kind = iota
	KindKeyboard
	KindMouse
)

// String returns the verb spelling of the kind
func (k Kind) String() string {
	switch k {
	case KindWait:
		return "wait"
	case KindKeyboard:
		return "kbd"
	case KindMouse:
		return "mouse"
	default:
		return "unknown"
	}
}

// Command is one parsed script line
type Command interface {
	// Kind returns the command category
	Kind() Kind

	// Execute performs the command's effect through dev exactly once
	Execute(dev Device) error

	// String renders the command in canonical script syntax
	String() string

	isCommand()
}

// Unit is the time unit tag of a Duration
type Unit int

const (
	Milliseconds Unit = iota
	Seconds
	Minutes
	Hours
)

var unitNames = map[Unit]string{
	Milliseconds: "milliseconds",
	Seconds:      "seconds",
	Minutes:      "minutes",
	Hours:        "hours",
}

var unitScale = map[Unit]time.Duration{
	Milliseconds: time.Millisecond,
	Seconds:      time.Second,
	Minutes:      time.Minute,
	Hours:        time.Hour,
}

// String returns the script spelling of the unit
func (u Unit) String() string {
	if name, ok := unitNames[u]; ok {
		return name
	}
	return "unknown"
}

// ParseUnit resolves a unit token
func ParseUnit(token string) (Unit, bool) {
	for unit, name := range unitNames {
		if name == token {
			return unit, true
		}
	}
	return 0, false
}

// Duration is a magnitude in a single unit. No conversion happens until Std.
type Duration struct {
	Amount uint32
	Unit   Unit
}

// MaxAmount is the largest amount of the unit representable as a
// time.Duration
func (u Unit) MaxAmount() uint64 {
	scale, ok := unitScale[u]
	if !ok {
		return 0
	}
	return uint64(math.MaxInt64 / int64(scale))
}

// Std converts the duration to a time.Duration. Amounts above the unit's
// MaxAmount saturate at the largest time.Duration.
func (d Duration) Std() time.Duration {
	if uint64(d.Amount) > d.Unit.MaxAmount() {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(d.Amount) * unitScale[d.Unit]
}

// String renders the duration as "<amount> <unit>"
func (d Duration) String() string {
	return fmt.Sprintf("%d %s", d.Amount, d.Unit)
}

// Wait suspends playback for a duration. It has no device effect; the
// executor performs the suspension.
type Wait struct {
	Duration Duration
}

func (Wait) isCommand() {}

// Kind returns KindWait
func (Wait) Kind() Kind { return KindWait }

// Execute does nothing on the device
func (Wait) Execute(Device) error { return nil }

// String renders the command in script syntax
func (w Wait) String() string {
	return fmt.Sprintf("wait time %s", w.Duration)
}

// KeyAction selects the keyboard operation
type KeyAction int

const (
	KeyPress KeyAction = iota
	KeyRelease
	KeyClick
	KeyType
)

var keyActionNames = map[KeyAction]string{
	KeyPress:   "press",
	KeyRelease: "release",
	KeyClick:   "click",
	KeyType:    "type",
}

// String returns the script spelling of the action
func (a KeyAction) String() string {
	if name, ok := keyActionNames[a]; ok {
		return name
	}
	return "unknown"
}

// Keyboard is a key event or a text to type. Key is set for press,
// release and click; Text is set for type.
type Keyboard struct {
	Action KeyAction
	Key    KeySpec
	Text   string
}

func (Keyboard) isCommand() {}

// Kind returns KindKeyboard
func (Keyboard) Kind() Kind { return KindKeyboard }

// String renders the command in script syntax
func (k Keyboard) String() string {
	if k.Action == KeyType {
		return fmt.Sprintf("kbd type %s", k.Text)
	}
	return fmt.Sprintf("kbd %s %s", k.Action, k.Key)
}

// MouseAction selects the mouse operation
type MouseAction int

const (
	MousePress MouseAction = iota
	MouseRelease
	MouseClick
	MouseDouble
	MouseTriple
	MouseScroll
	MouseMove
)

var mouseActionNames = map[MouseAction]string{
	MousePress:   "press",
	MouseRelease: "release",
	MouseClick:   "click",
	MouseDouble:  "double",
	MouseTriple:  "triple",
	MouseScroll:  "scroll",
	MouseMove:    "move",
}

// String returns the script spelling of the action
func (a MouseAction) String() string {
	if name, ok := mouseActionNames[a]; ok {
		return name
	}
	return "unknown"
}

// clickCount is the number of click primitives a button action expands to
func (a MouseAction) clickCount() int {
	switch a {
	case MouseDouble:
		return 2
	case MouseTriple:
		return 3
	default:
		return 1
	}
}

// Axis is the scroll direction
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// String returns the script token for the axis
func (a Axis) String() string {
	if a == Horizontal {
		return "x"
	}
	return "y"
}

// ScrollSpec is a signed scroll amount along one axis
type ScrollSpec struct {
	Amount int
	Axis   Axis
}

// CoordMode tells whether a move is absolute or relative
type CoordMode int

const (
	Absolute CoordMode = iota
	Relative
)

// String returns the script token for the mode
func (m CoordMode) String() string {
	if m == Absolute {
		return "abs"
	}
	return "rel"
}

// MoveSpec is a pointer target or offset
type MoveSpec struct {
	X    int
	Y    int
	Mode CoordMode
}

// Mouse is a button, scroll or move command. Only the spec matching
// Action is meaningful.
type Mouse struct {
	Action MouseAction
	Button ButtonSpec
	Scroll ScrollSpec
	Move   MoveSpec
}

func (Mouse) isCommand() {}

// Kind returns KindMouse
func (Mouse) Kind() Kind { return KindMouse }

// String renders the command in script syntax
func (m Mouse) String() string {
	switch m.Action {
	case MouseScroll:
		return fmt.Sprintf("mouse scroll %d %s", m.Scroll.Amount, m.Scroll.Axis)
	case MouseMove:
		return fmt.Sprintf("mouse move %d %d %s", m.Move.X, m.Move.Y, m.Move.Mode)
	default:
		return fmt.Sprintf("mouse %s %s", m.Action, m.Button)
	}
}

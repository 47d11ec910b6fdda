// ============================================================================
// scripter - Input Automation Scripts
// ============================================================================
//
// Package:     input
// Description: OS input injection through robotgo
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package input

import (
	"os"
	"runtime"

	"github.com/go-vgo/robotgo"

	"github.com/msto63/scripter/internal/command"
	scerr "github.com/msto63/scripter/pkg/core/errors"
	sclog "github.com/msto63/scripter/pkg/core/log"
)

// robotgoKeys maps named keys to robotgo key names
var robotgoKeys = map[command.NamedKey]string{
	command.KeySpace:     "space",
	command.KeyTab:       "tab",
	command.KeyBackspace: "backspace",
	command.KeyUp:        "up",
	command.KeyDown:      "down",
	command.KeyLeft:      "left",
	command.KeyRight:     "right",
	command.KeyInsert:    "insert",
	command.KeyDelete:    "delete",
	command.KeyHome:      "home",
	command.KeyEnd:       "end",
	command.KeyPageUp:    "pageup",
	command.KeyPageDown:  "pagedown",
	command.KeyEscape:    "escape",
}

var robotgoButtons = map[command.ButtonSpec]string{
	command.ButtonLeft:   "left",
	command.ButtonRight:  "right",
	command.ButtonMiddle: "center",
}

// Robotgo injects events into the running desktop session
type Robotgo struct {
	logger *sclog.Logger
}

// OpenRobotgo checks that a desktop session is reachable and returns a
// handle. On Linux an X11 or Wayland display is required.
func OpenRobotgo(logger *sclog.Logger) (*Robotgo, error) {
	if runtime.GOOS == "linux" && os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
		return nil, scerr.New("no display available").
			WithCode(scerr.CodeBackendUnavailable).
			WithDetail("backend", "robotgo")
	}

	logger.Debug("Robotgo backend opened", sclog.Fields{"os": runtime.GOOS})
	return &Robotgo{logger: logger}, nil
}

// KeyEvent toggles or taps a key
func (r *Robotgo) KeyEvent(key command.KeySpec, dir command.Direction) error {
	name := robotgoKeyName(key)
	switch dir {
	case command.Down:
		return robotgo.KeyToggle(name, "down")
	case command.Up:
		return robotgo.KeyToggle(name, "up")
	default:
		return robotgo.KeyTap(name)
	}
}

// TypeText types text with the platform's unicode input path
func (r *Robotgo) TypeText(text string) error {
	robotgo.TypeStr(text)
	return nil
}

// ButtonEvent toggles or clicks a mouse button
func (r *Robotgo) ButtonEvent(button command.ButtonSpec, dir command.Direction) error {
	name, ok := robotgoButtons[button]
	if !ok {
		return scerr.Newf("unsupported button %s", button).WithCode(scerr.CodeInputRejected)
	}

	switch dir {
	case command.Down:
		return robotgo.Toggle(name)
	case command.Up:
		return robotgo.Toggle(name, "up")
	default:
		if err := robotgo.Toggle(name); err != nil {
			return err
		}
		return robotgo.Toggle(name, "up")
	}
}

// Scroll scrolls horizontally or vertically
func (r *Robotgo) Scroll(amount int, axis command.Axis) error {
	if axis == command.Horizontal {
		robotgo.Scroll(amount, 0)
	} else {
		robotgo.Scroll(0, amount)
	}
	return nil
}

// MovePointer moves the pointer to or by (x, y)
func (r *Robotgo) MovePointer(x, y int, mode command.CoordMode) error {
	if mode == command.Relative {
		robotgo.MoveRelative(x, y)
	} else {
		robotgo.Move(x, y)
	}
	return nil
}

// Close releases nothing; robotgo holds no per-run state
func (r *Robotgo) Close() error {
	r.logger.Debug("Robotgo backend closed")
	return nil
}

func robotgoKeyName(key command.KeySpec) string {
	if key.IsNamed() {
		return robotgoKeys[key.Named]
	}
	return string(key.Char)
}

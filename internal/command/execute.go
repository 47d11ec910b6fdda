// ============================================================================
// scripter - Input Automation Scripts
// ============================================================================
//
// Package:     command
// Description: Execution of keyboard and mouse commands against a Device
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package command

import (
	scerr "github.com/msto63/scripter/pkg/core/errors"
)

var keyDirections = map[KeyAction]Direction{
	KeyPress:   Down,
	KeyRelease: Up,
	KeyClick:   Click,
}

var buttonDirections = map[MouseAction]Direction{
	MousePress:   Down,
	MouseRelease: Up,
	MouseClick:   Click,
	MouseDouble:  Click,
	MouseTriple:  Click,
}

// Execute sends the key event or typed text to dev
func (k Keyboard) Execute(dev Device) error {
	op := "kbd." + k.Action.String()

	if k.Action == KeyType {
		if err := dev.TypeText(k.Text); err != nil {
			return rejected(err, op, "unable to type text").
				WithDetail("text", k.Text)
		}
		return nil
	}

	dir, ok := keyDirections[k.Action]
	if !ok {
		return scerr.Newf("unknown keyboard action %d", int(k.Action)).
			WithCode(scerr.CodeInternal).
			WithOperation(op)
	}
	if err := dev.KeyEvent(k.Key, dir); err != nil {
		return rejected(err, op, "unable to "+k.Action.String()+" key "+k.Key.String())
	}
	return nil
}

// Execute sends the button, scroll or move events to dev. Double and
// triple clicks stop at the first rejected click; clicks already sent
// stay sent.
func (m Mouse) Execute(dev Device) error {
	op := "mouse." + m.Action.String()

	switch m.Action {
	case MouseScroll:
		if err := dev.Scroll(m.Scroll.Amount, m.Scroll.Axis); err != nil {
			return rejected(err, op, "unable to scroll").
				WithDetail("amount", m.Scroll.Amount).
				WithDetail("axis", m.Scroll.Axis.String())
		}
		return nil

	case MouseMove:
		if err := dev.MovePointer(m.Move.X, m.Move.Y, m.Move.Mode); err != nil {
			return rejected(err, op, "unable to move pointer").
				WithDetail("x", m.Move.X).
				WithDetail("y", m.Move.Y).
				WithDetail("mode", m.Move.Mode.String())
		}
		return nil
	}

	dir, ok := buttonDirections[m.Action]
	if !ok {
		return scerr.Newf("unknown mouse action %d", int(m.Action)).
			WithCode(scerr.CodeInternal).
			WithOperation(op)
	}

	verb := m.Action.String()
	if dir == Click {
		verb = "click"
	}
	count := m.Action.clickCount()
	for i := 1; i <= count; i++ {
		if err := dev.ButtonEvent(m.Button, dir); err != nil {
			e := rejected(err, op, "unable to "+verb+" "+m.Button.String()+" button")
			if count > 1 {
				e = e.WithDetail("attempt", i)
			}
			return e
		}
	}
	return nil
}

func rejected(err error, op, message string) *scerr.Error {
	return scerr.Wrap(err, message).
		WithCode(scerr.CodeInputRejected).
		WithOperation(op)
}

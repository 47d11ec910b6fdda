// ============================================================================
// scripter - Input Automation Scripts
// ============================================================================
//
// Package:     parser
// Description: Verb and action dispatch table with per-action argument
//              parsers
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package parser

import (
	"sort"
	"strconv"
	"strings"

	"github.com/msto63/scripter/internal/command"
)

// actionFunc parses the arguments following verb and action
type actionFunc func(args []string) (command.Command, error)

type action struct {
	usage string
	parse actionFunc
}

// grammar maps verb -> action -> argument parser
var grammar = map[string]map[string]action{
	"wait": {
		"time": {"wait time [<amount> [milliseconds|seconds|minutes|hours]]", parseWaitTime},
	},
	"kbd": {
		"press":   {"kbd press <key>", keyEvent(command.KeyPress)},
		"release": {"kbd release <key>", keyEvent(command.KeyRelease)},
		"click":   {"kbd click <key>", keyEvent(command.KeyClick)},
		"type":    {"kbd type <word> [word...]", parseKbdType},
	},
	"mouse": {
		"press":   {"mouse press <left|right|middle>", buttonEvent(command.MousePress)},
		"release": {"mouse release <left|right|middle>", buttonEvent(command.MouseRelease)},
		"click":   {"mouse click <left|right|middle>", buttonEvent(command.MouseClick)},
		"double":  {"mouse double <left|right|middle>", buttonEvent(command.MouseDouble)},
		"triple":  {"mouse triple <left|right|middle>", buttonEvent(command.MouseTriple)},
		"scroll":  {"mouse scroll <amount> <x|y>", parseMouseScroll},
		"move":    {"mouse move <x> <y> <abs|rel>", parseMouseMove},
	},
}

// Rule describes one grammar entry
type Rule struct {
	Verb   string
	Action string
	Usage  string
}

// Grammar returns every verb/action pair, sorted by verb then action
func Grammar() []Rule {
	var rules []Rule
	for verb, actions := range grammar {
		for name, a := range actions {
			rules = append(rules, Rule{Verb: verb, Action: name, Usage: a.usage})
		}
	}
	sort.Slice(rules, func(i, j int) bool {
		if rules[i].Verb != rules[j].Verb {
			return rules[i].Verb < rules[j].Verb
		}
		return rules[i].Action < rules[j].Action
	})
	return rules
}

// Verbs returns the known verbs, sorted
func Verbs() []string {
	verbs := make([]string, 0, len(grammar))
	for verb := range grammar {
		verbs = append(verbs, verb)
	}
	sort.Strings(verbs)
	return verbs
}

func parseWaitTime(args []string) (command.Command, error) {
	if len(args) == 0 {
		return command.Wait{Duration: command.Duration{Amount: 0, Unit: command.Milliseconds}}, nil
	}
	if len(args) > 2 {
		return nil, syntaxErrorf("wait time takes at most 2 arguments, got %d", len(args))
	}

	amount, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return nil, syntaxErrorf("invalid wait amount %q", args[0])
	}

	unit := command.Seconds
	if len(args) == 2 {
		var ok bool
		if unit, ok = command.ParseUnit(args[1]); !ok {
			return nil, syntaxErrorf("unknown time unit %q", args[1])
		}
	}
	if amount > unit.MaxAmount() {
		return nil, syntaxErrorf("wait amount too large: %d %s", amount, unit)
	}

	return command.Wait{Duration: command.Duration{Amount: uint32(amount), Unit: unit}}, nil
}

// keyEvent builds the parser for press, release and click. Arguments past
// the key are ignored.
func keyEvent(a command.KeyAction) actionFunc {
	return func(args []string) (command.Command, error) {
		if len(args) == 0 {
			return nil, syntaxErrorf("kbd %s requires a key", a)
		}
		key, ok := command.ResolveKey(args[0])
		if !ok {
			return nil, syntaxErrorf("invalid key %q", args[0])
		}
		return command.Keyboard{Action: a, Key: key}, nil
	}
}

func parseKbdType(args []string) (command.Command, error) {
	if len(args) == 0 {
		return nil, syntaxErrorf("kbd type requires text")
	}
	return command.Keyboard{Action: command.KeyType, Text: strings.Join(args, " ")}, nil
}

func buttonEvent(a command.MouseAction) actionFunc {
	return func(args []string) (command.Command, error) {
		if err := arity("mouse "+a.String(), args, 1); err != nil {
			return nil, err
		}
		button, ok := command.ResolveButton(args[0])
		if !ok {
			return nil, syntaxErrorf("unknown mouse button %q", args[0])
		}
		return command.Mouse{Action: a, Button: button}, nil
	}
}

func parseMouseScroll(args []string) (command.Command, error) {
	if err := arity("mouse scroll", args, 2); err != nil {
		return nil, err
	}
	amount, err := parseInt(args[0])
	if err != nil {
		return nil, err
	}

	var axis command.Axis
	switch args[1] {
	case "x":
		axis = command.Horizontal
	case "y":
		axis = command.Vertical
	default:
		return nil, syntaxErrorf("unknown scroll axis %q, expected x or y", args[1])
	}

	return command.Mouse{Action: command.MouseScroll, Scroll: command.ScrollSpec{Amount: amount, Axis: axis}}, nil
}

func parseMouseMove(args []string) (command.Command, error) {
	if err := arity("mouse move", args, 3); err != nil {
		return nil, err
	}
	x, err := parseInt(args[0])
	if err != nil {
		return nil, err
	}
	y, err := parseInt(args[1])
	if err != nil {
		return nil, err
	}

	var mode command.CoordMode
	switch args[2] {
	case "abs":
		mode = command.Absolute
	case "rel":
		mode = command.Relative
	default:
		return nil, syntaxErrorf("unknown move mode %q, expected abs or rel", args[2])
	}

	return command.Mouse{Action: command.MouseMove, Move: command.MoveSpec{X: x, Y: y, Mode: mode}}, nil
}

func arity(form string, args []string, n int) error {
	if len(args) != n {
		return syntaxErrorf("%s takes %d argument(s), got %d", form, n, len(args))
	}
	return nil
}

func parseInt(token string) (int, error) {
	v, err := strconv.ParseInt(token, 10, 32)
	if err != nil {
		return 0, syntaxErrorf("invalid integer %q", token)
	}
	return int(v), nil
}

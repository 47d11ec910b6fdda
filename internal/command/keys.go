// ============================================================================
// scripter - Input Automation Scripts
// ============================================================================
//
// Package:     command
// Description: Key and button vocabularies
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package command

import (
	"sort"
	"unicode/utf8"
)

// NamedKey is a logical, non-character key
type NamedKey int

const (
	// NoKey marks a KeySpec holding a literal character
	NoKey NamedKey = iota
	KeySpace
	KeyTab
	KeyBackspace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyEscape
)

// keyNames maps every accepted token to its key. The first spelling listed
// in canonicalKeyNames is used when rendering.
var keyNames = map[string]NamedKey{
	"space":     KeySpace,
	"tab":       KeyTab,
	"backspace": KeyBackspace,
	"up":        KeyUp,
	"down":      KeyDown,
	"left":      KeyLeft,
	"right":     KeyRight,
	"insert":    KeyInsert,
	"delete":    KeyDelete,
	"home":      KeyHome,
	"end":       KeyEnd,
	"pageup":    KeyPageUp,
	"page-up":   KeyPageUp,
	"pagedown":  KeyPageDown,
	"page-down": KeyPageDown,
	"escape":    KeyEscape,
	"esc":       KeyEscape,
}

var canonicalKeyNames = map[NamedKey]string{
	KeySpace:     "space",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyInsert:    "insert",
	KeyDelete:    "delete",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pageup",
	KeyPageDown:  "pagedown",
	KeyEscape:    "escape",
}

// String returns the canonical name of the key
func (k NamedKey) String() string {
	if name, ok := canonicalKeyNames[k]; ok {
		return name
	}
	return ""
}

// KeySpec is either a named key or a single literal character
type KeySpec struct {
	Named NamedKey
	Char  rune
}

// IsNamed reports whether the spec holds a named key
func (k KeySpec) IsNamed() bool {
	return k.Named != NoKey
}

// String renders the key as a script token
func (k KeySpec) String() string {
	if k.IsNamed() {
		return k.Named.String()
	}
	return string(k.Char)
}

// ResolveKey turns a token into a KeySpec. Known names resolve to their
// logical key; anything else resolves to the token's first character.
// ok is false only for an empty token.
func ResolveKey(token string) (KeySpec, bool) {
	if token == "" {
		return KeySpec{}, false
	}
	if named, ok := keyNames[token]; ok {
		return KeySpec{Named: named}, true
	}
	r, _ := utf8.DecodeRuneInString(token)
	return KeySpec{Char: r}, true
}

// KeyNames returns all accepted key name tokens, sorted
func KeyNames() []string {
	names := make([]string, 0, len(keyNames))
	for name := range keyNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ButtonSpec is a mouse button
type ButtonSpec int

const (
	ButtonLeft ButtonSpec = iota + 1
	ButtonRight
	ButtonMiddle
)

var buttonNames = map[string]ButtonSpec{
	"left":   ButtonLeft,
	"right":  ButtonRight,
	"middle": ButtonMiddle,
}

// String returns the script token for the button
func (b ButtonSpec) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonMiddle:
		return "middle"
	default:
		return "unknown"
	}
}

// ResolveButton turns a token into a ButtonSpec
func ResolveButton(token string) (ButtonSpec, bool) {
	b, ok := buttonNames[token]
	return b, ok
}

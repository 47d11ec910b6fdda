// ============================================================================
// scripter - Input Automation Scripts
// ============================================================================
//
// Package:     parser
// Description: Line tokenizer
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package parser

import "strings"

// Tokenize lowercases a line and splits it on runs of Unicode whitespace.
// A blank line yields an empty slice. There is no quoting or escaping, so
// a trailing carriage return is dropped like any other whitespace.
func Tokenize(line string) []string {
	fields := strings.Fields(strings.ToLower(line))
	if fields == nil {
		return []string{}
	}
	return fields
}

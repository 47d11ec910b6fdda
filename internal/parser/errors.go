// ============================================================================
// scripter - Input Automation Scripts
// ============================================================================
//
// Package:     parser
// Description: Syntax error reporting
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package parser

import "fmt"

// SyntaxError is a line that does not match the grammar
type SyntaxError struct {
	// Line is the 1-based line number, 0 when parsing bare tokens
	Line int
	// Text is the full original line
	Text   string
	Reason string
}

func (se *SyntaxError) Error() string {
	if se.Line == 0 {
		return fmt.Sprintf("syntax error: %s (in %q)", se.Reason, se.Text)
	}
	return fmt.Sprintf("syntax error at line %d: %s (in %q)", se.Line, se.Reason, se.Text)
}

func syntaxErrorf(format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{Reason: fmt.Sprintf(format, args...)}
}

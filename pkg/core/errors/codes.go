// ============================================================================
// scripter - Input Automation Scripts
// ============================================================================
//
// Package:     errors
// Description: Error codes and severity levels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package errors

// Code represents a structured error code for categorizing errors
type Code string

const (
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"

	// Script handling
	CodeScriptUnreadable Code = "SCRIPT_UNREADABLE"
	CodeScriptSyntax     Code = "SCRIPT_SYNTAX"

	// Input backend
	CodeBackendUnavailable Code = "BACKEND_UNAVAILABLE"
	CodeInputRejected      Code = "INPUT_REJECTED"

	// Configuration and persistence
	CodeConfigError  Code = "CONFIG_ERROR"
	CodeHistoryError Code = "HISTORY_ERROR"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeScriptUnreadable, CodeScriptSyntax:
		return "script"
	case CodeBackendUnavailable, CodeInputRejected:
		return "input"
	case CodeConfigError:
		return "configuration"
	case CodeHistoryError:
		return "history"
	default:
		return "generic"
	}
}

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a problem that does not affect the run
	SeverityLow Severity = iota

	// SeverityMedium is the default for uncategorized errors
	SeverityMedium

	// SeverityHigh aborts the current run
	SeverityHigh

	// SeverityCritical means the tool cannot operate at all
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// SeverityFromCode determines the default severity for a code
func SeverityFromCode(code Code) Severity {
	switch code {
	case CodeBackendUnavailable, CodeInternal:
		return SeverityCritical
	case CodeScriptSyntax, CodeScriptUnreadable, CodeInputRejected, CodeConfigError:
		return SeverityHigh
	case CodeHistoryError:
		return SeverityLow
	default:
		return SeverityMedium
	}
}

// ============================================================================
// scripter - Input Automation Scripts
// ============================================================================
//
// Package:     tui
// Description: Shared terminal styles for CLI output and the countdown
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	ColorPrimary   = lipgloss.Color("#7C3AED")
	ColorSecondary = lipgloss.Color("#10B981")
	ColorAccent    = lipgloss.Color("#F59E0B")
	ColorError     = lipgloss.Color("#EF4444")
	ColorMuted     = lipgloss.Color("#6B7280")
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 2)

	LineNumberStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Width(5).
			Align(lipgloss.Right)

	VerbStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	StatusOKStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ColorError)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// RenderTitle renders a heading
func RenderTitle(title string) string {
	return TitleStyle.Render(title)
}

// RenderError renders an error line
func RenderError(err string) string {
	return StatusErrorStyle.Render("error: " + err)
}

// RenderOK renders a success line
func RenderOK(msg string) string {
	return StatusOKStyle.Render(msg)
}

// RenderHelp renders a hint line
func RenderHelp(help string) string {
	return HelpStyle.Render(help)
}

// RenderStatus renders a run status with its color
func RenderStatus(status string, ok bool) string {
	if ok {
		return StatusOKStyle.Render(status)
	}
	return StatusErrorStyle.Render(status)
}

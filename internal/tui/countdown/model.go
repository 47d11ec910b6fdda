// ============================================================================
// scripter - Input Automation Scripts
// ============================================================================
//
// Package:     countdown
// Description: Bubbletea countdown shown before playback starts
// Created:     2026-10-16
// License:     MIT
// ============================================================================

// Package countdown shows a short countdown so the user can focus the
// target window before input is injected. The user may abort before the
// countdown ends; once playback starts the run is not interruptible.
package countdown

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/scripter/internal/tui"
)

const tickInterval = 100 * time.Millisecond

type tickMsg time.Time

// Model is the countdown bubbletea model
type Model struct {
	script    string
	remaining time.Duration
	spinner   spinner.Model
	done      bool
	aborted   bool
}

// New creates a countdown for script lasting d
func New(script string, d time.Duration) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(tui.ColorPrimary)

	return Model{
		script:    script,
		remaining: d,
		spinner:   sp,
	}
}

// Init starts the spinner and the countdown ticker
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tick())
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.aborted = true
			return m, tea.Quit
		case "enter", " ":
			m.remaining = 0
			m.done = true
			return m, tea.Quit
		}
		return m, nil

	case tickMsg:
		m.remaining -= tickInterval
		if m.remaining <= 0 {
			m.remaining = 0
			m.done = true
			return m, tea.Quit
		}
		return m, tick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the countdown
func (m Model) View() string {
	if m.aborted {
		return tui.RenderError("aborted before playback") + "\n"
	}
	if m.done {
		return tui.RenderOK("starting "+m.script) + "\n"
	}

	secs := (m.remaining + time.Second - 1) / time.Second
	line := fmt.Sprintf("%s Starting %s in %s",
		m.spinner.View(),
		tui.TitleStyle.Render(m.script),
		tui.VerbStyle.Render(fmt.Sprintf("%ds", secs)),
	)
	help := tui.RenderHelp("focus the target window · enter to start now · q to abort")
	return tui.BoxStyle.Render(line+"\n"+help) + "\n"
}

// Aborted reports whether the user aborted
func (m Model) Aborted() bool {
	return m.aborted
}

// Done reports whether the countdown reached zero
func (m Model) Done() bool {
	return m.done
}

// Run shows the countdown on out and blocks until it ends. It returns
// false when the user aborted.
func Run(script string, d time.Duration, in io.Reader, out io.Writer) (bool, error) {
	if d <= 0 {
		return true, nil
	}

	p := tea.NewProgram(New(script, d), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := final.(Model)
	if !ok {
		return false, fmt.Errorf("unexpected model type %T", final)
	}
	return !m.Aborted(), nil
}

package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// initLogViewport initializes the log viewport.
func (m *Model) initLogViewport() {
	m.logViewport = viewport.New(m.width-2, max(m.height-5, 1))
	m.logViewport.Style = lipgloss.NewStyle()
}

// updateLogViewport re-renders the picker log and keeps the newest line in view.
func (m *Model) updateLogViewport() {
	if !m.ready {
		return
	}

	// Ensure viewport has focus background
	m.logViewport.Style = lipgloss.NewStyle().Background(lipgloss.Color(m.theme.FocusBg))
	m.logViewport.SetContent(m.renderLogContent())
	m.logViewport.GotoBottom()
}

// renderLogContent colors each line by what it reports.
func (m Model) renderLogContent() string {
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
	bg := NewBgStyle(m.theme.FocusBg)

	if len(m.logLines) == 0 {
		msg := "No log entries"
		if m.logFile == "" {
			msg = "Logging is disabled"
		}
		return bg.Render(msg, styles.MutedText)
	}

	lines := make([]string, 0, len(m.logLines))
	for _, line := range m.logLines {
		lines = append(lines, bg.Render(line, m.logLineStyle(line, styles)))
	}
	return strings.Join(lines, "\n")
}

func (m Model) logLineStyle(line string, styles Styles) lipgloss.Style {
	lower := strings.ToLower(line)
	switch {
	case strings.Contains(lower, "failed"), strings.Contains(lower, "error"):
		return styles.DangerText
	case strings.Contains(lower, "succeeded"):
		return styles.SuccessText
	case strings.Contains(lower, "send:"):
		return styles.InfoText
	default:
		return styles.Text
	}
}

// handleLogKey scrolls the log view.
func (m Model) handleLogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Top):
		m.logViewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.logViewport.GotoBottom()
	case key.Matches(msg, m.keys.Down):
		m.logViewport.ScrollDown(1)
	case key.Matches(msg, m.keys.Up):
		m.logViewport.ScrollUp(1)
	case key.Matches(msg, m.keys.HalfPageDown):
		m.logViewport.HalfPageDown()
	case key.Matches(msg, m.keys.HalfPageUp):
		m.logViewport.HalfPageUp()
	}
	return m, nil
}

// renderLog renders the log view with the file path below the box.
func (m Model) renderLog() string {
	bg := NewBgStyle(m.theme.FocusBg)
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
	contentHeight := m.height - 3 // Account for header + cmdbar + status bar below

	title := "Picker Log"
	if n := len(m.logLines); n > 0 {
		title = "Picker Log (" + pluralize(n, "line", "lines") + ")"
	}
	box := m.renderTitledBox(title, m.logViewport.View(), m.width, contentHeight, true)

	path := m.logFile
	if path == "" {
		path = "(none)"
	}
	status := bg.Render("file", styles.FaintText) + bg.Space() +
		bg.Render(truncateMiddle(path, max(m.width-8, 8)), styles.MutedText)
	return box + "\n" + bg.FillLine(status, m.width)
}

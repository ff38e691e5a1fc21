package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/picker/internal/state"
)

func (m *Model) initOutputViewport() {
	m.outputViewport = viewport.New(m.width-2, max(m.height-4, 1))
	m.outputViewport.MouseWheelEnabled = true
}

// resizeViewports fits both full-screen viewports to the terminal.
func (m *Model) resizeViewports() {
	// Header, command bar and box borders
	h := max(m.height-4, 1)
	w := max(m.width-2, 1)
	m.outputViewport.Width, m.outputViewport.Height = w, h
	m.logViewport.Width, m.logViewport.Height = w, max(h-1, 1)
	m.updateOutputViewport()
	m.updateLogViewport()
}

// updateOutputViewport refreshes the output view from the session buffer.
func (m *Model) updateOutputViewport() {
	if !m.ready {
		return
	}
	m.outputViewport.Style = lipgloss.NewStyle().Background(lipgloss.Color(m.theme.FocusBg))

	text := m.session.Output.String()
	if text == "" {
		text = m.theme.Styles().MutedText.Render("No mailer output yet")
	}
	m.outputViewport.SetContent(strings.TrimRight(text, "\n"))
	if m.outputFollow {
		m.outputViewport.GotoBottom()
	}
}

// handleOutputKey scrolls the mailer output.
func (m Model) handleOutputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ToggleFollow):
		m.outputFollow = !m.outputFollow
		if m.outputFollow {
			m.outputViewport.GotoBottom()
		}
		return m, nil
	case key.Matches(msg, m.keys.Top):
		m.outputFollow = false
		m.outputViewport.GotoTop()
		return m, nil
	case key.Matches(msg, m.keys.Bottom):
		m.outputFollow = true
		m.outputViewport.GotoBottom()
		return m, nil
	case key.Matches(msg, m.keys.HalfPageUp):
		m.outputFollow = false
		m.outputViewport.HalfPageUp()
		return m, nil
	case key.Matches(msg, m.keys.HalfPageDown):
		m.outputViewport.HalfPageDown()
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.outputFollow = false
		m.outputViewport.ScrollUp(1)
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.outputViewport.ScrollDown(1)
		return m, nil
	}
	return m, nil
}

// renderOutput renders the full-screen mailer output view.
func (m Model) renderOutput() string {
	contentHeight := m.height - 2 // Account for header + cmdbar
	title := "Mailer Output"
	if !m.outputFollow {
		title += " (paused)"
	}
	return m.renderTitledBox(title, m.outputViewport.View(), m.width, contentHeight, true)
}

// renderMailerContent renders the mailer pane: state, outcome banner,
// optional command preview and the tail of the output.
func (m Model) renderMailerContent(width, height int, bgColor string) string {
	styles := m.theme.Styles().WithBackground(bgColor)
	bg := NewBgStyle(bgColor)

	var lines []string
	switch {
	case m.session.Phase == state.Sending:
		lines = append(lines,
			bg.Render(m.spinner.View(), styles.InfoText)+bg.Space()+bg.Render("Sending...", styles.InfoText.Bold(true)))
	case m.session.BannerVisible():
		lines = append(lines, m.renderBanner(width, bg, styles))
	default:
		status := "Ready"
		if m.session.HasOutcome && !m.session.Outcome.Success {
			status = "Ready to retry"
		}
		lines = append(lines,
			m.theme.Styles().StatusStyle("idle").Render("IDLE")+bg.Space()+bg.Render(status, styles.MutedText))
	}

	if m.prefs.ShowMailerFields {
		preview := m.session.Arguments().String(true)
		lines = append(lines, "")
		for _, l := range wrapText(preview, max(width, 10), 3) {
			lines = append(lines, bg.Render(l, styles.FaintText))
		}
	}

	lines = append(lines, "")
	rest := max(height-len(lines), 0)
	for _, l := range m.session.Output.Tail(rest) {
		lines = append(lines, bg.Render(truncate(l, width), styles.Text))
	}
	return strings.Join(lines, "\n")
}

// renderBanner shows the send outcome in the success or failure color.
func (m Model) renderBanner(width int, bg BgStyle, styles Styles) string {
	out := m.session.Outcome
	badge := m.theme.Styles().StatusStyle("failure").Render("FAILED")
	msgStyle := styles.DangerText
	if out.Success {
		badge = m.theme.Styles().StatusStyle("success").Render("SENT")
		msgStyle = styles.SuccessText
	}
	return badge + bg.Space() + bg.Render(truncate(out.Message, max(width-lipgloss.Width(badge)-1, 1)), msgStyle)
}

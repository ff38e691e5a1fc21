package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// renderDashboard renders the main view: picker and queue on top, form and
// mailer below.
func (m Model) renderDashboard() string {
	contentHeight := m.height - 2 // Account for header + cmdbar

	// Extra wide (>= 160): 35% left column, default 45%
	leftWidth := m.width * 45 / 100
	if m.width >= LayoutExtraWideWidth {
		leftWidth = m.width * 35 / 100
	}
	rightWidth := m.width - leftWidth

	topHeight := max(PickerMinHeight, contentHeight-FormHeight)
	bottomHeight := max(contentHeight-topHeight, 0)

	// === Picker Pane ===
	pickerFocused := m.focusedPane == PanePicker
	pickerBg := m.paneBg(pickerFocused)
	pickerPane := m.renderTitledBox("Date & Time", m.renderPickerContent(leftWidth-2, pickerBg, pickerFocused), leftWidth, topHeight, pickerFocused)

	// === Queue Pane ===
	queueFocused := m.focusedPane == PaneQueue
	queueBg := m.paneBg(queueFocused)
	queuePane := m.renderTitledBox(m.queueTitle(), m.renderQueueContent(rightWidth-2, topHeight-2, queueBg, queueFocused), rightWidth, topHeight, queueFocused)

	top := lipgloss.JoinHorizontal(lipgloss.Top, pickerPane, queuePane)
	if bottomHeight < 3 {
		return top
	}

	// === Form Pane ===
	formFocused := m.focusedPane == PaneForm
	formTitle := "Client"
	if m.session.Local {
		formTitle = "Client (salon)"
	}
	formPane := m.renderTitledBox(formTitle, m.renderFormContent(leftWidth-2, m.paneBg(formFocused)), leftWidth, bottomHeight, formFocused)

	// === Mailer Pane ===
	mailerFocused := m.focusedPane == PaneMailer
	mailerPane := m.renderTitledBox("Mailer", m.renderMailerContent(rightWidth-4, bottomHeight-2, m.paneBg(mailerFocused)), rightWidth, bottomHeight, mailerFocused)

	bottom := lipgloss.JoinHorizontal(lipgloss.Top, formPane, mailerPane)
	return lipgloss.JoinVertical(lipgloss.Left, top, bottom)
}

// paneBg returns the pane background for the focus state.
func (m Model) paneBg(focused bool) string {
	if focused {
		return m.theme.FocusBg
	}
	return m.theme.SurfaceAlt
}

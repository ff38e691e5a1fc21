package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Modal is the interface for modal dialogs.
// The Update method returns the updated modal, a command, and a bool indicating if the modal should close.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool)
	View(theme Theme, width, height int) string
}

// confirmAction names what a confirmed modal does.
type confirmAction int

const (
	confirmClearQueue confirmAction = iota
)

type confirmedMsg struct {
	action confirmAction
}

// confirmModal asks a yes/no question.
type confirmModal struct {
	title    string
	question string
	action   confirmAction
}

func newConfirmModal(title, question string, action confirmAction) confirmModal {
	return confirmModal{title: title, question: question, action: action}
}

// Update confirms on y/enter and cancels on anything else.
func (c confirmModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil, false
	}
	if key.Matches(k, keys.Confirm) || k.String() == "y" {
		action := c.action
		return c, func() tea.Msg { return confirmedMsg{action: action} }, true
	}
	return c, nil, true
}

func (c confirmModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(c.title))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Render(c.question))
	b.WriteString("\n\n")
	b.WriteString(styles.AccentText.Render("y/enter"))
	b.WriteString(styles.MutedText.Render(" confirm   "))
	b.WriteString(styles.AccentText.Render("any key"))
	b.WriteString(styles.MutedText.Render(" cancel"))

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Warning)).
		Padding(1, 2).
		Width(40)

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}

// handleModalKey forwards keys to the open modal.
func (m Model) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	next, cmd, closed := m.modal.Update(msg, m.keys)
	if closed {
		m.modal = nil
	} else {
		m.modal = next
	}
	return m, cmd
}

// applyConfirmed runs a confirmed modal action.
func (m Model) applyConfirmed(msg confirmedMsg) (tea.Model, tea.Cmd) {
	switch msg.action {
	case confirmClearQueue:
		m.session = m.session.ClearQueue()
		m.selectedRow = 0
		m.setNotice("Queue cleared")
	}
	return m, nil
}

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/picker/internal/appointment"
)

// handleQueueKey processes keyboard input for the queue pane.
func (m Model) handleQueueKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	count := m.session.Queue.Len()

	switch {
	case key.Matches(msg, m.keys.Down):
		if m.selectedRow < count-1 {
			m.selectedRow++
		}
	case key.Matches(msg, m.keys.Up):
		if m.selectedRow > 0 {
			m.selectedRow--
		}
	case key.Matches(msg, m.keys.Top):
		m.selectedRow = 0
	case key.Matches(msg, m.keys.Bottom):
		m.selectedRow = max(count-1, 0)
	case key.Matches(msg, m.keys.Delete):
		next, err := m.session.RemoveAppointment(m.selectedRow)
		if err != nil {
			return m, nil
		}
		m.session = next
		m.clampQueueRow()
	case key.Matches(msg, m.keys.ClearQueue):
		if count == 0 {
			return m, nil
		}
		m.modal = newConfirmModal(
			"Clear queue",
			fmt.Sprintf("Remove all %s?", pluralize(count, "appointment", "appointments")),
			confirmClearQueue,
		)
	case key.Matches(msg, m.keys.Add):
		return m.addAppointment()
	}

	return m, nil
}

func (m *Model) clampQueueRow() {
	if n := m.session.Queue.Len(); m.selectedRow >= n {
		m.selectedRow = max(n-1, 0)
	}
}

// renderQueueContent renders the queued appointments as styled rows.
func (m Model) renderQueueContent(width, height int, bgColor string, focused bool) string {
	items := m.session.Queue.Items()
	if len(items) == 0 {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.theme.Muted)).
			Background(lipgloss.Color(bgColor)).
			Render("No appointments queued")
	}

	// Keep the selected row visible
	start := 0
	if height > 0 && m.selectedRow >= height {
		start = m.selectedRow - height + 1
	}

	var lines []string
	for i := start; i < len(items) && (height <= 0 || len(lines) < height); i++ {
		selected := focused && i == m.selectedRow
		rowBg := bgColor
		if selected {
			rowBg = m.theme.SelectionBg
		}
		content := m.formatQueueRowContent(i, items[i], width, rowBg, selected)
		lines = append(lines, lipgloss.NewStyle().
			Background(lipgloss.Color(rowBg)).
			Width(width).
			Render(content))
	}

	return strings.Join(lines, "\n")
}

// formatQueueRowContent formats a queue row with inline colors.
// Format: "#N Day DD/MM/YYYY HH:MM · Street Number, Location"
// When selected is true, uses SelectionText color for all text to ensure contrast.
func (m Model) formatQueueRowContent(index int, rec appointment.Record, width int, bgColor string, selected bool) string {
	bg := NewBgStyle(bgColor)

	idStr := fmt.Sprintf("#%d", index+1)
	when := fmt.Sprintf("%s %s %s", shortDay(rec.Day), rec.Date, rec.Time)
	where := rec.AddressLine()
	if where == "" {
		where = "no address"
	}
	separatorLen := 3 // " · "
	whereWidth := max(width-len(idStr)-lipgloss.Width(when)-separatorLen-2, 6)

	var idStyle, whenStyle, sepStyle, whereStyle lipgloss.Style
	if selected {
		selText := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.SelectionText))
		idStyle = selText
		whenStyle = selText
		sepStyle = selText
		whereStyle = selText
	} else {
		styles := m.theme.Styles()
		idStyle = styles.MutedText
		whenStyle = styles.Text
		sepStyle = styles.FaintText
		whereStyle = styles.MutedText
	}

	return bg.Render(idStr, idStyle) + bg.Space() +
		bg.Render(when, whenStyle) +
		bg.Render(" · ", sepStyle) +
		bg.Render(truncate(where, whereWidth), whereStyle)
}

// renderTitledBox renders content in a box with the title embedded in the top border.
// Frame style: ┌─── Title ───┐
// When focused is true, uses BorderFocus color and FocusBg background.
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	var borderColorStr, bgColorStr string
	if focused {
		borderColorStr = m.theme.BorderFocus
		bgColorStr = m.theme.FocusBg
	} else {
		borderColorStr = m.theme.Border
		bgColorStr = m.theme.SurfaceAlt
	}
	bg := NewBgStyle(bgColorStr)
	borderColor := lipgloss.Color(borderColorStr)
	bgColor := lipgloss.Color(bgColorStr)
	borderStyle := lipgloss.NewStyle().Foreground(borderColor)
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	// Build the top border with embedded title
	innerWidth := max(width-2, 0) // Account for left and right border chars
	title = truncate(title, max(innerWidth-4, 0))
	titleLen := lipgloss.Width(title)
	leftPad := max((innerWidth-titleLen-2)/2, 0) // -2 for spaces around title
	rightPad := max(innerWidth-titleLen-2-leftPad, 0)

	topBorder := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)

	bottomBorder := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Render("┘", borderStyle)

	contentStyle := lipgloss.NewStyle().Width(innerWidth).MaxWidth(innerWidth).Background(bgColor)

	// Pad or truncate content lines to fill the box
	contentLines := strings.Split(content, "\n")
	boxHeight := height - 2 // -2 for top and bottom borders

	var paddedLines []string
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		paddedLines = append(paddedLines,
			bg.Render("│", borderStyle)+
				contentStyle.Render(line)+
				bg.Render("│", borderStyle))
	}

	return topBorder + "\n" + strings.Join(paddedLines, "\n") + "\n" + bottomBorder
}

// queueTitle returns the queue pane title with the appointment count.
func (m Model) queueTitle() string {
	return fmt.Sprintf("Queue (%d)", m.session.Queue.Len())
}

package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/picker/internal/appointment"
)

// Picker columns, left to right.
const (
	columnYear = iota
	columnMonth
	columnDay
	columnHour
	columnMinute
	columnCount
)

// handlePickerKey processes keys for the date/time picker pane.
func (m Model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sel := m.session.Selection

	switch {
	case key.Matches(msg, m.keys.Left):
		m.pickerColumn = (m.pickerColumn + columnCount - 1) % columnCount
	case key.Matches(msg, m.keys.Right):
		m.pickerColumn = (m.pickerColumn + 1) % columnCount
	case key.Matches(msg, m.keys.Up):
		m.session = m.session.WithSelection(stepColumn(sel, m.pickerColumn, 1))
	case key.Matches(msg, m.keys.Down):
		m.session = m.session.WithSelection(stepColumn(sel, m.pickerColumn, -1))
	case key.Matches(msg, m.keys.NextMinute):
		m.session = m.session.WithSelection(sel.NextCommonMinute())
	case key.Matches(msg, m.keys.PrevYear):
		m.session = m.session.WithSelection(sel.StepYear(-1))
	case key.Matches(msg, m.keys.NextYear):
		m.session = m.session.WithSelection(sel.StepYear(1))
	case key.Matches(msg, m.keys.Add):
		return m.addAppointment()
	}
	return m, nil
}

// addAppointment queues the current selection.
func (m Model) addAppointment() (tea.Model, tea.Cmd) {
	next, added := m.session.AddAppointment(m.factory)
	m.session = next
	sel := m.session.Selection
	if !added {
		m.setNotice(fmt.Sprintf("%s %s is already queued", sel.DateString(), sel.TimeString()))
		return m, nil
	}
	m.selectedRow = m.session.Queue.Len() - 1
	m.setNotice(fmt.Sprintf("Queued %s %s", sel.DateString(), sel.TimeString()))
	return m, nil
}

func stepColumn(sel appointment.Selection, column, delta int) appointment.Selection {
	switch column {
	case columnYear:
		return sel.StepYear(delta)
	case columnMonth:
		return sel.StepMonth(delta)
	case columnDay:
		return sel.StepDay(delta)
	case columnHour:
		return sel.StepHour(delta)
	default:
		return sel.StepMinute(delta)
	}
}

// renderPickerContent renders the month grid, the time and the formatted value.
func (m Model) renderPickerContent(width int, bgColor string, focused bool) string {
	styles := m.theme.Styles().WithBackground(bgColor)
	bg := NewBgStyle(bgColor)
	sel := m.session.Selection
	locale := m.factory.Locale
	if locale.Code == "" {
		locale = appointment.LookupLocale(appointment.DefaultLocale)
	}

	field := func(column int, text string) string {
		if focused && column == m.pickerColumn {
			return m.selectedText(text)
		}
		if column == m.pickerColumn {
			return bg.Render(text, styles.AccentText.Bold(true))
		}
		return bg.Render(text, styles.Text)
	}

	var lines []string

	// Month and year
	lines = append(lines,
		field(columnMonth, locale.Month(sel.Month))+bg.Space()+field(columnYear, fmt.Sprintf("%04d", sel.Year)))
	lines = append(lines, "")

	// Weekday header, Monday first
	var head []string
	for i := range 7 {
		name := []rune(locale.Weekday(time.Weekday((i + 1) % 7)))
		head = append(head, bg.Render(fmt.Sprintf("%3s", string(name[:min(2, len(name))])), styles.WeekdayHead))
	}
	lines = append(lines, strings.Join(head, bg.Space()))

	// Day grid
	first := time.Date(sel.Year, time.Month(sel.Month), 1, 0, 0, 0, 0, time.UTC).Weekday()
	offset := (int(first) + 6) % 7
	cells := make([]string, 0, 7)
	for range offset {
		cells = append(cells, bg.Spaces(3))
	}
	for _, day := range sel.Days() {
		label := fmt.Sprintf("%3d", day)
		switch {
		case day == sel.Day && m.pickerColumn == columnDay && focused:
			cells = append(cells, m.selectedText(label))
		case day == sel.Day:
			cells = append(cells, bg.Render(label, styles.PickedDay))
		case m.session.Queue.Contains(appointment.Key{Date: fmt.Sprintf("%02d/%02d/%04d", day, sel.Month, sel.Year), Time: sel.TimeString()}):
			cells = append(cells, bg.Render(label, styles.QueuedDay))
		case (offset+day-1)%7 >= 5:
			cells = append(cells, bg.Render(label, styles.Weekend))
		default:
			cells = append(cells, bg.Render(label, styles.Day))
		}
		if len(cells) == 7 {
			lines = append(lines, strings.Join(cells, bg.Space()))
			cells = cells[:0]
		}
	}
	if len(cells) > 0 {
		lines = append(lines, strings.Join(cells, bg.Space()))
	}
	lines = append(lines, "")

	// Time
	weekday := locale.Weekday(sel.Time(time.UTC).Weekday())
	lines = append(lines,
		bg.Render("Time", styles.MutedText)+bg.Spaces(2)+
			field(columnHour, fmt.Sprintf("%02d", sel.Hour))+bg.Sep(":")+field(columnMinute, fmt.Sprintf("%02d", sel.Minute))+
			bg.Spaces(2)+bg.Render(weekday, styles.MutedText))

	// Formatted value
	f := appointment.LookupFormat(m.prefs.Format)
	lines = append(lines,
		bg.Render("Copy", styles.MutedText)+bg.Spaces(2)+
			bg.Render(truncate(sel.Format(f, m.loc), max(width-6, 1)), styles.InfoText))

	return strings.Join(lines, "\n")
}

// selectedText renders text with the selection colors.
func (m Model) selectedText(text string) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.SelectionBg)).
		Foreground(lipgloss.Color(m.theme.SelectionText)).
		Bold(true).
		Render(text)
}

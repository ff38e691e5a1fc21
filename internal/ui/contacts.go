package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/picker/internal/contacts"
)

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "name or email"
	ti.Prompt = "/"
	ti.CharLimit = 64
	return ti
}

// handleContactsKey processes keys for the contacts view.
func (m Model) handleContactsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.session.VisibleContacts()

	switch {
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.contactSearch.SetValue(m.session.Search)
		m.contactSearch.CursorEnd()
		return m, m.contactSearch.Focus()
	case key.Matches(msg, m.keys.Down):
		if m.contactRow < len(visible)-1 {
			m.contactRow++
		}
	case key.Matches(msg, m.keys.Up):
		if m.contactRow > 0 {
			m.contactRow--
		}
	case key.Matches(msg, m.keys.Top):
		m.contactRow = 0
	case key.Matches(msg, m.keys.Bottom):
		m.contactRow = max(len(visible)-1, 0)
	case key.Matches(msg, m.keys.Confirm):
		if m.contactRow < len(visible) {
			m.pickContact(visible[m.contactRow])
		}
	case key.Matches(msg, m.keys.ClearContact):
		m.session = m.session.ClearContact()
		m.syncInputs()
		m.setNotice("Contact cleared")
	}
	return m, nil
}

// handleSearchInput edits the search query; the list filters as you type.
func (m Model) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.searching = false
		m.contactSearch.Blur()
		return m, nil
	case tea.KeyEsc:
		m.searching = false
		m.contactSearch.Blur()
		m.contactSearch.SetValue("")
		m.session = m.session.WithSearch("")
		m.clampContactRow()
		return m, nil
	}

	var cmd tea.Cmd
	m.contactSearch, cmd = m.contactSearch.Update(msg)
	m.session = m.session.WithSearch(m.contactSearch.Value())
	m.contactRow = 0
	return m, cmd
}

// pickContact fills the form from c and returns to the main view.
func (m *Model) pickContact(c contacts.Contact) {
	m.session = m.session.SelectContact(c)
	m.syncInputs()
	m.currentView = ViewMain
	m.focusPane(PaneForm)
	m.setNotice("Selected " + c.DisplayName())
}

func (m *Model) clampContactRow() {
	if n := len(m.session.VisibleContacts()); m.contactRow >= n {
		m.contactRow = max(n-1, 0)
	}
}

// renderContacts renders the contact list beside the selected contact's details.
func (m Model) renderContacts() string {
	contentHeight := m.height - 2 // Account for header + cmdbar

	listWidth := m.width * 40 / 100
	if m.width >= LayoutExtraWideWidth {
		listWidth = m.width * 30 / 100
	}
	detailWidth := m.width - listWidth

	visible := m.session.VisibleContacts()
	title := fmt.Sprintf("Contacts (%d)", len(m.session.Contacts))
	if m.session.Search != "" {
		title = fmt.Sprintf("Contacts (%d/%d)", len(visible), len(m.session.Contacts))
	}

	listBg := m.theme.FocusBg
	listContent := m.renderContactList(visible, listWidth-2, contentHeight-2, listBg)
	listPane := m.renderTitledBox(title, listContent, listWidth, contentHeight, true)

	var c *contacts.Contact
	if m.contactRow < len(visible) {
		c = &visible[m.contactRow]
	}
	detailPane := m.renderTitledBox("Details", m.renderContactDetail(c, detailWidth-4, m.theme.SurfaceAlt), detailWidth, contentHeight, false)

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

func (m Model) renderContactList(visible []contacts.Contact, width, height int, bgColor string) string {
	styles := m.theme.Styles().WithBackground(bgColor)
	bg := NewBgStyle(bgColor)

	var lines []string
	if m.searching || m.session.Search != "" {
		ti := m.contactSearch
		ti.Width = max(width-2, 4)
		ti.PromptStyle = styles.AccentText
		ti.TextStyle = styles.Text
		ti.PlaceholderStyle = styles.FaintText
		if !m.searching {
			ti.SetValue(m.session.Search)
		}
		lines = append(lines, ti.View(), "")
	}

	if len(visible) == 0 {
		msg := "No contacts"
		if m.session.Search != "" {
			msg = "No contacts match"
		}
		return strings.Join(append(lines, bg.Render(msg, styles.MutedText)), "\n")
	}

	rows := max(height-len(lines), 1)
	start := 0
	if m.contactRow >= rows {
		start = m.contactRow - rows + 1
	}
	for i := start; i < len(visible) && i < start+rows; i++ {
		c := visible[i]
		name := truncate(c.DisplayName(), max(width-2, 1))
		if i == m.contactRow {
			lines = append(lines, lipgloss.NewStyle().
				Background(lipgloss.Color(m.theme.SelectionBg)).
				Foreground(lipgloss.Color(m.theme.SelectionText)).
				Width(width).
				Render(name))
			continue
		}
		style := styles.Text
		if c.ID == m.session.Selected {
			style = styles.SuccessText
		}
		lines = append(lines, bg.Render(name, style))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderContactDetail(c *contacts.Contact, width int, bgColor string) string {
	styles := m.theme.Styles().WithBackground(bgColor)
	bg := NewBgStyle(bgColor)
	if c == nil {
		return bg.Render("Select a contact", styles.MutedText)
	}

	f := contacts.Fill(*c)
	row := func(label, value string) string {
		if value == "" {
			value = "-"
		}
		return bg.Render(padRight(label, 11), styles.MutedText) + bg.Space() +
			bg.Render(truncate(value, max(width-12, 1)), styles.Text)
	}

	lines := []string{
		bg.Render(c.DisplayName(), styles.AccentText.Bold(true)),
		"",
		row("Client", f.Client),
		row("Dog", f.Dog),
		row("Email", f.Email),
		row("Street", f.Street),
		row("Area code", f.AreaCode),
		row("Location", f.Location),
	}
	if len(c.Emails) > 1 {
		lines = append(lines, row("Other", strings.Join(c.Emails[1:], ", ")))
	}
	lines = append(lines, "", bg.Render("enter", styles.AccentText)+bg.Render(" fill the form", styles.FaintText))
	return strings.Join(lines, "\n")
}

package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/picker/internal/contacts"
)

// Form fields in display order.
const (
	inputClient = iota
	inputEmail
	inputDog
	inputStreet
	inputNumber
	inputAreaCode
	inputLocation
	inputCount
)

var inputLabels = [inputCount]string{
	"Client",
	"Email",
	"Dog",
	"Street",
	"Number",
	"Area code",
	"Location",
}

func newFormInputs() []textinput.Model {
	inputs := make([]textinput.Model, inputCount)
	for i := range inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = strings.ToLower(inputLabels[i])
		ti.CharLimit = 128
		inputs[i] = ti
	}
	return inputs
}

// handleFormKey edits the focused form field.
func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Tab):
		m.focusPane(PaneQueue)
		return m, nil
	case key.Matches(msg, m.keys.ShiftTab):
		m.focusPane(PanePicker)
		return m, nil
	case msg.Type == tea.KeyEsc:
		m.focusPane(PanePicker)
		return m, nil
	case msg.Type == tea.KeyCtrlS:
		return m.startSend()
	case msg.Type == tea.KeyUp:
		m.focusFormInput((m.focusInput + inputCount - 1) % inputCount)
		return m, nil
	case msg.Type == tea.KeyDown, msg.Type == tea.KeyEnter:
		m.focusFormInput((m.focusInput + 1) % inputCount)
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focusInput], cmd = m.inputs[m.focusInput].Update(msg)
	m.session = m.session.WithFields(m.formFields())
	return m, cmd
}

func (m *Model) focusFormInput(i int) {
	m.focusInput = i
	for j := range m.inputs {
		if j == i {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
}

func (m *Model) blurForm() {
	for j := range m.inputs {
		m.inputs[j].Blur()
	}
}

// formFields reads the form back into contact fields.
func (m Model) formFields() contacts.Fields {
	return contacts.Fields{
		Client:   m.inputs[inputClient].Value(),
		Email:    m.inputs[inputEmail].Value(),
		Dog:      m.inputs[inputDog].Value(),
		Street:   m.inputs[inputStreet].Value(),
		Number:   m.inputs[inputNumber].Value(),
		AreaCode: m.inputs[inputAreaCode].Value(),
		Location: m.inputs[inputLocation].Value(),
	}
}

// syncInputs copies the session fields into the form after the session
// changed them (contact picked, queue sent).
func (m *Model) syncInputs() {
	f := m.session.Fields
	values := [inputCount]string{f.Client, f.Email, f.Dog, f.Street, f.Number, f.AreaCode, f.Location}
	for i, v := range values {
		m.inputs[i].SetValue(v)
	}
}

// renderFormContent renders one labelled line per field plus the visit mode.
func (m Model) renderFormContent(width int, bgColor string) string {
	styles := m.theme.Styles().WithBackground(bgColor)
	bg := NewBgStyle(bgColor)
	labelWidth := 11
	valueWidth := max(width-labelWidth-3, 4)

	var lines []string
	for i := range m.inputs {
		ti := m.inputs[i]
		ti.Width = valueWidth
		ti.TextStyle = styles.Text
		ti.PlaceholderStyle = styles.FaintText
		ti.Cursor.Style = styles.AccentText

		labelStyle := styles.MutedText
		if m.focusedPane == PaneForm && i == m.focusInput {
			labelStyle = styles.AccentText.Bold(true)
		}
		label := bg.Render(padRight(inputLabels[i], labelWidth), labelStyle)

		marker := bg.Space()
		if i == inputEmail && ti.Value() != "" && !contacts.ValidEmail(ti.Value()) {
			marker = bg.Render("!", styles.DangerText)
		}
		lines = append(lines, label+marker+bg.Space()+ti.View())
	}

	mode := bg.Render("Home visit", styles.Text)
	if m.session.Local {
		mode = bg.Render("Salon: "+m.factory.LocalStreet+", "+m.factory.LocalLocation, styles.WarningText)
	}
	lines = append(lines, bg.Render(padRight("Visit", labelWidth), styles.MutedText)+bg.Spaces(2)+mode)

	return strings.Join(lines, "\n")
}

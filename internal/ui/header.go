package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/picker/internal/appointment"
	"github.com/five82/picker/internal/state"
)

// renderHeader renders the status bar with all information.
func (m Model) renderHeader() string {
	// Header uses Surface background
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Width(m.width).
		Render(m.buildStatusContent(styles, bg))
}

// buildStatusContent builds the status bar content string.
func (m Model) buildStatusContent(styles Styles, bg BgStyle) string {
	compact := m.width < LayoutCompactWidth

	var parts []string

	// Logo
	parts = append(parts, bg.Render("picker", styles.Logo))

	// Send phase
	parts = append(parts, m.phaseBadge())

	// Queue count
	parts = append(parts,
		bg.Render("Queue:", styles.MutedText)+bg.Space()+
			bg.Render(fmt.Sprintf("%d", m.session.Queue.Len()), styles.Text),
	)

	// Client
	client := strings.TrimSpace(m.session.Fields.Client)
	if client != "" {
		if dog := strings.TrimSpace(m.session.Fields.Dog); dog != "" && !compact {
			client += " / " + dog
		}
		maxClient := 40
		if compact {
			maxClient = 20
		}
		parts = append(parts,
			bg.Render("Client:", styles.MutedText)+bg.Space()+
				bg.Render(truncate(client, maxClient), styles.AccentText))
	}

	// Output format
	if !compact {
		f := appointment.LookupFormat(m.prefs.Format)
		parts = append(parts,
			bg.Render("Format:", styles.MutedText)+bg.Space()+bg.Render(f.Label, styles.FaintText))
	}

	// Transient notice
	if m.notice != "" {
		maxNotice := 80
		if compact {
			maxNotice = 40
		}
		style := styles.InfoText
		if m.noticeErr {
			style = styles.WarningText
			parts = append(parts,
				bg.Render("!", styles.WarningText.Bold(true))+bg.Space()+
					bg.Render(truncate(m.notice, maxNotice), style))
		} else {
			parts = append(parts, bg.Render(truncate(m.notice, maxNotice), style))
		}
	}

	return bg.Join(parts, "  ")
}

// phaseBadge renders the send phase as a colored badge.
func (m Model) phaseBadge() string {
	styles := m.theme.Styles()
	switch {
	case m.session.Phase == state.Sending:
		return styles.StatusStyle("sending").Render("SENDING")
	case m.session.BannerVisible() && m.session.Outcome.Success:
		return styles.StatusStyle("success").Render("SENT")
	case m.session.BannerVisible():
		return styles.StatusStyle("failure").Render("FAILED")
	default:
		return styles.StatusStyle("idle").Render("IDLE")
	}
}

// renderCommandBar renders the command hints bar.
func (m Model) renderCommandBar() string {
	// Command bar uses Surface background
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch m.currentView {
	case ViewContacts:
		if m.searching {
			commands = []cmd{
				{"enter", "Done"},
				{"esc", "Clear"},
			}
		} else {
			commands = []cmd{
				{"/", "Search"},
				{"j/k", "Navigate"},
				{"enter", "Use"},
				{"x", "Clear"},
				{"r", "Reload"},
				{"esc", "Back"},
				{"?", "More"},
			}
		}
	case ViewOutput:
		followLabel := "Pause"
		if !m.outputFollow {
			followLabel = "Follow"
		}
		commands = []cmd{
			{"Space", followLabel},
			{"j/k", "Scroll"},
			{"O", "Copy"},
			{"esc", "Back"},
			{"?", "More"},
		}
	case ViewLog:
		commands = []cmd{
			{"j/k", "Scroll"},
			{"r", "Refresh"},
			{"esc", "Back"},
			{"?", "More"},
		}
	default: // ViewMain
		switch m.focusedPane {
		case PaneForm:
			commands = []cmd{
				{"up/down", "Field"},
				{"ctrl+s", "Send"},
				{"esc", "Picker"},
				{"Tab", "Focus"},
			}
		case PaneQueue:
			commands = []cmd{
				{"j/k", "Navigate"},
				{"d", "Remove"},
				{"C", "Clear"},
				{"s", "Send"},
				{"Y", "Copy cmd"},
				{"Tab", "Focus"},
				{"?", "More"},
			}
		case PaneMailer:
			commands = []cmd{
				{"j/k", "Scroll"},
				{"s", "Send"},
				{"o", "Output"},
				{"M", "Preview"},
				{"Tab", "Focus"},
				{"?", "More"},
			}
		default:
			commands = []cmd{
				{"←/→", "Column"},
				{"j/k", "Change"},
				{"a", "Queue"},
				{"L", "Salon"},
				{"y", "Copy"},
				{"f", "Format"},
				{"c", "Contacts"},
				{"Tab", "Focus"},
				{"?", "More"},
			}
		}
	}

	colon := bg.Sep(":")
	sep := bg.Spaces(2)

	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	// Add theme indicator
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, sep))
}

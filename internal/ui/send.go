package ui

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/picker/internal/mailer"
	"github.com/five82/picker/internal/state"
)

// startSend moves the session to Sending and launches the mailer.
func (m Model) startSend() (tea.Model, tea.Cmd) {
	if m.sender == nil {
		m.setError("no mailer configured")
		return m, nil
	}
	next, args, err := m.session.BeginSend()
	if err != nil {
		m.setError(err.Error())
		return m, nil
	}
	m.session = next
	m.outputFollow = true
	m.updateOutputViewport()

	commandLine := m.sender.CommandLine(args)
	log.Printf("send: %d appointment(s): %s", m.session.Queue.Len(), commandLine)
	m.setNotice("Sending...")
	return m, tea.Batch(startSendCmd(m.sender, commandLine), m.spinner.Tick)
}

// handleMailerEvent appends output or, on the terminal event, settles the
// outcome and schedules the banner to expire.
func (m Model) handleMailerEvent(ev mailer.Event) (tea.Model, tea.Cmd) {
	if m.session.Phase != state.Sending {
		return m, nil
	}
	if !ev.Done {
		m.session = m.session.AppendOutput(ev.Chunk)
		m.updateOutputViewport()
		return m, waitForEvent(m.events)
	}

	m.events = nil
	m.session = m.session.CompleteSend(ev.Result)
	out := m.session.Outcome
	if out.Success {
		log.Printf("send succeeded: %s", out.Message)
		m.selectedRow = 0
		m.syncInputs()
		m.setNotice(out.Message)
	} else {
		log.Printf("send failed: %s", out.Message)
		m.setError(out.Message)
	}
	return m, bannerExpiryCmd(m.bannerFor, m.session.BannerSeq)
}

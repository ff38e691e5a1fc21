package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/picker/internal/clipboard"
	"github.com/five82/picker/internal/contacts"
	"github.com/five82/picker/internal/logtail"
	"github.com/five82/picker/internal/mailer"
)

// Messages

type contactsLoadedMsg struct {
	contacts []contacts.Contact
	err      error
}

type sendStartedMsg struct {
	events <-chan mailer.Event
}

type mailerEventMsg mailer.Event

type bannerExpiredMsg struct {
	seq int
}

type copiedMsg struct {
	label string
	text  string
	err   error
}

type logLinesMsg struct {
	lines []string
	err   error
}

// Commands

func loadContactsCmd(dir contacts.Directory) tea.Cmd {
	return func() tea.Msg {
		list, err := dir.FetchAll()
		return contactsLoadedMsg{contacts: list, err: err}
	}
}

// startSendCmd launches the mailer. The process runs on its own goroutines;
// only the returned channel crosses into the update loop.
func startSendCmd(s Sender, commandLine string) tea.Cmd {
	return func() tea.Msg {
		return sendStartedMsg{events: s.Stream(commandLine)}
	}
}

// waitForEvent delivers the next mailer event. It is re-issued after every
// chunk until the terminal event arrives.
func waitForEvent(events <-chan mailer.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return mailerEventMsg(mailer.Event{
				Done:   true,
				Result: mailer.Result{ExitCode: -1, Err: mailer.ErrLaunch},
			})
		}
		return mailerEventMsg(ev)
	}
}

func bannerExpiryCmd(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return bannerExpiredMsg{seq: seq}
	})
}

func copyCmd(cb clipboard.Clipboard, label, text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{label: label, text: text, err: cb.SetText(text)}
	}
}

func readLogCmd(path string) tea.Cmd {
	return func() tea.Msg {
		lines, err := logtail.Read(path, LogTailLines)
		return logLinesMsg{lines: lines, err: err}
	}
}

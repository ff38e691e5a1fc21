package ui

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/five82/picker/internal/appointment"
	"github.com/five82/picker/internal/clipboard"
	"github.com/five82/picker/internal/contacts"
	"github.com/five82/picker/internal/mailer"
	"github.com/five82/picker/internal/prefs"
	"github.com/five82/picker/internal/state"
)

type fakeSender struct {
	lines  []string
	events chan mailer.Event
}

func (f *fakeSender) CommandLine(args string) string {
	return "/opt/mailer " + args
}

func (f *fakeSender) Stream(commandLine string) <-chan mailer.Event {
	f.lines = append(f.lines, commandLine)
	return f.events
}

type testEnv struct {
	sender    *fakeSender
	clipboard *clipboard.Memory
	prefsPath string
}

func newTestModel(t *testing.T) (Model, *testEnv) {
	t.Helper()
	env := &testEnv{
		sender:    &fakeSender{},
		clipboard: &clipboard.Memory{},
		prefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
	}
	var n byte
	m := New(Options{
		Sender: env.sender,
		Factory: appointment.Factory{
			Locale:        appointment.LookupLocale("en"),
			LocalStreet:   "Prins Hendrikstraat",
			LocalLocation: "Alkmaar",
			NewID: func() uuid.UUID {
				n++
				return uuid.UUID{n}
			},
		},
		Clipboard:      env.clipboard,
		Prefs:          prefs.Default(),
		PrefsPath:      env.prefsPath,
		BannerDuration: time.Millisecond,
		Now:            func() time.Time { return time.Date(2025, 2, 1, 9, 30, 0, 0, time.UTC) },
		Location:       time.UTC,
	})
	m = update(t, m, tea.WindowSizeMsg{Width: 140, Height: 40})
	return m, env
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func updateCmd(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m = update(t, m, runes(string(r)))
	}
	return m
}

// drainSend feeds mailer events to the model until the send completes.
func drainSend(t *testing.T, m Model, events chan mailer.Event) Model {
	t.Helper()
	m, cmd := updateCmd(t, m, sendStartedMsg{events: events})
	for m.session.Phase == state.Sending {
		if cmd == nil {
			t.Fatalf("send stalled without a pending command")
		}
		m, cmd = updateCmd(t, m, cmd())
	}
	return m
}

func scripted(result mailer.Result, chunks ...string) chan mailer.Event {
	ch := make(chan mailer.Event, len(chunks)+1)
	for _, c := range chunks {
		ch <- mailer.Event{Chunk: mailer.Chunk{Stream: mailer.Stdout, Text: c}}
	}
	ch <- mailer.Event{Done: true, Result: result}
	close(ch)
	return ch
}

func TestAddAppointmentFromPicker(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, runes("a"))
	if got := m.session.Queue.Len(); got != 1 {
		t.Fatalf("queue length = %d, want 1", got)
	}
	rec, _ := m.session.Queue.At(0)
	if rec.Date != "01/02/2025" || rec.Time != "12:00" || rec.Day != "Saturday" {
		t.Fatalf("record = %+v, want 01/02/2025 12:00 Saturday", rec)
	}

	m = update(t, m, runes("a"))
	if got := m.session.Queue.Len(); got != 1 {
		t.Fatalf("duplicate slot queued: length = %d, want 1", got)
	}
	if !strings.Contains(m.notice, "already queued") {
		t.Fatalf("notice = %q, want duplicate notice", m.notice)
	}
}

func TestPickerStepsFocusedColumn(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, runes("k"))
	if got := m.session.Selection.Day; got != 2 {
		t.Fatalf("day = %d, want 2", got)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = update(t, m, runes("j"))
	if got := m.session.Selection.Hour; got != 11 {
		t.Fatalf("hour = %d, want 11", got)
	}

	m = update(t, m, runes("m"))
	if got := m.session.Selection.Minute; got != 15 {
		t.Fatalf("minute = %d, want 15", got)
	}

	m = update(t, m, runes("]"))
	if got := m.session.Selection.Year; got != 2026 {
		t.Fatalf("year = %d, want 2026", got)
	}
}

func TestLocalToggleUsesSalonAddress(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, runes("L"))
	m = update(t, m, runes("a"))
	rec, _ := m.session.Queue.At(0)
	if rec.Street != "Prins Hendrikstraat" || rec.Location != "Alkmaar" || rec.Number != "" {
		t.Fatalf("salon record = %+v", rec)
	}
}

func TestFormTypingUpdatesSession(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focusedPane != PaneForm {
		t.Fatalf("focused pane = %d, want form", m.focusedPane)
	}
	// "e" quits elsewhere; in the form it is text.
	m = typeText(t, m, "Jane")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = typeText(t, m, "jane@example.com")

	if got := m.session.Fields.Client; got != "Jane" {
		t.Fatalf("client = %q, want Jane", got)
	}
	if got := m.session.Fields.Email; got != "jane@example.com" {
		t.Fatalf("email = %q, want jane@example.com", got)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.focusedPane != PanePicker {
		t.Fatalf("esc from form: focused pane = %d, want picker", m.focusedPane)
	}
}

func TestSendSuccessClearsQueueAndContact(t *testing.T) {
	m, env := newTestModel(t)
	m = update(t, m, runes("a"))
	m.session = m.session.WithFields(contacts.Fields{Client: "Jane", Email: "jane@example.com", Dog: "Rex"})
	m.syncInputs()

	m, cmd := updateCmd(t, m, runes("s"))
	if cmd == nil || m.session.Phase != state.Sending {
		t.Fatalf("send did not start: phase = %s", m.session.Phase)
	}

	events := scripted(mailer.Result{Launched: true, ExitCode: 0},
		"HTTP Status Code: 200\n",
		`{"success": true, "message": "sent"}`+"\n",
	)
	env.sender.events = events
	m = drainSend(t, m, events)

	if !m.session.Outcome.Success || m.session.Outcome.Message != "sent" {
		t.Fatalf("outcome = %+v, want success 'sent'", m.session.Outcome)
	}
	if m.session.Queue.Len() != 0 {
		t.Fatalf("queue not cleared after success")
	}
	if m.inputs[inputClient].Value() != "" || m.session.Fields.Client != "" {
		t.Fatalf("contact fields not cleared after success")
	}
	if !m.session.BannerVisible() {
		t.Fatalf("banner not visible after completion")
	}
	if !strings.Contains(m.session.Output.String(), "HTTP Status Code: 200") {
		t.Fatalf("output = %q, want streamed chunks", m.session.Output.String())
	}

	m = update(t, m, bannerExpiredMsg{seq: m.session.BannerSeq})
	if m.session.Phase != state.Idle {
		t.Fatalf("phase after banner = %s, want idle", m.session.Phase)
	}
}

func TestSendFailureKeepsQueueForRetry(t *testing.T) {
	m, _ := newTestModel(t)
	m = update(t, m, runes("a"))
	m.session = m.session.WithFields(contacts.Fields{Client: "Jane"})

	m, _ = updateCmd(t, m, runes("s"))
	m = drainSend(t, m, scripted(mailer.Result{Launched: true, ExitCode: 2}, "boom\n"))

	if m.session.Outcome.Success {
		t.Fatalf("outcome = %+v, want failure", m.session.Outcome)
	}
	if m.session.Queue.Len() != 1 || m.session.Fields.Client != "Jane" {
		t.Fatalf("queue or contact lost after failure")
	}
	if !m.noticeErr || !strings.Contains(m.notice, "exited with code 2") {
		t.Fatalf("notice = %q, want failure message", m.notice)
	}

	// A stale timer from an earlier send must not hide the banner.
	m = update(t, m, bannerExpiredMsg{seq: m.session.BannerSeq - 1})
	if !m.session.BannerVisible() {
		t.Fatalf("stale banner expiry hid the current banner")
	}
}

func TestSecondSendIsRefusedWhileSending(t *testing.T) {
	m, env := newTestModel(t)

	m, _ = updateCmd(t, m, runes("s"))
	m, cmd := updateCmd(t, m, runes("s"))
	if cmd != nil {
		t.Fatalf("second send returned a command")
	}
	if m.session.Phase != state.Sending {
		t.Fatalf("phase = %s, want sending", m.session.Phase)
	}
	if !m.noticeErr || !strings.Contains(m.notice, state.ErrSendInFlight.Error()) {
		t.Fatalf("notice = %q, want in-flight refusal", m.notice)
	}
	if len(env.sender.lines) != 0 {
		t.Fatalf("sender launched before the start command ran")
	}
}

func TestEmptyQueueSendsEmptyList(t *testing.T) {
	m, env := newTestModel(t)

	_, cmd := updateCmd(t, m, runes("s"))
	if cmd == nil {
		t.Fatalf("send with empty queue returned no command")
	}
	// The batch runs the start command; invoke it directly.
	startSendCmd(env.sender, env.sender.CommandLine(m.session.Arguments().String(false)))()
	if len(env.sender.lines) != 1 || !strings.HasSuffix(env.sender.lines[0], "'[]'") {
		t.Fatalf("command lines = %q, want trailing '[]'", env.sender.lines)
	}
}

func TestLaunchFailureBecomesOutcome(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = updateCmd(t, m, runes("s"))

	res := mailer.Result{Launched: false, ExitCode: -1, Err: mailer.ErrLaunch}
	ch := make(chan mailer.Event, 2)
	ch <- mailer.Event{Chunk: mailer.Chunk{Stream: mailer.Stderr, Text: "launch failed: not found\n"}}
	ch <- mailer.Event{Done: true, Result: res}
	close(ch)
	m = drainSend(t, m, ch)

	if m.session.Outcome.Success || m.session.Outcome.HasExit {
		t.Fatalf("outcome = %+v, want failure without exit code", m.session.Outcome)
	}
}

func TestContactSearchAndPick(t *testing.T) {
	m, _ := newTestModel(t)
	list := []contacts.Contact{
		{ID: uuid.UUID{1}, GivenName: "Anna | Max", Emails: []string{"anna@example.com"}},
		{ID: uuid.UUID{2}, GivenName: "Zoë Bakker | Bello", Emails: []string{"zoe@example.com"},
			Addresses: []contacts.Address{{Street: "Dorpsstraat 4", City: "Heiloo", PostalCode: "1851AB"}}},
	}
	m = update(t, m, contactsLoadedMsg{contacts: list})
	if len(m.session.Contacts) != 2 {
		t.Fatalf("contacts = %d, want 2", len(m.session.Contacts))
	}

	m = update(t, m, runes("c"))
	if m.currentView != ViewContacts {
		t.Fatalf("view = %d, want contacts", m.currentView)
	}
	m = update(t, m, runes("/"))
	m = typeText(t, m, "zoe")
	if got := len(m.session.VisibleContacts()); got != 1 {
		t.Fatalf("visible contacts = %d, want 1", got)
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter}) // leave search
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter}) // pick

	if m.currentView != ViewMain || m.focusedPane != PaneForm {
		t.Fatalf("after pick: view = %d pane = %d, want main/form", m.currentView, m.focusedPane)
	}
	f := m.session.Fields
	if f.Client != "Zoë Bakker" || f.Dog != "Bello" || f.Email != "zoe@example.com" || f.Location != "Heiloo" {
		t.Fatalf("fields = %+v", f)
	}
	if m.inputs[inputDog].Value() != "Bello" {
		t.Fatalf("dog input = %q, want Bello", m.inputs[inputDog].Value())
	}
	if m.session.Selected != (uuid.UUID{2}) {
		t.Fatalf("selected = %s, want contact 2", m.session.Selected)
	}
}

func TestContactsLoadErrorIsReported(t *testing.T) {
	m, _ := newTestModel(t)
	m = update(t, m, contactsLoadedMsg{err: errors.New("no such file")})
	if !m.noticeErr || !strings.Contains(m.notice, "no such file") {
		t.Fatalf("notice = %q, want load error", m.notice)
	}
}

func TestCopyCommandUsesClipboard(t *testing.T) {
	m, env := newTestModel(t)
	m = update(t, m, runes("a"))

	m, cmd := updateCmd(t, m, runes("Y"))
	if cmd == nil {
		t.Fatalf("copy returned no command")
	}
	m = update(t, m, cmd())

	got := env.clipboard.Text()
	if !strings.HasPrefix(got, "mailer appointment --client") {
		t.Fatalf("clipboard = %q, want mailer command", got)
	}
	if !strings.HasPrefix(m.notice, "Copied command") {
		t.Fatalf("notice = %q, want copy notice", m.notice)
	}
}

func TestCopyDateUsesFormatPreset(t *testing.T) {
	m, env := newTestModel(t)

	m = update(t, m, runes("f")) // ymd -> dmy
	_, cmd := updateCmd(t, m, runes("y"))
	cmd()

	if got := env.clipboard.Text(); got != "01/02/2025 12:00" {
		t.Fatalf("clipboard = %q, want 01/02/2025 12:00", got)
	}
	p, err := prefs.Load(env.prefsPath)
	if err != nil {
		t.Fatalf("load prefs: %v", err)
	}
	if p.Format != "dmy" {
		t.Fatalf("saved format = %q, want dmy", p.Format)
	}
}

func TestClearQueueNeedsConfirmation(t *testing.T) {
	m, _ := newTestModel(t)
	m = update(t, m, runes("a"))
	m.focusPane(PaneQueue)

	m = update(t, m, runes("C"))
	if m.modal == nil {
		t.Fatalf("clear did not open a confirmation")
	}
	m = update(t, m, runes("n"))
	if m.modal != nil || m.session.Queue.Len() != 1 {
		t.Fatalf("cancel closed=%v queue=%d, want closed and kept", m.modal == nil, m.session.Queue.Len())
	}

	m = update(t, m, runes("C"))
	m, cmd := updateCmd(t, m, runes("y"))
	if cmd == nil {
		t.Fatalf("confirm returned no command")
	}
	m = update(t, m, cmd())
	if m.session.Queue.Len() != 0 {
		t.Fatalf("queue length = %d after confirmed clear, want 0", m.session.Queue.Len())
	}
}

func TestDeleteQueuedAppointment(t *testing.T) {
	m, _ := newTestModel(t)
	m = update(t, m, runes("a"))
	m = update(t, m, runes("k"))
	m = update(t, m, runes("a"))
	m.focusPane(PaneQueue)

	m = update(t, m, runes("d"))
	if got := m.session.Queue.Len(); got != 1 {
		t.Fatalf("queue length = %d, want 1", got)
	}
	if m.selectedRow != 0 {
		t.Fatalf("selected row = %d, want clamped to 0", m.selectedRow)
	}
}

func TestCycleThemeSavesPrefs(t *testing.T) {
	m, env := newTestModel(t)

	m = update(t, m, runes("T"))
	if m.theme.Name != "Kanagawa" {
		t.Fatalf("theme = %q, want Kanagawa", m.theme.Name)
	}
	p, err := prefs.Load(env.prefsPath)
	if err != nil {
		t.Fatalf("load prefs: %v", err)
	}
	if p.Theme != "Kanagawa" {
		t.Fatalf("saved theme = %q, want Kanagawa", p.Theme)
	}
}

func TestViewRendersEveryScreen(t *testing.T) {
	m, _ := newTestModel(t)
	m = update(t, m, runes("a"))

	if out := m.View(); !strings.Contains(out, "picker") || !strings.Contains(out, "Queue (1)") {
		t.Fatalf("main view missing header or queue title")
	}
	for _, key := range []string{"c", "o", "l"} {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
		m = update(t, m, runes(key))
		if out := m.View(); out == "" {
			t.Fatalf("view after %q is empty", key)
		}
	}

	m = update(t, m, runes("?"))
	if out := m.View(); !strings.Contains(out, "Keyboard Shortcuts") {
		t.Fatalf("help overlay missing title")
	}
	m = update(t, m, runes("x"))
	if m.showHelp {
		t.Fatalf("any key should close help")
	}

	// Tiny terminals must not panic.
	small := update(t, m, tea.WindowSizeMsg{Width: 20, Height: 6})
	_ = small.View()
}

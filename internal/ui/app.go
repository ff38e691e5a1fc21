package ui

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/picker/internal/appointment"
	"github.com/five82/picker/internal/clipboard"
	"github.com/five82/picker/internal/contacts"
	"github.com/five82/picker/internal/mailer"
	"github.com/five82/picker/internal/prefs"
	"github.com/five82/picker/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewMain View = iota
	ViewContacts
	ViewOutput
	ViewLog
)

// Pane identifies the focused pane on the main view.
type Pane int

const (
	PanePicker Pane = iota
	PaneForm
	PaneQueue
	PaneMailer
	paneCount
)

// Sender launches the mailer. mailer.Invoker satisfies it.
type Sender interface {
	CommandLine(args string) string
	Stream(commandLine string) <-chan mailer.Event
}

// Options configures the UI.
type Options struct {
	// Context stops the program when cancelled.
	Context context.Context

	Sender    Sender
	Factory   appointment.Factory
	Contacts  contacts.Directory
	Clipboard clipboard.Clipboard

	Prefs     prefs.Prefs
	PrefsPath string

	// BannerDuration is how long the send outcome stays on screen.
	BannerDuration time.Duration
	// LogFile is shown by the log view.
	LogFile string
	// ContactsError is reported in the header when the directory failed to open.
	ContactsError error

	Now      func() time.Time
	Location *time.Location
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	sender    Sender
	factory   appointment.Factory
	directory contacts.Directory
	clipboard clipboard.Clipboard
	prefs     prefs.Prefs
	prefsPath string
	bannerFor time.Duration
	logFile   string
	loc       *time.Location

	// UI state
	keys        keyMap
	help        help.Model
	theme       Theme
	currentView View
	width       int
	height      int
	ready       bool
	focusedPane Pane
	showHelp    bool
	modal       Modal
	notice      string
	noticeErr   bool

	// Data state
	session state.Session
	events  <-chan mailer.Event

	// Picker state
	pickerColumn int

	// Form state
	inputs     []textinput.Model
	focusInput int

	// Queue state
	selectedRow int

	// Contacts state
	contactSearch textinput.Model
	searching     bool
	contactRow    int

	// Output state
	outputViewport viewport.Model
	outputFollow   bool
	spinner        spinner.Model

	// Log state
	logViewport viewport.Model
	logLines    []string
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	bannerFor := opts.BannerDuration
	if bannerFor <= 0 {
		bannerFor = 3 * time.Second
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	cb := opts.Clipboard
	if cb == nil {
		cb = clipboard.System{}
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		sender:       opts.Sender,
		factory:      opts.Factory,
		directory:    opts.Contacts,
		clipboard:    cb,
		prefs:        opts.Prefs,
		prefsPath:    prefsPath,
		bannerFor:    bannerFor,
		logFile:      opts.LogFile,
		loc:          loc,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		theme:        GetTheme(opts.Prefs.Theme),
		currentView:  ViewMain,
		session:      state.New(appointment.NewSelection(now().In(loc))),
		pickerColumn: columnDay,
		outputFollow: true,
		spinner:      sp,
	}
	m.inputs = newFormInputs()
	m.contactSearch = newSearchInput()
	if opts.ContactsError != nil {
		m.setError("contacts: " + opts.ContactsError.Error())
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnterAltScreen}
	if m.directory != nil {
		cmds = append(cmds, loadContactsCmd(m.directory))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.initOutputViewport()
			m.initLogViewport()
		}
		m.ready = true
		m.resizeViewports()
		return m, nil

	case contactsLoadedMsg:
		if msg.err != nil {
			log.Printf("load contacts: %v", msg.err)
			m.setError("contacts: " + msg.err.Error())
			return m, nil
		}
		m.session = m.session.WithContacts(msg.contacts)
		m.clampContactRow()
		m.setNotice(pluralize(len(msg.contacts), "contact", "contacts") + " loaded")
		return m, nil

	case sendStartedMsg:
		m.events = msg.events
		return m, waitForEvent(m.events)

	case mailerEventMsg:
		return m.handleMailerEvent(mailer.Event(msg))

	case confirmedMsg:
		return m.applyConfirmed(msg)

	case bannerExpiredMsg:
		m.session = m.session.ExpireBanner(msg.seq)
		return m, nil

	case spinner.TickMsg:
		if m.session.Phase != state.Sending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case copiedMsg:
		if msg.err != nil {
			log.Printf("copy %s: %v", msg.label, msg.err)
			m.setError("copy failed: " + msg.err.Error())
			return m, nil
		}
		m.setNotice("Copied " + msg.label + ": " + clipboard.Summary(msg.text, 40))
		return m, nil

	case logLinesMsg:
		if msg.err != nil {
			m.setError("log: " + msg.err.Error())
		}
		m.logLines = msg.lines
		m.updateLogViewport()
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.modal != nil {
		return m.handleModalKey(msg)
	}

	// Text entry owns the keyboard apart from a few bindings.
	if m.typing() {
		return m.handleTextKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.prefs.Theme = m.theme.Name
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Send):
		return m.startSend()

	case key.Matches(msg, m.keys.CopyDate):
		f := appointment.LookupFormat(m.prefs.Format)
		return m, copyCmd(m.clipboard, "date", m.session.Selection.Format(f, m.loc))

	case key.Matches(msg, m.keys.CopyCommand):
		return m, copyCmd(m.clipboard, "command", m.session.Arguments().String(true))

	case key.Matches(msg, m.keys.CopyOutput):
		return m, copyCmd(m.clipboard, "output", m.session.Output.String())

	case key.Matches(msg, m.keys.CycleFormat):
		m.prefs.Format = appointment.NextFormat(m.prefs.Format)
		m.savePrefs()
		m.setNotice("Format: " + appointment.LookupFormat(m.prefs.Format).Label)
		return m, nil

	case key.Matches(msg, m.keys.TogglePreview):
		m.prefs.ShowMailerFields = !m.prefs.ShowMailerFields
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.ReloadContacts):
		if m.currentView == ViewLog {
			return m, readLogCmd(m.logFile)
		}
		if m.directory == nil {
			m.setError("no contact directory configured")
			return m, nil
		}
		return m, loadContactsCmd(m.directory)

	case key.Matches(msg, m.keys.ViewContacts):
		m.currentView = ViewContacts
		return m, nil

	case key.Matches(msg, m.keys.ViewOutput):
		m.currentView = ViewOutput
		m.updateOutputViewport()
		return m, nil

	case key.Matches(msg, m.keys.ViewLog):
		m.currentView = ViewLog
		return m, readLogCmd(m.logFile)

	case key.Matches(msg, m.keys.Escape):
		m.currentView = ViewMain
		return m, nil
	}

	// View-specific keys
	switch m.currentView {
	case ViewMain:
		return m.handleMainKey(msg)
	case ViewContacts:
		return m.handleContactsKey(msg)
	case ViewOutput:
		return m.handleOutputKey(msg)
	case ViewLog:
		return m.handleLogKey(msg)
	}

	return m, nil
}

// typing reports whether a text input currently has the keyboard.
func (m Model) typing() bool {
	switch m.currentView {
	case ViewMain:
		return m.focusedPane == PaneForm
	case ViewContacts:
		return m.searching
	}
	return false
}

// handleTextKey routes keys while a text input is focused.
func (m Model) handleTextKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.currentView == ViewContacts {
		return m.handleSearchInput(msg)
	}
	return m.handleFormKey(msg)
}

// handleMainKey processes keys for the picker, queue and mailer panes.
func (m Model) handleMainKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Tab):
		m.focusPane((m.focusedPane + 1) % paneCount)
		return m, nil
	case key.Matches(msg, m.keys.ShiftTab):
		m.focusPane((m.focusedPane + paneCount - 1) % paneCount)
		return m, nil
	case key.Matches(msg, m.keys.ToggleLocal):
		m.session = m.session.ToggleLocal()
		return m, nil
	}

	switch m.focusedPane {
	case PanePicker:
		return m.handlePickerKey(msg)
	case PaneQueue:
		return m.handleQueueKey(msg)
	case PaneMailer:
		return m.handleOutputKey(msg)
	}
	return m, nil
}

// focusPane moves focus and toggles the form's cursor.
func (m *Model) focusPane(p Pane) {
	m.focusedPane = p
	if p == PaneForm {
		m.focusFormInput(m.focusInput)
		return
	}
	m.blurForm()
}

func (m *Model) setNotice(s string) {
	m.notice = s
	m.noticeErr = false
}

func (m *Model) setError(s string) {
	m.notice = s
	m.noticeErr = true
}

// savePrefs writes preferences; failures only cost persistence.
func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		log.Printf("save prefs: %v", err)
	}
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	// Header line 1: logo + status
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	// Header line 2: command bar
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")

	// Main content
	b.WriteString(m.renderContent())

	return b.String()
}

// renderContent renders the main content area based on current view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewMain:
		return m.renderDashboard()
	case ViewContacts:
		return m.renderContacts()
	case ViewOutput:
		return m.renderOutput()
	case ViewLog:
		return m.renderLog()
	default:
		return ""
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}

package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Tab        key.Binding
	ShiftTab   key.Binding
	Escape     key.Binding

	// View switching
	ViewContacts key.Binding
	ViewOutput   key.Binding
	ViewLog      key.Binding

	// Picker
	Left       key.Binding
	Right      key.Binding
	Up         key.Binding
	Down       key.Binding
	NextMinute key.Binding
	PrevYear   key.Binding
	NextYear   key.Binding

	// Queue actions
	Add         key.Binding
	ToggleLocal key.Binding
	Delete      key.Binding
	ClearQueue  key.Binding

	// Mailer actions
	Send          key.Binding
	CopyDate      key.Binding
	CopyCommand   key.Binding
	CopyOutput    key.Binding
	CycleFormat   key.Binding
	TogglePreview key.Binding

	// Contacts
	Search         key.Binding
	ClearContact   key.Binding
	ReloadContacts key.Binding

	// Scrolling
	Top          key.Binding
	Bottom       key.Binding
	HalfPageUp   key.Binding
	HalfPageDown key.Binding
	ToggleFollow key.Binding

	// Search/input
	Confirm key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "e"),
			key.WithHelp("e", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next pane"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous pane"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Back"),
		),

		// View switching
		ViewContacts: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Contacts"),
		),
		ViewOutput: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "Mailer output"),
		),
		ViewLog: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "Picker log"),
		),

		// Picker
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("h/left", "Previous column"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("right", "Next column"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Increase / move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Decrease / move down"),
		),
		NextMinute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "Next quarter hour"),
		),
		PrevYear: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "Previous year"),
		),
		NextYear: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "Next year"),
		),

		// Queue actions
		Add: key.NewBinding(
			key.WithKeys("a", "enter"),
			key.WithHelp("a/enter", "Queue appointment"),
		),
		ToggleLocal: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Toggle salon/home visit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "x", "delete"),
			key.WithHelp("d", "Remove appointment"),
		),
		ClearQueue: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "Clear queue"),
		),

		// Mailer actions
		Send: key.NewBinding(
			key.WithKeys("s", "ctrl+s"),
			key.WithHelp("s/ctrl+s", "Send"),
		),
		CopyDate: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "Copy date"),
		),
		CopyCommand: key.NewBinding(
			key.WithKeys("Y"),
			key.WithHelp("Y", "Copy mailer command"),
		),
		CopyOutput: key.NewBinding(
			key.WithKeys("O"),
			key.WithHelp("O", "Copy mailer output"),
		),
		CycleFormat: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "Cycle date format"),
		),
		TogglePreview: key.NewBinding(
			key.WithKeys("M"),
			key.WithHelp("M", "Toggle command preview"),
		),

		// Contacts
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search contacts"),
		),
		ClearContact: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Clear contact"),
		),
		ReloadContacts: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reload contacts / log"),
		),

		// Scrolling
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "Half page up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "Half page down"),
		),
		ToggleFollow: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("Space", "Toggle follow mode"),
		),

		// Search/input
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Navigation
		{k.Tab, k.ShiftTab, k.ViewContacts, k.ViewOutput, k.ViewLog, k.Escape},
		// Picker
		{k.Left, k.Right, k.Up, k.Down, k.NextMinute, k.PrevYear, k.NextYear},
		// Queue
		{k.Add, k.ToggleLocal, k.Delete, k.ClearQueue},
		// Mailer
		{k.Send, k.CopyDate, k.CopyCommand, k.CopyOutput, k.CycleFormat, k.TogglePreview},
		// Contacts
		{k.Search, k.Confirm, k.ClearContact, k.ReloadContacts},
		// General
		{k.ToggleFollow, k.CycleTheme, k.Help, k.Quit},
	}
}

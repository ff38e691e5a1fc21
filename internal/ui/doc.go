// Package ui provides the terminal user interface for picker.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model holds a state.Session plus view
// state (focus, text inputs, viewports) and follows the Elm architecture:
// Update receives a message and returns a new Model and a command, View
// renders the Model. All session changes happen inside Update, on the
// program's single goroutine.
//
// # Package Structure
//
//   - app.go: Model, Options, Update/View and global key handling
//   - commands.go: messages and the commands that produce them
//   - send.go: the send lifecycle (start, stream, complete, banner expiry)
//   - dashboard.go: main view layout (picker, queue, form, mailer panes)
//   - picker.go, form.go, queue.go: the panes of the main view
//   - contacts.go: contact list, search and selection
//   - output.go, logs.go: mailer output and picker log viewports
//   - header.go, help.go, modal.go: chrome and overlays
//   - theme.go, style_helpers.go: colors and background-safe rendering
//
// # Views
//
//   - Main: date/time picker, appointment queue, client form, mailer pane
//   - Contacts: searchable contact directory; enter fills the form
//   - Output: full mailer output with follow mode
//   - Log: tail of picker's own log file
//
// # Send Flow
//
//  1. "s" calls Session.BeginSend, which refuses while a send is running
//  2. startSendCmd launches the mailer through the Sender and hands back its
//     event channel
//  3. waitForEvent reads one event per message; chunks are appended to the
//     session output and the wait is re-issued
//  4. the terminal event calls Session.CompleteSend, which interprets the
//     output and clears the queue and contact on success
//  5. bannerExpiryCmd returns the session to Idle after the banner duration;
//     a stale timer is ignored by sequence number
//
// # Key Bindings
//
//   - Tab / Shift+Tab: cycle panes
//   - left/right, j/k: pick column, change value
//   - a or Enter: queue the selected slot; L: toggle salon visit
//   - d: remove appointment; C: clear queue (confirmed)
//   - s or Ctrl+S: send; y/Y/O: copy date, command, output
//   - f: cycle date format; M: toggle command preview
//   - c/o/l: contacts, output, log views; Esc: back
//   - T: cycle theme; ?: help; e or Ctrl+C: quit
package ui

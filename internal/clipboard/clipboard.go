// Package clipboard copies text out of the picker: the formatted date, the
// mailer command and the mailer output.
package clipboard

import (
	"strings"
	"sync"

	"github.com/atotto/clipboard"
	"github.com/cockroachdb/errors"
)

// ErrUnsupported reports that no system clipboard tool is available.
var ErrUnsupported = errors.New("system clipboard unavailable")

// Clipboard receives copied text.
type Clipboard interface {
	SetText(text string) error
}

// System writes to the OS clipboard (pbcopy, xclip, xsel, wl-copy or the
// Windows API depending on platform).
type System struct{}

// SetText replaces the clipboard content.
func (System) SetText(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	if err := clipboard.WriteAll(text); err != nil {
		return errors.Wrap(err, "write clipboard")
	}
	return nil
}

// Memory keeps copied text in process. The zero value is ready to use.
type Memory struct {
	mu      sync.Mutex
	history []string
}

// SetText records text as the latest copy.
func (m *Memory) SetText(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.history = append(m.history, text)
	return nil
}

// Text returns the most recent copy, or "" when nothing was copied.
func (m *Memory) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.history) == 0 {
		return ""
	}
	return m.history[len(m.history)-1]
}

// History returns every copy in order.
func (m *Memory) History() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.history...)
}

// Summary shortens text for a status line: the first line, cut at limit runes.
func Summary(text string, limit int) string {
	line, _, more := strings.Cut(strings.TrimSpace(text), "\n")
	r := []rune(line)
	if limit > 0 && len(r) > limit {
		return string(r[:limit]) + "…"
	}
	if more {
		return line + " …"
	}
	return line
}

// Package prefs persists the picker's UI preferences in
// ~/.config/picker/prefs.toml. The UI writes the file back whenever the user
// cycles the theme or date format or toggles the command preview.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds user preferences for the picker.
type Prefs struct {
	Theme string `toml:"theme"`
	// Format is the key of the date format preset used for copying.
	Format string `toml:"format"`
	// ShowMailerFields toggles the mailer command preview in the mailer pane.
	ShowMailerFields bool `toml:"show_mailer_fields"`
}

const (
	defaultPrefsPath = "~/.config/picker/prefs.toml"
	defaultTheme     = "Nightfox"
	defaultFormat    = "ymd"
)

// Default returns the preferences used when no file exists.
func Default() Prefs {
	return Prefs{Theme: defaultTheme, Format: defaultFormat, ShowMailerFields: true}
}

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from path, or the default path when empty. The
// returned Prefs is always usable: a missing file yields defaults and a nil
// error, while an unreadable or malformed file yields defaults together with
// the error so the caller can log it.
func Load(path string) (Prefs, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Default(), fmt.Errorf("resolve prefs path: %w", err)
	}

	data, err := os.ReadFile(resolved)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("read prefs: %w", err)
	}

	p := Default()
	if err := toml.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("parse prefs %s: %w", resolved, err)
	}
	return p.withDefaults(), nil
}

// Save writes preferences to path, creating directories as needed. The file
// is replaced through a rename so a crash never leaves it half written.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve prefs path: %w", err)
	}
	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	data, err := toml.Marshal(p.withDefaults())
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".prefs-*.toml")
	if err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := os.Rename(tmp.Name(), resolved); err != nil {
		return fmt.Errorf("replace prefs: %w", err)
	}
	return nil
}

func (p Prefs) withDefaults() Prefs {
	p.Theme = strings.TrimSpace(p.Theme)
	if p.Theme == "" {
		p.Theme = defaultTheme
	}
	p.Format = strings.TrimSpace(p.Format)
	if p.Format == "" {
		p.Format = defaultFormat
	}
	return p
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultPrefsPath
	}
	trimmed := strings.TrimSpace(path)
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}

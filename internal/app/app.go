package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/picker/internal/appointment"
	"github.com/five82/picker/internal/config"
	"github.com/five82/picker/internal/contacts"
	"github.com/five82/picker/internal/mailer"
	"github.com/five82/picker/internal/prefs"
	"github.com/five82/picker/internal/ui"
)

// Options configure the picker application.
type Options struct {
	ConfigPath string // empty uses default ~/.config/picker/config.toml
	PrefsPath  string // empty uses default ~/.config/picker/prefs.toml
}

// Run boots the picker TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load picker config: %w", err)
	}

	closeLog := setupLogging(cfg.LogFile)
	defer closeLog()

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		log.Printf("load prefs: %v", err)
	}

	env, err := cfg.MailerEnv()
	if err != nil {
		log.Printf("mailer env: %v", err)
	}

	dir, contactsErr := contacts.Open(cfg.ContactsFile)
	if contactsErr != nil {
		log.Printf("open contacts: %v", contactsErr)
	}

	log.Printf("picker starting: mailer=%s contacts=%s", cfg.MailerBin, cfg.ContactsFile)

	uiOpts := ui.Options{
		Context:        ctx,
		Sender:         newInvoker(cfg, env),
		Factory:        newFactory(cfg),
		Contacts:       dir,
		Prefs:          userPrefs,
		PrefsPath:      opts.PrefsPath,
		BannerDuration: cfg.BannerDuration(),
		LogFile:        cfg.LogFile,
		ContactsError:  contactsErr,
	}
	return ui.Run(uiOpts)
}

func newInvoker(cfg config.Config, env []string) mailer.Invoker {
	return mailer.Invoker{
		Shell:  cfg.Shell,
		Setup:  cfg.Setup,
		Binary: cfg.MailerBin,
		Env:    env,
	}
}

func newFactory(cfg config.Config) appointment.Factory {
	return appointment.Factory{
		Locale:        appointment.LookupLocale(cfg.Locale),
		LocalStreet:   cfg.LocalStreet,
		LocalLocation: cfg.LocalLocation,
	}
}

// setupLogging points the standard logger at path. The terminal belongs to
// the TUI, so when the file cannot be opened logging is discarded.
func setupLogging(path string) func() {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.SetOutput(io.Discard)
		return func() {}
	}
	f, err := tea.LogToFile(path, "picker")
	if err != nil {
		log.SetOutput(io.Discard)
		return func() {}
	}
	return func() { _ = f.Close() }
}

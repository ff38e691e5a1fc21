package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	toml "github.com/pelletier/go-toml/v2"
)

// Config describes how the picker reaches the mailer and where it keeps its
// files. Fields can be overridden with PICKER_* environment variables, for
// example PICKER_MAILER_BIN or PICKER_BANNER_SECONDS.
type Config struct {
	MailerBin     string `split_words:"true"`
	Shell         string
	Setup         string
	EnvFile       string `split_words:"true"`
	ContactsFile  string `split_words:"true"`
	LocalStreet   string `split_words:"true"`
	LocalLocation string `split_words:"true"`
	Locale        string
	BannerSeconds int    `split_words:"true"`
	LogFile       string `split_words:"true"`
}

const (
	envPrefix = "picker"

	defaultConfigPath    = "~/.config/picker/config.toml"
	defaultMailerBin     = "~/sbm-bin/mailer"
	defaultShell         = "/bin/zsh"
	defaultSetup         = "source ~/dotfiles/.vars.zsh"
	defaultContactsFile  = "~/.config/picker/contacts.toml"
	defaultLocalStreet   = "Prins Hendrikstraat"
	defaultLocalLocation = "Alkmaar"
	defaultLocale        = "nl"
	defaultBannerSeconds = 3
	defaultLogFile       = "~/.local/share/picker/picker.log"
)

// Default returns the built-in configuration with paths expanded.
func Default() Config {
	cfg := Config{
		MailerBin:     defaultMailerBin,
		Shell:         defaultShell,
		Setup:         defaultSetup,
		ContactsFile:  defaultContactsFile,
		LocalStreet:   defaultLocalStreet,
		LocalLocation: defaultLocalLocation,
		Locale:        defaultLocale,
		BannerSeconds: defaultBannerSeconds,
		LogFile:       defaultLogFile,
	}
	cfg.expand()
	return cfg
}

// Load reads the config file at path (or the default location), applies
// PICKER_* environment overrides and fills defaults for empty values. A
// missing file is not an error.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	switch {
	case err == nil:
		defer file.Close()
		if err := decode(file, &cfg); err != nil {
			return Config{}, err
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("open config: %w", err)
	}

	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("environment overrides: %w", err)
	}

	cfg.fillDefaults()
	cfg.expand()
	return cfg, nil
}

func decode(r io.Reader, cfg *Config) error {
	bytes, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		MailerBin     string  `toml:"mailer_bin"`
		Shell         string  `toml:"shell"`
		Setup         *string `toml:"setup"`
		EnvFile       string  `toml:"env_file"`
		ContactsFile  string  `toml:"contacts_file"`
		LocalStreet   string  `toml:"local_street"`
		LocalLocation string  `toml:"local_location"`
		Locale        string  `toml:"locale"`
		BannerSeconds int     `toml:"banner_seconds"`
		LogFile       string  `toml:"log_file"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	cfg.MailerBin = strings.TrimSpace(raw.MailerBin)
	cfg.Shell = strings.TrimSpace(raw.Shell)
	if raw.Setup != nil {
		// An explicit empty setup disables the pre-command.
		cfg.Setup = strings.TrimSpace(*raw.Setup)
	}
	cfg.EnvFile = strings.TrimSpace(raw.EnvFile)
	cfg.ContactsFile = strings.TrimSpace(raw.ContactsFile)
	cfg.LocalStreet = strings.TrimSpace(raw.LocalStreet)
	cfg.LocalLocation = strings.TrimSpace(raw.LocalLocation)
	cfg.Locale = strings.TrimSpace(raw.Locale)
	cfg.BannerSeconds = raw.BannerSeconds
	cfg.LogFile = strings.TrimSpace(raw.LogFile)
	return nil
}

func (c *Config) fillDefaults() {
	setDefault(&c.MailerBin, defaultMailerBin)
	setDefault(&c.Shell, defaultShell)
	setDefault(&c.ContactsFile, defaultContactsFile)
	setDefault(&c.LocalStreet, defaultLocalStreet)
	setDefault(&c.LocalLocation, defaultLocalLocation)
	setDefault(&c.Locale, defaultLocale)
	setDefault(&c.LogFile, defaultLogFile)
	if c.BannerSeconds <= 0 {
		c.BannerSeconds = defaultBannerSeconds
	}
}

func (c *Config) expand() {
	c.MailerBin = mustExpand(c.MailerBin)
	c.ContactsFile = mustExpand(c.ContactsFile)
	c.LogFile = mustExpand(c.LogFile)
	if c.EnvFile != "" {
		c.EnvFile = mustExpand(c.EnvFile)
	}
}

// BannerDuration is how long the send outcome stays on screen.
func (c Config) BannerDuration() time.Duration {
	if c.BannerSeconds <= 0 {
		return defaultBannerSeconds * time.Second
	}
	return time.Duration(c.BannerSeconds) * time.Second
}

// MailerEnv reads EnvFile and returns its variables as sorted KEY=VALUE
// pairs for the mailer process. No file configured yields nil.
func (c Config) MailerEnv() ([]string, error) {
	if strings.TrimSpace(c.EnvFile) == "" {
		return nil, nil
	}
	vars, err := godotenv.Read(c.EnvFile)
	if err != nil {
		return nil, fmt.Errorf("read env file: %w", err)
	}
	env := make([]string, 0, len(vars))
	for k, v := range vars {
		env = append(env, k+"="+v)
	}
	sort.Strings(env)
	return env, nil
}

func setDefault(field *string, def string) {
	if strings.TrimSpace(*field) == "" {
		*field = def
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func clearPickerEnv(t *testing.T) {
	t.Helper()
	for _, kv := range os.Environ() {
		if key, _, _ := strings.Cut(kv, "="); strings.HasPrefix(key, "PICKER_") {
			t.Setenv(key, "")
			os.Unsetenv(key)
		}
	}
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	clearPickerEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.MailerBin != filepath.Join(home, "sbm-bin", "mailer") {
		t.Fatalf("MailerBin = %q, want under HOME %q", cfg.MailerBin, home)
	}
	if cfg.Shell != defaultShell {
		t.Fatalf("Shell = %q, want %q", cfg.Shell, defaultShell)
	}
	if cfg.Setup != defaultSetup {
		t.Fatalf("Setup = %q, want %q", cfg.Setup, defaultSetup)
	}
	if cfg.LocalStreet != "Prins Hendrikstraat" || cfg.LocalLocation != "Alkmaar" {
		t.Fatalf("local address = %q, %q", cfg.LocalStreet, cfg.LocalLocation)
	}
	if cfg.Locale != "nl" {
		t.Fatalf("Locale = %q, want nl", cfg.Locale)
	}
	if cfg.BannerDuration() != 3*time.Second {
		t.Fatalf("BannerDuration = %v, want 3s", cfg.BannerDuration())
	}
	wantLog, err := expandPath(defaultLogFile)
	if err != nil {
		t.Fatalf("expandPath(defaultLogFile) returned error: %v", err)
	}
	if cfg.LogFile != wantLog {
		t.Fatalf("LogFile = %q, want %q", cfg.LogFile, wantLog)
	}
	if cfg.EnvFile != "" {
		t.Fatalf("EnvFile = %q, want empty", cfg.EnvFile)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	clearPickerEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
mailer_bin = "  ~/bin/mailer  "
shell = "/bin/bash"
setup = ""
env_file = "~/.mailer.env"
contacts_file = "~/book.vcf"
local_street = " Langestraat "
local_location = "Heiloo"
locale = "en"
banner_seconds = 5
log_file = "~/logs/picker.log"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	want := Config{
		MailerBin:     filepath.Join(home, "bin", "mailer"),
		Shell:         "/bin/bash",
		Setup:         "",
		EnvFile:       filepath.Join(home, ".mailer.env"),
		ContactsFile:  filepath.Join(home, "book.vcf"),
		LocalStreet:   "Langestraat",
		LocalLocation: "Heiloo",
		Locale:        "en",
		BannerSeconds: 5,
		LogFile:       filepath.Join(home, "logs", "picker.log"),
	}
	if !reflect.DeepEqual(cfg, want) {
		t.Fatalf("Load() = %+v, want %+v", cfg, want)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	clearPickerEnv(t)
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
mailer_bin = "   "
shell = ""
banner_seconds = -1
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("Load() = %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	clearPickerEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SHELL", "/bin/fish")
	t.Setenv("PICKER_MAILER_BIN", "/opt/mailer")
	t.Setenv("PICKER_SHELL", "/bin/sh")
	t.Setenv("PICKER_BANNER_SECONDS", "7")
	t.Setenv("PICKER_LOCAL_STREET", "Dorpsstraat")

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`mailer_bin = "/usr/local/bin/mailer"`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.MailerBin != "/opt/mailer" {
		t.Fatalf("MailerBin = %q, want /opt/mailer", cfg.MailerBin)
	}
	if cfg.Shell != "/bin/sh" {
		t.Fatalf("Shell = %q, want /bin/sh (SHELL must not leak in)", cfg.Shell)
	}
	if cfg.BannerSeconds != 7 {
		t.Fatalf("BannerSeconds = %d, want 7", cfg.BannerSeconds)
	}
	if cfg.LocalStreet != "Dorpsstraat" {
		t.Fatalf("LocalStreet = %q, want Dorpsstraat", cfg.LocalStreet)
	}
}

func TestLoad_InvalidOverrideFails(t *testing.T) {
	clearPickerEnv(t)
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PICKER_BANNER_SECONDS", "soon")

	if _, err := Load(filepath.Join(t.TempDir(), "none.toml")); err == nil {
		t.Fatalf("Load returned nil error for non-numeric PICKER_BANNER_SECONDS")
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	clearPickerEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("mailer_bin = ["), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load err = %v, want parse config error", err)
	}
}

func TestMailerEnv(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, "mailer.env")
	if err := os.WriteFile(envPath, []byte("SMTP_USER=salon\n# comment\nSMTP_PASS=\"s3cret\"\nAPI_URL=https://x.test\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	env, err := Config{EnvFile: envPath}.MailerEnv()
	if err != nil {
		t.Fatalf("MailerEnv returned error: %v", err)
	}
	want := []string{"API_URL=https://x.test", "SMTP_PASS=s3cret", "SMTP_USER=salon"}
	if !reflect.DeepEqual(env, want) {
		t.Fatalf("MailerEnv() = %q, want %q", env, want)
	}

	if env, err := (Config{}).MailerEnv(); err != nil || env != nil {
		t.Fatalf("MailerEnv() without file = %q, %v; want nil, nil", env, err)
	}
	if _, err := (Config{EnvFile: filepath.Join(dir, "missing.env")}).MailerEnv(); err == nil {
		t.Fatalf("MailerEnv() with missing file returned nil error")
	}
}

// Package config loads the picker configuration.
//
// # Overview
//
// The picker needs to know how to run the mailer (binary, shell, setup
// command and extra environment), where the contacts file and its own log
// live, and which local address to use for visits at the salon.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/picker/config.toml (default)
//  3. If the config file doesn't exist, start from defaults
//  4. Apply PICKER_* environment variables on top
//  5. Any field left empty falls back to its default
//
// # Default Values
//
//   - mailer_bin: ~/sbm-bin/mailer
//   - shell: /bin/zsh
//   - setup: source ~/dotfiles/.vars.zsh (set to "" to disable)
//   - env_file: none
//   - contacts_file: ~/.config/picker/contacts.toml
//   - local_street / local_location: Prins Hendrikstraat / Alkmaar
//   - locale: nl
//   - banner_seconds: 3
//   - log_file: ~/.local/share/picker/picker.log
//
// # Environment Overrides
//
// Every field can be overridden with an upper-case PICKER_ variable named
// after its TOML key, for example:
//
//	PICKER_MAILER_BIN=/opt/mailer picker
//	PICKER_BANNER_SECONDS=5 picker
//
// Only prefixed names are consulted, so the login shell's SHELL variable
// never replaces the configured shell.
//
// # Mailer Environment
//
// env_file points at a dotenv file (KEY=VALUE lines, comments and quoting as
// understood by godotenv). MailerEnv returns its variables for the mailer
// process; they are added to the inherited environment and win over it.
// This replaces sourcing a shell profile when the mailer only needs a few
// credentials.
//
// # Path Expansion
//
// Paths starting with ~ are expanded to the user's home directory and made
// absolute. The setup command is left untouched because the shell expands
// it.
//
// # Error Handling
//
//   - Missing config file: not an error, defaults are used
//   - Unreadable file or invalid TOML: returned, wrapped with context
//   - Malformed PICKER_* value (for example a non-numeric banner_seconds):
//     returned
package config

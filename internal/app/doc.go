// Package app wires configuration, contacts, the mailer and the UI into the
// picker application. It is the composition root: dependencies are built here
// and handed to ui.Run, which blocks until the user quits.
//
// # Startup
//
//  1. Load the picker config (~/.config/picker/config.toml plus PICKER_*
//     environment overrides)
//  2. Point the standard logger at the configured log file
//  3. Load UI preferences; a missing or broken file yields defaults
//  4. Read the optional env file handed to the mailer process
//  5. Open the contacts directory (TOML or vCard)
//  6. Start the TUI
//
// # Error Handling
//
// Only a broken config file stops startup. Problems with the env file or the
// contacts directory are logged and the picker starts without them; a
// contacts failure is also shown in the header.
package app

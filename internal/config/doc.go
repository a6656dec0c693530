// Package config handles loading and parsing the fluxview configuration file.
//
// # Overview
//
// fluxview reads a small TOML file at startup to locate its log, preferences
// and journal files and to choose where search predictions come from.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/fluxview/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/fluxview/config.toml
//   - Log file: ~/.local/state/fluxview/fluxview.log
//   - Log level: info
//   - Preferences: prefs package default (~/.config/fluxview/prefs.toml)
//   - Journal: disabled
//   - Notification lifetime: 5s
//   - Predictions per query: 8
//   - Sidebar: visible
//
// # TOML Format
//
//	log_level = "debug"
//	log_file = "~/.local/state/fluxview/fluxview.log"
//	prefs_path = "~/.config/fluxview/prefs.toml"
//	journal_path = "~/.local/state/fluxview/journal.jsonl"
//	notification_ttl = "5s"
//	predictions_limit = 8
//	catalog_dsn = "postgres://media@localhost/mediacms"
//	catalog_url = "http://127.0.0.1:7487"
//	catalog_titles = ["Big Buck Bunny", "Sintel"]
//	sidebar_visible = true
//
// Every field is optional. Tilde expansion is performed on path fields.
// When catalog_dsn is set, predictions are served from Postgres. Otherwise a
// catalog_url points at an HTTP prediction service, and with neither set
// catalog_titles seeds an in-memory catalog.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//   - notification_ttl values that are not Go durations
//
// Missing config files are NOT an error - defaults are used instead.
package config

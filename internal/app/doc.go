// Package app provides the orchestration layer for the fluxview application.
//
// # Overview
//
// This package wires together configuration, logging, preferences, the
// dispatcher, the stores and the UI. It is the composition root: every
// dependency is created here and handed down, nothing is looked up globally.
//
// # Startup
//
//  1. Load ~/.config/fluxview/config.toml (defaults when missing)
//  2. Build the zerolog logger writing to the configured log file
//  3. Create the dispatcher and register the stores in their fixed order
//  4. Register the journal recorder when journal_path is set
//  5. Pick a predictor: Postgres when catalog_dsn is set and reachable,
//     else the HTTP service at catalog_url, else the configured title list
//  6. Start the TUI and block until the user quits or the context cancels
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()        Read config.toml
//	       ├─────> logging.New()        Log file sink
//	       ├─────> dispatcher.New()     One dispatcher per process
//	       ├─────> store.NewSet()       Stores register callbacks
//	       ├─────> journal.Create()     Optional action recorder
//	       ├─────> openPredictor()      Catalog pre-flight check
//	       └─────> ui.Run()             Start TUI (blocks)
//
// # Replay
//
// With Options.ReplayPath set, Run skips the UI: it replays the journal into
// fresh stores and writes their final state to Options.Out as TOML. Stores in
// a replay are seeded from the preferences file but never write back to it.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Invalid configuration or log level
//   - Unopenable log or journal file
//   - A journal line that does not decode (replay)
//
// Recoverable errors (logged, startup continues):
//   - Catalog database unreachable, schema check failing or catalog_url
//     invalid; the in-memory predictor is used instead
//   - Preferences that cannot be saved
package app

// Package app is the composition root of Flashdeck.
//
// # Overview
//
// Run wires configuration, preferences, logging, the deck watcher and the UI:
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()   Read config.toml (defaults when missing)
//	       ├─────> logging.New()   File log, optional journal
//	       ├─────> prefs.Load()    Theme and default card side
//	       └─────> ui.Run()        Start TUI (blocks)
//
// The UI opens one viewing session at a time. For each session it runs the
// watcher returned by deckWatcher, which wraps watch.Watch and restarts it
// with exponential backoff if the deck's directory disappears for a moment.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Invalid config file (bad TOML or failed validation)
//   - Log file that cannot be opened
//
// Recoverable errors (logged):
//   - Unreadable prefs (defaults are used)
//   - Watcher failures (retried until the session ends)
//
// # Batch helpers
//
// CollectStats and WriteStarred back the non-interactive "stats" and
// "starred" commands. CollectStats parses many decks concurrently with an
// errgroup bounded by a limit.
package app

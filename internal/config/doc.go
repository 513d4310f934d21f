// Package config loads Flashdeck's settings from a TOML file.
//
// # Configuration Discovery
//
//  1. If a path is explicitly provided (flag or FLASHDECK_CONFIG), use it
//  2. Otherwise, use ~/.config/flashdeck/config.toml
//  3. If the file doesn't exist, fall back to defaults
//  4. Missing or empty fields use their defaults
//
// # TOML Format
//
//	deck_dir = "~/Documents/flashcards"
//	extensions = [".csv", ".tns"]
//	delimiter = ","
//	max_field_size = 1024
//	gesture_threshold = 20
//	log_file = "~/.local/state/flashdeck/flashdeck.log"
//	log_level = "info"
//	log_journal = false
//
// All fields are optional. Tilde expansion is applied to deck_dir and
// log_file.
//
// # Validation
//
// The delimiter must be a single character other than a quote or line
// terminator, max_field_size must be between 1 byte and 1 MiB, and
// gesture_threshold must be positive. Violations are reported wrapped in
// ErrInvalid.
package config

// Package prefs handles Flashdeck user preferences persistence.
// Preferences are stored in ~/.config/flashdeck/prefs.toml.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds user preferences for Flashdeck.
type Prefs struct {
	Theme       string `toml:"theme"`
	DefaultSide string `toml:"default_side"` // "front" or "back"
}

// Card sides accepted for DefaultSide.
const (
	SideFront = "front"
	SideBack  = "back"
)

const (
	defaultPrefsPath = "~/.config/flashdeck/prefs.toml"
	defaultTheme     = "Nightfox"
)

// Defaults returns the preferences used when nothing is stored.
func Defaults() Prefs {
	return Prefs{Theme: defaultTheme, DefaultSide: SideFront}
}

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from path. A missing file yields the defaults. An
// unreadable or malformed file also yields the defaults, together with the
// error so the caller can report it; preferences never block startup.
func Load(path string) (Prefs, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Defaults(), fmt.Errorf("resolve path: %w", err)
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Defaults(), nil
		}
		return Defaults(), fmt.Errorf("read prefs: %w", err)
	}

	p := Defaults()
	if err := toml.Unmarshal(data, &p); err != nil {
		return Defaults(), fmt.Errorf("parse prefs: %w", err)
	}
	return p.normalized(), nil
}

// normalized fills empty values and folds DefaultSide to a known side.
func (p Prefs) normalized() Prefs {
	if strings.TrimSpace(p.Theme) == "" {
		p.Theme = defaultTheme
	}
	switch side := strings.ToLower(strings.TrimSpace(p.DefaultSide)); side {
	case SideFront, SideBack:
		p.DefaultSide = side
	default:
		p.DefaultSide = SideFront
	}
	return p
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, data, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}

	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", errors.New("path is empty")
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

package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/flashdeck/internal/deck"
	"github.com/five82/flashdeck/internal/gesture"
)

// ErrInvalid wraps validation failures of a loaded config.
var ErrInvalid = errors.New("invalid config")

// Config captures the settings Flashdeck reads from config.toml.
type Config struct {
	DeckDir          string
	Extensions       []string
	Delimiter        string
	MaxFieldSize     int
	GestureThreshold int
	LogFile          string
	LogLevel         string
	LogJournal       bool
}

const (
	defaultConfigPath = "~/.config/flashdeck/config.toml"
	defaultDeckDir    = "~/Documents/flashcards"
	defaultLogFile    = "~/.local/state/flashdeck/flashdeck.log"
	defaultLogLevel   = "info"
	defaultDelimiter  = ","
)

var defaultExtensions = []string{".csv", ".tns"}

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		DeckDir:          mustExpand(defaultDeckDir),
		Extensions:       append([]string(nil), defaultExtensions...),
		Delimiter:        defaultDelimiter,
		MaxFieldSize:     deck.DefaultMaxFieldSize,
		GestureThreshold: gesture.DefaultThreshold,
		LogFile:          mustExpand(defaultLogFile),
		LogLevel:         defaultLogLevel,
	}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		DeckDir          string   `toml:"deck_dir"`
		Extensions       []string `toml:"extensions"`
		Delimiter        *string  `toml:"delimiter"`
		MaxFieldSize     *int     `toml:"max_field_size"`
		GestureThreshold *int     `toml:"gesture_threshold"`
		LogFile          string   `toml:"log_file"`
		LogLevel         string   `toml:"log_level"`
		LogJournal       bool     `toml:"log_journal"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if dir := strings.TrimSpace(raw.DeckDir); dir != "" {
		cfg.DeckDir = mustExpand(dir)
	}
	if exts := cleanExtensions(raw.Extensions); len(exts) > 0 {
		cfg.Extensions = exts
	}
	// A tab delimiter is meaningful, so only an unset or empty value defaults.
	if raw.Delimiter != nil && *raw.Delimiter != "" {
		cfg.Delimiter = *raw.Delimiter
	}
	if raw.MaxFieldSize != nil {
		cfg.MaxFieldSize = *raw.MaxFieldSize
	}
	if raw.GestureThreshold != nil {
		cfg.GestureThreshold = *raw.GestureThreshold
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}
	if level := strings.TrimSpace(raw.LogLevel); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}
	cfg.LogJournal = raw.LogJournal

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings the codec and the gesture decoder depend on.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.DeckDir, validation.Required),
		validation.Field(&c.Delimiter, validation.Required, validation.RuneLength(1, 1),
			validation.NotIn(`"`, "\n", "\r", string(utf8.RuneError))),
		validation.Field(&c.MaxFieldSize, validation.Required, validation.Min(1), validation.Max(1<<20)),
		validation.Field(&c.GestureThreshold, validation.Required, validation.Min(1)),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "error")),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Codec returns the deck codec described by the config.
func (c Config) Codec() deck.Codec {
	var r rune
	if c.Delimiter != "" {
		r, _ = utf8.DecodeRuneInString(c.Delimiter)
	}
	return deck.Codec{Delimiter: r, MaxFieldSize: c.MaxFieldSize}
}

func cleanExtensions(values []string) []string {
	var out []string
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if !strings.HasPrefix(v, ".") {
			v = "." + v
		}
		out = append(out, v)
	}
	return out
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

// ExpandPath resolves a leading ~ and returns an absolute path.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
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

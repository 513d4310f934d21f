package deck

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Extensions lists the suffixes trimmed from deck file names for display.
var Extensions = []string{".tns", ".csv"}

// LoadFile opens and parses the deck at path.
func LoadFile(path string, c Codec) (*Deck, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open deck: %w", err)
	}
	defer func() { _ = file.Close() }()

	d, err := Load(file, c)
	if err != nil {
		return nil, fmt.Errorf("parse deck: %w", err)
	}
	return d, nil
}

// SaveFile replaces the deck at path. The cards are written to a temporary
// file in the same directory which is then renamed over path, so a failed
// save never leaves a truncated deck behind.
func SaveFile(path string, d *Deck, c Codec) (err error) {
	mode := os.FileMode(0o644)
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode().Perm()
	} else if !errors.Is(statErr, os.ErrNotExist) {
		return fmt.Errorf("stat deck: %w", statErr)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp deck: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err := d.Save(tmp, c); err != nil {
		return fmt.Errorf("write deck: %w", err)
	}
	if err := tmp.Chmod(mode); err != nil {
		return fmt.Errorf("chmod deck: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close deck: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace deck: %w", err)
	}
	return nil
}

// Name returns the display name of the deck at path: its base name without
// deck extensions, so "vocab.csv.tns" becomes "vocab".
func Name(path string) string {
	name := filepath.Base(path)
	for trimmed := true; trimmed; {
		trimmed = false
		for _, ext := range Extensions {
			if len(name) > len(ext) && strings.EqualFold(name[len(name)-len(ext):], ext) {
				name = name[:len(name)-len(ext)]
				trimmed = true
			}
		}
	}
	return name
}

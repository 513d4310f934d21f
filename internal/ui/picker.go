package ui

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/flashdeck/internal/config"
	"github.com/five82/flashdeck/internal/deck"
	"github.com/five82/flashdeck/internal/navigator"
)

func newPicker(cfg config.Config, theme Theme) filepicker.Model {
	fp := filepicker.New()
	fp.AllowedTypes = cfg.Extensions
	fp.ShowPermissions = false
	fp.ShowHidden = false
	fp.AutoHeight = true
	fp.Cursor = "›"
	fp.Styles = pickerStyles(theme)
	if cfg.DeckDir != "" {
		fp.CurrentDirectory = cfg.DeckDir
	}
	return fp
}

func pickerStyles(t Theme) filepicker.Styles {
	s := filepicker.DefaultStyles()
	s.Cursor = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent))
	s.Directory = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Info))
	s.File = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text))
	s.DisabledFile = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Faint))
	s.Selected = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)).Bold(true)
	s.FileSize = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)).Width(7).Align(lipgloss.Right)
	s.EmptyDirectory = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)).PaddingLeft(2).SetString("No deck files here.")
	return s
}

// handlePickerKey forwards keys to the file picker and opens the chosen deck.
func (m Model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "q" {
		return m.quit()
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.openDeck(path)
		return m, cmd
	}
	if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
		m.pickerErr = fmt.Errorf("%s is not a deck file (%s)", filepath.Base(path), strings.Join(m.picker.AllowedTypes, ", "))
		return m, cmd
	}
	return m, cmd
}

// openDeck loads the deck at path and shows the selector, or reports the
// failure on the picker.
func (m *Model) openDeck(path string) {
	d, err := deck.LoadFile(path, m.codec)
	if err != nil {
		m.logger.Warn("deck load failed",
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
		m.pickerErr = err
		m.screen = screenPicker
		return
	}
	m.logger.Info("deck loaded",
		slog.String("path", path),
		slog.Int("cards", d.Len()),
		slog.Int("starred", d.StarredCount()),
	)
	m.pickerErr = nil
	m.notice = ""
	m.selPath = path
	m.selDeck = d
	m.selMode = navigator.All
	m.screen = screenSelector
}

// describeLoadError turns a deck load failure into a one-line message.
func (m Model) describeLoadError(err error) string {
	if errors.Is(err, deck.ErrFieldTooLarge) {
		limit := m.codec.MaxFieldSize
		if limit <= 0 {
			limit = deck.DefaultMaxFieldSize
		}
		return fmt.Sprintf("A field is longer than %d bytes: %v", limit, err)
	}
	return err.Error()
}

func (m Model) renderPicker() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.MutedText.Render(truncateMiddle(m.picker.CurrentDirectory, maxInt(m.width-2, 20))))
	b.WriteString("\n")
	if m.pickerErr != nil {
		b.WriteString(styles.DangerText.Render("Cannot open deck: " + m.describeLoadError(m.pickerErr)))
		b.WriteString("\n")
	} else if m.notice != "" {
		b.WriteString(styles.InfoText.Render(m.notice))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.picker.View())
	return b.String()
}

package ui

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleSaveErrorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Retry):
		if err := m.saveDeck(); err != nil {
			m.saveErr = err
			return m, nil
		}
		m.endSession()
		if m.quitting {
			return m, tea.Quit
		}
		return m, m.picker.Init()

	case key.Matches(msg, m.keys.Back):
		m.logger.Warn("unsaved deck changes discarded", slog.String("path", m.saveErrPath))
		m.endSession()
		if m.quitting {
			return m, tea.Quit
		}
		return m, m.picker.Init()
	}
	return m, nil
}

func (m Model) renderSaveError() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + styles.DangerText.Render("Could not save deck"))
	b.WriteString("\n\n")
	b.WriteString("  " + styles.Text.Render(truncateMiddle(m.saveErrPath, maxInt(m.width-4, 20))))
	b.WriteString("\n")
	if m.saveErr != nil {
		b.WriteString("  " + styles.MutedText.Render(truncate(m.saveErr.Error(), maxInt(m.width-4, 20))))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString("  " + styles.MutedText.Render("Press r to retry or esc to discard your changes"))
	return b.String()
}

package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/flashdeck/internal/deck"
	"github.com/five82/flashdeck/internal/gesture"
	"github.com/five82/flashdeck/internal/navigator"
	"github.com/five82/flashdeck/internal/state"
)

func (m Model) handleSelectorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.selDeck = nil
		m.screen = screenPicker
		return m, m.picker.Init()

	case key.Matches(msg, m.keys.ToggleMode):
		if m.selDeck.StarredCount() > 0 {
			if m.selMode == navigator.All {
				m.selMode = navigator.StarredOnly
			} else {
				m.selMode = navigator.All
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Continue):
		if m.selDeck.Len() == 0 {
			return m, nil
		}
		return m.startViewer()
	}
	return m, nil
}

// startViewer opens a study session over the selected deck.
func (m Model) startViewer() (tea.Model, tea.Cmd) {
	m.store = state.NewStore(m.selPath, m.selDeck, m.selMode)
	m.snapshot = m.store.Snapshot()
	m.showBack = m.defaultBack()
	m.decoder = gesture.NewDecoder(m.threshold)
	m.pressed = false
	m.dragged = false
	m.notice = ""
	m.screen = screenViewer

	if m.watch == nil {
		return m, nil
	}
	ctx, cancel := context.WithCancel(m.ctx)
	m.stopWatch = cancel
	return m, watchCmd(ctx, m.watch, m.store)
}

func (m Model) renderSelector() string {
	styles := m.theme.Styles()
	d := m.selDeck

	var b strings.Builder
	b.WriteString("\n")
	if d.Len() == 0 {
		b.WriteString("  " + styles.Text.Bold(true).Render("No cards in this file"))
		b.WriteString("\n\n")
		b.WriteString("  " + styles.MutedText.Render("Press esc to cancel"))
		return b.String()
	}

	starred := d.StarredCount()
	b.WriteString("  " + styles.AccentText.Bold(true).Render(deck.Name(m.selPath)))
	b.WriteString("\n")
	b.WriteString("  " + styles.MutedText.Render(fmt.Sprintf("%d terms", d.Len())))
	b.WriteString("\n")
	b.WriteString("  " + styles.MutedText.Render(fmt.Sprintf("%d starred terms", starred)))
	b.WriteString("\n\n")
	b.WriteString("  " + styles.Text.Bold(true).Render(fmt.Sprintf("Studying %s terms", m.selMode)))
	b.WriteString("\n")
	if starred > 0 {
		b.WriteString("  " + styles.MutedText.Render("(Press s or . to change)"))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString("  " + styles.MutedText.Render("Press enter to continue"))
	b.WriteString("\n")
	b.WriteString("  " + styles.MutedText.Render("Press esc to cancel"))
	return b.String()
}

package ui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/flashdeck/internal/deck"
	"github.com/five82/flashdeck/internal/gesture"
	"github.com/five82/flashdeck/internal/navigator"
)

func (m Model) handleViewerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.closeViewer()
		if m.screen == screenPicker {
			return m, m.picker.Init()
		}
		return m, nil

	case key.Matches(msg, m.keys.Flip):
		m.showBack = !m.showBack

	case key.Matches(msg, m.keys.Next):
		m.step(gesture.Forward)

	case key.Matches(msg, m.keys.Prev):
		m.step(gesture.Backward)

	case key.Matches(msg, m.keys.ToggleStar):
		return m.toggleStar()

	case key.Matches(msg, m.keys.ToggleFilter):
		if m.store.ToggleFilter() {
			m.showBack = m.defaultBack()
			m.notice = ""
		} else {
			m.notice = "No starred cards"
		}
	}
	m.snapshot = m.store.Snapshot()
	return m, nil
}

// handleMouse turns left-button drags into gesture samples. A press and
// release that produced no pulse counts as a click and flips the card.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.pressed = true
		m.dragged = false
		m.decoder.Reset()
		m.decoder.Feed(gesture.Active(msg.X))

	case tea.MouseActionMotion:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if p := m.decoder.Feed(gesture.Active(msg.X)); p != gesture.None {
			m.dragged = true
			m.step(p)
		}

	case tea.MouseActionRelease:
		m.decoder.Feed(gesture.Inactive())
		if m.pressed && !m.dragged {
			m.showBack = !m.showBack
		}
		m.pressed = false
		m.dragged = false
	}
	m.snapshot = m.store.Snapshot()
	return m, nil
}

// step moves one card in the pulse direction and shows the default side.
func (m *Model) step(p gesture.Pulse) {
	switch p {
	case gesture.Forward:
		m.store.Advance()
	case gesture.Backward:
		m.store.Retreat()
	default:
		return
	}
	m.showBack = m.defaultBack()
	m.notice = ""
}

func (m Model) toggleStar() (tea.Model, tea.Cmd) {
	before := m.snapshot
	if ended := m.store.ToggleStar(); ended {
		m.closeViewer()
		if m.screen == screenPicker {
			m.notice = "No starred cards left"
			return m, m.picker.Init()
		}
		return m, nil
	}
	m.snapshot = m.store.Snapshot()
	if before.Mode == navigator.StarredOnly {
		// The unstarred card left the view.
		m.showBack = m.defaultBack()
	}
	return m, nil
}

// closeViewer ends the session and writes the deck back. On failure the
// save-error screen takes over with the deck still in memory.
func (m *Model) closeViewer() {
	m.stopWatcher()
	if err := m.saveDeck(); err != nil {
		m.saveErr = err
		m.saveErrPath = m.store.Path()
		m.screen = screenSaveError
		return
	}
	m.endSession()
}

func (m *Model) saveDeck() error {
	path := m.store.Path()
	err := m.store.Save(func(p string, d *deck.Deck) error {
		return deck.SaveFile(p, d, m.codec)
	})
	if err != nil {
		m.logger.Error("deck save failed",
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
		return err
	}
	m.logger.Info("deck saved", slog.String("path", path))
	return nil
}

func (m *Model) endSession() {
	m.store = nil
	m.selDeck = nil
	m.decoder = nil
	m.saveErr = nil
	m.saveErrPath = ""
	m.notice = ""
	m.screen = screenPicker
}

func (m *Model) stopWatcher() {
	if m.stopWatch != nil {
		m.stopWatch()
		m.stopWatch = nil
	}
}

func (m Model) renderViewer() string {
	styles := m.theme.Styles()
	snap := m.snapshot
	width := cardWidth(m.width)

	var b strings.Builder

	star := styles.FaintText.Render("☆")
	if snap.Card.Starred {
		star = styles.StarText.Render("★")
	}
	side := "Front"
	text := snap.Card.Front
	style := styles.Card
	if m.showBack {
		side = "Back"
		text = snap.Card.Back
		style = styles.CardBack
	}

	top := styles.MutedText.Render(side) + "  " + star
	if snap.Mode == navigator.StarredOnly {
		top += "  " + styles.WarningText.Render("starred only")
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, top))
	b.WriteString("\n")

	if text == "" {
		text = styles.FaintText.Render("(empty)")
	}
	card := style.Width(width).Render(text)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, card))
	b.WriteString("\n")

	if snap.ChangedOnDisk {
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center,
			styles.WarningText.Render("Deck changed on disk; leaving will overwrite it")))
		b.WriteString("\n")
	}
	if m.notice != "" {
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center,
			styles.InfoText.Render(m.notice)))
		b.WriteString("\n")
	}
	return b.String()
}

// positionLabel renders "pos/count" for the header.
func positionLabel(position, count int) string {
	if count == 0 {
		return "0/0"
	}
	return fmt.Sprintf("%d/%d", position+1, count)
}

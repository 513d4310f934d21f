package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/flashdeck/internal/deck"
	"github.com/five82/flashdeck/internal/navigator"
)

// renderHeader renders the status bar for the active screen.
func (m Model) renderHeader() string {
	// Header uses Surface background
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < LayoutCompactWidth

	parts := []string{bg.Render("flashdeck", styles.Logo)}

	switch m.screen {
	case screenPicker:
		parts = append(parts, bg.Render("Choose a deck", styles.MutedText))

	case screenSelector:
		parts = append(parts, bg.Render(deck.Name(m.selPath), styles.Text))

	case screenViewer:
		snap := m.snapshot
		name := snap.Name
		if compact {
			name = truncate(name, 12)
		}
		parts = append(parts,
			bg.Render(name, styles.Text),
			bg.Render(positionLabel(snap.Position, snap.Count), styles.AccentText.Bold(true)),
		)
		if !compact {
			parts = append(parts,
				bg.Render("Starred:", styles.MutedText)+bg.Space()+
					bg.Render(fmt.Sprintf("%d/%d", snap.Starred, snap.Total), styles.StarText),
			)
		}
		if snap.Mode == navigator.StarredOnly {
			parts = append(parts, bg.Render("★ only", styles.StarText))
		}
		if snap.Dirty {
			parts = append(parts, bg.Render("●", styles.WarningText))
		}

	case screenSaveError:
		parts = append(parts, bg.Render("SAVE FAILED", styles.DangerText.Bold(true)))
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Width(m.width).
		Render(bg.Join(parts, "  "))
}

// renderFooter renders the key hints for the active screen.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	return styles.Footer.Width(m.width).Render(m.help.ShortHelpView(m.keys.screenHelp(m.screen)))
}

package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which compact mode is used.
	LayoutCompactWidth = 60

	// CardMaxWidth caps the card face so long lines stay readable.
	CardMaxWidth = 72

	// CardMinWidth is the narrowest card face drawn.
	CardMinWidth = 20
)

// Timing constants.
const (
	// DefaultUIInterval is the default snapshot refresh interval.
	DefaultUIInterval = time.Second
)

// cardWidth returns the card face width for a terminal width.
func cardWidth(termWidth int) int {
	w := termWidth - 4
	if w > CardMaxWidth {
		w = CardMaxWidth
	}
	if w < CardMinWidth {
		w = CardMinWidth
	}
	return w
}

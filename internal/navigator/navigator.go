// Package navigator walks the all-cards or starred-only view of a deck while
// the deck's stars change underneath it.
package navigator

import "github.com/five82/flashdeck/internal/deck"

// FilterMode selects which cards the navigator shows.
type FilterMode int

const (
	All FilterMode = iota
	StarredOnly
)

// String returns the label used in the UI.
func (m FilterMode) String() string {
	if m == StarredOnly {
		return "starred"
	}
	return "all"
}

// Navigator tracks a position inside the filtered view of a deck. The deck is
// shared, not copied, so star changes are visible to every holder of it.
//
// Once the filtered view becomes empty the navigator is Empty for good and
// every operation is a no-op.
type Navigator struct {
	deck  *deck.Deck
	mode  FilterMode
	pos   int
	empty bool
}

// New positions a navigator on the first card of the view selected by mode.
func New(d *deck.Deck, mode FilterMode) *Navigator {
	n := &Navigator{deck: d, mode: mode}
	n.empty = n.Count() == 0
	return n
}

// Mode returns the active filter mode.
func (n *Navigator) Mode() FilterMode { return n.mode }

// Position returns the index of the current card inside the filtered view.
func (n *Navigator) Position() int { return n.pos }

// Empty reports whether the session has run out of cards to show.
func (n *Navigator) Empty() bool { return n.empty }

// Count returns the size of the filtered view. It is recomputed on every call
// because star toggles change it.
func (n *Navigator) Count() int {
	return n.countFor(n.mode)
}

func (n *Navigator) countFor(mode FilterMode) int {
	if mode == All {
		return n.deck.Len()
	}
	return n.deck.StarredCount()
}

// resync re-clamps pos after stars changed without going through the
// navigator, ending the session if the view has emptied.
func (n *Navigator) resync() int {
	count := n.Count()
	if count == 0 {
		n.empty = true
		n.pos = 0
	} else if n.pos >= count {
		n.pos = count - 1
	}
	return count
}

// Index returns the deck index of the current card.
func (n *Navigator) Index() (int, bool) {
	if n.empty || n.resync() == 0 {
		return 0, false
	}
	seen := 0
	for i := 0; i < n.deck.Len(); i++ {
		if n.mode == StarredOnly && !n.deck.Card(i).Starred {
			continue
		}
		if seen == n.pos {
			return i, true
		}
		seen++
	}
	return 0, false
}

// Current returns the card at the current position.
func (n *Navigator) Current() (deck.Card, bool) {
	i, ok := n.Index()
	if !ok {
		return deck.Card{}, false
	}
	return n.deck.Card(i), true
}

// Advance moves to the next card, wrapping from last to first.
func (n *Navigator) Advance() {
	if n.empty {
		return
	}
	count := n.resync()
	if count == 0 {
		return
	}
	n.pos = (n.pos + 1) % count
}

// Retreat moves to the previous card, wrapping from first to last.
func (n *Navigator) Retreat() {
	if n.empty {
		return
	}
	count := n.resync()
	if count == 0 {
		return
	}
	if n.pos == 0 {
		n.pos = count - 1
		return
	}
	n.pos--
}

// ToggleFilter switches between all and starred cards. The numeric position
// is kept and clamped into the new view. Switching into an empty view is
// refused and reported as false.
func (n *Navigator) ToggleFilter() bool {
	if n.empty || n.resync() == 0 {
		return false
	}
	next := All
	if n.mode == All {
		next = StarredOnly
	}
	count := n.countFor(next)
	if count == 0 {
		return false
	}
	n.mode = next
	if n.pos >= count {
		n.pos = count - 1
	}
	return true
}

// ToggleStar flips the star of the current card. In starred-only mode that
// removes the card from the view: the position steps back one, wrapping to
// the new last card, and when no starred card is left the navigator becomes
// Empty and ToggleStar returns true.
func (n *Navigator) ToggleStar() (ended bool) {
	i, ok := n.Index()
	if !ok {
		return n.empty
	}
	n.deck.ToggleStar(i)
	if n.mode != StarredOnly {
		return false
	}

	count := n.Count()
	if count == 0 {
		n.empty = true
		n.pos = 0
		return true
	}
	if n.pos == 0 {
		n.pos = count - 1
	} else {
		n.pos--
	}
	return false
}

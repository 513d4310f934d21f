package deck

import (
	"fmt"
	"io"
)

// Deck is an ordered, fixed-length collection of cards. Toggling a star is
// the only mutation.
type Deck struct {
	cards []Card
}

// New returns a deck holding a copy of cards.
func New(cards []Card) *Deck {
	dup := make([]Card, len(cards))
	copy(dup, cards)
	return &Deck{cards: dup}
}

// Load parses r with c. A parse failure produces no deck.
func Load(r io.Reader, c Codec) (*Deck, error) {
	cards, err := c.Parse(r)
	if err != nil {
		return nil, err
	}
	return &Deck{cards: cards}, nil
}

// Save writes every card in its current state and order.
func (d *Deck) Save(w io.Writer, c Codec) error {
	return c.Write(w, d.cards)
}

// Len returns the number of cards.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Card returns the card at index i.
func (d *Deck) Card(i int) Card {
	return d.cards[i]
}

// Cards returns a copy of all cards.
func (d *Deck) Cards() []Card {
	dup := make([]Card, len(d.cards))
	copy(dup, d.cards)
	return dup
}

// StarredCount returns how many cards are starred.
func (d *Deck) StarredCount() int {
	n := 0
	for _, card := range d.cards {
		if card.Starred {
			n++
		}
	}
	return n
}

// ToggleStar flips the star of the card at index i and returns the new value.
// An out of range index is a programming error and panics.
func (d *Deck) ToggleStar(i int) bool {
	if i < 0 || i >= len(d.cards) {
		panic(fmt.Sprintf("deck: toggle star index %d out of range [0,%d)", i, len(d.cards)))
	}
	d.cards[i].Starred = !d.cards[i].Starred
	return d.cards[i].Starred
}

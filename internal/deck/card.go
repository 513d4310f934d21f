// Package deck holds flashcards, the delimited text codec that reads and
// writes them, and helpers for deck files on disk.
package deck

// Card is a single flashcard. Cards have no identity beyond their position in
// a Deck.
type Card struct {
	Front   string
	Back    string
	Starred bool
}

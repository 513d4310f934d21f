package app

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/five82/flashdeck/internal/deck"
)

// DeckStats summarizes one deck file.
type DeckStats struct {
	Path    string
	Name    string
	Cards   int
	Starred int
}

// String formats the summary as "name: N terms, M starred".
func (s DeckStats) String() string {
	return fmt.Sprintf("%s: %d terms, %d starred", s.Name, s.Cards, s.Starred)
}

// CollectStats parses the decks concurrently, at most limit at a time, and
// returns their summaries in the order of paths.
func CollectStats(ctx context.Context, paths []string, c deck.Codec, limit int) ([]DeckStats, error) {
	stats := make([]DeckStats, len(paths))

	g, gCtx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, path := range paths {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			d, err := deck.LoadFile(path, c)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			stats[i] = DeckStats{
				Path:    path,
				Name:    deck.Name(path),
				Cards:   d.Len(),
				Starred: d.StarredCount(),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}

// WriteStarred writes the starred cards of the deck at path to w in the deck
// format and returns how many were written.
func WriteStarred(w io.Writer, path string, c deck.Codec) (int, error) {
	d, err := deck.LoadFile(path, c)
	if err != nil {
		return 0, err
	}
	var starred []deck.Card
	for _, card := range d.Cards() {
		if card.Starred {
			starred = append(starred, card)
		}
	}
	if err := c.Write(w, starred); err != nil {
		return 0, fmt.Errorf("write starred cards: %w", err)
	}
	return len(starred), nil
}

package state

import (
	"sync"
	"time"

	"github.com/five82/flashdeck/internal/deck"
	"github.com/five82/flashdeck/internal/navigator"
)

// selfWriteWindow hides change notifications caused by our own saves.
const selfWriteWindow = time.Second

// Snapshot represents the session state the UI renders.
type Snapshot struct {
	Name          string
	Path          string
	Card          deck.Card
	HasCard       bool
	Position      int
	Count         int
	Total         int
	Starred       int
	Mode          navigator.FilterMode
	Ended         bool
	Dirty         bool // stars changed since load or last save
	ChangedOnDisk bool // the deck file was modified by someone else
	LastError     error
}

// Store serializes every navigation and star change of one viewing session.
// The navigator's invariants do not survive concurrent mutation, so all
// access goes through the mutex.
type Store struct {
	mu            sync.Mutex
	path          string
	name          string
	deck          *deck.Deck
	nav           *navigator.Navigator
	dirty         bool
	changedOnDisk bool
	lastSaved     time.Time
	lastErr       error
}

// NewStore starts a session over d showing the view selected by mode.
func NewStore(path string, d *deck.Deck, mode navigator.FilterMode) *Store {
	return &Store{
		path: path,
		name: deck.Name(path),
		deck: d,
		nav:  navigator.New(d, mode),
	}
}

// Path returns the deck file the session was opened from.
func (s *Store) Path() string {
	return s.path
}

// Advance moves to the next card.
func (s *Store) Advance() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nav.Advance()
}

// Retreat moves to the previous card.
func (s *Store) Retreat() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nav.Retreat()
}

// ToggleFilter switches between all and starred cards and reports whether
// the switch happened.
func (s *Store) ToggleFilter() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nav.ToggleFilter()
}

// ToggleStar flips the current card's star. It returns true when the session
// has no card left to show.
func (s *Store) ToggleStar() (ended bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.nav.Empty() {
		return true
	}
	s.dirty = true
	return s.nav.ToggleStar()
}

// MarkChangedOnDisk records an external modification of the deck file seen
// at the given time. Notifications right after our own save are ignored.
func (s *Store) MarkChangedOnDisk(at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.lastSaved.IsZero() && at.Sub(s.lastSaved) < selfWriteWindow {
		return
	}
	s.changedOnDisk = true
}

// Save hands the deck to save under the lock. On failure the error is
// recorded and the in-memory deck is left untouched so the save can be
// retried.
func (s *Store) Save(save func(path string, d *deck.Deck) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := save(s.path, s.deck); err != nil {
		s.lastErr = err
		return err
	}
	s.lastErr = nil
	s.lastSaved = time.Now()
	s.dirty = false
	s.changedOnDisk = false
	return nil
}

// Snapshot returns a copy of the current session state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	card, ok := s.nav.Current()
	snap := Snapshot{
		Name:          s.name,
		Path:          s.path,
		Card:          card,
		HasCard:       ok,
		Position:      s.nav.Position(),
		Count:         s.nav.Count(),
		Total:         s.deck.Len(),
		Starred:       s.deck.StarredCount(),
		Mode:          s.nav.Mode(),
		Ended:         s.nav.Empty(),
		Dirty:         s.dirty,
		ChangedOnDisk: s.changedOnDisk,
		LastError:     s.lastErr,
	}
	return snap
}

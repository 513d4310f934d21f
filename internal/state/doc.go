// Package state owns the mutable session behind the card viewer.
//
// A Store wraps the deck being studied and the navigator walking it. The
// Bubble Tea update loop mutates it on key presses and gestures while the
// file watcher reports external changes from its own goroutine, so every
// method takes the store's mutex and the UI only ever renders Snapshot
// copies.
//
// Saving goes through Store.Save, which records the outcome: a failed save
// keeps the deck in memory, sets Snapshot.LastError and can simply be
// called again.
package state

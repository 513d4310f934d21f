// Package ui is the flashdeck terminal interface, built on Bubble Tea.
//
// The program moves through four screens:
//
//   - picker: a bubbles file picker limited to deck extensions
//   - selector: deck summary, choice between all and starred terms
//   - viewer: one card at a time, flipped, starred and navigated by key or
//     by dragging the mouse horizontally
//   - save error: shown when writing the deck back fails, offering retry
//
// A viewing session is held in a state.Store. Keys and mouse events mutate it
// directly from Update; the deck watcher runs as a long-lived command and
// flags external edits on the store, which the refresh tick picks up through
// Store.Snapshot.
//
// Leaving the viewer always writes the deck back to its file.
package ui

// Package watch reports external modifications of an open deck file.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 200 * time.Millisecond

// Watch calls onChange after the file at path is written, created, renamed
// or removed by anyone, until ctx is cancelled. Bursts of events are
// collapsed into one call. The parent directory is watched rather than the
// file itself because editors usually replace files by renaming over them.
func Watch(ctx context.Context, path string, logger *slog.Logger, onChange func(at time.Time)) error {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve deck path: %w", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = w.Close() }()

	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch deck dir: %w", err)
	}
	logger.Debug("watcher: started", slog.String("path", abs))

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			logger.Debug("watcher: stopped", slog.String("path", abs))
			return nil

		case at := <-fire:
			fire = nil
			logger.Info("watcher: deck changed on disk", slog.String("path", abs))
			onChange(at)

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) &&
				!ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
				continue
			}
			logger.Debug("watcher: event", slog.String("path", abs), slog.String("op", ev.Op.String()))
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}

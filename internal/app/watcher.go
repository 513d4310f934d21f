package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/five82/flashdeck/internal/ui"
)

const (
	baseRetryInterval = 2 * time.Second
	maxRetryInterval  = 30 * time.Second
)

// watchFunc matches watch.Watch.
type watchFunc func(ctx context.Context, path string, logger *slog.Logger, onChange func(at time.Time)) error

// deckWatcher returns a ui.WatchFunc that keeps run going for the whole
// viewing session. A watcher that fails (for example while the deck's
// directory is being replaced) is restarted with exponential backoff.
func deckWatcher(logger *slog.Logger, base time.Duration, run watchFunc) ui.WatchFunc {
	return func(ctx context.Context, path string, onChange func(at time.Time)) error {
		failures := 0
		for {
			err := run(ctx, path, logger, onChange)
			if err == nil || ctx.Err() != nil {
				return nil
			}

			wait := calculateBackoff(failures, base)
			failures++
			logger.Warn("deck watch failed",
				slog.String("path", path),
				slog.String("error", err.Error()),
				slog.Duration("retry_in", wait),
			)

			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil
			case <-timer.C:
			}
		}
	}
}

// calculateBackoff doubles base for each consecutive failure, capped at
// maxRetryInterval.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	if failures >= 16 {
		return maxRetryInterval
	}
	d := base << failures
	if d > maxRetryInterval {
		return maxRetryInterval
	}
	return d
}

package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/five82/flashdeck/internal/config"
	"github.com/five82/flashdeck/internal/logging"
	"github.com/five82/flashdeck/internal/prefs"
	"github.com/five82/flashdeck/internal/ui"
	"github.com/five82/flashdeck/internal/watch"
)

// Options configure the Flashdeck application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/flashdeck/prefs.toml
	Deck       string // deck file or directory to open; empty uses deck_dir
}

// Run boots the Flashdeck TUI until the user quits or the context is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, closeLog, err := logging.New(logging.Options{
		Path:    cfg.LogFile,
		Level:   cfg.LogLevel,
		Journal: cfg.LogJournal,
	})
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = closeLog() }()

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		logger.Warn("load prefs failed", slog.String("error", err.Error()))
	}

	start := opts.Deck
	if start != "" {
		if start, err = config.ExpandPath(start); err != nil {
			return fmt.Errorf("resolve deck path: %w", err)
		}
	}

	logger.Info("flashdeck starting",
		slog.String("deck_dir", cfg.DeckDir),
		slog.String("start", start),
		slog.String("theme", userPrefs.Theme),
	)

	uiOpts := ui.Options{
		Context:   ctx,
		Config:    cfg,
		Prefs:     userPrefs,
		PrefsPath: opts.PrefsPath,
		Logger:    logger,
		StartPath: start,
		Watch:     deckWatcher(logger, baseRetryInterval, watch.Watch),
	}
	if err := ui.Run(uiOpts); err != nil {
		logger.Error("ui stopped", slog.String("error", err.Error()))
		return err
	}
	logger.Info("flashdeck stopped")
	return nil
}

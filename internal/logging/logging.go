// Package logging builds the application's slog logger. The terminal belongs
// to the TUI, so records go to a log file and, optionally, to the systemd
// journal.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

// Options configure New.
type Options struct {
	Path    string // log file; empty disables file logging
	Level   string // debug, info, warn or error
	Journal bool   // also send records to the systemd journal
}

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(name string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo
	}
	return level
}

// New returns a logger fanning out to the configured sinks and a func that
// closes them.
func New(opts Options) (*slog.Logger, func() error, error) {
	level := ParseLevel(opts.Level)
	closer := func() error { return nil }

	var handlers []slog.Handler
	var fileHandler slog.Handler
	if strings.TrimSpace(opts.Path) != "" {
		if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log dir: %w", err)
		}
		file, err := os.OpenFile(opts.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		closer = file.Close
		fileHandler = slog.NewTextHandler(file, &slog.HandlerOptions{Level: level})
		handlers = append(handlers, fileHandler)
	}

	if opts.Journal {
		journalHandler, err := slogjournal.NewHandler(&slogjournal.Options{
			Level: level,
			ReplaceGroup: func(key string) string {
				return toJournalKey(key)
			},
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				a.Key = toJournalKey(a.Key)
				return a
			},
		})
		if err != nil {
			if fileHandler != nil {
				record := slog.NewRecord(time.Now(), slog.LevelWarn, "new systemd journal handler", 0)
				record.Add("error", err)
				_ = fileHandler.Handle(context.Background(), record)
			}
		} else {
			handlers = append(handlers, journalHandler)
		}
	}

	if len(handlers) == 0 {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), closer, nil
	}
	return slog.New(slogmulti.Fanout(handlers...)), closer, nil
}

// toJournalKey converts an attribute key to a valid journal field name.
func toJournalKey(str string) string {
	str = strings.ToUpper(str)
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' ||
			r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, str)
}

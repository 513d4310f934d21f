package ui

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/flashdeck/internal/config"
	"github.com/five82/flashdeck/internal/deck"
	"github.com/five82/flashdeck/internal/gesture"
	"github.com/five82/flashdeck/internal/navigator"
	"github.com/five82/flashdeck/internal/prefs"
	"github.com/five82/flashdeck/internal/state"
)

// screen identifies the active top-level screen.
type screen int

const (
	screenPicker screen = iota
	screenSelector
	screenViewer
	screenSaveError
)

// WatchFunc blocks until ctx is done, calling onChange whenever the file at
// path is modified by another program.
type WatchFunc func(ctx context.Context, path string, onChange func(at time.Time)) error

// Options configures the UI.
type Options struct {
	Context   context.Context
	Config    config.Config
	Prefs     prefs.Prefs
	PrefsPath string
	Logger    *slog.Logger
	StartPath string // deck file to open, or directory to browse
	Watch     WatchFunc
	Tick      time.Duration
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	codec     deck.Codec
	logger    *slog.Logger
	prefsPath string
	prefs     prefs.Prefs
	watch     WatchFunc
	tick      time.Duration
	threshold int

	// UI state
	theme    Theme
	keys     keyMap
	help     help.Model
	screen   screen
	width    int
	height   int
	showHelp bool
	notice   string
	quitting bool // quit once the pending save succeeds

	// Picker state
	picker    filepicker.Model
	pickerErr error

	// Selector state
	selPath string
	selDeck *deck.Deck
	selMode navigator.FilterMode

	// Viewer state
	store       *state.Store
	snapshot    state.Snapshot
	showBack    bool
	decoder     *gesture.Decoder
	pressed     bool
	dragged     bool
	stopWatch   context.CancelFunc
	saveErr     error
	saveErrPath string
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	tick := opts.Tick
	if tick <= 0 {
		tick = DefaultUIInterval
	}

	p := opts.Prefs
	if p.Theme == "" {
		p.Theme = prefs.Defaults().Theme
	}
	if p.DefaultSide == "" {
		p.DefaultSide = prefs.SideFront
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	cfg := opts.Config
	m := Model{
		ctx:       ctx,
		codec:     cfg.Codec(),
		logger:    logger,
		prefsPath: prefsPath,
		prefs:     p,
		watch:     opts.Watch,
		tick:      tick,
		threshold: cfg.GestureThreshold,
		theme:     GetTheme(p.Theme),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		screen:    screenPicker,
	}
	m.picker = newPicker(cfg, m.theme)

	start := strings.TrimSpace(opts.StartPath)
	if start == "" {
		start = cfg.DeckDir
	}
	if info, err := os.Stat(start); err == nil && !info.IsDir() {
		m.picker.CurrentDirectory = filepath.Dir(start)
		m.openDeck(start)
	} else if start != "" {
		m.picker.CurrentDirectory = start
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.picker.Init(),
		tickCmd(m.tick),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.screen == screenViewer && !m.showHelp {
			return m.handleMouse(msg)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		if m.store != nil && msg.Path == m.store.Path() {
			m.snapshot = state.Snapshot(msg)
		}
		return m, nil

	case shutdownMsg:
		if m.screen == screenViewer {
			m.closeViewer()
		}
		m.stopWatcher()
		return m, tea.Quit

	case watchStoppedMsg:
		if msg.err != nil {
			m.logger.Warn("deck watcher stopped",
				slog.String("path", msg.path),
				slog.String("error", msg.err.Error()),
			)
		}
		return m, nil
	}

	// Directory listings and other picker internals.
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	switch m.screen {
	case screenSelector:
		b.WriteString(m.renderSelector())
	case screenViewer:
		b.WriteString(m.renderViewer())
	case screenSaveError:
		b.WriteString(m.renderSaveError())
	default:
		b.WriteString(m.renderPicker())
	}
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.picker.Styles = pickerStyles(m.theme)
		m.prefs.Theme = m.theme.Name
		m.savePrefs()
		return m, nil
	case key.Matches(msg, m.keys.SwapSide):
		if m.prefs.DefaultSide == prefs.SideBack {
			m.prefs.DefaultSide = prefs.SideFront
		} else {
			m.prefs.DefaultSide = prefs.SideBack
		}
		m.showBack = m.defaultBack()
		m.savePrefs()
		return m, nil
	}

	switch m.screen {
	case screenSelector:
		return m.handleSelectorKey(msg)
	case screenViewer:
		return m.handleViewerKey(msg)
	case screenSaveError:
		return m.handleSaveErrorKey(msg)
	default:
		return m.handlePickerKey(msg)
	}
}

// quit leaves the program, saving an open deck first.
func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.screen == screenViewer {
		m.quitting = true
		m.closeViewer()
		if m.screen == screenSaveError {
			return m, nil
		}
	}
	m.stopWatcher()
	return m, tea.Quit
}

// handleTick processes the refresh tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{tickCmd(m.tick)}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		m.logger.Warn("save prefs failed",
			slog.String("path", m.prefsPath),
			slog.String("error", err.Error()),
		)
	}
}

func (m Model) defaultBack() bool {
	return m.prefs.DefaultSide == prefs.SideBack
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

// shutdownMsg asks the program to save and exit, e.g. on SIGTERM.
type shutdownMsg struct{}

type watchStoppedMsg struct {
	path string
	err  error
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

func watchCmd(ctx context.Context, watch WatchFunc, store *state.Store) tea.Cmd {
	return func() tea.Msg {
		err := watch(ctx, store.Path(), store.MarkChangedOnDisk)
		return watchStoppedMsg{path: store.Path(), err: err}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	_, err := run(opts.Context, New(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	return err
}

// run drives m until it quits. Signals are left to ctx so that shutdown
// always reaches Update and the open deck is saved before the program exits.
func run(ctx context.Context, m Model, opts ...tea.ProgramOption) (tea.Model, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	opts = append([]tea.ProgramOption{tea.WithoutSignalHandler()}, opts...)
	p := tea.NewProgram(m, opts...)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			p.Send(shutdownMsg{})
		case <-done:
		}
	}()

	final, err := p.Run()
	if fm, ok := final.(Model); ok && fm.screen == screenViewer {
		// Killed before a shutdown message got through.
		fm.closeViewer()
		final = fm
	}
	return final, err
}

package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	SwapSide   key.Binding
	Back       key.Binding

	// Selector
	Continue   key.Binding
	ToggleMode key.Binding

	// Viewer
	Flip         key.Binding
	Next         key.Binding
	Prev         key.Binding
	ToggleStar   key.Binding
	ToggleFilter key.Binding

	// Save error
	Retry key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		SwapSide: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "Swap default side"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "q"),
			key.WithHelp("esc", "Back"),
		),

		// Selector
		Continue: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Study"),
		),
		ToggleMode: key.NewBinding(
			key.WithKeys("s", "."),
			key.WithHelp("s", "All/starred"),
		),

		// Viewer
		Flip: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("space", "Flip"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l", "n"),
			key.WithHelp("→/l", "Next card"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "p"),
			key.WithHelp("←/h", "Previous card"),
		),
		ToggleStar: key.NewBinding(
			key.WithKeys("s", "."),
			key.WithHelp("s", "Star"),
		),
		ToggleFilter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "All/starred"),
		),

		// Save error
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Retry save"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Continue, k.ToggleMode},
		{k.Flip, k.Next, k.Prev, k.ToggleStar, k.ToggleFilter},
		{k.Retry, k.Back},
		{k.SwapSide, k.CycleTheme, k.Help, k.Quit},
	}
}

// screenHelp returns the footer bindings for a screen.
func (k keyMap) screenHelp(s screen) []key.Binding {
	switch s {
	case screenSelector:
		return []key.Binding{k.Continue, k.ToggleMode, k.Back, k.Help}
	case screenViewer:
		return []key.Binding{k.Flip, k.Next, k.Prev, k.ToggleStar, k.ToggleFilter, k.Back, k.Help}
	case screenSaveError:
		return []key.Binding{k.Retry, k.Back}
	default:
		return k.ShortHelp()
	}
}

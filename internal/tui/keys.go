package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the TUI.
type KeyMap struct {
	// Navigation
	NextStar key.Binding
	PrevStar key.Binding

	// Star movement (keyboard alternative to mouse dragging)
	MoveUp    key.Binding
	MoveDown  key.Binding
	MoveLeft  key.Binding
	MoveRight key.Binding

	// Actions
	Toggle key.Binding // Toggle completion of the selected star
	New    key.Binding // Create a new star
	Delete key.Binding // Delete the selected star

	// View
	NextScope key.Binding // Cycle time scope
	PrevScope key.Binding // Cycle time scope backwards
	View      key.Binding // Cycle sky / list / profile
	Help      key.Binding // Show help

	// General
	Quit    key.Binding // Quit application
	Escape  key.Binding // Cancel/back
	Enter   key.Binding // Confirm input
	Confirm key.Binding // Confirm action (in confirm mode)
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextStar: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j", "next star"),
		),
		PrevStar: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k", "prev star"),
		),
		MoveUp: key.NewBinding(
			key.WithKeys("K", "shift+up"),
			key.WithHelp("K", "move up"),
		),
		MoveDown: key.NewBinding(
			key.WithKeys("J", "shift+down"),
			key.WithHelp("J", "move down"),
		),
		MoveLeft: key.NewBinding(
			key.WithKeys("H", "shift+left"),
			key.WithHelp("H", "move left"),
		),
		MoveRight: key.NewBinding(
			key.WithKeys("L", "shift+right"),
			key.WithHelp("L", "move right"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle done"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new star"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		NextScope: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next scope"),
		),
		PrevScope: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev scope"),
		),
		View: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "cycle view"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "confirm"),
		),
	}
}

// ShortHelp returns keybindings to show in the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextStar, k.PrevStar, k.Toggle, k.New, k.NextScope, k.View, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextStar, k.PrevStar},
		{k.MoveUp, k.MoveDown, k.MoveLeft, k.MoveRight},
		{k.Toggle, k.New, k.Delete},
		{k.NextScope, k.PrevScope, k.View},
		{k.Help, k.Quit},
	}
}

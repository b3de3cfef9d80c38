package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines keyboard shortcuts for the explorer
type KeyMap struct {
	// Global
	Quit key.Binding
	Help key.Binding

	// Form navigation
	NextField key.Binding
	PrevField key.Binding

	// Profile selector
	PrevProfile key.Binding
	NextProfile key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "down", "enter"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "previous field"),
		),
		PrevProfile: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "previous profile"),
		),
		NextProfile: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next profile"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.PrevProfile, k.NextProfile, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextField, k.PrevField},
		{k.PrevProfile, k.NextProfile},
		{k.Help, k.Quit},
	}
}

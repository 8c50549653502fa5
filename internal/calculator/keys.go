package calculator

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keys the calculator handles itself.
// Everything else goes to the active field's editor.
type KeyMap struct {
	Quit    key.Binding
	Next    key.Binding
	Prev    key.Binding
	Newline key.Binding // Swallowed so fields stay single-line
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Quit},
	}
}

// DefaultKeyMap returns the calculator key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "quit"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),
		// ctrl+m arrives as "enter"
		Newline: key.NewBinding(
			key.WithKeys("enter", "ctrl+j"),
		),
	}
}

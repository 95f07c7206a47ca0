package carousel

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keyboard bindings of the carousel.
type KeyMap struct {
	Previous key.Binding
	Next     key.Binding
	First    key.Binding
	Last     key.Binding
	Pause    key.Binding
}

// DefaultKeyMap returns arrow and vim-style bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Previous: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next"),
		),
		First: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "first"),
		),
		Last: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "last"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", " "),
			key.WithHelp("p", "pause autoplay"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Previous, k.Next, k.Pause}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Previous, k.Next},
		{k.First, k.Last, k.Pause},
	}
}

package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the storefront-level bindings. Carousel navigation lives in
// carousel.KeyMap.
type KeyMap struct {
	AddToCart  key.Binding
	CopyID     key.Binding
	Find       key.Binding
	Help       key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the storefront bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		AddToCart:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add to cart")),
		CopyID:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy product id")),
		Find:       key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "find product")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		ScrollUp:   key.NewBinding(key.WithKeys("pgup", "k", "up"), key.WithHelp("k/pgup", "scroll details up")),
		ScrollDown: key.NewBinding(key.WithKeys("pgdown", "j", "down"), key.WithHelp("j/pgdn", "scroll details down")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.AddToCart, k.Find, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.AddToCart, k.CopyID, k.Find},
		{k.ScrollUp, k.ScrollDown},
		{k.Help, k.Quit},
	}
}

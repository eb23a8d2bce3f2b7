package tui

import "github.com/charmbracelet/bubbles/key"

// ---------------------------------------------------------------------------
// Key bindings
// ---------------------------------------------------------------------------

type keyMap struct {
	Search   key.Binding
	Location key.Binding
	Sort     key.Binding
	Theme    key.Binding
	UpDown   key.Binding
	Enter    key.Binding
	Book     key.Binding
	Review   key.Binding
	Close    key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Location: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "location")),
		Sort:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		UpDown:   key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("j/k", "navigate")),
		Enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "view profile")),
		Book:     key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "book")),
		Review:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "review")),
		Close:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) listingHelp() []key.Binding {
	return []key.Binding{k.Search, k.Location, k.Sort, k.UpDown, k.Enter, k.Theme, k.Quit}
}

func (k keyMap) profileHelp() []key.Binding {
	return []key.Binding{k.Book, k.Review, k.UpDown, k.Close, k.Quit}
}

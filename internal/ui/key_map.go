package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the browser.
type keyMap struct {
	up       key.Binding
	down     key.Binding
	audience key.Binding
	category key.Binding
	tag      key.Binding
	clear    key.Binding
	search   key.Binding
	enter    key.Binding
	back     key.Binding
	quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		audience: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "audience")),
		category: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "category")),
		tag:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "tag")),
		clear:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear filters")),
		search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.audience, k.category, k.tag, k.clear, k.search, k.enter, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.enter, k.back},
		{k.audience, k.category, k.tag},
		{k.clear, k.search, k.quit},
	}
}

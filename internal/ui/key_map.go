package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up     key.Binding
	down   key.Binding
	year   key.Binding
	city   key.Binding
	event  key.Binding
	artist key.Binding
	sort   key.Binding
	search key.Binding
	reset  key.Binding
	add    key.Binding
	edit   key.Binding
	delete key.Binding
	theme  key.Binding
	help   key.Binding
	quit   key.Binding

	next key.Binding
	prev key.Binding
	save key.Binding
	back key.Binding
	yes  key.Binding
	no   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		year:   key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "year")),
		city:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "city")),
		event:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "event")),
		artist: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "artist")),
		sort:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		search: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		reset:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "reset filters")),
		add:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "add")),
		edit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit")),
		delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		theme:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		next: key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		prev: key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "previous field")),
		save: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		back: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		yes:  key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yes")),
		no:   key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "no")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.add, k.edit, k.delete, k.search, k.help, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.edit, k.add, k.delete},
		{k.year, k.city, k.event, k.artist},
		{k.sort, k.search, k.reset},
		{k.theme, k.help, k.quit},
	}
}

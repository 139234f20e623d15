package app

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the shell's key bindings.
type keyMap struct {
	Fullscreen key.Binding
	Gallery    key.Binding
	Sidebar    key.Binding
	Upload     key.Binding
	HideAll    key.Binding
	Theme      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Fullscreen: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "refresh all"),
		),
		Gallery: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "load gallery"),
		),
		Sidebar: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "sync albums"),
		),
		Upload: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "upload"),
		),
		HideAll: key.NewBinding(
			key.WithKeys("x", "esc"),
			key.WithHelp("x", "cancel all"),
		),
		Theme: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "toggle theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Fullscreen, k.Gallery, k.Upload, k.HideAll, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Fullscreen, k.Gallery, k.Sidebar, k.Upload},
		{k.HideAll, k.Theme, k.Help, k.Quit},
	}
}

package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the editor's key bindings, centralized the way the
// teacher's tui/shared package does so ? help text and dispatch stay
// in sync.
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Edit   key.Binding
	Insert key.Binding
	Escape key.Binding
	Save   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Edit: key.NewBinding(
			key.WithKeys("i", "e"),
			key.WithHelp("i/e", "edit line"),
		),
		Insert: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "insert line below"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc", "enter"),
			key.WithHelp("esc", "exit edit"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Edit, k.Insert, k.Save, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Edit, k.Insert, k.Escape},
		{k.Save, k.Help, k.Quit},
	}
}

package preview

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Narrow     key.Binding
	Widen      key.Binding
	NarrowFast key.Binding
	WidenFast  key.Binding
	Min        key.Binding
	Max        key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Narrow: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "narrower"),
		),
		Widen: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "wider"),
		),
		NarrowFast: key.NewBinding(
			key.WithKeys("shift+left", "H"),
			key.WithHelp("H", "narrower ×10"),
		),
		WidenFast: key.NewBinding(
			key.WithKeys("shift+right", "L"),
			key.WithHelp("L", "wider ×10"),
		),
		Min: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "min viewport"),
		),
		Max: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "max viewport"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Narrow, k.Widen, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Narrow, k.Widen, k.NarrowFast, k.WidenFast},
		{k.Min, k.Max, k.Help, k.Quit},
	}
}

package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the global shortcuts plus the page-local ones shown in help.
type keyMap struct {
	Home     key.Binding
	Projects key.Binding
	Timeline key.Binding
	Stats    key.Binding
	Contact  key.Binding
	Terminal key.Binding
	Help     key.Binding
	Back     key.Binding
	Quit     key.Binding

	NextTab    key.Binding
	PrevTab    key.Binding
	Up         key.Binding
	Down       key.Binding
	Search     key.Binding
	CycleTech  key.Binding
	ClearAll   key.Binding
	Open       key.Binding
	OpenLink   key.Binding
	CopyEmail  key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Home: key.NewBinding(
			key.WithKeys("alt+h"),
			key.WithHelp("alt+h", "home"),
		),
		Projects: key.NewBinding(
			key.WithKeys("alt+p"),
			key.WithHelp("alt+p", "projects"),
		),
		Timeline: key.NewBinding(
			key.WithKeys("alt+t"),
			key.WithHelp("alt+t", "timeline"),
		),
		Stats: key.NewBinding(
			key.WithKeys("alt+s"),
			key.WithHelp("alt+s", "stats"),
		),
		Contact: key.NewBinding(
			key.WithKeys("alt+c"),
			key.WithHelp("alt+c", "contact"),
		),
		Terminal: key.NewBinding(
			key.WithKeys("alt+T"),
			key.WithHelp("alt+shift+t", "terminal"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "shortcuts"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("shift+tab", "prev tab"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		CycleTech: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "tech filter"),
		),
		ClearAll: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear filters"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		OpenLink: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open link"),
		),
		CopyEmail: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy email"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "scroll down"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Home, k.Projects, k.Stats, k.Contact, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Home, k.Projects, k.Timeline, k.Stats, k.Contact, k.Terminal},
		{k.NextTab, k.PrevTab, k.Up, k.Down, k.Open},
		{k.Search, k.CycleTech, k.ClearAll, k.OpenLink, k.CopyEmail},
		{k.ScrollUp, k.ScrollDown, k.Back, k.Help, k.Quit},
	}
}

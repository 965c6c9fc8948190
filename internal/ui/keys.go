package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit      key.Binding
	Next      key.Binding
	Prev      key.Binding
	Up        key.Binding
	Down      key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Home      key.Binding
	End       key.Binding
	FocusPrev key.Binding
	FocusNext key.Binding
	Open      key.Binding
	Close     key.Binding
	Copy      key.Binding
	Theme     key.Binding
	Top       key.Binding
	Menu      key.Binding
	Jump      key.Binding
	Help      key.Binding
}

var keys = keyMap{
	Quit:      key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	Next:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next section")),
	Prev:      key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous section")),
	Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
	Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
	PageUp:    key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup", "page up")),
	PageDown:  key.NewBinding(key.WithKeys("pgdown", " ", "f"), key.WithHelp("pgdn", "page down")),
	Home:      key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first line")),
	End:       key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("end", "last line")),
	FocusPrev: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "previous clip")),
	FocusNext: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next clip")),
	Open:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "enlarge clip")),
	Close:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	Copy:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy source")),
	Theme:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle theme")),
	Top:       key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "back to top")),
	Menu:      key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "section menu")),
	Jump:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "jump to section")),
	Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
}

func (k keyMap) helpBindings() []key.Binding {
	return []key.Binding{
		k.Next, k.Prev, k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End,
		k.FocusPrev, k.FocusNext, k.Open, k.Close, k.Copy, k.Top,
		k.Menu, k.Jump, k.Theme, k.Help, k.Quit,
	}
}

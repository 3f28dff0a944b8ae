package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the entire application
type KeyMap struct {
	Page   PageKeyMap
	Drawer DrawerKeyMap
	Modal  ModalKeyMap
}

// PageKeyMap defines keybindings while the page itself has focus
type PageKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Section  key.Binding
	NextCard key.Binding
	PrevCard key.Binding
	Open     key.Binding
	Menu     key.Binding
	Theme    key.Binding
	Resume   key.Binding
	WebView  key.Binding
	Quit     key.Binding
}

// DrawerKeyMap defines keybindings while the nav drawer is open
type DrawerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Close  key.Binding
}

// ModalKeyMap defines keybindings while the project modal is open
type ModalKeyMap struct {
	Close key.Binding
	Copy  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Page: PageKeyMap{
			Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
			Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
			PageUp:   key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup", "page up")),
			PageDown: key.NewBinding(key.WithKeys("pgdown", "f"), key.WithHelp("pgdn", "page down")),
			Top:      key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
			Section:  key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", "jump to section")),
			NextCard: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next project")),
			PrevCard: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab", "prev project")),
			Open:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "open project")),
			Menu:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "menu")),
			Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
			Resume:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "résumé")),
			WebView:  key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "web version")),
			Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		},
		Drawer: DrawerKeyMap{
			Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
			Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
			Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "go")),
			Close:  key.NewBinding(key.WithKeys("esc", "m"), key.WithHelp("esc", "close")),
		},
		Modal: ModalKeyMap{
			Close: key.NewBinding(key.WithKeys("esc", "x"), key.WithHelp("esc/x", "close")),
			Copy:  key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
		},
	}
}

// ShortHelp returns keybindings shown in the footer for the page state
func (k PageKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Section, k.Open, k.Menu, k.Theme, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k PageKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top},
		{k.Section, k.NextCard, k.PrevCard, k.Open},
		{k.Menu, k.Theme, k.Resume, k.WebView, k.Quit},
	}
}

func (k DrawerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Close}
}

func (k DrawerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func (k ModalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Copy, k.Close}
}

func (k ModalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

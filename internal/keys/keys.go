package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the application. Section views share
// it; a view only reacts to the bindings it lists in its hints.
type KeyMap struct {
	// Navigation
	Down key.Binding
	Up   key.Binding

	// Sections
	NextSection key.Binding
	PrevSection key.Binding
	Jump        key.Binding

	// Selection
	Select key.Binding
	Close  key.Binding

	// Back / Quit
	Back key.Binding
	Quit key.Binding

	// Search
	Search key.Binding

	// Command palette
	Command key.Binding

	// Help toggle
	Help key.Binding

	// Filters
	NextFilter key.Binding
	PrevFilter key.Binding
	NextRole   key.Binding
	PrevRole   key.Binding

	// Tabs
	NextTab key.Binding
	PrevTab key.Binding

	// Actions
	Like     key.Binding
	Compose  key.Binding
	Projects key.Binding
	Research key.Binding
}

// DefaultKeyMap returns the default set of keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		NextSection: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next section"),
		),
		PrevSection: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous section"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5"),
			key.WithHelp("1-5", "jump to section"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open detail"),
		),
		Close: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "close detail"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Command: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "command palette"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		NextFilter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "next filter"),
		),
		PrevFilter: key.NewBinding(
			key.WithKeys("F"),
			key.WithHelp("F", "previous filter"),
		),
		NextRole: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "next role"),
		),
		PrevRole: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "previous role"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("]", "l", "right"),
			key.WithHelp("]/→", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("[", "h", "left"),
			key.WithHelp("[/←", "previous tab"),
		),
		Like: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "like"),
		),
		Compose: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new post"),
		),
		Projects: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "explore projects"),
		),
		Research: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "our research"),
		),
	}
}

// ShortHelp returns the most essential keybindings for the compact help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.NextSection, k.Jump, k.Select, k.Back,
		k.Quit, k.Help, k.Command,
	}
}

// FullHelp returns all keybindings grouped by category for the expanded
// help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Close, k.Back, k.Quit},
		{k.NextSection, k.PrevSection, k.Jump, k.Command, k.Help},
		{k.Search, k.NextFilter, k.PrevFilter, k.NextRole, k.PrevRole},
		{k.NextTab, k.PrevTab, k.Like, k.Compose, k.Projects, k.Research},
	}
}

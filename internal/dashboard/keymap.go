package dashboard

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	NextPage key.Binding
	PrevPage key.Binding

	// Tabs
	CycleTab key.Binding
	TabAll   key.Binding
	TabHour  key.Binding
	TabDay   key.Binding

	// Filtering and sorting
	Search          key.Binding
	UserFilter      key.Binding
	CycleInputMint  key.Binding
	CycleOutputMint key.Binding
	ClearFilters    key.Binding
	Sort            key.Binding

	// Application
	Refresh   key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("←/h", "column left"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("→/l", "column right"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("n", "pgdown"),
			key.WithHelp("n", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("p", "pgup"),
			key.WithHelp("p", "prev page"),
		),

		CycleTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "cycle tabs"),
		),
		TabAll: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "all orders"),
		),
		TabHour: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "next hour"),
		),
		TabDay: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "next day"),
		),

		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		UserFilter: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "user filter"),
		),
		CycleInputMint: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "input mint"),
		),
		CycleOutputMint: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "output mint"),
		),
		ClearFilters: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear filters"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s", "enter"),
			key.WithHelp("s", "sort by column"),
		),

		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refetch"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "force quit"),
		),
	}
}

// ShortHelp returns key bindings for the footer hint line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.CycleTab, k.Search, k.Sort, k.Help, k.Quit}
}

// FullHelp returns all key bindings for the help overlay.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.NextPage, k.PrevPage, k.CycleTab, k.TabAll},
		{k.TabHour, k.TabDay, k.Search, k.UserFilter},
		{k.CycleInputMint, k.CycleOutputMint, k.ClearFilters, k.Sort},
		{k.Refresh, k.Help, k.Quit},
	}
}

package explore

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding

	// Focus switching
	FocusQuery   key.Binding
	FocusRegions key.Binding
	FocusDetails key.Binding
	NextPane     key.Binding
	Leave        key.Binding

	// Filters
	NextRhythm  key.Binding
	PrevRhythm  key.Binding
	ClearFilter key.Binding

	// Views
	SortNext   key.Binding
	ToggleHelp key.Binding

	// Quit
	Quit      key.Binding
	ForceQuit key.Binding
}

var defaultKeys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("k/up", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("j/dn", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "ctrl+b"),
		key.WithHelp("C-b", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+f"),
		key.WithHelp("C-f", "page down"),
	),
	Home: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("g", "top"),
	),
	End: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("G", "bottom"),
	),
	FocusQuery: key.NewBinding(
		key.WithKeys("/", "i"),
		key.WithHelp("/", "instrument"),
	),
	FocusRegions: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "regions"),
	),
	FocusDetails: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "details"),
	),
	NextPane: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next pane"),
	),
	Leave: key.NewBinding(
		key.WithKeys("esc", "enter"),
		key.WithHelp("esc", "done"),
	),
	NextRhythm: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "next rhythm"),
	),
	PrevRhythm: key.NewBinding(
		key.WithKeys("T"),
		key.WithHelp("T", "prev rhythm"),
	),
	ClearFilter: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("C-r", "clear filters"),
	),
	SortNext: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "sort"),
	),
	ToggleHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("C-c", "quit"),
	),
}

package tui

import "github.com/charmbracelet/bubbles/key"

// gridKeyMap defines key bindings for the card grid
type gridKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Activate key.Binding
	Reopen   key.Binding
	Reload   key.Binding
	Quit     key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k gridKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Activate, k.Reopen, k.Reload, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k gridKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Activate, k.Reopen, k.Reload, k.Quit},
	}
}

// dialogKeyMap defines key bindings inside the edit dialog
type dialogKeyMap struct {
	NextField key.Binding
	Save      key.Binding
	Close     key.Binding

	// Date field only
	PrevDay   key.Binding
	NextDay   key.Binding
	PrevWeek  key.Binding
	NextWeek  key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	Today     key.Binding
	SaveDate  key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k dialogKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Save, k.Close}
}

// FullHelp returns keybindings for the expanded help view
func (k dialogKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextField, k.Save, k.Close},
		{k.PrevDay, k.NextDay, k.PrevWeek, k.NextWeek, k.PrevMonth, k.NextMonth, k.Today},
	}
}

// dateKeys is the dialog help shown while the date field has focus
type dateKeys struct {
	dialogKeyMap
}

func (k dateKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevDay, k.NextDay, k.PrevWeek, k.PrevMonth, k.Today, k.SaveDate, k.NextField, k.Close}
}

func newGridKeyMap() gridKeyMap {
	return gridKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "edit"),
		),
		Reopen: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "resume edit"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}
}

func newDialogKeyMap() dialogKeyMap {
	return dialogKeyMap{
		NextField: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "next field"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save changes"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		PrevDay: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←/→", "day"),
		),
		NextDay: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next day"),
		),
		PrevWeek: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑/↓", "week"),
		),
		NextWeek: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next week"),
		),
		PrevMonth: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup/pgdn", "month"),
		),
		NextMonth: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "next month"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "today"),
		),
		SaveDate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save"),
		),
	}
}

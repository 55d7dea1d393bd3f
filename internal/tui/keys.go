package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Increment key.Binding
	Decrement key.Binding
	PrevWeek  key.Binding
	NextWeek  key.Binding
	ThisWeek  key.Binding
	Goals     key.Binding
	Refresh   key.Binding
	Dismiss   key.Binding
	Logout    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Increment: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "increment today"),
	),
	Decrement: key.NewBinding(
		key.WithKeys("-", "_"),
		key.WithHelp("-", "decrement today"),
	),
	PrevWeek: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "previous week"),
	),
	NextWeek: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next week"),
	),
	ThisWeek: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "this week"),
	),
	Goals: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "edit goals"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Dismiss: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "dismiss"),
	),
	Logout: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "logout"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Increment, k.Decrement, k.PrevWeek, k.NextWeek, k.Goals, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Increment, k.Decrement},
		{k.PrevWeek, k.NextWeek, k.ThisWeek, k.Refresh},
		{k.Goals, k.Dismiss, k.Logout, k.Help, k.Quit},
	}
}

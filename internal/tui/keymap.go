package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings of the workspace host. Split keys stand in
// for the modifier-clicks a browser host would see: s for shift+click,
// a for alt+click.
type KeyMap struct {
	NextLink      key.Binding
	PrevLink      key.Binding
	Click         key.Binding
	SplitVertical key.Binding
	SplitHoriz    key.Binding
	Close         key.Binding
	Grow          key.Binding
	Shrink        key.Binding
	FocusNext     key.Binding
	FocusPrev     key.Binding
	Help          key.Binding
	Quit          key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextLink: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "next link"),
		),
		PrevLink: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "previous link"),
		),
		Click: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "click link (no split)"),
		),
		SplitVertical: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "shift+click: split vertical"),
		),
		SplitHoriz: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "alt+click: split horizontal"),
		),
		Close: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "close active pane"),
		),
		Grow: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "grow"),
		),
		Shrink: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "shrink"),
		),
		FocusNext: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "focus next pane"),
		),
		FocusPrev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "focus previous pane"),
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
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SplitVertical, k.SplitHoriz, k.Close, k.FocusNext, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextLink, k.PrevLink, k.Click},
		{k.SplitVertical, k.SplitHoriz, k.Close},
		{k.Grow, k.Shrink, k.FocusNext, k.FocusPrev},
		{k.Help, k.Quit},
	}
}

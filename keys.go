package main

import "github.com/charmbracelet/bubbles/key"

// -------------------- KEY BINDINGS --------------------

// keyMap holds the keypad page bindings; the help bar is built from it
type keyMap struct {
	Digit   key.Binding
	Delete  key.Binding
	Clear   key.Binding
	Unit    key.Binding
	Confirm key.Binding
	Menu    key.Binding
	History key.Binding
	Logger  key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Digit: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9", ".", ","),
			key.WithHelp("0-9 .", "type"),
		),
		Delete: key.NewBinding(
			key.WithKeys("backspace", "delete"),
			key.WithHelp("⌫", "delete"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c", "C"),
			key.WithHelp("c", "clear"),
		),
		Unit: key.NewBinding(
			key.WithKeys("u", "U", "tab"),
			key.WithHelp("u", "unit"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "confirm"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m", "M", "esc"),
			key.WithHelp("m", "menu"),
		),
		History: key.NewBinding(
			key.WithKeys("h", "H"),
			key.WithHelp("h", "history"),
		),
		Logger: key.NewBinding(
			key.WithKeys("l", "L"),
			key.WithHelp("l", "logger"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Digit, k.Delete, k.Clear, k.Unit, k.Confirm, k.Menu, k.Logger, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Digit, k.Delete, k.Clear},
		{k.Unit, k.Confirm},
		{k.Menu, k.History, k.Logger, k.Quit},
	}
}

package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Decrement key.Binding
	Increment key.Binding
	Quit      key.Binding
}

var keys = keyMap{
	Decrement: key.NewBinding(key.WithKeys("j"), key.WithHelp("j", "Decrement")),
	Increment: key.NewBinding(key.WithKeys("k"), key.WithHelp("k", "Increment")),
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "Quit")),
}

// ShortHelp returns the bindings shown in the instruction bar.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Decrement, k.Increment, k.Quit}
}

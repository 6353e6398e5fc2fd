package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	save      key.Binding
	buildInfo key.Binding
	quit      key.Binding
}

var keys = keyMap{
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	save:      key.NewBinding(key.WithKeys("ctrl+s")),
	buildInfo: key.NewBinding(key.WithKeys("ctrl+v")),
	quit:      key.NewBinding(key.WithKeys("ctrl+c")),
}

package ui

import (
	"github.com/atomicstack/checklist/internal/checklist"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap combines the checklist's bindings with host-level actions.
type KeyMap struct {
	checklist.KeyMap
	Reset key.Binding
	Clear key.Binding
	Quit  key.Binding
}

func newKeyMap(list checklist.KeyMap) KeyMap {
	return KeyMap{
		KeyMap: list,
		Reset:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Clear:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "done")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return append(k.KeyMap.ShortHelp(), k.Reset, k.Clear, k.Quit)
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return append(k.KeyMap.FullHelp(), []key.Binding{k.Reset, k.Clear, k.Quit})
}

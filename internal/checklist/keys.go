package checklist

import (
	"github.com/atomicstack/checklist/internal/list"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap binds navigation and confirm input for a checklist.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Confirm  key.Binding
}

// DefaultKeyMap returns the stock bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:     key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Left:     key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right:    key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Home:     key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first")),
		End:      key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last")),
		Confirm:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "toggle")),
	}
}

// direction maps a key press onto a navigation direction.
func (k KeyMap) direction(msg tea.KeyMsg) (list.Direction, bool) {
	pairs := []struct {
		binding key.Binding
		dir     list.Direction
	}{
		{k.Up, list.Up},
		{k.Down, list.Down},
		{k.Left, list.Left},
		{k.Right, list.Right},
		{k.PageUp, list.PageUp},
		{k.PageDown, list.PageDown},
		{k.Home, list.Home},
		{k.End, list.End},
	}
	for _, p := range pairs {
		if key.Matches(msg, p.binding) {
			return p.dir, true
		}
	}
	return 0, false
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Confirm}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.PageUp, k.PageDown, k.Home, k.End},
		{k.Confirm},
	}
}

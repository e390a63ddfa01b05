package checklist

import tea "github.com/charmbracelet/bubbletea"

// ChangeEvent is emitted after a row's checked state flips.
type ChangeEvent struct {
	View  *View
	State bool
}

// ActivateEvent is emitted after the confirm key toggles the focused row.
type ActivateEvent struct {
	View *View
	Key  tea.KeyMsg
}

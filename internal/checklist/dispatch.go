package checklist

import (
	"github.com/atomicstack/checklist/internal/list"
	"github.com/atomicstack/checklist/internal/logging/events"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// HandleKey routes a key press and reports whether the checklist consumed it.
// Navigation keys always count as handled, even when focus cannot move. The
// confirm key toggles the focused row and is a no-op without one.
func (c *CheckList) HandleKey(msg tea.KeyMsg) bool {
	if dir, ok := c.keys.direction(msg); ok {
		c.move(dir)
		return true
	}
	if !key.Matches(msg, c.keys.Confirm) {
		return false
	}
	v := c.FocusedView()
	if v == nil {
		return false
	}
	c.ChangeState(v)
	if c.activate.Has() {
		c.activate.Emit(ActivateEvent{View: v, Key: msg})
	}
	return true
}

// HandleMouse turns wheel notches into focus moves.
func (c *CheckList) HandleMouse(msg tea.MouseMsg) bool {
	var delta int
	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
		delta = -1
	case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
		delta = 1
	default:
		return false
	}
	if c.nav.Wheel(delta) {
		events.Checklist.Focus("wheel", c.nav.FocusIndex())
		c.Render()
	}
	return true
}

func (c *CheckList) move(dir list.Direction) {
	if !c.nav.Move(dir) {
		return
	}
	events.Checklist.Focus(dir.String(), c.nav.FocusIndex())
	c.Render()
}

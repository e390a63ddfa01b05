// Package checklist implements a list widget whose rows carry an independent
// checked flag.
//
// A CheckList keeps three things consistent across data loads, resets,
// clears, and toggles:
//   - the per-record State flag in the store,
//   - the ordered set of checked records (see Tracker for ordering),
//   - the checked appearance of each visible, recycled View.
//
// Focus, scrolling, and the visible window are delegated to a Navigator,
// normally a *list.List. Everything runs synchronously on the caller's
// goroutine; a CheckList must not be shared between goroutines.
package checklist

import (
	"github.com/atomicstack/checklist/internal/list"
	"github.com/atomicstack/checklist/internal/logging/events"
)

// Navigator is the base list capability a CheckList is composed over.
type Navigator interface {
	Layout(length, focus int)
	Move(dir list.Direction) bool
	Wheel(delta int) bool
	Resize(size int)
	FocusIndex() int
	VisibleRange() (start, end int)
}

// CheckList is a list of toggleable rows.
type CheckList struct {
	nav      Navigator
	keys     KeyMap
	classes  Classes
	rows     []*Record
	tracker  Tracker
	recycler *Recycler
	visible  int

	defaultFocus int

	change   list.Emitter[ChangeEvent]
	activate list.Emitter[ActivateEvent]
}

// New builds an empty checklist over nav. A nil nav gets a vertical
// list.List showing every row.
func New(nav Navigator, opts Options) *CheckList {
	if nav == nil {
		nav = list.New(list.Options{})
	}
	keys := DefaultKeyMap()
	if opts.Keys != nil {
		keys = *opts.Keys
	}
	classes := opts.Classes.withDefaults()
	return &CheckList{
		nav:      nav,
		keys:     keys,
		classes:  classes,
		recycler: newRecycler(classes),
	}
}

// OnChange registers a listener for checked state changes.
func (c *CheckList) OnChange(fn func(ChangeEvent)) {
	c.change.On(fn)
}

// OnActivate registers a listener for confirm key activations.
func (c *CheckList) OnActivate(fn func(ActivateEvent)) {
	c.activate.On(fn)
}

// SetData replaces the rows, remembers each row's state as its default, and
// rebuilds the checked set in index order. focusIndex may be list.NoFocus, in
// which case the current focus is kept when still in range, else row 0.
func (c *CheckList) SetData(rows []*Record, focusIndex int) {
	stored := make([]*Record, len(rows))
	for i, r := range rows {
		if r == nil {
			r = &Record{}
		}
		stored[i] = r
	}
	c.rows = stored
	c.load(focusIndex, true)
	events.Checklist.Load(len(c.rows), c.tracker.Len(), c.nav.FocusIndex())
}

// ResetData restores every row to its default state and reloads at the
// remembered default focus.
func (c *CheckList) ResetData() {
	for _, r := range c.rows {
		r.State = r.DefaultState
	}
	c.load(c.defaultFocus, true)
	events.Checklist.Reset(len(c.rows), c.nav.FocusIndex())
}

// ClearChecked unchecks every row without touching default states, so a
// later ResetData still restores the values from the last load.
func (c *CheckList) ClearChecked(focusIndex int) {
	for _, r := range c.rows {
		r.State = false
	}
	c.load(focusIndex, false)
	events.Checklist.Clear(len(c.rows), c.nav.FocusIndex())
}

func (c *CheckList) load(focusIndex int, captureDefaults bool) {
	c.nav.Layout(len(c.rows), c.resolveFocus(focusIndex))
	if captureDefaults {
		for _, r := range c.rows {
			r.DefaultState = r.State
		}
		if focus := c.nav.FocusIndex(); focus >= 0 {
			c.defaultFocus = focus
		} else {
			c.defaultFocus = 0
		}
	}
	c.tracker.Rebuild(c.rows)
	c.Render()
}

func (c *CheckList) resolveFocus(focusIndex int) int {
	n := len(c.rows)
	if focusIndex >= 0 && focusIndex < n {
		return focusIndex
	}
	if current := c.nav.FocusIndex(); current >= 0 && current < n {
		return current
	}
	return 0
}

// Render rebinds every visible slot to the record it now displays.
func (c *CheckList) Render() {
	start, end := c.nav.VisibleRange()
	if end > len(c.rows) {
		end = len(c.rows)
	}
	if start < 0 {
		start = 0
	}
	focus := c.nav.FocusIndex()
	c.visible = 0
	for i := start; i < end; i++ {
		v := c.recycler.Slot(i - start)
		c.recycler.Render(v, c.rows[i], i, i == focus)
		c.visible++
	}
}

// Resize changes the visible window size and re-renders.
func (c *CheckList) Resize(size int) {
	c.nav.Resize(size)
	c.Render()
}

// ChangeState flips the checked state of the record shown by v, keeping the
// view, the record, and the checked set in step, then notifies listeners.
// Views outside the visible window are ignored.
func (c *CheckList) ChangeState(v *View) {
	if !c.bound(v) {
		return
	}
	rec := c.rows[v.Index]
	state := !rec.State

	v.State = state
	rec.State = state
	c.recycler.applyState(v, state)

	if state {
		c.tracker.Add(rec)
	} else {
		c.tracker.Remove(rec)
	}
	events.Checklist.Toggle(v.Index, rec.Title, state, c.tracker.Len())

	if c.change.Has() {
		c.change.Emit(ChangeEvent{View: v, State: state})
	}
}

// bound reports whether v is one of the visible views and is bound to a row.
func (c *CheckList) bound(v *View) bool {
	if v == nil || v.Index < 0 || v.Index >= len(c.rows) {
		return false
	}
	if v.Slot < 0 || v.Slot >= c.visible {
		return false
	}
	return c.recycler.Pool()[v.Slot] == v
}

// CheckedData returns the checked records. Membership always matches the
// rows whose State is true; order is index order after a load and toggle
// order afterwards.
func (c *CheckList) CheckedData() []*Record {
	return c.tracker.Items()
}

// Rows returns the backing records.
func (c *CheckList) Rows() []*Record {
	return c.rows
}

// Classes returns the class names captured at construction.
func (c *CheckList) Classes() Classes {
	return c.classes
}

// Keys returns the key bindings in use.
func (c *CheckList) Keys() KeyMap {
	return c.keys
}

// FocusIndex returns the focused row or list.NoFocus.
func (c *CheckList) FocusIndex() int {
	return c.nav.FocusIndex()
}

// DefaultFocusIndex returns the focus remembered at the last load.
func (c *CheckList) DefaultFocusIndex() int {
	return c.defaultFocus
}

// FocusedView returns the view displaying the focused row, or nil.
func (c *CheckList) FocusedView() *View {
	focus := c.nav.FocusIndex()
	if focus < 0 {
		return nil
	}
	for _, v := range c.Views() {
		if v.Index == focus {
			return v
		}
	}
	return nil
}

// Views returns the views bound to the visible window, in display order.
func (c *CheckList) Views() []*View {
	return c.recycler.Pool()[:c.visible]
}

// Builds returns how many view structures have been constructed.
func (c *CheckList) Builds() int {
	return c.recycler.Builds()
}

package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/checklist/internal/checklist"
	"github.com/atomicstack/checklist/internal/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRows() []*checklist.Record {
	return []*checklist.Record{
		{Title: "Alpha", Value: "a"},
		{Title: "Beta", Value: "b", State: true},
		{Title: "Gamma", Value: "c"},
	}
}

func newTestModel(opts Options) *Model {
	if opts.Rows == nil {
		opts.Rows = sampleRows()
	}
	if opts.FocusIndex == 0 {
		opts.FocusIndex = list.NoFocus
	}
	return NewModel(opts)
}

func keyPress(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func checkedTitles(m *Model) []string {
	var out []string
	for _, r := range m.Checked() {
		out = append(out, r.Title)
	}
	return out
}

func TestNewModelLoadsRows(t *testing.T) {
	m := newTestModel(Options{})
	assert.Equal(t, []string{"Beta"}, checkedTitles(m))
	assert.Equal(t, 0, m.Checklist().FocusIndex())
	assert.Equal(t, "checklist (1/3 checked)", m.headerText())
}

func TestEnterTogglesFocusedRow(t *testing.T) {
	h := NewHarness(newTestModel(Options{Title: "deploy"}))
	h.Send(keyPress(tea.KeyEnter))
	assert.Equal(t, []string{"Beta", "Alpha"}, checkedTitles(h.Model()))
	assert.Equal(t, "Checked Alpha", h.Model().currentInfo())

	h.SendKeys(keyPress(tea.KeyDown), keyPress(tea.KeyEnter))
	assert.Equal(t, []string{"Alpha"}, checkedTitles(h.Model()))
	assert.Equal(t, "Unchecked Beta", h.Model().currentInfo())
	assert.Contains(t, h.View(), "deploy (1/3 checked)")
}

func TestResetAndClearKeys(t *testing.T) {
	h := NewHarness(newTestModel(Options{}))
	h.SendKeys(keyPress(tea.KeyEnter), keyPress(tea.KeyDown), keyPress(tea.KeyDown))

	h.Send(runes("c"))
	assert.Empty(t, h.Model().Checked())
	assert.Equal(t, 2, h.Model().Checklist().FocusIndex(), "clear keeps focus")
	assert.Equal(t, "Cleared all checks", h.Model().currentInfo())

	h.Send(runes("r"))
	assert.Equal(t, []string{"Beta"}, checkedTitles(h.Model()))
	assert.Equal(t, 0, h.Model().Checklist().FocusIndex(), "reset restores the default focus")
	assert.False(t, h.Quit())
}

func TestQuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runes("q"), keyPress(tea.KeyEsc), keyPress(tea.KeyCtrlC)} {
		h := NewHarness(newTestModel(Options{}))
		h.Send(msg)
		assert.True(t, h.Quit(), "expected %q to quit", msg.String())
	}
}

func TestEmptyChecklist(t *testing.T) {
	h := NewHarness(NewModel(Options{FocusIndex: list.NoFocus}))
	assert.Contains(t, h.View(), "(no entries)")
	h.Send(keyPress(tea.KeyEnter))
	assert.Contains(t, h.View(), "Error: Nothing to toggle")
	h.Send(runes("r"))
	assert.NotContains(t, h.View(), "Error:")
}

func TestWindowSizeLimitsVisibleRows(t *testing.T) {
	rows := make([]*checklist.Record, 10)
	for i := range rows {
		rows[i] = &checklist.Record{Title: string(rune('a' + i))}
	}
	h := NewHarness(newTestModel(Options{Rows: rows}))
	h.Send(tea.WindowSizeMsg{Width: 30, Height: 5})
	require.Len(t, h.Model().Checklist().Views(), 3)
	builds := h.Model().Checklist().Builds()

	h.Send(keyPress(tea.KeyEnd))
	views := h.Model().Checklist().Views()
	require.Len(t, views, 3)
	assert.Equal(t, "j", views[2].Title.Text())
	assert.Equal(t, builds, h.Model().Checklist().Builds(), "scrolling reuses the visible views")

	lines := strings.Split(h.View(), "\n")
	assert.Len(t, lines, 5)
	assert.NotContains(t, h.View(), " a ")
}

func TestMouseWheelMovesFocus(t *testing.T) {
	h := NewHarness(newTestModel(Options{}))
	h.Send(tea.MouseMsg{Button: tea.MouseButtonWheelDown})
	assert.Equal(t, 1, h.Model().Checklist().FocusIndex())
}

func TestFixedSizeIgnoresResize(t *testing.T) {
	m := newTestModel(Options{Width: 20, Height: 4})
	h := NewHarness(m)
	h.Send(tea.WindowSizeMsg{Width: 100, Height: 50})
	assert.Equal(t, 20, m.width)
	assert.Equal(t, 4, m.height)
	assert.Len(t, m.Checklist().Views(), 2)
}

func TestCustomClassesRenderAsChecked(t *testing.T) {
	m := newTestModel(Options{Classes: checklist.Classes{IconActive: "on", Checked: "picked"}})
	view := m.View()
	assert.Contains(t, view, "[✓] Beta")
	assert.Contains(t, view, "[ ] Alpha")
}

func TestHorizontalNavigation(t *testing.T) {
	h := NewHarness(newTestModel(Options{Horizontal: true, Cycle: true}))
	h.Send(keyPress(tea.KeyDown))
	assert.Equal(t, 0, h.Model().Checklist().FocusIndex())
	h.Send(keyPress(tea.KeyLeft))
	assert.Equal(t, 2, h.Model().Checklist().FocusIndex())
}

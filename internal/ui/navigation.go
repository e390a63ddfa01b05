package ui

import (
	"fmt"

	"github.com/atomicstack/checklist/internal/list"
	"github.com/atomicstack/checklist/internal/logging/events"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		events.UI.Key(keyMsg.String(), true)
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Reset):
		m.list.ResetData()
		m.errMsg = ""
		m.setInfo("Restored defaults")
		events.UI.Key(keyMsg.String(), true)
		return nil
	case key.Matches(keyMsg, m.keys.Clear):
		m.list.ClearChecked(list.NoFocus)
		m.errMsg = ""
		m.setInfo("Cleared all checks")
		events.UI.Key(keyMsg.String(), true)
		return nil
	}
	handled := m.list.HandleKey(keyMsg)
	if !handled && key.Matches(keyMsg, m.keys.Confirm) {
		m.errMsg = "Nothing to toggle"
	}
	events.UI.Key(keyMsg.String(), handled)
	return nil
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	m.list.HandleMouse(ev)
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.help.Width = m.width
	visible := m.maxVisibleItems()
	m.list.Resize(visible)
	events.UI.Resize(m.width, m.height, visible)
	return nil
}

// maxVisibleItems returns how many rows fit, or 0 when the height is unknown.
func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return 0
	}
	used := 2 // header + status
	if m.showFooter {
		used += 2
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *Model) headerText() string {
	rows := len(m.list.Rows())
	return fmt.Sprintf("%s (%d/%d checked)", m.title, len(m.list.CheckedData()), rows)
}

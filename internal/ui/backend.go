package ui

import (
	"fmt"

	"github.com/atomicstack/checklist/internal/backend"
	"github.com/atomicstack/checklist/internal/list"
	"github.com/atomicstack/checklist/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(msg tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

// applyBackendEvent reloads the checklist from a changed rows file. The
// reloaded states become the new defaults and focus stays put when the row
// still exists.
func (m *Model) applyBackendEvent(evt backend.Event) {
	events.Backend.Reload(evt.Path, len(evt.Rows), evt.Err)
	if evt.Err != nil {
		m.errMsg = fmt.Sprintf("Reload failed: %v", evt.Err)
		return
	}
	m.errMsg = ""
	m.list.SetData(evt.Rows, list.NoFocus)
	m.setInfo(fmt.Sprintf("Reloaded %d rows", len(evt.Rows)))
}

// Package ui contains the Bubble Tea program that hosts a checklist.
// The Model type focuses on message orchestration, while dedicated helpers
// own key handling and rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function.
//   - Key presses go to the host bindings first (quit, reset, clear); every
//     other key is offered to the checklist, which moves focus or toggles the
//     focused row.
//   - Window size changes resize the checklist's visible window so its view
//     pool always matches the rows that fit on screen.
//   - With a backend watcher attached, each reload of the rows file is
//     delivered as a message and replaces the checklist data in place.
//
// State ownership:
//   - Rows, the checked set, and the recycled row views live in
//     internal/checklist. The model never edits them directly; it renders
//     whatever views the checklist currently exposes.
//   - Focus and scrolling live in the internal/list navigator the checklist
//     is composed over.
package ui

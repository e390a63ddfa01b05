package events

import "github.com/atomicstack/checklist/internal/logging"

type UITracer struct{}

type ChecklistTracer struct{}

var (
	UI        = UITracer{}
	Checklist = ChecklistTracer{}
)

func (UITracer) Resize(width, height, visible int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height, "visible": visible})
}

func (UITracer) Key(key string, handled bool) {
	logging.Trace("ui.key", map[string]interface{}{"key": key, "handled": handled})
}

func (ChecklistTracer) Load(rows, checked, focus int) {
	logging.Trace("checklist.load", map[string]interface{}{
		"rows":    rows,
		"checked": checked,
		"focus":   focus,
	})
}

func (ChecklistTracer) Reset(rows, focus int) {
	logging.Trace("checklist.reset", map[string]interface{}{"rows": rows, "focus": focus})
}

func (ChecklistTracer) Clear(rows, focus int) {
	logging.Trace("checklist.clear", map[string]interface{}{"rows": rows, "focus": focus})
}

func (ChecklistTracer) Toggle(index int, title string, state bool, checked int) {
	logging.Trace("checklist.toggle", map[string]interface{}{
		"index":   index,
		"title":   title,
		"state":   state,
		"checked": checked,
	})
}

func (ChecklistTracer) Focus(direction string, focus int) {
	logging.Trace("checklist.focus", map[string]interface{}{"direction": direction, "focus": focus})
}

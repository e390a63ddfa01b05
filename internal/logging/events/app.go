package events

import "github.com/atomicstack/checklist/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Exit(checked int) {
	logging.Trace("app.exit", map[string]interface{}{"checked": checked})
}

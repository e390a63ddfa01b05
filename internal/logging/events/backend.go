package events

import "github.com/atomicstack/checklist/internal/logging"

type BackendTracer struct{}

var Backend = BackendTracer{}

func (BackendTracer) Reload(path string, rows int, err error) {
	payload := map[string]interface{}{"path": path, "rows": rows}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("backend.reload", payload)
}

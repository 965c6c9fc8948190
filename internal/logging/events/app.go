package events

import "github.com/atomicstack/expi-showcase/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) StoreFallback(kind, path string, err error) {
	payload := map[string]interface{}{"kind": kind, "path": path}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("app.store.fallback", payload)
}

func (AppTracer) Stop(live int) {
	logging.Trace("app.stop", map[string]interface{}{"liveHandles": live})
}

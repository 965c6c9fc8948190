package events

import "github.com/atomicstack/expi-showcase/internal/logging"

type MediaTracer struct{}

var Media = MediaTracer{}

func (MediaTracer) Register(handle, section, item string) {
	logging.Trace("media.register", map[string]interface{}{"handle": handle, "section": section, "item": item})
}

func (MediaTracer) Unregister(handle, item string, wasActive bool) {
	logging.Trace("media.unregister", map[string]interface{}{"handle": handle, "item": item, "wasActive": wasActive})
}

func (MediaTracer) Activate(handle, item string, ratio float64) {
	logging.Trace("media.activate", map[string]interface{}{"handle": handle, "item": item, "ratio": ratio})
}

func (MediaTracer) Deactivate(handle, item string, ratio float64) {
	logging.Trace("media.deactivate", map[string]interface{}{"handle": handle, "item": item, "ratio": ratio})
}

func (MediaTracer) Stale(handle, op string) {
	logging.Trace("media.stale", map[string]interface{}{"handle": handle, "op": op})
}

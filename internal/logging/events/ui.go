package events

import "github.com/atomicstack/expi-showcase/internal/logging"

type OverlayTracer struct{}

type ThemeTracer struct{}

type DeviceTracer struct{}

type ScrollTracer struct{}

type CommandTracer struct{}

var (
	Overlay = OverlayTracer{}
	Theme   = ThemeTracer{}
	Device  = DeviceTracer{}
	Scroll  = ScrollTracer{}
	Command = CommandTracer{}
)

func (OverlayTracer) Open(item string, replaced string) {
	logging.Trace("overlay.open", map[string]interface{}{"item": item, "replaced": replaced})
}

func (OverlayTracer) Close(item string) {
	logging.Trace("overlay.close", map[string]interface{}{"item": item})
}

func (ThemeTracer) Load(dark bool, found bool) {
	logging.Trace("theme.load", map[string]interface{}{"dark": dark, "found": found})
}

func (ThemeTracer) Toggle(dark bool) {
	logging.Trace("theme.toggle", map[string]interface{}{"dark": dark})
}

func (ThemeTracer) PersistFailed(op string, err error) {
	if err == nil {
		return
	}
	logging.Trace("theme.persist.error", map[string]interface{}{"op": op, "error": err.Error()})
}

func (DeviceTracer) Class(width int, class string) {
	logging.Trace("device.class", map[string]interface{}{"width": width, "class": class})
}

func (ScrollTracer) NearBottom(near bool, offset, viewport, document int) {
	logging.Trace("scroll.near-bottom", map[string]interface{}{
		"nearBottom": near,
		"offset":     offset,
		"viewport":   viewport,
		"document":   document,
	})
}

func (ScrollTracer) ToTop(bounceDisarmed bool) {
	logging.Trace("scroll.to-top", map[string]interface{}{"bounceDisarmed": bounceDisarmed})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}

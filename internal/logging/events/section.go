package events

import "github.com/atomicstack/expi-showcase/internal/logging"

type SectionTracer struct{}

var Section = SectionTracer{}

func (SectionTracer) Activate(from, to string) {
	logging.Trace("section.activate", map[string]interface{}{"from": from, "to": to})
}

func (SectionTracer) Reject(id string) {
	logging.Trace("section.reject", map[string]interface{}{"id": id})
}

func (SectionTracer) Mount(section string, handles int) {
	logging.Trace("section.mount", map[string]interface{}{"section": section, "handles": handles})
}

func (SectionTracer) Unmount(section string, released int) {
	logging.Trace("section.unmount", map[string]interface{}{"section": section, "released": released})
}

func (SectionTracer) Menu(open bool) {
	logging.Trace("section.menu", map[string]interface{}{"open": open})
}

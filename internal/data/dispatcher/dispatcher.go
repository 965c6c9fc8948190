// Package dispatcher routes raw platform signals into the controller.
package dispatcher

import (
	"github.com/atomicstack/expi-showcase/internal/media"
	"github.com/atomicstack/expi-showcase/internal/presenter"
	"github.com/atomicstack/expi-showcase/internal/scroll"
)

// Kind names the signal source.
type Kind int

const (
	KindResize Kind = iota
	KindScroll
	KindVisibility
)

// Event is one platform signal.
type Event struct {
	Kind   Kind
	Width  int
	Scroll scroll.Metrics
	Handle media.Handle
	Ratio  float64
}

// Resize builds a resize signal.
func Resize(width int) Event {
	return Event{Kind: KindResize, Width: width}
}

// Scroll builds a scroll signal.
func Scroll(m scroll.Metrics) Event {
	return Event{Kind: KindScroll, Scroll: m}
}

// Visibility builds an intersection signal.
func Visibility(h media.Handle, ratio float64) Event {
	return Event{Kind: KindVisibility, Handle: h, Ratio: ratio}
}

// Result summarises which derived values changed.
type Result struct {
	DeviceChanged    bool
	BackToTopChanged bool
	LifecycleChanged bool
}

// Dispatcher applies events to a presenter in delivery order.
type Dispatcher struct {
	p *presenter.Presenter
}

func New(p *presenter.Presenter) *Dispatcher {
	return &Dispatcher{p: p}
}

// Handle applies one event.
func (d *Dispatcher) Handle(evt Event) Result {
	var res Result
	if d == nil || d.p == nil {
		return res
	}
	switch evt.Kind {
	case KindResize:
		before := d.p.DeviceClass()
		after := d.p.Resize(evt.Width)
		res.DeviceChanged = before != after
	case KindScroll:
		before := d.p.BackToTopVisible()
		d.p.Scroll(evt.Scroll)
		res.BackToTopChanged = before != d.p.BackToTopVisible()
	case KindVisibility:
		res.LifecycleChanged = d.p.Visibility(evt.Handle, evt.Ratio)
	}
	return res
}

// HandleAll applies events in order and merges their results.
func (d *Dispatcher) HandleAll(evts []Event) Result {
	var res Result
	for _, evt := range evts {
		r := d.Handle(evt)
		res.DeviceChanged = res.DeviceChanged || r.DeviceChanged
		res.BackToTopChanged = res.BackToTopChanged || r.BackToTopChanged
		res.LifecycleChanged = res.LifecycleChanged || r.LifecycleChanged
	}
	return res
}

// Package scroll derives the "near bottom" signal from scroll metrics and
// tracks the back-to-top affordance's bounce latch.
package scroll

import (
	"github.com/atomicstack/expi-showcase/internal/logging/events"
	"github.com/atomicstack/expi-showcase/internal/subscribe"
)

const (
	// DefaultThreshold is the proximity threshold for pixel-based hosts.
	DefaultThreshold = 100

	// LineThreshold is the proximity threshold for line-based hosts.
	LineThreshold = 3
)

// Metrics is one scroll signal.
type Metrics struct {
	Offset         int
	ViewportHeight int
	DocumentHeight int
}

// State is derived from the latest Metrics.
type State struct {
	NearBottom bool
}

// NearBottom reports whether the viewport's bottom edge is within threshold
// of the document's end.
func NearBottom(m Metrics, threshold int) bool {
	return m.Offset+m.ViewportHeight >= m.DocumentHeight-threshold
}

// Monitor tracks the latest scroll state.
type Monitor struct {
	threshold int
	metrics   Metrics
	state     State
	disarmed  bool
	subs      subscribe.Set[State]
}

// NewMonitor returns a monitor; negative thresholds fall back to
// DefaultThreshold.
func NewMonitor(threshold int) *Monitor {
	if threshold < 0 {
		threshold = DefaultThreshold
	}
	return &Monitor{threshold: threshold}
}

// Update records a scroll signal and delivers the derived state to every
// subscriber.
func (m *Monitor) Update(metrics Metrics) State {
	next := State{NearBottom: NearBottom(metrics, m.threshold)}
	if next != m.state {
		events.Scroll.NearBottom(next.NearBottom, metrics.Offset, metrics.ViewportHeight, metrics.DocumentHeight)
	}
	m.metrics = metrics
	m.state = next
	m.subs.Publish(next)
	return next
}

// State returns the latest derived state.
func (m *Monitor) State() State {
	return m.state
}

// Metrics returns the latest signal.
func (m *Monitor) Metrics() Metrics {
	return m.metrics
}

// Threshold returns the proximity threshold in host units.
func (m *Monitor) Threshold() int {
	return m.threshold
}

// Bouncing reports whether the back-to-top affordance is visible and still
// plays its idle bounce.
func (m *Monitor) Bouncing() bool {
	return m.state.NearBottom && !m.disarmed
}

// ScrollToTop records an explicit back-to-top activation. The bounce stays
// disabled for the rest of the session.
func (m *Monitor) ScrollToTop() {
	m.disarmed = true
	events.Scroll.ToTop(true)
}

func (m *Monitor) Subscribe(fn func(State)) subscribe.Token {
	return m.subs.Subscribe(fn)
}

func (m *Monitor) Unsubscribe(tok subscribe.Token) bool {
	return m.subs.Unsubscribe(tok)
}

// Close releases all subscriptions.
func (m *Monitor) Close() {
	m.subs.Clear()
}

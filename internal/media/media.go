// Package media manages the runtime lifecycle of mounted media elements.
//
// Each mounted MediaItem gets a Handle in the manager's table. Visibility
// notifications move the handle between dormant and active using a
// level-triggered rule: the latest intersection ratio alone decides the
// lifecycle, and side effects only run when that lifecycle changes (the first
// notification for a handle always applies).
package media

import (
	"math"

	"github.com/google/uuid"

	"github.com/atomicstack/expi-showcase/internal/logging/events"
	"github.com/atomicstack/expi-showcase/internal/site"
)

// DefaultThreshold is the intersection ratio at or above which an item is
// considered in view.
const DefaultThreshold = 0.5

// Element is the renderer-side media surface the manager drives.
// Image sequences receive SetSource/ClearSource; videos receive
// Play/Pause/Rewind.
type Element interface {
	SetSource(uri string)
	ClearSource()
	Play()
	Pause()
	Rewind()
}

type Lifecycle int

const (
	Dormant Lifecycle = iota
	Active
)

func (l Lifecycle) String() string {
	if l == Active {
		return "active"
	}
	return "dormant"
}

type Visibility int

const (
	Leaving Visibility = iota
	Entering
)

func (v Visibility) String() string {
	if v == Entering {
		return "entering"
	}
	return "leaving"
}

// Handle identifies one mounted media instance.
type Handle string

func (h Handle) String() string {
	return string(h)
}

// State is the runtime state of one handle.
type State struct {
	ItemID     string
	Section    string
	Kind       site.MediaKind
	Visibility Visibility
	Lifecycle  Lifecycle
	Ratio      float64
	Observed   bool
}

type entry struct {
	state State
	item  site.MediaItem
	el    Element
}

// Manager owns the handle table.
type Manager struct {
	threshold float64
	entries   map[Handle]*entry
	order     []Handle
}

// NewManager returns a manager with the given threshold. Values outside
// (0, 1] fall back to DefaultThreshold.
func NewManager(threshold float64) *Manager {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultThreshold
	}
	return &Manager{
		threshold: threshold,
		entries:   make(map[Handle]*entry),
	}
}

// Threshold returns the activation ratio.
func (m *Manager) Threshold() float64 {
	return m.threshold
}

// Register mounts item (owned by section) backed by el. The new handle
// starts dormant and unobserved.
func (m *Manager) Register(section string, item site.MediaItem, el Element) Handle {
	h := Handle(uuid.NewString())
	m.entries[h] = &entry{
		state: State{
			ItemID:  item.ID,
			Section: section,
			Kind:    item.Kind,
		},
		item: item,
		el:   el,
	}
	m.order = append(m.order, h)
	events.Media.Register(h.String(), section, item.ID)
	return h
}

// OnVisibilityChange applies an intersection ratio to h. It reports whether
// a lifecycle side effect ran. Stale handles are ignored.
func (m *Manager) OnVisibilityChange(h Handle, ratio float64) bool {
	e, ok := m.entries[h]
	if !ok {
		events.Media.Stale(h.String(), "visibility")
		return false
	}
	ratio = clampRatio(ratio)
	e.state.Ratio = ratio
	if ratio > 0 {
		e.state.Visibility = Entering
	} else {
		e.state.Visibility = Leaving
	}
	want := Dormant
	if ratio >= m.threshold {
		want = Active
	}
	if e.state.Observed && want == e.state.Lifecycle {
		return false
	}
	e.state.Observed = true
	e.state.Lifecycle = want
	if want == Active {
		activate(e)
		events.Media.Activate(h.String(), e.item.ID, ratio)
	} else {
		deactivate(e)
		events.Media.Deactivate(h.String(), e.item.ID, ratio)
	}
	return true
}

// Unregister releases h, stopping any active side effect first. Stale
// handles are ignored.
func (m *Manager) Unregister(h Handle) bool {
	e, ok := m.entries[h]
	if !ok {
		events.Media.Stale(h.String(), "unregister")
		return false
	}
	wasActive := e.state.Lifecycle == Active
	if wasActive {
		deactivate(e)
		e.state.Lifecycle = Dormant
	}
	e.el = nil
	delete(m.entries, h)
	for i, other := range m.order {
		if other == h {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	events.Media.Unregister(h.String(), e.item.ID, wasActive)
	return true
}

// UnregisterSection releases every handle owned by section and returns how
// many were released.
func (m *Manager) UnregisterSection(section string) int {
	released := 0
	for _, h := range m.Handles(section) {
		if m.Unregister(h) {
			released++
		}
	}
	return released
}

// Close releases every handle.
func (m *Manager) Close() int {
	released := 0
	for _, h := range append([]Handle(nil), m.order...) {
		if m.Unregister(h) {
			released++
		}
	}
	return released
}

// Handles returns the live handles of section in registration order.
func (m *Manager) Handles(section string) []Handle {
	out := make([]Handle, 0, len(m.order))
	for _, h := range m.order {
		if m.entries[h].state.Section == section {
			out = append(out, h)
		}
	}
	return out
}

// State returns the runtime state of h.
func (m *Manager) State(h Handle) (State, bool) {
	e, ok := m.entries[h]
	if !ok {
		return State{}, false
	}
	return e.state, true
}

// Item returns the media item mounted under h.
func (m *Manager) Item(h Handle) (site.MediaItem, bool) {
	e, ok := m.entries[h]
	if !ok {
		return site.MediaItem{}, false
	}
	return e.item, true
}

// Live returns the number of registered handles.
func (m *Manager) Live() int {
	return len(m.entries)
}

// LiveInSection returns the number of registered handles owned by section.
func (m *Manager) LiveInSection(section string) int {
	n := 0
	for _, e := range m.entries {
		if e.state.Section == section {
			n++
		}
	}
	return n
}

func activate(e *entry) {
	if e.el == nil {
		return
	}
	switch e.item.Kind {
	case site.KindVideo:
		e.el.Play()
	default:
		e.el.SetSource(e.item.SourceURI)
	}
}

func deactivate(e *entry) {
	if e.el == nil {
		return
	}
	switch e.item.Kind {
	case site.KindVideo:
		e.el.Pause()
		e.el.Rewind()
	default:
		e.el.ClearSource()
	}
}

func clampRatio(r float64) float64 {
	if math.IsNaN(r) || r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}

// Package nav tracks which section is active. Navigation is flat: there is
// no history, and only ids present in the catalog can become active.
package nav

import (
	"errors"
	"fmt"

	"github.com/atomicstack/expi-showcase/internal/logging/events"
	"github.com/atomicstack/expi-showcase/internal/site"
	"github.com/atomicstack/expi-showcase/internal/subscribe"
)

var ErrUnknownSection = errors.New("unknown section")

// Entry is one navigation affordance.
type Entry struct {
	ID    string
	Label string
}

// Transition is published after the active section changes.
type Transition struct {
	From string
	To   string
}

// Navigator holds the active section id.
type Navigator struct {
	catalog *site.Catalog
	entries []Entry
	active  string
	subs    subscribe.Set[Transition]
}

// New returns a navigator positioned on initial. An empty initial selects
// the first catalog section.
func New(catalog *site.Catalog, initial string) (*Navigator, error) {
	if catalog == nil || catalog.Len() == 0 {
		return nil, site.ErrEmptyCatalog
	}
	sections := catalog.Sections()
	if initial == "" {
		initial = sections[0].ID
	}
	if !catalog.Has(initial) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSection, initial)
	}
	entries := make([]Entry, len(sections))
	for i, s := range sections {
		entries[i] = Entry{ID: s.ID, Label: s.Label}
	}
	return &Navigator{catalog: catalog, entries: entries, active: initial}, nil
}

// Activate makes id the active section. Unknown ids and the already active
// id leave state unchanged and report false. Subscribers observe the
// transition before Activate returns.
func (n *Navigator) Activate(id string) bool {
	if !n.catalog.Has(id) {
		events.Section.Reject(id)
		return false
	}
	if id == n.active {
		return false
	}
	tr := Transition{From: n.active, To: id}
	n.active = id
	events.Section.Activate(tr.From, tr.To)
	n.subs.Publish(tr)
	return true
}

// Current returns the active section id.
func (n *Navigator) Current() string {
	return n.active
}

// Section returns the active section's content.
func (n *Navigator) Section() site.Section {
	s, _ := n.catalog.Find(n.active)
	return s
}

// List returns the ordered navigation entries.
func (n *Navigator) List() []Entry {
	out := make([]Entry, len(n.entries))
	copy(out, n.entries)
	return out
}

// Index returns the position of the active section within List.
func (n *Navigator) Index() int {
	for i, e := range n.entries {
		if e.ID == n.active {
			return i
		}
	}
	return 0
}

// Step activates the section delta positions away, wrapping around.
func (n *Navigator) Step(delta int) bool {
	count := len(n.entries)
	if count == 0 {
		return false
	}
	idx := ((n.Index()+delta)%count + count) % count
	return n.Activate(n.entries[idx].ID)
}

func (n *Navigator) Subscribe(fn func(Transition)) subscribe.Token {
	return n.subs.Subscribe(fn)
}

func (n *Navigator) Unsubscribe(tok subscribe.Token) bool {
	return n.subs.Unsubscribe(tok)
}

// Close releases all subscriptions.
func (n *Navigator) Close() {
	n.subs.Clear()
}

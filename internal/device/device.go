// Package device maps viewport width to a coarse device class.
package device

import (
	"github.com/atomicstack/expi-showcase/internal/logging/events"
	"github.com/atomicstack/expi-showcase/internal/subscribe"
)

// Class is the coarse viewport category.
type Class int

const (
	Regular Class = iota
	Compact
)

func (c Class) String() string {
	if c == Compact {
		return "compact"
	}
	return "regular"
}

// Width breakpoints.
const (
	// WebBreakpoint is the pixel breakpoint used by browser hosts.
	WebBreakpoint = 768

	// TerminalBreakpoint is the column breakpoint used by the terminal renderer.
	TerminalBreakpoint = 100
)

// Classify returns Compact when width is below breakpoint.
func Classify(width, breakpoint int) Class {
	if width < breakpoint {
		return Compact
	}
	return Regular
}

// Classifier tracks the latest resize signal and notifies subscribers when
// the derived class changes.
type Classifier struct {
	breakpoint int
	width      int
	class      Class
	seen       bool
	subs       subscribe.Set[Class]
}

// NewClassifier returns a classifier with the given breakpoint; non-positive
// values fall back to TerminalBreakpoint.
func NewClassifier(breakpoint int) *Classifier {
	if breakpoint <= 0 {
		breakpoint = TerminalBreakpoint
	}
	return &Classifier{breakpoint: breakpoint}
}

// Classify applies the classifier's breakpoint without recording a signal.
func (c *Classifier) Classify(width int) Class {
	return Classify(width, c.breakpoint)
}

// Resize records a resize signal and returns the recomputed class.
// Subscribers are notified on the first signal and on every class change.
func (c *Classifier) Resize(width int) Class {
	next := c.Classify(width)
	c.width = width
	changed := !c.seen || next != c.class
	c.class = next
	c.seen = true
	if changed {
		events.Device.Class(width, next.String())
		c.subs.Publish(next)
	}
	return next
}

// Current returns the class of the latest signal, Regular before any.
func (c *Classifier) Current() Class {
	return c.class
}

// Width returns the latest signalled width.
func (c *Classifier) Width() int {
	return c.width
}

// Breakpoint returns the configured breakpoint.
func (c *Classifier) Breakpoint() int {
	return c.breakpoint
}

func (c *Classifier) Subscribe(fn func(Class)) subscribe.Token {
	return c.subs.Subscribe(fn)
}

func (c *Classifier) Unsubscribe(tok subscribe.Token) bool {
	return c.subs.Unsubscribe(tok)
}

// Close releases all subscriptions.
func (c *Classifier) Close() {
	c.subs.Clear()
}

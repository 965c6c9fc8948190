// Package overlay holds the single enlarged media selection.
package overlay

import (
	"github.com/atomicstack/expi-showcase/internal/logging/events"
	"github.com/atomicstack/expi-showcase/internal/site"
)

// Controller holds at most one selected item. Opening replaces any previous
// selection; only Close dismisses it.
type Controller struct {
	selected *site.MediaItem
}

func New() *Controller {
	return &Controller{}
}

// Open selects item, replacing the current selection.
func (c *Controller) Open(item site.MediaItem) {
	replaced := ""
	if c.selected != nil {
		replaced = c.selected.ID
	}
	sel := item
	c.selected = &sel
	events.Overlay.Open(item.ID, replaced)
}

// Close clears the selection. Closing an empty overlay is a no-op.
func (c *Controller) Close() {
	if c.selected == nil {
		return
	}
	events.Overlay.Close(c.selected.ID)
	c.selected = nil
}

// Current returns the selection, if any.
func (c *Controller) Current() (site.MediaItem, bool) {
	if c.selected == nil {
		return site.MediaItem{}, false
	}
	return *c.selected, true
}

// IsOpen reports whether an item is selected.
func (c *Controller) IsOpen() bool {
	return c.selected != nil
}

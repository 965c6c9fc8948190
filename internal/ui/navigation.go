package ui

import (
	"github.com/atomicstack/expi-showcase/internal/device"
	"github.com/atomicstack/expi-showcase/internal/media"
)

func (m *Model) activate(id string) bool {
	if !m.presenter.Activate(id) {
		return false
	}
	m.afterSectionChange()
	return true
}

func (m *Model) activateIndex(idx int) bool {
	entries := m.presenter.Sections()
	if idx < 0 || idx >= len(entries) {
		return false
	}
	return m.activate(entries[idx].ID)
}

func (m *Model) step(delta int) bool {
	if !m.presenter.Step(delta) {
		return false
	}
	m.afterSectionChange()
	return true
}

// afterSectionChange resets per-section renderer state. The controller has
// already released the old section's media and mounted the new one.
func (m *Model) afterSectionChange() {
	current := m.presenter.CurrentSection()
	m.focus = 0
	m.clips.prune(current)
	m.menu.Reset(current)
	m.body.SetYOffset(0)
	m.refresh()
}

func (m *Model) scrollBy(delta int) {
	m.scrollTo(m.body.YOffset + delta)
}

func (m *Model) scrollTo(offset int) {
	m.body.SetYOffset(offset)
	m.syncSignals()
}

func (m *Model) scrollToEnd() {
	m.scrollTo(m.body.TotalLineCount())
}

// backToTop scrolls to the first line. When the affordance is showing the
// activation is recorded so it stops bouncing.
func (m *Model) backToTop() {
	if m.presenter.BackToTopVisible() {
		m.presenter.ScrollToTop()
	}
	m.scrollTo(0)
}

func (m *Model) moveFocus(delta int) bool {
	if len(m.blocks) == 0 {
		return false
	}
	next := min(max(m.focus+delta, 0), len(m.blocks)-1)
	if next == m.focus {
		return false
	}
	m.focus = next
	m.revealFocus()
	return true
}

// revealFocus scrolls the minimum distance that brings the focused clip
// fully into view.
func (m *Model) revealFocus() {
	if m.focus < 0 || m.focus >= len(m.blocks) {
		return
	}
	b := m.blocks[m.focus]
	offset := m.body.YOffset
	if b.end > offset+m.body.Height {
		offset = b.end - m.body.Height
	}
	if b.start < offset {
		offset = b.start
	}
	m.scrollTo(offset)
}

func (m *Model) focusedHandle() (media.Handle, bool) {
	if m.focus < 0 || m.focus >= len(m.blocks) {
		return "", false
	}
	return m.blocks[m.focus].handle, true
}

func (m *Model) openFocused() bool {
	h, ok := m.focusedHandle()
	if !ok {
		return false
	}
	return m.presenter.OpenOverlay(h)
}

func (m *Model) toggleMenu() {
	if m.presenter.DeviceClass() != device.Compact {
		m.setInfo("the section menu is only used in narrow terminals")
		return
	}
	if m.presenter.ToggleMenu() {
		m.menu.Reset(m.presenter.CurrentSection())
	}
	m.refresh()
}

func (m *Model) closeMenu() {
	m.presenter.CloseMenu()
	m.refresh()
}

func (m *Model) toggleTheme() {
	if m.presenter.ToggleTheme().Dark {
		m.setInfo("dark theme")
	} else {
		m.setInfo("light theme")
	}
	m.refresh()
}

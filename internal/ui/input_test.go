package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}
}

func TestWheelScrollsBody(t *testing.T) {
	h := NewHarness(newTestModel(t, 120, 12))
	h.Send(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	m := h.Model()
	if m.body.YOffset != wheelStep {
		t.Fatalf("expected offset %d, got %d", wheelStep, m.body.YOffset)
	}
	if got := m.presenter.ScrollMetrics().Offset; got != wheelStep {
		t.Fatalf("expected scroll signal forwarded, got %d", got)
	}
	h.Send(tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	if m.body.YOffset != 0 {
		t.Fatalf("expected offset back to 0, got %d", m.body.YOffset)
	}
}

func TestClickNavSegment(t *testing.T) {
	h := NewHarness(newTestModel(t, 120, 30))
	m := h.Model()
	segs := m.navSegments()
	h.Send(press(segs[2].x0, 0))
	if m.presenter.CurrentSection() != "voice" {
		t.Fatalf("expected voice after clicking its tab, got %s", m.presenter.CurrentSection())
	}
}

func TestClickOutsideOverlayCloses(t *testing.T) {
	h := NewHarness(newTestModel(t, 120, 40))
	m := h.Model()
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})
	bounds := m.overlayBounds()
	h.Send(press(bounds.x0+1, bounds.y0+1))
	if _, ok := m.presenter.Overlay(); !ok {
		t.Fatalf("expected click inside the box to keep the overlay")
	}
	h.Send(press(0, bounds.y0))
	if _, ok := m.presenter.Overlay(); ok {
		t.Fatalf("expected click outside the box to close the overlay")
	}
}

func TestClickClipOpensOverlay(t *testing.T) {
	h := NewHarness(newTestModel(t, 120, 40))
	m := h.Model()
	second := m.blocks[1]
	h.Send(press(4, m.headerHeight()+second.start-m.body.YOffset))
	item, ok := m.presenter.Overlay()
	if !ok || item.ID != "overview" || m.focus != 1 {
		t.Fatalf("expected second clip enlarged, got %#v (focus %d)", item, m.focus)
	}
}

func TestClickBackToTopBadge(t *testing.T) {
	h := NewHarness(newTestModel(t, 120, 12))
	m := h.Model()
	h.Send(tea.KeyMsg{Type: tea.KeyEnd})
	h.Send(press(m.viewWidth()-2, m.statusRow()))
	if m.body.YOffset != 0 {
		t.Fatalf("expected scroll to top, got %d", m.body.YOffset)
	}
	h.Send(tea.KeyMsg{Type: tea.KeyEnd})
	if m.presenter.Bouncing() {
		t.Fatalf("expected bounce disarmed after badge click")
	}
}

func TestClickBodyClosesCompactMenu(t *testing.T) {
	h := NewHarness(newTestModel(t, 60, 40))
	m := h.Model()
	h.Type("m")
	if !m.presenter.MenuOpen() {
		t.Fatalf("expected menu open in compact class")
	}
	first := m.blocks[0]
	h.Send(press(4, m.headerHeight()+first.start-m.body.YOffset))
	if m.presenter.MenuOpen() {
		t.Fatalf("expected body click to close the menu")
	}
	if _, ok := m.presenter.Overlay(); ok {
		t.Fatalf("expected no overlay behind the menu")
	}
}

func TestClickMenuRowWhileOpen(t *testing.T) {
	h := NewHarness(newTestModel(t, 60, 40))
	m := h.Model()
	h.Type("m")
	h.Send(press(3, 2))
	if m.presenter.CurrentSection() != "chat" || m.presenter.MenuOpen() {
		t.Fatalf("expected chat active with menu closed, got %s open=%v", m.presenter.CurrentSection(), m.presenter.MenuOpen())
	}
}

func TestWheelClosesCompactMenu(t *testing.T) {
	h := NewHarness(newTestModel(t, 60, 12))
	m := h.Model()
	h.Type("m")
	h.Send(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	if m.presenter.MenuOpen() || m.body.YOffset != 0 {
		t.Fatalf("expected wheel to close the menu without scrolling, offset %d", m.body.YOffset)
	}
}

func TestClickCancelsJumpPrompt(t *testing.T) {
	h := NewHarness(newTestModel(t, 120, 30))
	m := h.Model()
	h.Type("/cha")
	segs := m.navSegments()
	h.Send(press(segs[2].x0, 0))
	if m.jumping || m.jump.Value() != "" {
		t.Fatalf("expected click to cancel the jump prompt, value %q", m.jump.Value())
	}
	if m.presenter.CurrentSection() != "home" {
		t.Fatalf("expected click swallowed while jumping, got %s", m.presenter.CurrentSection())
	}
	h.Send(press(segs[2].x0, 0))
	if m.presenter.CurrentSection() != "voice" {
		t.Fatalf("expected next click to reach the nav bar, got %s", m.presenter.CurrentSection())
	}
}

package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/atomicstack/expi-showcase/internal/device"
	"github.com/atomicstack/expi-showcase/internal/kv"
	"github.com/atomicstack/expi-showcase/internal/media"
	"github.com/atomicstack/expi-showcase/internal/prefs"
	"github.com/atomicstack/expi-showcase/internal/presenter"
	"github.com/atomicstack/expi-showcase/internal/scroll"
	"github.com/atomicstack/expi-showcase/internal/site"
	"github.com/atomicstack/expi-showcase/internal/theme"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func newTestModel(t *testing.T, width, height int) *Model {
	t.Helper()
	clips := NewClips()
	p, err := presenter.New(site.DefaultCatalog(), prefs.New(kv.NewMemory()), clips.Factory, presenter.Options{
		Breakpoint:      device.TerminalBreakpoint,
		Threshold:       media.DefaultThreshold,
		ScrollThreshold: scroll.LineThreshold,
	})
	if err != nil {
		t.Fatalf("presenter.New failed: %v", err)
	}
	t.Cleanup(p.Close)
	return NewModel(p, clips, width, height, true, false)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func plainView(h *Harness) string {
	return ansi.Strip(h.View())
}

func lifecycleOf(t *testing.T, m *Model, idx int) media.Lifecycle {
	t.Helper()
	handles := m.presenter.Handles()
	if idx >= len(handles) {
		t.Fatalf("expected at least %d handles, got %d", idx+1, len(handles))
	}
	st, ok := m.presenter.MediaState(handles[idx])
	if !ok {
		t.Fatalf("expected state for handle %d", idx)
	}
	return st.Lifecycle
}

func TestInitialRenderActivatesVisibleClips(t *testing.T) {
	h := NewHarness(newTestModel(t, 120, 40))
	m := h.Model()
	for i := range m.presenter.Handles() {
		if lifecycleOf(t, m, i) != media.Active {
			t.Fatalf("expected clip %d to be active when fully visible", i)
		}
	}
	view := plainView(h)
	if !strings.Contains(view, "1 Home") || !strings.Contains(view, "Entering your name") {
		t.Fatalf("expected nav bar and first clip in view, got:\n%s", view)
	}
}

func TestViewFillsTerminalHeight(t *testing.T) {
	h := NewHarness(newTestModel(t, 120, 30))
	if got := len(strings.Split(h.View(), "\n")); got != 30 {
		t.Fatalf("expected 30 rows, got %d", got)
	}
}

func TestTabSwitchesSectionAndReleasesMedia(t *testing.T) {
	h := NewHarness(newTestModel(t, 120, 40))
	h.Send(tea.KeyMsg{Type: tea.KeyTab})
	m := h.Model()
	if m.presenter.CurrentSection() != "chat" {
		t.Fatalf("expected chat, got %s", m.presenter.CurrentSection())
	}
	if m.presenter.LiveInSection("home") != 0 {
		t.Fatalf("expected home media released")
	}
	chat, _ := site.DefaultCatalog().Find("chat")
	if m.clips.len() != len(chat.Media) {
		t.Fatalf("expected %d surfaces after prune, got %d", len(chat.Media), m.clips.len())
	}
	if !strings.Contains(plainView(h), "Guided conversation") {
		t.Fatalf("expected chat clips rendered")
	}
	h.Send(tea.KeyMsg{Type: tea.KeyShiftTab})
	if h.Model().presenter.CurrentSection() != "home" {
		t.Fatalf("expected shift+tab to return home")
	}
}

func TestDigitsActivateSections(t *testing.T) {
	h := NewHarness(newTestModel(t, 120, 40))
	h.Send(keyRunes("5"))
	if got := h.Model().presenter.CurrentSection(); got != "dashboard" {
		t.Fatalf("expected dashboard, got %s", got)
	}
	h.Send(keyRunes("9"))
	if got := h.Model().presenter.CurrentSection(); got != "dashboard" {
		t.Fatalf("expected out-of-range digit to be ignored, got %s", got)
	}
}

func TestScrollingDrivesClipLifecycle(t *testing.T) {
	h := NewHarness(newTestModel(t, 120, 12))
	m := h.Model()
	h.Send(tea.KeyMsg{Type: tea.KeyEnd})
	if lifecycleOf(t, m, 0) != media.Dormant {
		t.Fatalf("expected first clip dormant once scrolled away")
	}
	first := m.presenter.Handles()[0]
	st, _ := m.presenter.MediaState(first)
	if cl := m.clips.lookup(st.Section, st.ItemID); cl == nil || cl.source != "" {
		t.Fatalf("expected image source cleared, got %#v", cl)
	}

	h.Send(keyRunes("]"))
	h.Send(keyRunes("["))
	if lifecycleOf(t, m, 0) != media.Active {
		t.Fatalf("expected focused clip revealed and active")
	}
	if cl := m.clips.lookup(st.Section, st.ItemID); cl.source != "/gif1.gif" {
		t.Fatalf("expected image source assigned, got %q", cl.source)
	}
}

func TestBackToTopLatch(t *testing.T) {
	h := NewHarness(newTestModel(t, 120, 12))
	m := h.Model()
	if m.presenter.BackToTopVisible() {
		t.Fatalf("expected back-to-top hidden at the top")
	}
	h.Send(tea.KeyMsg{Type: tea.KeyEnd})
	if !m.presenter.BackToTopVisible() || !m.presenter.Bouncing() {
		t.Fatalf("expected bouncing back-to-top near the bottom")
	}
	if !strings.Contains(plainView(h), badgeText) {
		t.Fatalf("expected badge in view")
	}
	h.Send(keyRunes("g"))
	if m.body.YOffset != 0 || m.presenter.BackToTopVisible() {
		t.Fatalf("expected scroll to top, offset %d", m.body.YOffset)
	}
	h.Send(tea.KeyMsg{Type: tea.KeyEnd})
	if !m.presenter.BackToTopVisible() || m.presenter.Bouncing() {
		t.Fatalf("expected visible but no longer bouncing after activation")
	}
}

func TestOverlayOpenReplaceClose(t *testing.T) {
	h := NewHarness(newTestModel(t, 120, 40))
	m := h.Model()
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})
	item, ok := m.presenter.Overlay()
	if !ok || item.ID != "name" {
		t.Fatalf("expected overlay for first clip, got %#v", item)
	}
	if !strings.Contains(plainView(h), "esc close") {
		t.Fatalf("expected overlay hint in view")
	}
	h.Send(tea.KeyMsg{Type: tea.KeyTab})
	if m.presenter.CurrentSection() != "home" {
		t.Fatalf("expected navigation keys ignored while enlarged")
	}
	h.Send(keyRunes("]"))
	if item, _ := m.presenter.Overlay(); item.ID != "overview" {
		t.Fatalf("expected overlay replaced by next clip, got %s", item.ID)
	}
	h.Send(tea.KeyMsg{Type: tea.KeyEsc})
	if _, ok := m.presenter.Overlay(); ok {
		t.Fatalf("expected overlay closed")
	}
}

func TestCompactMenuFlow(t *testing.T) {
	h := NewHarness(newTestModel(t, 0, 0))
	h.Resize(60, 30)
	m := h.Model()
	if m.presenter.DeviceClass() != device.Compact {
		t.Fatalf("expected compact class at 60 columns")
	}
	h.Send(keyRunes("m"))
	if !m.presenter.MenuOpen() {
		t.Fatalf("expected menu open")
	}
	if !strings.Contains(plainView(h), "› Home •") {
		t.Fatalf("expected menu rows in header, got:\n%s", plainView(h))
	}
	h.Send(keyRunes("v"))
	if item, _ := m.menu.Selected(); item.ID != "voice" {
		t.Fatalf("expected filter to select voice, got %s", item.ID)
	}
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})
	if m.presenter.CurrentSection() != "voice" || m.presenter.MenuOpen() {
		t.Fatalf("expected voice active and menu closed")
	}

	h.Send(keyRunes("m"))
	h.Resize(120, 30)
	if m.presenter.MenuOpen() {
		t.Fatalf("expected menu closed when widening to regular")
	}
}

func TestMenuKeyInRegularClass(t *testing.T) {
	h := NewHarness(newTestModel(t, 120, 30))
	h.Send(keyRunes("m"))
	if h.Model().presenter.MenuOpen() {
		t.Fatalf("expected no menu in regular class")
	}
	if !strings.Contains(plainView(h), "only used in narrow terminals") {
		t.Fatalf("expected info message")
	}
}

func TestJumpToSection(t *testing.T) {
	h := NewHarness(newTestModel(t, 120, 30))
	h.Type("/dash")
	if !strings.Contains(plainView(h), "→ Dashboard") {
		t.Fatalf("expected jump preview, got:\n%s", plainView(h))
	}
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})
	m := h.Model()
	if m.presenter.CurrentSection() != "dashboard" || m.jumping {
		t.Fatalf("expected dashboard after jump, got %s", m.presenter.CurrentSection())
	}

	h.Type("/zzz")
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})
	if m.presenter.CurrentSection() != "dashboard" || !strings.Contains(m.errMsg, "no section matches") {
		t.Fatalf("expected failed jump to report, got %q", m.errMsg)
	}
}

func TestThemeToggle(t *testing.T) {
	h := NewHarness(newTestModel(t, 120, 30))
	h.Send(keyRunes("t"))
	m := h.Model()
	if !m.presenter.Theme().Dark {
		t.Fatalf("expected dark theme")
	}
	if !strings.Contains(plainView(h), "dark theme") {
		t.Fatalf("expected theme info")
	}
	if got, want := m.jump.PromptStyle.GetForeground(), theme.For(true).JumpPrompt.GetForeground(); got != want {
		t.Fatalf("expected dark jump prompt colour %v, got %v", want, got)
	}
	h.Send(keyRunes("t"))
	if m.presenter.Theme().Dark {
		t.Fatalf("expected light theme after second toggle")
	}
	if got, want := m.jump.PromptStyle.GetForeground(), theme.For(false).JumpPrompt.GetForeground(); got != want {
		t.Fatalf("expected light jump prompt colour %v, got %v", want, got)
	}
}

func TestSummaryCacheKeepsCurrentWidth(t *testing.T) {
	h := NewHarness(newTestModel(t, 0, 30))
	m := h.Model()
	for _, w := range []int{110, 120, 130} {
		h.Resize(w, 30)
		if len(m.summaryCache) != 1 {
			t.Fatalf("expected one cached summary at width %d, got %d", w, len(m.summaryCache))
		}
	}
	h.Send(keyRunes("t"))
	if len(m.summaryCache) != 2 {
		t.Fatalf("expected light and dark summaries at one width, got %d", len(m.summaryCache))
	}
	h.Resize(140, 30)
	for key := range m.summaryCache {
		if key.width != 140 {
			t.Fatalf("expected only width 140 entries, found %d", key.width)
		}
	}
}

func TestCopySource(t *testing.T) {
	var copied string
	orig := clipboardWrite
	clipboardWrite = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { clipboardWrite = orig })

	h := NewHarness(newTestModel(t, 120, 30))
	h.Send(keyRunes("y"))
	if copied != "/gif1.gif" {
		t.Fatalf("expected first clip source copied, got %q", copied)
	}
	if !strings.Contains(plainView(h), "copied /gif1.gif") {
		t.Fatalf("expected copy info")
	}

	clipboardWrite = func(string) error { return errors.New("no clipboard") }
	h.Send(keyRunes("y"))
	if !strings.Contains(h.Model().errMsg, "no clipboard") {
		t.Fatalf("expected copy error, got %q", h.Model().errMsg)
	}
}

func TestHelpToggle(t *testing.T) {
	h := NewHarness(newTestModel(t, 120, 40))
	h.Send(keyRunes("?"))
	if !strings.Contains(plainView(h), "go to section") {
		t.Fatalf("expected help table")
	}
	h.Send(keyRunes("?"))
	if h.Model().showHelp {
		t.Fatalf("expected help hidden")
	}
}

func TestQuitReleasesMedia(t *testing.T) {
	h := NewHarness(newTestModel(t, 120, 30))
	h.Send(keyRunes("q"))
	m := h.Model()
	if m.presenter.LiveHandles() != 0 {
		t.Fatalf("expected media released on quit")
	}
	if h.View() != "" {
		t.Fatalf("expected empty view after quit")
	}
}

func TestTickAdvancesRunningClips(t *testing.T) {
	m := newTestModel(t, 120, 40)
	if cmd := m.handleTickMsg(tickMsg{}); cmd == nil {
		t.Fatalf("expected next tick scheduled")
	}
	for _, h := range m.presenter.Handles() {
		st, _ := m.presenter.MediaState(h)
		cl := m.clips.lookup(st.Section, st.ItemID)
		if cl.position != 1 {
			t.Fatalf("expected %s to advance one frame, got %d", st.ItemID, cl.position)
		}
	}
	if m.frame != 1 {
		t.Fatalf("expected frame counter to advance")
	}
}

func TestCompactHeaderHidesNavBar(t *testing.T) {
	h := NewHarness(newTestModel(t, 80, 30))
	view := plainView(h)
	if !strings.Contains(view, "≡ Home") || strings.Contains(view, "2 Chat") {
		t.Fatalf("expected collapsed header below the breakpoint, got:\n%s", view)
	}
}

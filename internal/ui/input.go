package ui

import (
	"fmt"

	uistate "github.com/atomicstack/expi-showcase/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const wheelStep = 3

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if keyMsg.Type == tea.KeyCtrlC {
		return m.quit()
	}
	m.errMsg = ""
	switch {
	case m.jumping:
		return m.handleJumpKey(keyMsg)
	case m.presenter.MenuOpen():
		return m.handleMenuKey(keyMsg)
	case m.showHelp:
		return m.handleHelpKey(keyMsg)
	}
	if _, open := m.presenter.Overlay(); open {
		return m.handleOverlayKey(keyMsg)
	}
	return m.handleBrowseKey(keyMsg)
}

func (m *Model) handleBrowseKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		if r := msg.Runes[0]; r >= '1' && r <= '9' {
			m.activateIndex(int(r - '1'))
			return nil
		}
	}
	switch {
	case key.Matches(msg, keys.Quit):
		return m.quit()
	case key.Matches(msg, keys.Next):
		m.step(1)
	case key.Matches(msg, keys.Prev):
		m.step(-1)
	case key.Matches(msg, keys.Up):
		m.scrollBy(-1)
	case key.Matches(msg, keys.Down):
		m.scrollBy(1)
	case key.Matches(msg, keys.PageUp):
		m.scrollBy(-m.body.Height)
	case key.Matches(msg, keys.PageDown):
		m.scrollBy(m.body.Height)
	case key.Matches(msg, keys.Home):
		m.scrollTo(0)
	case key.Matches(msg, keys.End):
		m.scrollToEnd()
	case key.Matches(msg, keys.FocusPrev):
		m.moveFocus(-1)
	case key.Matches(msg, keys.FocusNext):
		m.moveFocus(1)
	case key.Matches(msg, keys.Open):
		m.openFocused()
	case key.Matches(msg, keys.Copy):
		return m.copyFocusedSource()
	case key.Matches(msg, keys.Theme):
		m.toggleTheme()
	case key.Matches(msg, keys.Top):
		m.backToTop()
	case key.Matches(msg, keys.Menu):
		m.toggleMenu()
	case key.Matches(msg, keys.Jump):
		m.startJump()
	case key.Matches(msg, keys.Help):
		m.showHelp = true
	}
	return nil
}

// handleOverlayKey keeps the enlarged clip on screen until it is dismissed.
// Moving the clip focus replaces the enlarged item.
func (m *Model) handleOverlayKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Quit):
		return m.quit()
	case key.Matches(msg, keys.Close):
		m.presenter.CloseOverlay()
	case key.Matches(msg, keys.Copy):
		return m.copyOverlaySource()
	case key.Matches(msg, keys.FocusPrev):
		if m.moveFocus(-1) {
			m.openFocused()
		}
	case key.Matches(msg, keys.FocusNext):
		if m.moveFocus(1) {
			m.openFocused()
		}
	case key.Matches(msg, keys.Theme):
		m.toggleTheme()
	}
	return nil
}

func (m *Model) handleHelpKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Quit):
		return m.quit()
	case key.Matches(msg, keys.Help), key.Matches(msg, keys.Close):
		m.showHelp = false
	}
	return nil
}

func (m *Model) handleMenuKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.closeMenu()
	case tea.KeyUp:
		m.menu.MoveCursor(-1)
	case tea.KeyDown:
		m.menu.MoveCursor(1)
	case tea.KeyHome:
		m.menu.MoveCursorHome()
	case tea.KeyEnd:
		m.menu.MoveCursorEnd()
	case tea.KeyEnter:
		item, ok := m.menu.Selected()
		if !ok || !m.activate(item.ID) {
			m.closeMenu()
		}
	case tea.KeyBackspace:
		if m.menu.DeleteFilterRuneBackward() {
			m.refresh()
		}
	case tea.KeyRunes:
		if m.menu.Filter == "" && key.Matches(msg, keys.Menu) {
			m.closeMenu()
			return nil
		}
		m.menu.InsertFilterText(string(msg.Runes))
		m.refresh()
	}
	return nil
}

func (m *Model) startJump() {
	m.jumping = true
	m.jump.SetValue("")
	m.jump.Focus()
}

func (m *Model) stopJump() {
	m.jumping = false
	m.jump.Blur()
	m.jump.SetValue("")
}

func (m *Model) handleJumpKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.stopJump()
		return nil
	case tea.KeyEnter:
		target, ok := m.jumpTarget()
		query := m.jump.Value()
		m.stopJump()
		if !ok {
			m.errMsg = fmt.Sprintf("no section matches %q", query)
			return nil
		}
		m.activate(target.ID)
		return nil
	}
	var cmd tea.Cmd
	m.jump, cmd = m.jump.Update(msg)
	return cmd
}

// jumpTarget resolves the typed query to the best matching section.
func (m *Model) jumpTarget() (uistate.Item, bool) {
	query := m.jump.Value()
	matches := uistate.FilterItems(m.menu.Full, query)
	if len(matches) == 0 {
		return uistate.Item{}, false
	}
	idx := uistate.BestMatchIndex(matches, query)
	if idx < 0 {
		return uistate.Item{}, false
	}
	return matches[idx], true
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok || m.showHelp {
		return nil
	}
	if mouse.Action != tea.MouseActionPress {
		return nil
	}
	if m.jumping {
		m.stopJump()
		return nil
	}
	if m.presenter.MenuOpen() {
		if mouse.Button == tea.MouseButtonLeft && mouse.Y < m.headerHeight() {
			m.handleHeaderClick(mouse.X, mouse.Y)
		} else {
			m.closeMenu()
		}
		return nil
	}
	switch mouse.Button {
	case tea.MouseButtonWheelUp:
		if _, open := m.presenter.Overlay(); !open {
			m.scrollBy(-wheelStep)
		}
	case tea.MouseButtonWheelDown:
		if _, open := m.presenter.Overlay(); !open {
			m.scrollBy(wheelStep)
		}
	case tea.MouseButtonLeft:
		m.handleClick(mouse.X, mouse.Y)
	}
	return nil
}

// handleClick maps a press to the element drawn under it.
func (m *Model) handleClick(x, y int) {
	if _, open := m.presenter.Overlay(); open {
		if !m.overlayBounds().contains(x, y) {
			m.presenter.CloseOverlay()
		}
		return
	}
	header := m.headerHeight()
	switch {
	case y < header:
		m.handleHeaderClick(x, y)
	case y < header+m.body.Height:
		line := m.body.YOffset + y - header
		for i, b := range m.blocks {
			if b.contains(line) {
				m.focus = i
				m.presenter.OpenOverlay(b.handle)
				return
			}
		}
	case y == m.statusRow():
		if m.presenter.BackToTopVisible() && x >= m.viewWidth()-m.badgeWidth()-1 {
			m.backToTop()
		}
	}
}

func (m *Model) handleHeaderClick(x, y int) {
	if y == 0 {
		if m.compact() {
			m.toggleMenu()
			return
		}
		for _, seg := range m.navSegments() {
			if x >= seg.x0 && x < seg.x1 {
				m.activate(seg.id)
				return
			}
		}
		return
	}
	if m.presenter.MenuOpen() {
		idx := y - 1
		if idx >= 0 && idx < len(m.menu.Items) && !m.activate(m.menu.Items[idx].ID) {
			m.closeMenu()
		}
	}
}

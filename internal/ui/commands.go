package ui

import (
	"fmt"

	"github.com/atomicstack/expi-showcase/internal/logging"
	"github.com/atomicstack/expi-showcase/internal/site"
	"github.com/atomicstack/expi-showcase/internal/ui/command"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

type copyResultMsg struct {
	item   string
	source string
	err    error
}

var clipboardWrite = clipboard.WriteAll

func copySourceAction(item site.MediaItem) command.Action {
	return func() tea.Msg {
		return copyResultMsg{item: item.ID, source: item.SourceURI, err: clipboardWrite(item.SourceURI)}
	}
}

func (m *Model) copyItemSource(item site.MediaItem) tea.Cmd {
	return m.bus.Execute(command.Request{
		ID:      "copy-source",
		Label:   item.ID,
		Handler: copySourceAction(item),
	})
}

func (m *Model) copyFocusedSource() tea.Cmd {
	h, ok := m.focusedHandle()
	if !ok {
		return nil
	}
	item, ok := m.presenter.MediaItem(h)
	if !ok {
		return nil
	}
	return m.copyItemSource(item)
}

func (m *Model) copyOverlaySource() tea.Cmd {
	item, ok := m.presenter.Overlay()
	if !ok {
		return nil
	}
	return m.copyItemSource(item)
}

func (m *Model) handleCopyResultMsg(msg tea.Msg) tea.Cmd {
	res, ok := msg.(copyResultMsg)
	if !ok {
		return nil
	}
	if res.err != nil {
		logging.Error(fmt.Errorf("copy %s: %w", res.item, res.err))
		m.errMsg = fmt.Sprintf("copy failed: %v", res.err)
		return nil
	}
	m.setInfo(fmt.Sprintf("copied %s", res.source))
	return nil
}

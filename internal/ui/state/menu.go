package state

import "strings"

// Menu tracks the collapsible section menu: the full entry list, the
// filtered view and the cursor into it.
type Menu struct {
	Full       []Item
	Items      []Item
	Cursor     int
	Filter     string
	LastCursor int
}

// NewMenu builds a menu over items with the cursor on current.
func NewMenu(items []Item, current string) *Menu {
	m := &Menu{
		Full:       CloneItems(items),
		Items:      CloneItems(items),
		LastCursor: -1,
	}
	m.SelectID(current)
	return m
}

// Reset clears the filter and places the cursor on current.
func (m *Menu) Reset(current string) {
	m.Filter = ""
	m.LastCursor = -1
	m.Items = CloneItems(m.Full)
	m.SelectID(current)
}

// SelectID moves the cursor to the entry with the given id.
func (m *Menu) SelectID(id string) bool {
	for i, item := range m.Items {
		if item.ID == id {
			m.Cursor = i
			return true
		}
	}
	return false
}

// Selected returns the entry under the cursor.
func (m *Menu) Selected() (Item, bool) {
	if m.Cursor < 0 || m.Cursor >= len(m.Items) {
		return Item{}, false
	}
	return m.Items[m.Cursor], true
}

// SetFilter narrows the visible entries and moves the cursor to the best
// match. Clearing the filter restores the cursor held before filtering.
func (m *Menu) SetFilter(query string) {
	trimmed := strings.TrimSpace(query)
	prevTrimmed := strings.TrimSpace(m.Filter)
	m.Filter = query
	if trimmed != "" && prevTrimmed == "" {
		m.LastCursor = m.Cursor
	}
	m.Items = FilterItems(m.Full, query)
	switch {
	case len(m.Items) == 0:
		m.Cursor = 0
	case trimmed != "":
		m.Cursor = 0
		if idx := BestMatchIndex(m.Items, trimmed); idx >= 0 {
			m.Cursor = idx
		}
	case prevTrimmed != "":
		if m.LastCursor >= 0 && m.LastCursor < len(m.Items) {
			m.Cursor = m.LastCursor
		}
		m.LastCursor = -1
	}
}

// InsertFilterText appends text to the filter.
func (m *Menu) InsertFilterText(text string) bool {
	if text == "" {
		return false
	}
	m.SetFilter(m.Filter + text)
	return true
}

// DeleteFilterRuneBackward removes the last rune of the filter.
func (m *Menu) DeleteFilterRuneBackward() bool {
	runes := []rune(m.Filter)
	if len(runes) == 0 {
		return false
	}
	m.SetFilter(string(runes[:len(runes)-1]))
	return true
}

// MoveCursor moves the cursor by delta, clamped to the visible entries.
func (m *Menu) MoveCursor(delta int) bool {
	if len(m.Items) == 0 {
		m.Cursor = 0
		return false
	}
	old := m.Cursor
	m.Cursor += delta
	if m.Cursor < 0 {
		m.Cursor = 0
	}
	if m.Cursor >= len(m.Items) {
		m.Cursor = len(m.Items) - 1
	}
	return m.Cursor != old
}

// MoveCursorHome moves the cursor to the first entry.
func (m *Menu) MoveCursorHome() bool {
	return m.MoveCursor(-len(m.Items))
}

// MoveCursorEnd moves the cursor to the last entry.
func (m *Menu) MoveCursorEnd() bool {
	return m.MoveCursor(len(m.Items))
}

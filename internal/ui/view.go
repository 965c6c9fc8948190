package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/expi-showcase/internal/device"
	"github.com/atomicstack/expi-showcase/internal/format/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

const (
	brandTitle  = "Expi Analyzer"
	footerText  = "tab/shift+tab section  1-9 go to  [/] clip  enter enlarge  / jump  g top  t theme  ? help  q quit"
	badgeText   = "↑ top (g)"
	bounceText  = "⇡ top (g)"
	overlayHint = "esc close  y copy source  [/] neighbour"
)

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // text already carries ANSI styling
}

type navSegment struct {
	id     string
	text   string
	active bool
	x0     int
	x1     int
}

type rect struct {
	x0, y0, x1, y1 int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x0 && x < r.x1 && y >= r.y0 && y < r.y1
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	m.body.Width = m.viewWidth()
	m.body.Height = m.bodyHeight()
	m.renderDocument()

	rows := make([]string, 0, m.viewHeight())
	rows = append(rows, m.headerRows()...)
	rows = append(rows, m.bodyRows()...)
	rows = append(rows, m.statusLine())
	lines := make([]styledLine, 0, 2)
	if m.showFooter {
		lines = append(lines, styledLine{text: footerText, style: m.styles().Footer})
	}
	if m.verbose {
		lines = append(lines, styledLine{text: m.debugLine(), style: m.styles().Info})
	}
	if len(lines) > 0 {
		rows = append(rows, renderLines(applyWidth(lines, m.viewWidth())))
	}
	return strings.Join(rows, "\n")
}

func (m *Model) compact() bool {
	return m.presenter.DeviceClass() == device.Compact
}

func (m *Model) bodyHeight() int {
	used := m.headerHeight() + 1
	if m.showFooter {
		used++
	}
	if m.verbose {
		used++
	}
	return max(m.viewHeight()-used, 1)
}

func (m *Model) headerHeight() int {
	rows := 2
	if m.presenter.MenuOpen() {
		rows += len(m.menu.Items) + 1
	}
	return rows
}

func (m *Model) statusRow() int {
	return m.headerHeight() + m.body.Height
}

func (m *Model) brand() string {
	return m.styles().Title.Render(brandTitle)
}

func (m *Model) navSegments() []navSegment {
	styles := m.styles()
	current := m.presenter.CurrentSection()
	x := lipgloss.Width(m.brand()) + 1
	entries := m.presenter.Sections()
	segs := make([]navSegment, 0, len(entries))
	for i, e := range entries {
		text := e.Label
		if i < 9 {
			text = fmt.Sprintf("%d %s", i+1, e.Label)
		}
		style := styles.NavItem
		if e.ID == current {
			style = styles.NavActive
		}
		w := lipgloss.Width(style.Render(text))
		segs = append(segs, navSegment{id: e.ID, text: text, active: e.ID == current, x0: x, x1: x + w})
		x += w
	}
	return segs
}

func (m *Model) headerRows() []string {
	styles := m.styles()
	width := m.viewWidth()
	var top strings.Builder
	top.WriteString(m.brand())
	top.WriteString(" ")
	if m.compact() {
		top.WriteString(styles.NavHint.Render(fmt.Sprintf(" ≡ %s  (m)", m.presenter.Section().Label)))
	} else {
		for _, seg := range m.navSegments() {
			style := styles.NavItem
			if seg.active {
				style = styles.NavActive
			}
			top.WriteString(style.Render(seg.text))
		}
	}
	rows := []string{ansi.Truncate(top.String(), width, "…")}
	if m.presenter.MenuOpen() {
		rows = append(rows, m.menuRows(width)...)
	}
	rows = append(rows, styles.NavHint.Render(strings.Repeat("─", width)))
	return rows
}

func (m *Model) menuRows(width int) []string {
	styles := m.styles()
	current := m.presenter.CurrentSection()
	rows := make([]string, 0, len(m.menu.Items)+1)
	for i, item := range m.menu.Items {
		prefix := "  "
		style := styles.MenuItem
		if i == m.menu.Cursor {
			prefix = "› "
			style = styles.MenuSelected
		}
		label := item.Label
		if item.ID == current {
			label += " •"
		}
		rows = append(rows, style.Render(truncateText(prefix+label, width)))
	}
	hint := "type to filter  enter open  esc close"
	if m.menu.Filter != "" {
		hint = "filter: " + m.menu.Filter
		if len(m.menu.Items) == 0 {
			hint += " (no matches)"
		}
	}
	return append(rows, styles.NavHint.Render(truncateText(hint, width)))
}

func (m *Model) bodyRows() []string {
	height := m.body.Height
	if m.showHelp {
		return fitRows(m.helpRows(), height)
	}
	if _, open := m.presenter.Overlay(); open {
		return m.overlayRows(height)
	}
	return fitRows(strings.Split(m.body.View(), "\n"), height)
}

func (m *Model) helpRows() []string {
	bindings := keys.helpBindings()
	data := make([][]string, 0, len(bindings)+1)
	data = append(data, []string{"1-9", "go to section"})
	for _, b := range bindings {
		help := b.Help()
		data = append(data, []string{help.Key, help.Desc})
	}
	lines := []styledLine{{text: m.styles().Title.Render("Keys"), raw: true}}
	for _, row := range table.Format(data, []table.Alignment{table.AlignRight, table.AlignLeft}) {
		lines = append(lines, styledLine{text: "  " + row, style: m.styles().Info})
	}
	return strings.Split(renderLines(applyWidth(lines, m.viewWidth())), "\n")
}

func (m *Model) overlayBox() string {
	item, ok := m.presenter.Overlay()
	if !ok {
		return ""
	}
	styles := m.styles()
	w := min(max(m.viewWidth()-4, minBoxWidth), 64)
	inner := w - 6
	cl := m.clips.lookup(m.presenter.CurrentSection(), item.ID)
	lines := []string{
		styles.OverlayTitle.Render(truncateText(item.Title, inner)),
		truncateText(fmt.Sprintf("%s · %s", item.Kind, item.SourceURI), inner),
		"",
	}
	lines = append(lines, wrapText(item.Description, inner)...)
	lines = append(lines, "", progressBar(cl, min(inner, progressMax)), styles.Info.Render(truncateText(overlayHint, inner)))
	return styles.Overlay.Width(w - 2).Render(strings.Join(lines, "\n"))
}

func (m *Model) overlayBounds() rect {
	box := m.overlayBox()
	w, h := lipgloss.Width(box), lipgloss.Height(box)
	x0 := max((m.viewWidth()-w)/2, 0)
	y0 := m.headerHeight() + max((m.body.Height-h)/2, 0)
	return rect{x0: x0, y0: y0, x1: x0 + w, y1: y0 + h}
}

func (m *Model) overlayRows(height int) []string {
	bounds := m.overlayBounds()
	box := strings.Split(m.overlayBox(), "\n")
	rows := make([]string, height)
	top := bounds.y0 - m.headerHeight()
	indent := strings.Repeat(" ", bounds.x0)
	for i, line := range box {
		if top+i >= height {
			break
		}
		rows[top+i] = indent + line
	}
	return rows
}

func (m *Model) badge() string {
	if !m.presenter.BackToTopVisible() {
		return ""
	}
	style := m.styles().BackToTop
	if m.presenter.Bouncing() && (m.frame/4)%2 == 1 {
		return style.Render(bounceText) + " "
	}
	return style.Render(badgeText)
}

func (m *Model) badgeWidth() int {
	return lipgloss.Width(m.styles().BackToTop.Render(badgeText)) + 1
}

func (m *Model) statusLine() string {
	styles := m.styles()
	width := m.viewWidth()
	left := ""
	switch {
	case m.jumping:
		left = m.jump.View()
		if target, ok := m.jumpTarget(); ok && strings.TrimSpace(m.jump.Value()) != "" {
			left += styles.NavHint.Render("  → " + target.Label)
		}
	case m.errMsg != "":
		left = styles.Error.Render("Error: " + m.errMsg)
	default:
		if info := m.currentInfo(); info != "" {
			left = styles.Info.Render(info)
		}
	}
	badge := m.badge()
	if badge == "" {
		return ansi.Truncate(left, width, "…")
	}
	room := max(width-lipgloss.Width(badge)-1, 0)
	left = ansi.Truncate(left, room, "…")
	pad := max(width-lipgloss.Width(left)-lipgloss.Width(badge), 1)
	return left + strings.Repeat(" ", pad) + badge
}

func (m *Model) debugLine() string {
	overlay := "-"
	if item, ok := m.presenter.Overlay(); ok {
		overlay = item.ID
	}
	theme := "light"
	if m.presenter.Theme().Dark {
		theme = "dark"
	}
	metrics := m.presenter.ScrollMetrics()
	return fmt.Sprintf("class=%s live=%d threshold=%.2f offset=%d/%d theme=%s overlay=%s",
		m.presenter.DeviceClass(), m.presenter.LiveHandles(), m.presenter.Threshold(),
		metrics.Offset, metrics.DocumentHeight, theme, overlay)
}

func fitRows(rows []string, height int) []string {
	if height <= 0 {
		return nil
	}
	if len(rows) > height {
		return rows[:height]
	}
	for len(rows) < height {
		rows = append(rows, "")
	}
	return rows
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{text: text, style: line.style, raw: line.raw}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if line.raw || line.style == nil {
			out[i] = line.text
			continue
		}
		out[i] = line.style.Render(line.text)
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}

package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/expi-showcase/internal/data/dispatcher"
	"github.com/atomicstack/expi-showcase/internal/logging"
	"github.com/atomicstack/expi-showcase/internal/media"
	"github.com/atomicstack/expi-showcase/internal/scroll"
	"github.com/atomicstack/expi-showcase/internal/site"
	"github.com/atomicstack/expi-showcase/internal/theme"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"
)

const (
	minBoxWidth = 24
	maxBoxWidth = 72
	progressMax = 24
)

// mediaBlock records the document lines [start, end) occupied by one clip.
type mediaBlock struct {
	handle media.Handle
	start  int
	end    int
}

func (b mediaBlock) contains(line int) bool {
	return line >= b.start && line < b.end
}

type summaryKey struct {
	section string
	dark    bool
	width   int
}

func (m *Model) styles() *theme.Styles {
	return theme.For(m.presenter.Theme().Dark)
}

// refresh resizes the body, rebuilds the document and reports the resulting
// geometry to the controller.
func (m *Model) refresh() {
	m.body.Width = m.viewWidth()
	m.body.Height = m.bodyHeight()
	if styles := m.styles(); styles.JumpPrompt != nil {
		m.jump.PromptStyle = *styles.JumpPrompt
	}
	m.renderDocument()
	m.syncSignals()
}

// renderDocument rebuilds the scrollable body. Block heights depend only on
// the width, so spans stay valid while clip states change.
func (m *Model) renderDocument() {
	width := m.viewWidth()
	section := m.presenter.Section()
	lines := append([]string(nil), m.summaryLines(section, width)...)
	lines = append(lines, "")
	m.blocks = m.blocks[:0]
	for i, h := range m.presenter.Handles() {
		block := m.renderBlock(h, i == m.focus, width)
		m.blocks = append(m.blocks, mediaBlock{handle: h, start: len(lines), end: len(lines) + len(block)})
		lines = append(lines, block...)
	}
	lines = append(lines, m.styles().Footer.Render(fmt.Sprintf("end of %s", section.Label)))
	offset := m.body.YOffset
	m.body.SetContent(strings.Join(lines, "\n"))
	m.body.SetYOffset(offset)
}

func (m *Model) scrollMetrics() scroll.Metrics {
	return scroll.Metrics{
		Offset:         m.body.YOffset,
		ViewportHeight: m.body.Height,
		DocumentHeight: m.body.TotalLineCount(),
	}
}

// syncSignals forwards the body's scroll position and every clip's
// intersection ratio.
func (m *Model) syncSignals() {
	evts := make([]dispatcher.Event, 0, len(m.blocks)+1)
	evts = append(evts, dispatcher.Scroll(m.scrollMetrics()))
	for _, b := range m.blocks {
		evts = append(evts, dispatcher.Visibility(b.handle, m.visibleRatio(b)))
	}
	m.dispatcher.HandleAll(evts)
}

func (m *Model) visibleRatio(b mediaBlock) float64 {
	height := b.end - b.start
	if height <= 0 {
		return 0
	}
	top := m.body.YOffset
	bottom := top + m.body.Height
	overlap := min(b.end, bottom) - max(b.start, top)
	if overlap <= 0 {
		return 0
	}
	return float64(overlap) / float64(height)
}

func (m *Model) summaryLines(section site.Section, width int) []string {
	key := summaryKey{section: section.ID, dark: m.presenter.Theme().Dark, width: width}
	if lines, ok := m.summaryCache[key]; ok {
		return lines
	}
	if width != m.summaryWidth {
		clear(m.summaryCache)
		m.summaryWidth = width
	}
	lines := renderMarkdown(section.Summary, key.dark, width)
	m.summaryCache[key] = lines
	return lines
}

func renderMarkdown(md string, dark bool, width int) []string {
	if strings.TrimSpace(md) == "" {
		return nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(theme.GlamourStyle(dark)),
		glamour.WithWordWrap(max(width-4, 10)),
	)
	if err == nil {
		var out string
		out, err = r.Render(md)
		if err == nil {
			return strings.Split(strings.Trim(out, "\n"), "\n")
		}
	}
	logging.Error(fmt.Errorf("render summary: %w", err))
	return wrapText(md, width)
}

func (m *Model) boxWidth() int {
	return min(max(m.viewWidth()-2, minBoxWidth), maxBoxWidth)
}

func (m *Model) renderBlock(h media.Handle, focused bool, width int) []string {
	styles := m.styles()
	item, _ := m.presenter.MediaItem(h)
	st, _ := m.presenter.MediaState(h)
	cl := m.clips.lookup(st.Section, st.ItemID)

	boxW := m.boxWidth()
	inner := boxW - 4
	marker := "  "
	frame := styles.MediaFrame
	if focused {
		marker = "▸ "
		frame = styles.MediaFocused
	}
	title := ansi.Truncate(fmt.Sprintf("%s%s (%s)", marker, item.Title, item.Kind), width, "…")
	lines := []string{styles.Title.Render(title)}

	content := []string{
		ansi.Truncate(clipStatus(cl, st, styles), inner, "…"),
		progressBar(cl, min(inner, progressMax)),
		truncateText(item.SourceURI, inner),
	}
	box := frame.Width(boxW - 2).Render(strings.Join(content, "\n"))
	lines = append(lines, strings.Split(box, "\n")...)
	for _, line := range wrapText(item.Description, boxW) {
		lines = append(lines, styles.Caption.Render(line))
	}
	return append(lines, "")
}

func clipStatus(cl *clip, st media.State, styles *theme.Styles) string {
	if cl == nil {
		return styles.MediaDormant.Render("○ no surface")
	}
	var text string
	switch {
	case cl.item.Kind == site.KindVideo && cl.playing:
		text = fmt.Sprintf("▶ playing %d/%d", cl.position+1, clipFrames)
	case cl.item.Kind == site.KindVideo && cl.position == 0:
		text = "❚❚ paused at start"
	case cl.item.Kind == site.KindVideo:
		text = "❚❚ paused"
	case cl.source != "":
		text = fmt.Sprintf("▦ frame %d/%d", cl.position+1, clipFrames)
	default:
		text = "○ not loaded"
	}
	text = fmt.Sprintf("%s · %3.0f%% visible", text, st.Ratio*100)
	if cl.running() {
		return styles.MediaLive.Render(text)
	}
	return styles.MediaDormant.Render(text)
}

func progressBar(cl *clip, width int) string {
	if width <= 0 {
		return ""
	}
	filled := 0
	if cl != nil && cl.running() {
		filled = (cl.position + 1) * width / clipFrames
	}
	return strings.Repeat("━", filled) + strings.Repeat("─", width-filled)
}

func wrapText(text string, width int) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if width <= 0 {
		return []string{text}
	}
	wrapped := strings.Split(wordwrap.String(text, width), "\n")
	for i, line := range wrapped {
		wrapped[i] = ansi.Truncate(line, width, "…")
	}
	return wrapped
}

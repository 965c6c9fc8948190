// Package table lays out the key-help rows in padded, wide-glyph aware
// columns.
package table

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Alignment controls how a column is padded.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

const gutter = "  "

// Format pads every cell to the widest entry of its column. Rows may be
// ragged; missing trailing cells are left out rather than padded.
func Format(rows [][]string, alignments []Alignment) []string {
	if len(rows) == 0 {
		return nil
	}
	widths := columnWidths(rows)
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, len(row))
		for c, cell := range row {
			cells[c] = pad(cell, widths[c], alignAt(alignments, c))
		}
		out = append(out, strings.Join(cells, gutter))
	}
	return out
}

func columnWidths(rows [][]string) []int {
	var widths []int
	for _, row := range rows {
		for c, cell := range row {
			if c == len(widths) {
				widths = append(widths, 0)
			}
			widths[c] = max(widths[c], runewidth.StringWidth(cell))
		}
	}
	return widths
}

func alignAt(alignments []Alignment, col int) Alignment {
	if col < len(alignments) {
		return alignments[col]
	}
	return AlignLeft
}

// pad counts terminal cells so wide glyphs in key names line up.
func pad(cell string, width int, align Alignment) string {
	fill := strings.Repeat(" ", max(width-runewidth.StringWidth(cell), 0))
	if align == AlignRight {
		return fill + cell
	}
	return cell + fill
}

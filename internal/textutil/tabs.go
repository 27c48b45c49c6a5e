package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// DefaultTabWidth matches the column stops of the ls long format.
const DefaultTabWidth = 8

// ExpandTabs replaces tabs with spaces up to the next tab stop.
func ExpandTabs(text string, tabWidth int) string {
	if tabWidth <= 0 || !strings.ContainsRune(text, '\t') {
		return text
	}

	var b strings.Builder
	column := 0
	for _, r := range text {
		if r != '\t' {
			b.WriteRune(r)
			column += runeCells(r)
			continue
		}
		pad := tabWidth - column%tabWidth
		b.WriteString(strings.Repeat(" ", pad))
		column += pad
	}
	return b.String()
}

// DisplayWidth reports how many terminal cells text occupies. Combining
// marks take no cell of their own.
func DisplayWidth(text string) int {
	width := 0
	for _, r := range text {
		width += runeCells(r)
	}
	return width
}

// TruncateToWidth cuts text so it fits in width cells, ending with tail when
// anything was dropped.
func TruncateToWidth(text string, width int, tail string) string {
	if width <= 0 {
		return ""
	}
	if DisplayWidth(text) <= width {
		return text
	}
	tailWidth := DisplayWidth(tail)
	if tailWidth >= width {
		tail = ""
		tailWidth = 0
	}

	var b strings.Builder
	used := 0
	for _, r := range text {
		w := runeCells(r)
		if used+w > width-tailWidth {
			break
		}
		b.WriteRune(r)
		used += w
	}
	b.WriteString(tail)
	return b.String()
}

func runeCells(r rune) int {
	if w := runewidth.RuneWidth(r); w > 0 {
		return w
	}
	return 0
}

package render

import (
	"github.com/LeaoMartelo2/tired/internal/textutil"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const ellipsis = "~"

// cachedRuneWidth returns the cell width of ru. Zero-width runes report -1
// so drawTextLine can attach them to the previous cell as combining marks.
func (r *Renderer) cachedRuneWidth(ru rune) int {
	if ru >= 0 && ru < 128 {
		if w := r.asciiWidth[ru]; w != 0 {
			return w - 1
		}
		w := runewidth.RuneWidth(ru)
		r.asciiWidth[ru] = w + 1
		return w
	}
	w := runewidth.RuneWidth(ru)
	if w == 0 {
		return -1
	}
	return w
}

func (r *Renderer) measureTextWidth(text string) int {
	return textutil.DisplayWidth(text)
}

func (r *Renderer) truncateTextToWidth(text string, maxWidth int) string {
	return textutil.TruncateToWidth(text, maxWidth, ellipsis)
}

// drawTextLine draws text from startX and returns the column after it.
// Nothing is drawn past startX+maxWidth.
func (r *Renderer) drawTextLine(startX, y, maxWidth int, text string, style tcell.Style) int {
	x := startX
	runes := []rune(text)
	limit := startX + maxWidth

	for i := 0; i < len(runes); {
		mainc := runes[i]
		i++
		var combc []rune
		for i < len(runes) && r.cachedRuneWidth(runes[i]) < 0 {
			combc = append(combc, runes[i])
			i++
		}

		w := r.cachedRuneWidth(mainc)
		if w < 1 {
			w = 1
		}
		if x+w > limit {
			break
		}
		r.screen.SetContent(x, y, mainc, combc, style)
		x += w
	}
	return x
}

// fillRow paints the rest of row y from startX with blanks in style.
func (r *Renderer) fillRow(startX, y, w int, style tcell.Style) {
	for x := startX; x < w; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
}

// displayText makes user-controlled text safe to draw.
func displayText(text string) string {
	return textutil.ExpandTabs(textutil.SanitizeTerminalText(text), textutil.DefaultTabWidth)
}

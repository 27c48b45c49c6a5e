package render

import (
	"github.com/gdamore/tcell/v2"
)

const (
	dialogWidth  = 60
	dialogHeight = 5
)

type dialogBox struct {
	x, y, w, h int
}

// inner returns the first usable column and the usable width.
func (b dialogBox) inner() (int, int) {
	return b.x + 2, b.w - 4
}

func (r *Renderer) dialogFrame() (dialogBox, bool) {
	sw, sh := r.screen.Size()
	w := dialogWidth
	if w > sw {
		w = sw
	}
	h := dialogHeight
	if h > sh {
		h = sh
	}
	if w < 6 || h < 3 {
		return dialogBox{}, false
	}
	return dialogBox{x: (sw - w) / 2, y: (sh - h) / 2, w: w, h: h}, true
}

func (r *Renderer) drawBox(b dialogBox) {
	fill := tcell.StyleDefault.Background(r.theme.DialogBg).Foreground(r.theme.DialogFg)
	border := fill.Foreground(r.theme.DialogBorder)

	for y := b.y; y < b.y+b.h; y++ {
		for x := b.x; x < b.x+b.w; x++ {
			r.screen.SetContent(x, y, ' ', nil, fill)
		}
	}
	right, bottom := b.x+b.w-1, b.y+b.h-1
	for x := b.x + 1; x < right; x++ {
		r.screen.SetContent(x, b.y, tcell.RuneHLine, nil, border)
		r.screen.SetContent(x, bottom, tcell.RuneHLine, nil, border)
	}
	for y := b.y + 1; y < bottom; y++ {
		r.screen.SetContent(b.x, y, tcell.RuneVLine, nil, border)
		r.screen.SetContent(right, y, tcell.RuneVLine, nil, border)
	}
	r.screen.SetContent(b.x, b.y, tcell.RuneULCorner, nil, border)
	r.screen.SetContent(right, b.y, tcell.RuneURCorner, nil, border)
	r.screen.SetContent(b.x, bottom, tcell.RuneLLCorner, nil, border)
	r.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, border)
}

// DrawConfirm layers a yes/no question over the current frame.
func (r *Renderer) DrawConfirm(message string) {
	r.drawMessageBox(message + " (y/n)")
}

// DrawMessage layers a notice over the current frame.
func (r *Renderer) DrawMessage(message string) {
	r.drawMessageBox(message)
}

func (r *Renderer) drawMessageBox(text string) {
	box, ok := r.dialogFrame()
	if !ok {
		return
	}
	r.drawBox(box)
	x, width := box.inner()
	style := tcell.StyleDefault.Background(r.theme.DialogBg).Foreground(r.theme.DialogFg)
	r.drawTextLine(x, box.y+box.h/2, width, r.truncateTextToWidth(displayText(text), width), style)
	r.screen.HideCursor()
	r.screen.Show()
}

// DrawPrompt layers a one-line text input over the current frame. cursor
// is a rune offset into text.
func (r *Renderer) DrawPrompt(label, text string, cursor int) {
	box, ok := r.dialogFrame()
	if !ok {
		return
	}
	r.drawBox(box)
	x, width := box.inner()
	y := box.y + box.h/2
	style := tcell.StyleDefault.Background(r.theme.DialogBg).Foreground(r.theme.DialogFg)

	labelText := r.truncateTextToWidth(displayText(label), width)
	x = r.drawTextLine(x, y, width, labelText, style.Bold(true))
	room := box.x + box.w - 2 - x
	if room < 1 {
		r.screen.Show()
		return
	}

	runes := []rune(displayText(text))
	if cursor > len(runes) {
		cursor = len(runes)
	}
	// scroll so the cursor stays inside the field
	first := 0
	for r.measureTextWidth(string(runes[first:cursor])) >= room && first < cursor {
		first++
	}
	visible := r.truncateTextToWidth(string(runes[first:]), room)
	r.drawTextLine(x, y, room, visible, style)

	r.screen.ShowCursor(x+r.measureTextWidth(string(runes[first:cursor])), y)
	r.screen.Show()
}

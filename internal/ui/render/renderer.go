package render

import (
	"fmt"

	fsutil "github.com/LeaoMartelo2/tired/internal/fs"
	statepkg "github.com/LeaoMartelo2/tired/internal/state"
	"github.com/LeaoMartelo2/tired/internal/ui/input"
	"github.com/gdamore/tcell/v2"
)

// infoKindWidth pads the entry kind in the info bar.
const infoKindWidth = 20

// indexGap separates the entry number from the listing prefix.
const indexGap = 4

// Renderer draws the browser onto a tcell screen.
type Renderer struct {
	screen     tcell.Screen
	theme      ColorTheme
	keymap     *input.Keymap
	asciiWidth [128]int
}

// NewRenderer creates a renderer. The keymap feeds the hints and help.
func NewRenderer(screen tcell.Screen, keymap *input.Keymap) *Renderer {
	if keymap == nil {
		keymap = input.DefaultKeymap()
	}
	return &Renderer{
		screen: screen,
		theme:  GetColorTheme(),
		keymap: keymap,
	}
}

// Render draws the whole UI for state and shows it.
func (r *Renderer) Render(state *statepkg.BrowserState) {
	r.Draw(state)
	r.screen.Show()
}

// Draw paints state without showing it, so dialogs can be layered on top.
func (r *Renderer) Draw(state *statepkg.BrowserState) {
	r.screen.Clear()
	w, h := r.screen.Size()
	if w <= 0 || h <= 0 || state == nil {
		return
	}

	if state.HelpVisible {
		r.drawHelpOverlay(w, h)
		return
	}

	r.drawLastAction(state, w)
	r.drawEntries(state, w, h)
	r.drawInfoBar(state, w, h)
	r.drawFooter(w, h)
}

func (r *Renderer) drawLastAction(state *statepkg.BrowserState, w int) {
	style := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.MessageFg)
	r.drawTextLine(0, 0, w, r.truncateTextToWidth(displayText(state.LastAction), w), style)
}

// listRows is how many entry rows fit between the message row and the two
// status rows.
func listRows(state *statepkg.BrowserState, h int) int {
	rows := h - 3
	if rows > state.PageSize {
		rows = state.PageSize
	}
	if rows < 0 {
		rows = 0
	}
	return rows
}

func (r *Renderer) drawEntries(state *statepkg.BrowserState, w, h int) {
	start, end := state.PageBounds()
	rows := listRows(state, h)
	if end-start > rows {
		// keep the selection visible on a short terminal
		if state.SelectedIndex >= start+rows {
			start = state.SelectedIndex - rows + 1
		}
		end = start + rows
	}

	base := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)
	for i := start; i < end; i++ {
		y := 1 + i - start
		entry := state.Entries[i]
		selected := i == state.SelectedIndex

		rowStyle := base
		if selected {
			rowStyle = rowStyle.Reverse(true)
		}

		label := fmt.Sprintf("[%2d]", i)
		x := r.drawTextLine(0, y, w, label, rowStyle.Foreground(r.indexColor(selected)))
		x = r.drawTextLine(x, y, w-x, fmt.Sprintf("%*s", indexGap, ""), rowStyle)
		x = r.drawTextLine(x, y, w-x, displayText(entry.Prefix), rowStyle)

		name := r.truncateTextToWidth(displayText(entry.Name), w-x)
		x = r.drawTextLine(x, y, w-x, name, rowStyle.Foreground(r.kindColor(entry.Kind)))
		if selected {
			r.fillRow(x, y, w, rowStyle)
		}
	}
}

func (r *Renderer) indexColor(selected bool) tcell.Color {
	if selected {
		return r.theme.Foreground
	}
	return r.theme.IndexFg
}

func (r *Renderer) kindColor(kind fsutil.Kind) tcell.Color {
	switch kind {
	case fsutil.KindDirectory:
		return r.theme.DirectoryFg
	case fsutil.KindExecutable:
		return r.theme.ExecutableFg
	case fsutil.KindSymlink:
		return r.theme.SymlinkFg
	default:
		return r.theme.FileFg
	}
}

// InfoBarText is the status line: kind of the selection, page and path.
func InfoBarText(state *statepkg.BrowserState) string {
	kind := "EMPTY"
	if entry := state.SelectedEntry(); entry != nil {
		kind = entry.Kind.String()
	}
	pages := state.TotalPages()
	page := state.Page + 1
	if pages == 0 {
		page = 0
	}
	return fmt.Sprintf("INFO: %-*s | Page (%d/%d) | %s", infoKindWidth, kind, page, pages, state.CurrentPath)
}

func (r *Renderer) drawInfoBar(state *statepkg.BrowserState, w, h int) {
	if h < 2 {
		return
	}
	style := tcell.StyleDefault.Background(r.theme.InfoBg).Foreground(r.theme.InfoFg).Bold(true)
	text := r.truncateTextToWidth(displayText(InfoBarText(state)), w)
	x := r.drawTextLine(0, h-2, w, text, style)
	r.fillRow(x, h-2, w, style)
}

func (r *Renderer) drawFooter(w, h int) {
	style := tcell.StyleDefault.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg)
	text := r.truncateTextToWidth(buildFooterHelpText(r.keymap), w)
	x := r.drawTextLine(0, h-1, w, text, style)
	r.fillRow(x, h-1, w, style)
}

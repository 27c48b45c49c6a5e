package app

import "github.com/gdamore/tcell/v2"

// lineEditor is the single-line input behind prompts. cursor is a rune
// offset.
type lineEditor struct {
	runes  []rune
	cursor int
}

func (e *lineEditor) String() string { return string(e.runes) }

func (e *lineEditor) insert(r rune) {
	e.runes = append(e.runes, 0)
	copy(e.runes[e.cursor+1:], e.runes[e.cursor:])
	e.runes[e.cursor] = r
	e.cursor++
}

func (e *lineEditor) backspace() {
	if e.cursor == 0 {
		return
	}
	e.runes = append(e.runes[:e.cursor-1], e.runes[e.cursor:]...)
	e.cursor--
}

func (e *lineEditor) deleteForward() {
	if e.cursor >= len(e.runes) {
		return
	}
	e.runes = append(e.runes[:e.cursor], e.runes[e.cursor+1:]...)
}

func (e *lineEditor) deleteWord() {
	start := e.cursor
	for start > 0 && e.runes[start-1] == ' ' {
		start--
	}
	for start > 0 && e.runes[start-1] != ' ' {
		start--
	}
	e.runes = append(e.runes[:start], e.runes[e.cursor:]...)
	e.cursor = start
}

func (e *lineEditor) left() {
	if e.cursor > 0 {
		e.cursor--
	}
}

func (e *lineEditor) right() {
	if e.cursor < len(e.runes) {
		e.cursor++
	}
}

// promptOutcome says whether a key finished the prompt.
type promptOutcome int

const (
	promptEditing promptOutcome = iota
	promptAccepted
	promptCancelled
)

// handleKey applies one key to the editor.
func (e *lineEditor) handleKey(ev *tcell.EventKey) promptOutcome {
	switch ev.Key() {
	case tcell.KeyEnter:
		return promptAccepted
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return promptCancelled
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		e.backspace()
	case tcell.KeyDelete, tcell.KeyCtrlD:
		e.deleteForward()
	case tcell.KeyCtrlW:
		e.deleteWord()
	case tcell.KeyCtrlU:
		e.runes = e.runes[e.cursor:]
		e.cursor = 0
	case tcell.KeyLeft, tcell.KeyCtrlB:
		e.left()
	case tcell.KeyRight, tcell.KeyCtrlF:
		e.right()
	case tcell.KeyHome, tcell.KeyCtrlA:
		e.cursor = 0
	case tcell.KeyEnd, tcell.KeyCtrlE:
		e.cursor = len(e.runes)
	case tcell.KeyRune:
		e.insert(ev.Rune())
	}
	return promptEditing
}

package app

import (
	"fmt"

	statepkg "github.com/LeaoMartelo2/tired/internal/state"
	"github.com/LeaoMartelo2/tired/internal/ui/input"
	renderui "github.com/LeaoMartelo2/tired/internal/ui/render"
	"github.com/gdamore/tcell/v2"
)

// Presenter is everything the loop and the dispatcher need from the
// terminal. Prompts, confirmations and messages block until answered.
type Presenter interface {
	Render(state *statepkg.BrowserState)
	ReadKey() *tcell.EventKey
	PromptText(label string) string
	Confirm(message string) bool
	ShowMessage(text string)
	Suspend() error
	Resume() error
}

// screenPresenter drives a tcell screen through the renderer.
type screenPresenter struct {
	screen   tcell.Screen
	renderer *renderui.Renderer
	last     *statepkg.BrowserState
}

func newScreenPresenter(screen tcell.Screen, km *input.Keymap) *screenPresenter {
	return &screenPresenter{
		screen:   screen,
		renderer: renderui.NewRenderer(screen, km),
	}
}

func (p *screenPresenter) Render(state *statepkg.BrowserState) {
	p.last = state
	p.renderer.Render(state)
}

func (p *screenPresenter) redraw() {
	if p.last != nil {
		p.renderer.Draw(p.last)
	} else {
		p.screen.Clear()
	}
}

// nextKey waits for a key event. Resizes redraw the frame through paint
// before waiting again. It returns nil once the screen is finalized.
func (p *screenPresenter) nextKey(paint func()) *tcell.EventKey {
	for {
		switch ev := p.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventKey:
			return ev
		case *tcell.EventResize:
			p.screen.Sync()
			paint()
		}
	}
}

// ReadKey returns the next key press, or nil when the screen is gone.
func (p *screenPresenter) ReadKey() *tcell.EventKey {
	return p.nextKey(func() {
		if p.last != nil {
			p.renderer.Render(p.last)
		}
	})
}

// PromptText reads a line. Escape cancels with an empty result.
func (p *screenPresenter) PromptText(label string) string {
	var editor lineEditor
	paint := func() {
		p.redraw()
		p.renderer.DrawPrompt(label, editor.String(), editor.cursor)
	}
	defer p.screen.HideCursor()

	for {
		paint()
		ev := p.nextKey(paint)
		if ev == nil {
			return ""
		}
		switch editor.handleKey(ev) {
		case promptAccepted:
			return editor.String()
		case promptCancelled:
			return ""
		}
	}
}

// Confirm asks a yes/no question. Escape counts as no; other keys are
// ignored.
func (p *screenPresenter) Confirm(message string) bool {
	paint := func() {
		p.redraw()
		p.renderer.DrawConfirm(message)
	}
	for {
		paint()
		ev := p.nextKey(paint)
		if ev == nil {
			return false
		}
		if answer, ok := confirmAnswer(ev); ok {
			return answer
		}
	}
}

func confirmAnswer(ev *tcell.EventKey) (answer, decided bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'y', 'Y':
			return true, true
		case 'n', 'N':
			return false, true
		}
	}
	return false, false
}

// ShowMessage shows text until any key is pressed.
func (p *screenPresenter) ShowMessage(text string) {
	paint := func() {
		p.redraw()
		p.renderer.DrawMessage(text)
	}
	paint()
	p.nextKey(paint)
}

func (p *screenPresenter) Suspend() error {
	if err := p.screen.Suspend(); err != nil {
		return fmt.Errorf("failed to suspend screen: %w", err)
	}
	return nil
}

func (p *screenPresenter) Resume() error {
	if err := p.screen.Resume(); err != nil {
		return fmt.Errorf("failed to resume screen: %w", err)
	}
	p.screen.Sync()
	return nil
}

package render

import (
	"fmt"
	"strings"

	"github.com/LeaoMartelo2/tired/internal/ui/input"
	"github.com/gdamore/tcell/v2"
)

type helpOverlaySection struct {
	title   string
	actions []input.Action
}

var helpOverlaySections = []helpOverlaySection{
	{
		title: "Navigation",
		actions: []input.Action{
			input.ActionMoveUp, input.ActionMoveDown,
			input.ActionNextPage, input.ActionPrevPage,
			input.ActionJumpToLine, input.ActionSearch,
			input.ActionOpen, input.ActionGoUp,
			input.ActionGotoPath, input.ActionGoHome,
		},
	},
	{
		title: "Files",
		actions: []input.Action{
			input.ActionRename, input.ActionDelete,
			input.ActionMkdir, input.ActionTouch,
			input.ActionReload, input.ActionCopyPath,
		},
	},
	{
		title: "Programs",
		actions: []input.Action{
			input.ActionRunCommand, input.ActionOpenTerminal,
			input.ActionOpenLocation, input.ActionSuspend,
		},
	},
	{
		title: "Exit",
		actions: []input.Action{
			input.ActionShowHelp, input.ActionQuit, input.ActionForceQuit,
		},
	},
}

func buildHelpOverlayLines(km *input.Keymap) []string {
	lines := make([]string, 0, 40)
	for i, section := range helpOverlaySections {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, section.title)
		for _, action := range section.actions {
			keys := km.KeysFor(action)
			if len(keys) == 0 {
				continue
			}
			lines = append(lines, fmt.Sprintf("  %-22s %s", strings.Join(keys, ", "), action.Description()))
		}
	}
	return lines
}

func (r *Renderer) drawHelpOverlay(w, h int) {
	baseStyle := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)
	headerStyle := baseStyle.Bold(true)

	r.drawTextLine(2, 0, w-2, "Key Bindings:", headerStyle)

	row := 2
	for _, line := range buildHelpOverlayLines(r.keymap) {
		if row >= h-1 {
			break
		}
		text := r.truncateTextToWidth(displayText(line), w-4)
		r.drawTextLine(2, row, w-4, text, baseStyle)
		row++
	}

	if h > 1 {
		r.drawTextLine(2, h-1, w-2, "Press any key to return.", headerStyle)
	}
}

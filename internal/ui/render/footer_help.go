package render

import (
	"strings"

	"github.com/LeaoMartelo2/tired/internal/ui/input"
)

// footerActions are the actions advertised in the bottom row.
var footerActions = []struct {
	action input.Action
	label  string
}{
	{input.ActionQuit, "quit"},
	{input.ActionShowHelp, "help"},
	{input.ActionRename, "rename"},
	{input.ActionDelete, "delete"},
	{input.ActionNextPage, "next"},
	{input.ActionPrevPage, "prev"},
	{input.ActionMkdir, "mkdir"},
	{input.ActionTouch, "touch"},
	{input.ActionRunCommand, "run command"},
}

// buildFooterHelpText lists the first printable key of each advertised
// action, e.g. "q: quit | h: help".
func buildFooterHelpText(km *input.Keymap) string {
	segments := buildFooterHelpSegments(km)
	return strings.Join(segments, " | ")
}

func buildFooterHelpSegments(km *input.Keymap) []string {
	segments := make([]string, 0, len(footerActions))
	for _, fa := range footerActions {
		keys := km.KeysFor(fa.action)
		if len(keys) == 0 {
			continue
		}
		segments = append(segments, preferredKey(keys)+": "+fa.label)
	}
	return segments
}

// preferredKey picks a single-character key when there is one.
func preferredKey(keys []string) string {
	for _, k := range keys {
		if len([]rune(k)) == 1 {
			return k
		}
	}
	return keys[0]
}

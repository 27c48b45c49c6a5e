package render

import (
	"strings"
	"testing"

	"github.com/LeaoMartelo2/tired/internal/ui/input"
)

func TestBuildHelpOverlayLinesIncludesSections(t *testing.T) {
	lines := buildHelpOverlayLines(input.DefaultKeymap())
	joined := strings.Join(lines, "\n")

	for _, want := range []string{"Navigation", "Files", "Programs", "Exit", "Rename entry", "Copy path to clipboard"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("expected help to contain %q, got %v", want, lines)
		}
	}
	if !strings.Contains(joined, "F2, r") {
		t.Fatalf("expected every key of an action to be listed, got %v", lines)
	}
}

func TestBuildHelpOverlayLinesCoversEveryBinding(t *testing.T) {
	km := input.DefaultKeymap()
	joined := strings.Join(buildHelpOverlayLines(km), "\n")
	for _, b := range km.Bindings() {
		if !strings.Contains(joined, b.Action.Description()) {
			t.Fatalf("help misses %s", b.Action)
		}
	}
}

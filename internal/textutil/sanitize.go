package textutil

import (
	"fmt"
	"strings"
	"unicode"
)

// SanitizeTerminalText replaces control characters so file names and command
// output cannot inject escape sequences when drawn. Tabs survive for
// ExpandTabs; invisible format runes become a visible <U+XXXX> tag.
func SanitizeTerminalText(text string) string {
	clean := true
	for _, r := range text {
		if needsReplacement(r) {
			clean = false
			break
		}
	}
	if clean {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '\t':
			b.WriteRune(r)
		case r == '\n' || r == '\r':
			b.WriteByte(' ')
		case r == unicode.ReplacementChar:
			b.WriteByte('?')
		case isControl(r):
			b.WriteByte('?')
		case unicode.Is(unicode.Cf, r):
			fmt.Fprintf(&b, "<U+%04X>", r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// HasHiddenRunes reports whether text carries bidi overrides or zero-width
// characters that would make a name render differently from its bytes.
func HasHiddenRunes(text string) bool {
	for _, r := range text {
		if unicode.Is(unicode.Cf, r) {
			return true
		}
	}
	return false
}

func needsReplacement(r rune) bool {
	if r == '\t' {
		return false
	}
	return r == unicode.ReplacementChar || isControl(r) || unicode.Is(unicode.Cf, r)
}

func isControl(r rune) bool {
	return r < 0x20 || r == 0x7f || (r >= 0x80 && r < 0xa0)
}

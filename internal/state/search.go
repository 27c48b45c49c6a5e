package state

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// SearchFirstMatch selects the first entry whose name contains query,
// ignoring case. Names and query are NFC-normalised first so composed and
// decomposed accents match. It returns false and keeps the selection when
// nothing matches or the query is empty.
func (s *BrowserState) SearchFirstMatch(query string) bool {
	if query == "" {
		return false
	}
	fold := cases.Fold()
	needle := fold.String(norm.NFC.String(query))
	for i, entry := range s.Entries {
		name := fold.String(norm.NFC.String(entry.Name))
		if strings.Contains(name, needle) {
			return s.JumpTo(i)
		}
	}
	return false
}

package state

import (
	"testing"

	fsutil "github.com/LeaoMartelo2/tired/internal/fs"
	"github.com/stretchr/testify/assert"
)

func TestSearchFirstMatch(t *testing.T) {
	s := NewBrowserState(20)
	s.Entries = fsutil.Listing{fileEntry("a.txt"), fileEntry("README.md"), fileEntry("b.txt")}

	assert.True(t, s.SearchFirstMatch("read"))
	assert.Equal(t, 1, s.SelectedIndex)

	assert.False(t, s.SearchFirstMatch("zzz"))
	assert.Equal(t, 1, s.SelectedIndex, "selection unchanged when not found")

	assert.False(t, s.SearchFirstMatch(""))
	assert.Equal(t, 1, s.SelectedIndex)
}

func TestSearchFirstMatchScansFromStart(t *testing.T) {
	s := NewBrowserState(2)
	s.Entries = fsutil.Listing{fileEntry("log1"), fileEntry("x"), fileEntry("log2"), fileEntry("log3")}
	s.JumpTo(3)

	assert.True(t, s.SearchFirstMatch("LOG"))
	assert.Equal(t, 0, s.SelectedIndex)
	assert.Equal(t, 0, s.Page)
}

func TestSearchFirstMatchFoldsAndNormalises(t *testing.T) {
	s := NewBrowserState(20)
	decomposed := "Cafe\u0301.txt"
	s.Entries = fsutil.Listing{fileEntry("other"), fileEntry(decomposed), fileEntry("STRASSE.md")}

	assert.True(t, s.SearchFirstMatch("CAF\u00c9"))
	assert.Equal(t, 1, s.SelectedIndex)

	assert.True(t, s.SearchFirstMatch("straße"))
	assert.Equal(t, 2, s.SelectedIndex)
}

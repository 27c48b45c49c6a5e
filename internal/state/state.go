package state

import (
	"errors"
	"fmt"

	fsutil "github.com/LeaoMartelo2/tired/internal/fs"
	"github.com/LeaoMartelo2/tired/internal/textutil"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultPageSize is the number of entries shown at once.
	DefaultPageSize = 20
	// LastActionLimit bounds the last-action message in bytes.
	LastActionLimit = 2048
)

// ErrPathResolution means the working directory changed but its absolute
// path could not be determined. The session cannot continue safely.
var ErrPathResolution = errors.New("cannot resolve current directory")

// Lister produces the listing of a directory.
type Lister interface {
	Load(path string) (fsutil.Listing, error)
}

// BrowserState is the single source of truth for the browser. It is owned
// by the application loop and passed to every handler.
type BrowserState struct {
	CurrentPath   string
	Entries       fsutil.Listing
	SelectedIndex int
	Page          int
	PageSize      int
	LastAction    string
	HelpVisible   bool

	// last selection per directory, restored when re-entering it
	selectionHistory map[string]int
}

// NewBrowserState returns an empty state. ChangeDirectory loads the first
// listing.
func NewBrowserState(pageSize int) *BrowserState {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &BrowserState{
		PageSize:         pageSize,
		selectionHistory: make(map[string]int),
	}
}

// HasSelection reports whether there is an entry to act on.
func (s *BrowserState) HasSelection() bool {
	return len(s.Entries) > 0
}

// SelectedEntry returns the selected entry or nil for an empty listing.
func (s *BrowserState) SelectedEntry() *fsutil.Entry {
	if !s.HasSelection() {
		return nil
	}
	return &s.Entries[s.SelectedIndex]
}

// SelectedPath joins the selected entry's undecorated name onto the current
// path.
func (s *BrowserState) SelectedPath() (string, error) {
	entry := s.SelectedEntry()
	if entry == nil {
		return "", errors.New("no entry selected")
	}
	return fsutil.JoinPath(s.CurrentPath, entry.CleanName())
}

// TotalPages is ceil(len/pageSize); zero for an empty listing.
func (s *BrowserState) TotalPages() int {
	return (len(s.Entries) + s.PageSize - 1) / s.PageSize
}

// PageOf returns the page that holds index i.
func (s *BrowserState) PageOf(i int) int {
	if i < 0 {
		return 0
	}
	return i / s.PageSize
}

// PageBounds returns the half-open index range of the current page.
func (s *BrowserState) PageBounds() (start, end int) {
	start = s.Page * s.PageSize
	end = start + s.PageSize
	if end > len(s.Entries) {
		end = len(s.Entries)
	}
	if start > end {
		start = end
	}
	return start, end
}

// SetLastAction replaces the last-action message. Messages longer than
// LastActionLimit are cut.
func (s *BrowserState) SetLastAction(format string, args ...any) {
	msg, err := textutil.FormatBounded(LastActionLimit, format, args...)
	if err != nil {
		logrus.WithError(err).Debug("last action message truncated")
	}
	s.LastAction = msg
}

// AppendLastAction adds a note to the current message, still bounded.
func (s *BrowserState) AppendLastAction(format string, args ...any) {
	if s.LastAction == "" {
		s.SetLastAction(format, args...)
		return
	}
	s.SetLastAction("%s; %s", s.LastAction, fmt.Sprintf(format, args...))
}

// clampSelection keeps the selection inside the listing and moves the page
// to the selection.
func (s *BrowserState) clampSelection() {
	switch {
	case len(s.Entries) == 0:
		s.SelectedIndex = 0
	case s.SelectedIndex >= len(s.Entries):
		s.SelectedIndex = len(s.Entries) - 1
	case s.SelectedIndex < 0:
		s.SelectedIndex = 0
	}
	s.Page = s.PageOf(s.SelectedIndex)
}

func (s *BrowserState) rememberSelection() {
	if s.CurrentPath == "" {
		return
	}
	if s.selectionHistory == nil {
		s.selectionHistory = make(map[string]int)
	}
	s.selectionHistory[s.CurrentPath] = s.SelectedIndex
}

package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stateWith(n, pageSize int) *BrowserState {
	s := NewBrowserState(pageSize)
	s.CurrentPath = "/data"
	s.Entries = numberedFiles(n)
	return s
}

func TestPaginationInvariant(t *testing.T) {
	for _, pageSize := range []int{1, 3, 7, 20} {
		for n := 0; n <= 45; n++ {
			s := stateWith(n, pageSize)
			want := 0
			if n > 0 {
				want = (n + pageSize - 1) / pageSize
			}
			require.Equal(t, want, s.TotalPages(), "len=%d pageSize=%d", n, pageSize)

			for sel := 0; sel < n; sel++ {
				page := s.PageOf(sel)
				assert.GreaterOrEqual(t, page, 0)
				assert.Less(t, page, s.TotalPages())
				end := (page + 1) * pageSize
				if end > n {
					end = n
				}
				assert.True(t, page*pageSize <= sel && sel < end, "sel=%d page=%d", sel, page)
			}
		}
	}
}

func TestJumpToScenario(t *testing.T) {
	s := stateWith(45, 20)
	assert.Equal(t, 3, s.TotalPages())

	require.True(t, s.JumpTo(41))
	assert.Equal(t, 41, s.SelectedIndex)
	assert.Equal(t, 2, s.Page)

	start, end := s.PageBounds()
	assert.Equal(t, 40, start)
	assert.Equal(t, 45, end)
}

func TestJumpToOutOfRange(t *testing.T) {
	s := stateWith(5, 20)
	s.JumpTo(2)

	assert.False(t, s.JumpTo(5))
	assert.False(t, s.JumpTo(-1))
	assert.Equal(t, 2, s.SelectedIndex)
}

func TestMoveDownCrossesPage(t *testing.T) {
	s := stateWith(25, 20)
	s.JumpTo(19)

	s.MoveDown()
	assert.Equal(t, 20, s.SelectedIndex)
	assert.Equal(t, 1, s.Page)

	s.JumpTo(24)
	s.MoveDown()
	assert.Equal(t, 24, s.SelectedIndex, "stays on the last entry")
	assert.Equal(t, 1, s.Page)
}

func TestMoveUpCrossesPage(t *testing.T) {
	s := stateWith(25, 20)
	s.JumpTo(20)

	s.MoveUp()
	assert.Equal(t, 19, s.SelectedIndex)
	assert.Equal(t, 0, s.Page)

	s.JumpTo(0)
	s.MoveUp()
	assert.Equal(t, 0, s.SelectedIndex)
	assert.Equal(t, 0, s.Page)
}

func TestNextAndPrevPage(t *testing.T) {
	s := stateWith(45, 20)
	s.JumpTo(5)

	s.NextPage()
	assert.Equal(t, 1, s.Page)
	assert.Equal(t, 20, s.SelectedIndex)

	s.NextPage()
	s.NextPage()
	assert.Equal(t, 2, s.Page, "no page past the last")
	assert.Equal(t, 40, s.SelectedIndex)

	s.PrevPage()
	assert.Equal(t, 1, s.Page)
	assert.Equal(t, 20, s.SelectedIndex)

	s.PrevPage()
	s.PrevPage()
	assert.Equal(t, 0, s.Page)
	assert.Equal(t, 0, s.SelectedIndex)
}

func TestNavigationOnEmptyListing(t *testing.T) {
	s := stateWith(0, 20)

	s.MoveDown()
	s.MoveUp()
	s.NextPage()
	s.PrevPage()

	assert.False(t, s.HasSelection())
	assert.Nil(t, s.SelectedEntry())
	assert.Equal(t, 0, s.SelectedIndex)
	assert.Equal(t, 0, s.Page)
	_, err := s.SelectedPath()
	assert.Error(t, err)
}

func TestSelectedPathStripsDecoration(t *testing.T) {
	s := NewBrowserState(20)
	s.CurrentPath = "/srv"
	s.Entries = parentEntries()
	s.Entries = append(s.Entries, dirEntry("www"))
	s.JumpTo(2)

	path, err := s.SelectedPath()
	require.NoError(t, err)
	assert.Equal(t, "/srv/www", path)
}

func TestSetLastActionIsBounded(t *testing.T) {
	s := NewBrowserState(20)
	long := make([]byte, LastActionLimit*2)
	for i := range long {
		long[i] = 'a'
	}

	s.SetLastAction("Deleted '%s'", string(long))
	assert.Less(t, len(s.LastAction), LastActionLimit)

	s.SetLastAction("Created file '%s'", "x")
	assert.Equal(t, "Created file 'x'", s.LastAction, "replaced, not accumulated")

	s.AppendLastAction("reload failed: %s", "boom")
	assert.Equal(t, "Created file 'x'; reload failed: boom", s.LastAction)
}

func TestNewBrowserStateDefaultsPageSize(t *testing.T) {
	assert.Equal(t, DefaultPageSize, NewBrowserState(0).PageSize)
	assert.Equal(t, 7, NewBrowserState(7).PageSize)
}

package state

// MoveUp selects the previous entry, turning the page back when the
// selection leaves it.
func (s *BrowserState) MoveUp() {
	if s.SelectedIndex <= 0 {
		return
	}
	s.SelectedIndex--
	if start, _ := s.PageBounds(); s.SelectedIndex < start {
		s.Page--
	}
}

// MoveDown selects the next entry, turning the page forward when the
// selection leaves it.
func (s *BrowserState) MoveDown() {
	if s.SelectedIndex >= len(s.Entries)-1 {
		return
	}
	s.SelectedIndex++
	if _, end := s.PageBounds(); s.SelectedIndex >= end {
		s.Page++
	}
}

// NextPage moves to the first entry of the following page.
func (s *BrowserState) NextPage() {
	if s.Page >= s.TotalPages()-1 {
		return
	}
	s.Page++
	s.SelectedIndex = s.Page * s.PageSize
}

// PrevPage moves to the first entry of the preceding page.
func (s *BrowserState) PrevPage() {
	if s.Page <= 0 {
		return
	}
	s.Page--
	s.SelectedIndex = s.Page * s.PageSize
}

// JumpTo selects entry n. It returns false and changes nothing when n is
// out of range.
func (s *BrowserState) JumpTo(n int) bool {
	if n < 0 || n >= len(s.Entries) {
		return false
	}
	s.SelectedIndex = n
	s.Page = s.PageOf(n)
	return true
}

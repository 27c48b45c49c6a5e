package state

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	fsutil "github.com/LeaoMartelo2/tired/internal/fs"
	"github.com/sirupsen/logrus"
)

// Overridable in tests.
var (
	chdirFn    = os.Chdir
	realpathFn = resolveWorkingDir
)

func resolveWorkingDir() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(wd)
}

// ErrNotDirectory is returned by EnterDirectory when the selection cannot
// be entered.
var ErrNotDirectory = errors.New("not a directory")

// Reload lists the current path again. On success the listing is replaced
// and the selection clamped; on failure nothing changes.
func (s *BrowserState) Reload(l Lister) error {
	listing, err := l.Load(s.CurrentPath)
	if err != nil {
		return err
	}
	s.Entries = listing
	s.clampSelection()
	return nil
}

// EnterDirectory changes into the selected directory or the parent
// reference. The selection last used there is restored, or the first entry
// is selected.
func (s *BrowserState) EnterDirectory(l Lister) error {
	entry := s.SelectedEntry()
	if entry == nil || !entry.IsDir() {
		return ErrNotDirectory
	}
	if entry.IsParentRef() {
		return s.GoUp(l)
	}
	target, err := fsutil.JoinPath(s.CurrentPath, entry.CleanName())
	if err != nil {
		return err
	}
	return s.changeDirectory(target, l, s.restoredSelection)
}

// GoUp changes to the parent directory and selects the directory just
// left. At the root it only reloads.
func (s *BrowserState) GoUp(l Lister) error {
	if s.CurrentPath == "/" {
		return s.Reload(l)
	}
	child := filepath.Base(s.CurrentPath)
	return s.changeDirectory(filepath.Dir(s.CurrentPath), l, func(path string, listing fsutil.Listing) int {
		for i, entry := range listing {
			if entry.CleanName() == child {
				return i
			}
		}
		return s.restoredSelection(path, listing)
	})
}

// ChangeDirectory moves to an arbitrary path. Relative paths resolve
// against the current path.
func (s *BrowserState) ChangeDirectory(path string, l Lister) error {
	if path == "" {
		return errors.New("empty path")
	}
	if !filepath.IsAbs(path) && s.CurrentPath != "" {
		path = filepath.Join(s.CurrentPath, path)
	}
	return s.changeDirectory(path, l, s.restoredSelection)
}

func (s *BrowserState) restoredSelection(path string, listing fsutil.Listing) int {
	idx, ok := s.selectionHistory[path]
	if !ok || len(listing) == 0 {
		return 0
	}
	if idx >= len(listing) {
		idx = len(listing) - 1
	}
	return idx
}

// changeDirectory is chdir, resolve and load. The state is only touched
// once the listing succeeded. A failed listing moves the process back to
// the previous directory.
func (s *BrowserState) changeDirectory(target string, l Lister, pick func(string, fsutil.Listing) int) error {
	if err := chdirFn(target); err != nil {
		return err
	}

	resolved, err := realpathFn()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPathResolution, err)
	}

	listing, err := l.Load(resolved)
	if err != nil {
		if s.CurrentPath != "" {
			if backErr := chdirFn(s.CurrentPath); backErr != nil {
				logrus.WithError(backErr).WithField("path", s.CurrentPath).Warn("cannot return to previous directory")
			}
		}
		return err
	}

	s.rememberSelection()
	s.CurrentPath = resolved
	s.Entries = listing
	s.SelectedIndex = pick(resolved, listing)
	s.clampSelection()
	logrus.WithFields(logrus.Fields{
		"path":    resolved,
		"entries": len(listing),
	}).Debug("changed directory")
	return nil
}

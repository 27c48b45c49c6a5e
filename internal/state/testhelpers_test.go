package state

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	fsutil "github.com/LeaoMartelo2/tired/internal/fs"
)

type fakeLister struct {
	listings map[string]fsutil.Listing
	errs     map[string]error
	calls    []string
}

func newFakeLister() *fakeLister {
	return &fakeLister{
		listings: make(map[string]fsutil.Listing),
		errs:     make(map[string]error),
	}
}

func (f *fakeLister) Load(path string) (fsutil.Listing, error) {
	f.calls = append(f.calls, path)
	if err := f.errs[path]; err != nil {
		return nil, err
	}
	listing, ok := f.listings[path]
	if !ok {
		return nil, fmt.Errorf("%w: no listing for %s", fsutil.ErrCommandFailed, path)
	}
	out := make(fsutil.Listing, len(listing))
	copy(out, listing)
	return out, nil
}

// fakeWorkingDir replaces chdir and realpath with an in-memory cwd.
type fakeWorkingDir struct {
	cwd        string
	chdirErr   map[string]error
	resolveErr error
	history    []string
}

func withFakeWorkingDir(t *testing.T, start string) *fakeWorkingDir {
	t.Helper()
	wd := &fakeWorkingDir{cwd: start, chdirErr: make(map[string]error)}
	origChdir, origRealpath := chdirFn, realpathFn
	chdirFn = func(dir string) error {
		if err := wd.chdirErr[dir]; err != nil {
			return err
		}
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(wd.cwd, dir)
		}
		wd.cwd = filepath.Clean(dir)
		wd.history = append(wd.history, wd.cwd)
		return nil
	}
	realpathFn = func() (string, error) {
		if wd.resolveErr != nil {
			return "", wd.resolveErr
		}
		return wd.cwd, nil
	}
	t.Cleanup(func() {
		chdirFn, realpathFn = origChdir, origRealpath
	})
	return wd
}

func dirEntry(name string) fsutil.Entry {
	return fsutil.Entry{Name: name + "/", Permissions: "drwxr-xr-x", Kind: fsutil.KindDirectory}
}

func fileEntry(name string) fsutil.Entry {
	return fsutil.Entry{Name: name, Permissions: "-rw-r--r--", Kind: fsutil.KindRegular}
}

func parentEntries() fsutil.Listing {
	return fsutil.Listing{
		{Name: "./", Permissions: "drwxr-xr-x", Kind: fsutil.KindDirectory},
		{Name: fsutil.ParentRef, Permissions: "drwxr-xr-x", Kind: fsutil.KindDirectory},
	}
}

func numberedFiles(n int) fsutil.Listing {
	listing := make(fsutil.Listing, n)
	for i := range listing {
		listing[i] = fileEntry(fmt.Sprintf("file%02d.txt", i))
	}
	return listing
}

var errPermission = errors.New("permission denied")

package fs

import (
	"errors"
	"fmt"
	"path/filepath"
)

const (
	// MaxPathBytes mirrors PATH_MAX on Linux.
	MaxPathBytes = 4096
	// MaxCommandBytes bounds the listing command line including its path.
	MaxCommandBytes = 4096
)

// ErrPathTooLong is returned when a joined path or command would exceed its bound.
var ErrPathTooLong = errors.New("path too long")

// JoinPath joins name onto dir. Every filesystem operation builds its path here.
func JoinPath(dir, name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("empty name")
	}
	joined := dir + "/" + name
	if len(joined) >= MaxPathBytes {
		return "", fmt.Errorf("%w: %d bytes", ErrPathTooLong, len(joined))
	}
	return filepath.Clean(joined), nil
}

package fs

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

// DefaultListCommand is the long, human-readable, all-entries listing with
// type markers.
var DefaultListCommand = []string{"ls", "-F", "-l", "-h", "-a"}

var (
	// ErrCommandUnavailable is returned when the listing command cannot be started.
	ErrCommandUnavailable = errors.New("listing command unavailable")
	// ErrReadOutput is returned when the listing output cannot be read to the end.
	ErrReadOutput = errors.New("cannot read listing output")
	// ErrCommandFailed is returned when the command exits non-zero without
	// producing a single entry.
	ErrCommandFailed = errors.New("listing command failed")
)

// totalHeaders are the localized first words of the `ls -l` size summary.
var totalHeaders = []string{"total", "insgesamt", "totale", "totaal", "totalt"}

// commandBuilder is overridable in tests.
var commandBuilder = exec.Command

// Loader runs the listing command and parses its output.
type Loader struct {
	command []string
}

// NewLoader creates a loader for the given command template. The directory
// path is appended as the last argument.
func NewLoader(command []string) *Loader {
	cmd := make([]string, len(command))
	copy(cmd, command)
	return &Loader{command: cmd}
}

// Command returns a copy of the command template.
func (l *Loader) Command() []string {
	cmd := make([]string, len(l.command))
	copy(cmd, l.command)
	return cmd
}

// Load lists path. Lines that do not parse are dropped.
func (l *Loader) Load(path string) (listing Listing, err error) {
	if len(l.command) == 0 || l.command[0] == "" {
		return nil, fmt.Errorf("%w: empty command", ErrCommandUnavailable)
	}
	if size := commandLength(l.command, path); size >= MaxCommandBytes {
		return nil, fmt.Errorf("%w: command for %q is %d bytes", ErrPathTooLong, path, size)
	}

	args := append(l.Command()[1:], path)
	cmd := commandBuilder(l.command[0], args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCommandUnavailable, err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCommandUnavailable, l.command[0], err)
	}

	log := logrus.WithField("path", path)
	defer func() {
		// Drain whatever is left so the child never blocks on a full pipe.
		_, _ = io.Copy(io.Discard, stdout)
		waitErr := cmd.Wait()
		if waitErr == nil {
			return
		}
		msg := strings.TrimSpace(stderr.String())
		log.WithError(waitErr).WithField("stderr", msg).Warn("listing command exited with error")
		if err == nil && len(listing) == 0 {
			if msg == "" {
				msg = waitErr.Error()
			}
			listing = nil
			err = fmt.Errorf("%w: %s", ErrCommandFailed, msg)
		}
	}()

	listing, dropped, err := readListing(stdout)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadOutput, err)
	}

	log.WithFields(logrus.Fields{
		"entries": len(listing),
		"dropped": dropped,
	}).Debug("directory listed")
	return listing, nil
}

func readListing(r io.Reader) (Listing, int, error) {
	reader := bufio.NewReader(r)
	listing := make(Listing, 0, 32)
	dropped := 0
	first := true

	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			line = trimLineTerminator(line)
			skip := line == "" || (first && isTotalHeader(line))
			first = false
			if !skip {
				entry, parseErr := Parse(line)
				if parseErr != nil {
					dropped++
					logrus.WithError(parseErr).WithField("line", line).Debug("dropping listing line")
				} else {
					listing = append(listing, entry)
				}
			}
		}
		if err == io.EOF {
			return listing, dropped, nil
		}
		if err != nil {
			return nil, dropped, err
		}
	}
}

func isTotalHeader(line string) bool {
	for _, word := range totalHeaders {
		if !strings.HasPrefix(line, word) {
			continue
		}
		rest := line[len(word):]
		if rest == "" || rest[0] == ' ' || rest[0] == ':' {
			return true
		}
	}
	return false
}

func commandLength(command []string, path string) int {
	size := len(path)
	for _, arg := range command {
		size += len(arg) + 1
	}
	return size
}

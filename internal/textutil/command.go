package textutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-shellwords"
)

// Placeholder is the token in configured command templates that is replaced
// by a path.
const Placeholder = "%s"

var userHomeDirFn = os.UserHomeDir

// ErrBadCommand is returned for a command line that cannot be split into
// arguments.
var ErrBadCommand = errors.New("bad command line")

// SplitCommand splits a command line into arguments with shell quoting and
// backslash escapes. Variables and backticks are left alone; pipes,
// redirections and separators are rejected. A leading ~ in the program
// name is expanded.
func SplitCommand(cmd string) ([]string, error) {
	parser := shellwords.NewParser()
	args, err := parser.Parse(cmd)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadCommand, err)
	}
	if parser.Position >= 0 {
		return nil, fmt.Errorf("%w: shell operator at offset %d in %q", ErrBadCommand, parser.Position, cmd)
	}
	if len(args) == 0 {
		return nil, nil
	}
	args[0] = ExpandUserPath(args[0])
	return args, nil
}

// ExpandUserPath resolves a leading "~" or "~/" against the home directory.
// Other paths, including "~user", come back unchanged.
func ExpandUserPath(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	if len(path) > 1 && path[1] != '/' {
		return path
	}
	home, err := userHomeDirFn()
	if err != nil || home == "" {
		return path
	}
	if len(path) == 1 {
		return home
	}
	return filepath.Join(home, path[2:])
}

// FillTemplate splits template and substitutes value for every Placeholder
// token. The value stays a single argument whatever it contains. When the
// template has no placeholder the value is appended.
func FillTemplate(template, value string) ([]string, error) {
	args, err := SplitCommand(template)
	if err != nil || len(args) == 0 {
		return nil, err
	}
	substituted := false
	for i, arg := range args {
		if strings.Contains(arg, Placeholder) {
			args[i] = strings.ReplaceAll(arg, Placeholder, value)
			substituted = true
		}
	}
	if !substituted {
		args = append(args, value)
	}
	return args, nil
}

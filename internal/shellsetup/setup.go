// Package shellsetup prints the shell function that lets tired change the
// calling shell's directory on exit.
package shellsetup

import (
	"errors"
	"fmt"
	"os"
	"path"
	"strconv"
	"strings"
)

// ErrUnsupportedShell is returned for shells without a wrapper.
var ErrUnsupportedShell = errors.New("unsupported shell")

// ParentShellFunc names the shell that started the process.
type ParentShellFunc func() string

const posixWrapper = `tired() {
    result_file=$(mktemp "${TMPDIR:-/tmp}/tired.XXXXXX") || return 1
    command %[1]s --result-file "$result_file" "$@"
    tired_status=$?
    dest=$(cat "$result_file" 2>/dev/null)
    rm -f "$result_file"
    if [ -n "$dest" ] && [ -d "$dest" ]; then
        cd "$dest" || return 1
    fi
    return $tired_status
}
`

const fishWrapper = `function tired
    set -l result_file (mktemp (set -q TMPDIR; and echo $TMPDIR; or echo /tmp)/tired.XXXXXX); or return 1
    command %[1]s --result-file $result_file $argv
    set -l tired_status $status
    set -l dest (cat $result_file 2>/dev/null)
    rm -f $result_file
    if test -n "$dest" -a -d "$dest"
        builtin cd $dest
    end
    return $tired_status
end
`

// Snippet returns the wrapper function for shell around executable.
func Snippet(shell, executable string) (string, error) {
	quoted := strconv.Quote(executable)
	switch canonicalShellName(normalizeShellName(shell)) {
	case "bash", "zsh", "sh", "ksh", "dash":
		return fmt.Sprintf(posixWrapper, quoted), nil
	case "fish":
		return fmt.Sprintf(fishWrapper, quoted), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedShell, shell)
}

// DetectShell picks the shell from $SHELL, then the parent process, then
// falls back to bash.
func DetectShell(getenv func(string) string, parent ParentShellFunc) string {
	if shell := canonicalShellName(normalizeShellName(getenv("SHELL"))); shell != "" {
		return shell
	}
	if parent != nil {
		if shell := canonicalShellName(normalizeShellName(parent())); shell != "" {
			return shell
		}
	}
	return "bash"
}

// DetectParentShellName reads the parent's command name from /proc.
// Systems without /proc report nothing.
func DetectParentShellName() string {
	ppid := os.Getppid()
	if ppid <= 0 {
		return ""
	}
	comm, err := os.ReadFile(fmt.Sprintf("/proc/%d/comm", ppid))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(comm))
}

// WriteResult records dir for the wrapper. The wrapper created the file, so
// an existing symlink there is refused.
func WriteResult(file, dir string) error {
	if info, err := os.Lstat(file); err == nil && info.Mode()&os.ModeSymlink != 0 {
		return fmt.Errorf("refusing to write result through symlink %s", file)
	}
	return os.WriteFile(file, []byte(dir), 0o600)
}

func canonicalShellName(name string) string {
	switch name {
	case "-bash":
		return "bash"
	case "-zsh":
		return "zsh"
	case "mksh", "pdksh":
		return "ksh"
	default:
		return name
	}
}

func normalizeShellName(value string) string {
	value = extractExecutable(strings.TrimSpace(value))
	if value == "" {
		return ""
	}
	value = strings.Trim(value, `"'`)
	return strings.ToLower(strings.TrimSpace(path.Base(value)))
}

func extractExecutable(value string) string {
	if value == "" {
		return ""
	}
	for _, quote := range []string{`"`, `'`} {
		if strings.HasPrefix(value, quote) {
			value = value[1:]
			if idx := strings.Index(value, quote); idx >= 0 {
				return value[:idx]
			}
			return value
		}
	}
	if idx := strings.IndexAny(value, " \t"); idx >= 0 {
		return value[:idx]
	}
	return value
}

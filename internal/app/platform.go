package app

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"

	"github.com/LeaoMartelo2/tired/internal/config"
	fsutil "github.com/LeaoMartelo2/tired/internal/fs"
)

const fallbackShell = "/bin/sh"

var getenv = os.Getenv

// shellCommand wraps a command line for the user's shell.
func shellCommand(line string) []string {
	return shellCommandInternal(line, getenv)
}

func shellCommandInternal(line string, getenv func(string) string) []string {
	shell := strings.TrimSpace(getenv("SHELL"))
	if shell == "" {
		shell = fallbackShell
	}
	return []string{shell, "-c", line}
}

// launchKind says how a file is opened.
type launchKind int

const (
	launchGeneric launchKind = iota
	launchViewer
	launchExecutable
)

var (
	imageExtensions = []string{".png", ".jpeg", ".jpg", ".gif"}
	videoExtensions = []string{".mp4", ".mov"}
	audioExtensions = []string{".mp3", ".ogg", ".wav"}
)

// viewerTemplate picks the configured viewer for name by its lower-cased
// extension. Media extensions win over the executable bit.
func viewerTemplate(name string, settings *config.Settings) (string, bool) {
	ext := strings.ToLower(filepath.Ext(name))
	switch {
	case ext == "":
		return "", false
	case slices.Contains(imageExtensions, ext):
		return settings.ImageViewer, true
	case slices.Contains(videoExtensions, ext):
		return settings.VideoPlayer, true
	case slices.Contains(audioExtensions, ext):
		return settings.AudioPlayer, true
	}
	return "", false
}

// classifyLaunch decides how Open treats entry.
func classifyLaunch(entry *fsutil.Entry, settings *config.Settings) (launchKind, string) {
	if template, ok := viewerTemplate(entry.CleanName(), settings); ok {
		return launchViewer, template
	}
	if entry.Kind == fsutil.KindExecutable {
		return launchExecutable, ""
	}
	return launchGeneric, ""
}

// exitStatus turns the result of a finished command into a status number.
// Commands that never started report -1.
func exitStatus(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

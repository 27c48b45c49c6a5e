package app

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/LeaoMartelo2/tired/internal/config"
	fsutil "github.com/LeaoMartelo2/tired/internal/fs"
	statepkg "github.com/LeaoMartelo2/tired/internal/state"
	"github.com/LeaoMartelo2/tired/internal/textutil"
	"github.com/atotto/clipboard"
	"github.com/sirupsen/logrus"
)

var (
	errInvalidName   = errors.New("invalid name")
	errTargetExists  = errors.New("target already exists")
	errNoClipboard   = errors.New("no clipboard utility found")
	clipboardMissing = func() bool { return clipboard.Unsupported }
)

// Dispatcher runs the file operations bound to keys. Every operation
// prompts or confirms first, reports its outcome in the last-action
// message and reloads the listing afterwards. Only errors that end the
// session are returned.
type Dispatcher struct {
	presenter Presenter
	state     *statepkg.BrowserState
	lister    statepkg.Lister
	settings  *config.Settings
}

// NewDispatcher wires a dispatcher to the loop's state.
func NewDispatcher(p Presenter, state *statepkg.BrowserState, lister statepkg.Lister, settings *config.Settings) *Dispatcher {
	if settings == nil {
		settings = config.DefaultSettings()
	}
	return &Dispatcher{presenter: p, state: state, lister: lister, settings: settings}
}

// checkEntryRef refuses the directory self and parent references.
func checkEntryRef(name string) error {
	if name == "." || name == ".." {
		return fmt.Errorf("%w: %q", errInvalidName, name)
	}
	return nil
}

// checkEntryName accepts a new name made of a single visible path component.
func checkEntryName(name string) error {
	if err := checkEntryRef(name); err != nil {
		return err
	}
	switch {
	case strings.ContainsAny(name, "/\x00"):
		return fmt.Errorf("%w: %q contains a path separator", errInvalidName, name)
	case textutil.HasHiddenRunes(name):
		return fmt.Errorf("%w: %q contains invisible characters", errInvalidName, name)
	}
	return nil
}

func (d *Dispatcher) log(op, path string) *logrus.Entry {
	return logrus.WithFields(logrus.Fields{"op": op, "path": path})
}

// finish reloads the listing after an operation, whatever its outcome.
func (d *Dispatcher) finish(op string) {
	if err := d.state.Reload(d.lister); err != nil {
		d.log(op, d.state.CurrentPath).WithError(err).Warn("reload failed")
		d.state.AppendLastAction("reload failed: %v", err)
	}
}

// Rename renames the selected entry inside the current directory. An
// existing target is never replaced.
func (d *Dispatcher) Rename() error {
	entry := d.state.SelectedEntry()
	if entry == nil {
		return nil
	}
	newName := d.presenter.PromptText("Rename file: ")
	if newName == "" {
		return nil
	}
	oldName := entry.CleanName()
	if !d.presenter.Confirm(fmt.Sprintf("Rename '%.50s' to '%.50s'?", oldName, newName)) {
		return nil
	}

	if err := d.rename(oldName, newName); err != nil {
		d.log("rename", oldName).WithError(err).Warn("rename failed")
		if errors.Is(err, errTargetExists) {
			d.state.SetLastAction("Rename refused: '%.50s' already exists", newName)
		} else {
			d.state.SetLastAction("Rename failed for '%.50s': %v", oldName, err)
		}
	} else {
		d.log("rename", oldName).WithField("to", newName).Info("renamed")
		d.state.SetLastAction("Renamed '%.50s' to '%.50s'", oldName, newName)
	}
	d.finish("rename")
	return nil
}

func (d *Dispatcher) rename(oldName, newName string) error {
	if err := checkEntryName(newName); err != nil {
		return err
	}
	oldPath, err := fsutil.JoinPath(d.state.CurrentPath, oldName)
	if err != nil {
		return err
	}
	newPath, err := fsutil.JoinPath(d.state.CurrentPath, newName)
	if err != nil {
		return err
	}
	if _, err := os.Lstat(newPath); err == nil {
		return errTargetExists
	}
	return os.Rename(oldPath, newPath)
}

// Delete removes the selected file or empty directory.
func (d *Dispatcher) Delete() error {
	entry := d.state.SelectedEntry()
	if entry == nil {
		return nil
	}
	if !d.presenter.Confirm("Confirm delete?") {
		return nil
	}

	name := entry.CleanName()
	err := d.remove(name)
	if err != nil {
		d.log("delete", name).WithError(err).Warn("delete failed")
		d.state.SetLastAction("Delete failed for '%.50s': %v", name, err)
	} else {
		d.log("delete", name).Info("deleted")
		d.state.SetLastAction("Deleted '%.50s'", name)
	}
	d.finish("delete")
	return nil
}

func (d *Dispatcher) remove(name string) error {
	if err := checkEntryRef(name); err != nil {
		return err
	}
	path, err := fsutil.JoinPath(d.state.CurrentPath, name)
	if err != nil {
		return err
	}
	return os.Remove(path)
}

// Mkdir creates a directory in the current path.
func (d *Dispatcher) Mkdir() error {
	name := d.presenter.PromptText("Mkdir: ")
	if name == "" {
		return nil
	}
	err := d.create(name, func(path string) error {
		return os.Mkdir(path, 0o755)
	})
	if err != nil {
		d.log("mkdir", name).WithError(err).Warn("mkdir failed")
		d.state.SetLastAction("Mkdir failed for '%s': %v", name, err)
	} else {
		d.state.SetLastAction("Created directory '%s'", name)
	}
	d.finish("mkdir")
	return nil
}

// Touch creates an empty file. An existing file is left untouched.
func (d *Dispatcher) Touch() error {
	name := d.presenter.PromptText("Touch: ")
	if name == "" {
		return nil
	}
	err := d.create(name, func(path string) error {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		return f.Close()
	})
	if err != nil {
		d.log("touch", name).WithError(err).Warn("touch failed")
		d.state.SetLastAction("Touch failed for '%s': %v", name, err)
	} else {
		d.state.SetLastAction("Created file '%s'", name)
	}
	d.finish("touch")
	return nil
}

func (d *Dispatcher) create(name string, mk func(string) error) error {
	if err := checkEntryName(name); err != nil {
		return err
	}
	path, err := fsutil.JoinPath(d.state.CurrentPath, name)
	if err != nil {
		return err
	}
	return mk(path)
}

// Open launches the selected file: media through the configured viewers,
// executables directly, anything else through the desktop opener.
func (d *Dispatcher) Open() error {
	entry := d.state.SelectedEntry()
	if entry == nil {
		return nil
	}
	path, err := d.state.SelectedPath()
	if err != nil {
		d.state.SetLastAction("Cannot open: %v", err)
		return nil
	}
	if !d.presenter.Confirm("Open this file?") {
		return nil
	}

	name := entry.CleanName()
	kind, template := classifyLaunch(entry, d.settings)
	var status int
	switch kind {
	case launchViewer:
		var args []string
		if args, err = textutil.FillTemplate(template, path); err == nil {
			status, err = runInteractive(d.presenter, d.state.CurrentPath, args)
		}
	case launchExecutable:
		status, err = runInteractive(d.presenter, d.state.CurrentPath, []string{path})
	default:
		status, err = openDefault(d.presenter, path)
	}

	if err != nil {
		d.log("open", path).WithError(err).Warn("open failed")
		d.state.SetLastAction("Open failed for '%.50s': %v", name, err)
	} else {
		d.log("open", path).WithField("status", status).Info("opened")
		d.state.SetLastAction("Opened '%.50s' (status %d)", name, status)
	}
	d.finish("open")
	return nil
}

// RunCommand runs a shell command line in the current directory.
func (d *Dispatcher) RunCommand() error {
	line := d.presenter.PromptText("Run command: ")
	if strings.TrimSpace(line) == "" {
		return nil
	}
	status, err := runInteractive(d.presenter, d.state.CurrentPath, shellCommand(line))
	if err != nil {
		d.log("run", d.state.CurrentPath).WithError(err).Warn("command failed to start")
		d.state.SetLastAction("Run failed for '%.50s': %v", line, err)
	} else {
		d.log("run", d.state.CurrentPath).WithFields(logrus.Fields{"command": line, "status": status}).Info("ran command")
		d.state.SetLastAction("Ran '%.50s' (status %d)", line, status)
	}
	d.finish("run")
	return nil
}

// OpenTerminal opens the selected entry in a new terminal window.
func (d *Dispatcher) OpenTerminal() error {
	entry := d.state.SelectedEntry()
	if entry == nil {
		return nil
	}
	if !d.presenter.Confirm("Open this file?") {
		return nil
	}
	name := entry.CleanName()
	args, err := textutil.FillTemplate(d.settings.TermOpen, name)
	if err == nil {
		err = launchDetached(d.state.CurrentPath, args)
	}
	if err != nil {
		d.log("term-open", name).WithError(err).Warn("launch failed")
		d.state.SetLastAction("Launch failed for '%.50s': %v", name, err)
	} else {
		d.state.SetLastAction("Launched '%.50s'", strings.Join(args, " "))
	}
	d.finish("term-open")
	return nil
}

// OpenLocation opens a new terminal window in the current directory.
func (d *Dispatcher) OpenLocation() error {
	if !d.presenter.Confirm("Open a terminal here?") {
		return nil
	}
	dir := d.state.CurrentPath
	args, err := textutil.FillTemplate(d.settings.TermOpenLocation, dir)
	if err == nil {
		err = launchDetached(dir, args)
	}
	if err != nil {
		d.log("open-location", dir).WithError(err).Warn("launch failed")
		d.state.SetLastAction("Launch failed for '%.50s': %v", dir, err)
	} else {
		d.state.SetLastAction("Launched '%.50s'", strings.Join(args, " "))
	}
	d.finish("open-location")
	return nil
}

// CopyPath puts the selected entry's absolute path on the clipboard.
func (d *Dispatcher) CopyPath() error {
	path, err := d.state.SelectedPath()
	if err != nil {
		return nil
	}
	if clipboardMissing() {
		err = errNoClipboard
	} else {
		err = clipboardWrite(path)
	}
	if err != nil {
		d.log("copy-path", path).WithError(err).Warn("copy failed")
		d.state.SetLastAction("Copy failed: %v", err)
		return nil
	}
	d.state.SetLastAction("Copied '%s'", path)
	return nil
}

// GotoPath prompts for a directory and changes to it.
func (d *Dispatcher) GotoPath() error {
	target := strings.TrimSpace(d.presenter.PromptText("Go to: "))
	if target == "" {
		return nil
	}
	return d.changeTo("goto", textutil.ExpandUserPath(target))
}

// GoHome changes to the configured home directory.
func (d *Dispatcher) GoHome() error {
	home, err := d.settings.HomeDir()
	if err != nil {
		d.state.SetLastAction("Cannot find home directory: %v", err)
		return nil
	}
	return d.changeTo("home", home)
}

func (d *Dispatcher) changeTo(op, target string) error {
	err := d.state.ChangeDirectory(target, d.lister)
	if err == nil {
		return nil
	}
	if errors.Is(err, statepkg.ErrPathResolution) {
		return err
	}
	d.log(op, target).WithError(err).Warn("change directory failed")
	d.state.SetLastAction("Cannot open '%.50s': %v", target, err)
	return nil
}

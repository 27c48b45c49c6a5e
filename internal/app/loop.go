package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	fsutil "github.com/LeaoMartelo2/tired/internal/fs"
	statepkg "github.com/LeaoMartelo2/tired/internal/state"
	"github.com/LeaoMartelo2/tired/internal/ui/input"
	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

const notFoundMessage = "No matching file found. Press any key."

// Run renders, reads one key, handles it to completion and repeats until
// the user quits. The returned error is always fatal.
func (app *Application) Run() error {
	for !app.shouldQuit {
		app.presenter.Render(app.state)
		ev := app.presenter.ReadKey()
		if ev == nil {
			return nil
		}
		if err := app.handleKey(ev); err != nil {
			return err
		}
	}
	return nil
}

func (app *Application) handleKey(ev *tcell.EventKey) error {
	if app.state.HelpVisible {
		app.state.HelpVisible = false
		return nil
	}

	action := app.keymap.Decode(ev)
	if action != input.ActionNone {
		logrus.WithField("action", action.String()).Debug("key")
	}

	switch action {
	case input.ActionNone:
	case input.ActionQuit:
		if app.presenter.Confirm("Are you sure you want to quit?") {
			app.shouldQuit = true
		}
	case input.ActionForceQuit:
		app.shouldQuit = true
	case input.ActionShowHelp:
		app.state.HelpVisible = true
	case input.ActionMoveUp:
		app.state.MoveUp()
	case input.ActionMoveDown:
		app.state.MoveDown()
	case input.ActionNextPage:
		app.state.NextPage()
	case input.ActionPrevPage:
		app.state.PrevPage()
	case input.ActionJumpToLine:
		app.jumpToLine()
	case input.ActionSearch:
		app.search()
	case input.ActionReload:
		if err := app.state.Reload(app.lister); err != nil {
			app.state.SetLastAction("Reload failed: %v", err)
		}
	case input.ActionGoUp:
		return app.directoryResult("..", app.state.GoUp(app.lister))
	case input.ActionOpen:
		return app.open()
	case input.ActionRename:
		return app.dispatcher.Rename()
	case input.ActionDelete:
		return app.dispatcher.Delete()
	case input.ActionMkdir:
		return app.dispatcher.Mkdir()
	case input.ActionTouch:
		return app.dispatcher.Touch()
	case input.ActionRunCommand:
		return app.dispatcher.RunCommand()
	case input.ActionOpenTerminal:
		return app.dispatcher.OpenTerminal()
	case input.ActionOpenLocation:
		return app.dispatcher.OpenLocation()
	case input.ActionCopyPath:
		return app.dispatcher.CopyPath()
	case input.ActionGotoPath:
		return app.dispatcher.GotoPath()
	case input.ActionGoHome:
		return app.dispatcher.GoHome()
	case input.ActionSuspend:
		if err := app.suspendToShell(); err != nil {
			logrus.WithError(err).Warn("suspend failed")
			app.state.SetLastAction("Suspend failed: %v", err)
		}
	}
	return nil
}

func (app *Application) jumpToLine() {
	text := strings.TrimSpace(app.presenter.PromptText("Jump to line: "))
	if text == "" {
		return
	}
	n, err := strconv.Atoi(text)
	if err != nil || !app.state.JumpTo(n) {
		app.presenter.ShowMessage(fmt.Sprintf("No line %.20s. Press any key.", text))
	}
}

func (app *Application) search() {
	query := app.presenter.PromptText("Search: ")
	if query == "" {
		return
	}
	if !app.state.SearchFirstMatch(query) {
		app.presenter.ShowMessage(notFoundMessage)
	}
}

// open enters directories, follows symlinks to directories and hands
// everything else to the dispatcher.
func (app *Application) open() error {
	entry := app.state.SelectedEntry()
	if entry == nil {
		return nil
	}
	if entry.IsDir() {
		return app.directoryResult(entry.CleanName(), app.state.EnterDirectory(app.lister))
	}
	if entry.Kind == fsutil.KindSymlink {
		if path, ok := app.symlinkedDirectory(); ok {
			return app.directoryResult(entry.CleanName(), app.state.ChangeDirectory(path, app.lister))
		}
	}
	return app.dispatcher.Open()
}

func (app *Application) symlinkedDirectory() (string, bool) {
	path, err := app.state.SelectedPath()
	if err != nil {
		return "", false
	}
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return "", false
	}
	return path, true
}

// directoryResult turns a failed directory change into a message unless the
// session cannot continue.
func (app *Application) directoryResult(name string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, statepkg.ErrPathResolution) {
		return err
	}
	logrus.WithError(err).WithField("path", name).Warn("cannot change directory")
	app.state.SetLastAction("Cannot open '%.50s': %v", name, err)
	return nil
}

//go:build !windows

package app

import (
	"os"
	"os/signal"
)

// suspendToShell gives the terminal back to the shell, stops the process
// and restores the screen once it is continued.
func (app *Application) suspendToShell() error {
	cont := make(chan os.Signal, 1)
	signal.Notify(cont, contSignals()...)
	defer signal.Stop(cont)

	if err := app.presenter.Suspend(); err != nil {
		return err
	}
	if err := stopProcess(); err != nil {
		_ = app.presenter.Resume()
		return err
	}
	<-cont
	return app.presenter.Resume()
}

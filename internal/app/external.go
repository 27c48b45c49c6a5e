package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"syscall"

	"github.com/atotto/clipboard"
	"github.com/skratchdot/open-golang/open"
)

var (
	commandBuilder  = exec.Command
	openTerminalIO  = openTTY
	openWithDefault = open.Run
	clipboardWrite  = clipboard.WriteAll
)

var errNoCommand = errors.New("empty command")

// terminalIO is where a foreground child reads and writes while the screen
// is suspended.
type terminalIO struct {
	in    io.Reader
	out   io.Writer
	close func() error
}

// openTTY prefers the controlling terminal and falls back to the standard
// streams.
func openTTY() terminalIO {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return terminalIO{in: os.Stdin, out: os.Stdout, close: func() error { return nil }}
	}
	return terminalIO{in: tty, out: tty, close: tty.Close}
}

// withSuspendedTerminal hands the terminal to fn. The screen is resumed
// whatever fn returns.
func withSuspendedTerminal(p Presenter, fn func() error) (err error) {
	if err := p.Suspend(); err != nil {
		return err
	}
	defer func() {
		if resumeErr := p.Resume(); resumeErr != nil && err == nil {
			err = resumeErr
		}
	}()
	return fn()
}

func waitForEnter(r io.Reader) {
	_, _ = bufio.NewReader(r).ReadString('\n')
}

// runInteractive runs args in dir on the real terminal and waits for Enter
// before giving the screen back.
func runInteractive(p Presenter, dir string, args []string) (status int, err error) {
	if len(args) == 0 || args[0] == "" {
		return -1, errNoCommand
	}
	return runOnTerminal(p, strings.Join(args, " "), func(term terminalIO) error {
		cmd := commandBuilder(args[0], args[1:]...)
		cmd.Dir = dir
		cmd.Stdin = term.in
		cmd.Stdout = term.out
		cmd.Stderr = term.out
		return cmd.Run()
	})
}

// openDefault hands path to the desktop's default opener.
func openDefault(p Presenter, path string) (int, error) {
	return runOnTerminal(p, path, func(terminalIO) error {
		return openWithDefault(path)
	})
}

func runOnTerminal(p Presenter, label string, run func(terminalIO) error) (status int, err error) {
	status = -1
	err = withSuspendedTerminal(p, func() error {
		term := openTerminalIO()
		defer func() {
			_ = term.close()
		}()

		fmt.Fprintf(term.out, "Running: %s\n", label)
		runErr := run(term)
		status = exitStatus(runErr)
		fmt.Fprintf(term.out, "Process exited with status %d\n", status)
		fmt.Fprintf(term.out, "Press Enter to return...\n")
		waitForEnter(term.in)

		if status < 0 {
			return runErr
		}
		return nil
	})
	return status, err
}

// launchDetached starts args in its own session and forgets it.
func launchDetached(dir string, args []string) error {
	if len(args) == 0 || args[0] == "" {
		return errNoCommand
	}
	cmd := commandBuilder(args[0], args[1:]...)
	cmd.Dir = dir
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}

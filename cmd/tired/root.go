package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	apppkg "github.com/LeaoMartelo2/tired/internal/app"
	"github.com/LeaoMartelo2/tired/internal/config"
	"github.com/LeaoMartelo2/tired/internal/logging"
	"github.com/LeaoMartelo2/tired/internal/shellsetup"
	"github.com/LeaoMartelo2/tired/internal/textutil"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var errNotTerminal = errors.New("stdin and stdout must be a terminal")

var isTerminal = func() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}

// options is everything a browsing session is started with.
type options struct {
	settings   *config.Settings
	start      string
	resultFile string
}

type runFunc func(opts options) error

func newRootCmd(run runFunc) *cobra.Command {
	settings := config.LoadSettings()
	listCommand := strings.Join(settings.ListCommand, " ")
	var bindings []string
	var resultFile string

	cmd := &cobra.Command{
		Use:   "tired [path]",
		Short: "Terminal directory browser",
		Long: `tired browses directories one page at a time using the long listing
of ls. It can rename, delete, create and open files and run commands
without leaving the terminal.

Settings also come from TIRED_* environment variables; flags win.

Examples:
  tired
  tired ~/Downloads
  tired --page-size 40 --bind rename=R --bind delete=D|Delete /srv`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("list-command") {
				args, err := textutil.SplitCommand(listCommand)
				if err != nil {
					return fmt.Errorf("--list-command: %w", err)
				}
				settings.ListCommand = args
			}
			settings.Bindings = append(settings.Bindings, bindings...)

			start := ""
			if len(args) == 1 {
				start = textutil.ExpandUserPath(args[0])
			}
			if err := settings.Validate(); err != nil {
				return err
			}
			return run(options{settings: settings, start: start, resultFile: resultFile})
		},
	}
	cmd.AddCommand(newSetupCmd())

	flags := cmd.Flags()
	flags.IntVar(&settings.PageSize, "page-size", settings.PageSize, "entries shown per page")
	flags.StringVar(&listCommand, "list-command", listCommand, "listing command; the directory is appended")
	flags.StringVar(&settings.LogFile, "log-file", settings.LogFile, "append logs to this file")
	flags.StringVar(&settings.LogLevel, "log-level", settings.LogLevel, "log level (debug, info, warn, error)")
	flags.StringArrayVar(&bindings, "bind", nil, "rebind an action, e.g. rename=R or delete=D|Delete (repeatable)")
	flags.StringVar(&settings.Home, "home", settings.Home, "directory for the home key (default $HOME)")
	flags.StringVar(&resultFile, "result-file", "", "write the last directory here on exit (used by the shell wrapper)")

	return cmd
}

// runBrowser owns the terminal for the whole session.
func runBrowser(opts options) error {
	settings := opts.settings
	if !isTerminal() {
		return errNotTerminal
	}

	closer, err := logging.Setup(settings.LogFile, settings.LogLevel)
	if err != nil {
		return err
	}
	defer func() {
		_ = closer.Close()
	}()

	app, err := apppkg.NewApplication(settings, opts.start)
	if err != nil {
		return fmt.Errorf("error initializing application: %w", err)
	}
	defer func() {
		_ = app.Close()
	}()

	logrus.WithField("path", app.CurrentPath()).Info("session started")
	if err := app.Run(); err != nil {
		logrus.WithError(err).Error("session ended")
		return err
	}

	if opts.resultFile != "" {
		if err := shellsetup.WriteResult(opts.resultFile, app.CurrentPath()); err != nil {
			logrus.WithError(err).Warn("cannot write result file")
		}
	}
	return nil
}

func newSetupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup [shell]",
		Short: "Print a shell function that follows tired's last directory",
		Long: `setup prints a shell function named tired. Add it to your shell's
startup file so quitting tired leaves the shell in the directory
you were browsing. The shell is detected when not given.

Examples:
  eval "$(tired setup)"
  tired setup fish | source`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var shell string
			if len(args) == 1 {
				shell = args[0]
			} else {
				shell = shellsetup.DetectShell(os.Getenv, shellsetup.DetectParentShellName)
			}
			exe, err := os.Executable()
			if err != nil {
				exe = "tired"
			}
			snippet, err := shellsetup.Snippet(shell, exe)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), snippet)
			return err
		},
	}
}

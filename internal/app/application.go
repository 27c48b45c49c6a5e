package app

import (
	"fmt"

	"github.com/LeaoMartelo2/tired/internal/config"
	fsutil "github.com/LeaoMartelo2/tired/internal/fs"
	statepkg "github.com/LeaoMartelo2/tired/internal/state"
	"github.com/LeaoMartelo2/tired/internal/ui/input"
	"github.com/gdamore/tcell/v2"
)

// Application represents the running browser.
type Application struct {
	screen     tcell.Screen
	presenter  Presenter
	state      *statepkg.BrowserState
	lister     statepkg.Lister
	keymap     *input.Keymap
	dispatcher *Dispatcher
	settings   *config.Settings
	shouldQuit bool
}

// NewApplication loads startPath and takes over the terminal. The first
// listing is read before the screen starts so a failure can still be
// reported on stderr.
func NewApplication(settings *config.Settings, startPath string) (*Application, error) {
	if settings == nil {
		settings = config.LoadSettings()
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	km, err := buildKeymap(settings.Bindings)
	if err != nil {
		return nil, err
	}

	if startPath == "" {
		startPath = "."
	}
	state := statepkg.NewBrowserState(settings.PageSize)
	loader := fsutil.NewLoader(settings.ListCommand)
	if err := state.ChangeDirectory(startPath, loader); err != nil {
		return nil, fmt.Errorf("cannot open %s: %w", startPath, err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	return newApplication(screen, newScreenPresenter(screen, km), state, loader, km, settings), nil
}

func newApplication(screen tcell.Screen, p Presenter, state *statepkg.BrowserState, lister statepkg.Lister, km *input.Keymap, settings *config.Settings) *Application {
	if km == nil {
		km = input.DefaultKeymap()
	}
	if settings == nil {
		settings = config.DefaultSettings()
	}
	return &Application{
		screen:     screen,
		presenter:  p,
		state:      state,
		lister:     lister,
		keymap:     km,
		dispatcher: NewDispatcher(p, state, lister, settings),
		settings:   settings,
	}
}

func buildKeymap(bindings []string) (*input.Keymap, error) {
	km := input.DefaultKeymap()
	for _, binding := range bindings {
		if err := km.Bind(binding); err != nil {
			return nil, err
		}
	}
	return km, nil
}

// Close restores the terminal.
func (app *Application) Close() error {
	if app.screen != nil {
		app.screen.Fini()
	}
	return nil
}

// CurrentPath returns the directory being browsed.
func (app *Application) CurrentPath() string {
	return app.state.CurrentPath
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	fsutil "github.com/LeaoMartelo2/tired/internal/fs"
	"github.com/LeaoMartelo2/tired/internal/textutil"
	"github.com/sirupsen/logrus"
)

// ErrInvalidSettings marks a Settings value that Validate rejected.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings holds everything the browser can be told at startup.
type Settings struct {
	// Listing
	PageSize    int
	ListCommand []string

	// Launchers, each a command template with a %s placeholder
	ImageViewer      string
	VideoPlayer      string
	AudioPlayer      string
	TermOpen         string
	TermOpenLocation string

	// Home is the GoHome target. Empty means the user's home directory.
	Home string

	// Bindings are "action=key|key" overrides applied over the default keymap.
	Bindings []string

	// Logging
	LogFile  string // empty discards logs
	LogLevel string
}

// DefaultSettings returns the built-in configuration.
func DefaultSettings() *Settings {
	return &Settings{
		PageSize:         20,
		ListCommand:      append([]string(nil), fsutil.DefaultListCommand...),
		ImageViewer:      "gwenview %s",
		VideoPlayer:      "mpv %s",
		AudioPlayer:      "vlc %s",
		TermOpen:         "alacritty --hold -e ./%s",
		TermOpenLocation: "alacritty --working-directory %s",
		Home:             "",
		Bindings:         []string{},
		LogFile:          "",
		LogLevel:         "info",
	}
}

// LoadSettings creates settings from defaults and applies TIRED_*
// environment overrides.
func LoadSettings() *Settings {
	return loadSettings(os.Getenv)
}

func loadSettings(getenv func(string) string) *Settings {
	settings := DefaultSettings()

	if pageSize := getenv("TIRED_PAGE_SIZE"); pageSize != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(pageSize)); err == nil {
			settings.PageSize = n
		} else {
			logrus.WithField("value", pageSize).Warn("ignoring TIRED_PAGE_SIZE")
		}
	}

	if listCommand := getenv("TIRED_LIST_COMMAND"); listCommand != "" {
		if args, err := textutil.SplitCommand(listCommand); err != nil {
			logrus.WithError(err).Warn("ignoring TIRED_LIST_COMMAND")
		} else if len(args) > 0 {
			settings.ListCommand = args
		}
	}

	overrides := []struct {
		key    string
		target *string
	}{
		{"TIRED_IMAGE_VIEWER", &settings.ImageViewer},
		{"TIRED_VIDEO_PLAYER", &settings.VideoPlayer},
		{"TIRED_AUDIO_PLAYER", &settings.AudioPlayer},
		{"TIRED_TERM_OPEN", &settings.TermOpen},
		{"TIRED_TERM_OPEN_LOCATION", &settings.TermOpenLocation},
		{"TIRED_HOME", &settings.Home},
		{"TIRED_LOG_FILE", &settings.LogFile},
		{"TIRED_LOG_LEVEL", &settings.LogLevel},
	}
	for _, o := range overrides {
		if value := getenv(o.key); value != "" {
			*o.target = value
		}
	}

	if bindings := getenv("TIRED_BIND"); bindings != "" {
		for _, binding := range strings.Split(bindings, ",") {
			if binding = strings.TrimSpace(binding); binding != "" {
				settings.Bindings = append(settings.Bindings, binding)
			}
		}
	}

	return settings
}

// Validate checks the values the browser cannot run without.
func (s *Settings) Validate() error {
	if s.PageSize < 1 {
		return fmt.Errorf("%w: page size must be at least 1, got %d", ErrInvalidSettings, s.PageSize)
	}
	if len(s.ListCommand) == 0 || strings.TrimSpace(s.ListCommand[0]) == "" {
		return fmt.Errorf("%w: list command is empty", ErrInvalidSettings)
	}
	templates := map[string]string{
		"image viewer":              s.ImageViewer,
		"video player":              s.VideoPlayer,
		"audio player":              s.AudioPlayer,
		"terminal command":          s.TermOpen,
		"terminal location command": s.TermOpenLocation,
	}
	for label, template := range templates {
		if _, err := textutil.SplitCommand(template); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidSettings, label, err)
		}
	}
	if s.LogLevel != "" {
		if _, err := logrus.ParseLevel(s.LogLevel); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
		}
	}
	return nil
}

// HomeDir resolves the GoHome target.
func (s *Settings) HomeDir() (string, error) {
	if s.Home != "" {
		return textutil.ExpandUserPath(s.Home), nil
	}
	return os.UserHomeDir()
}

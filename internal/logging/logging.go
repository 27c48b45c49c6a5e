// Package logging configures the process-wide logrus logger. The screen
// owns the terminal, so logs go to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup points the standard logger at file, or discards output when file is
// empty. The returned closer releases the file.
func Setup(file, level string) (io.Closer, error) {
	return setup(logrus.StandardLogger(), file, level)
}

func setup(logger *logrus.Logger, file, level string) (io.Closer, error) {
	lvl := logrus.InfoLevel
	if level != "" {
		parsed, err := logrus.ParseLevel(level)
		if err != nil {
			return nil, err
		}
		lvl = parsed
	}

	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})
	logger.SetLevel(lvl)

	if file == "" {
		logger.SetOutput(io.Discard)
		return nopCloser{}, nil
	}

	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		logger.SetOutput(io.Discard)
		return nil, fmt.Errorf("cannot open log file %s: %w", file, err)
	}
	logger.SetOutput(f)
	return f, nil
}

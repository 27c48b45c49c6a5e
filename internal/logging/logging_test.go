package logging

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWritesToFile(t *testing.T) {
	logger := logrus.New()
	path := filepath.Join(t.TempDir(), "tired.log")

	closer, err := setup(logger, path, "debug")
	require.NoError(t, err)

	logger.WithFields(logrus.Fields{"op": "rename", "path": "/tmp/notes.txt"}).Debug("renamed")
	require.NoError(t, closer.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	line := string(content)
	assert.Contains(t, line, "level=debug")
	assert.Contains(t, line, `msg=renamed`)
	assert.Contains(t, line, "op=rename")
	assert.Contains(t, line, "path=/tmp/notes.txt")
	assert.NotContains(t, line, "\x1b[")
}

func TestSetupAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tired.log")
	require.NoError(t, os.WriteFile(path, []byte("earlier\n"), 0o644))

	logger := logrus.New()
	closer, err := setup(logger, path, "info")
	require.NoError(t, err)
	logger.Info("later")
	require.NoError(t, closer.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Regexp(t, `^earlier\n.*msg=later`, string(content))
}

func TestSetupWithoutFileDiscards(t *testing.T) {
	logger := logrus.New()

	closer, err := setup(logger, "", "")
	require.NoError(t, err)
	require.NoError(t, closer.Close())

	assert.Equal(t, io.Discard, logger.Out)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}

func TestSetupLevelFiltering(t *testing.T) {
	logger := logrus.New()
	path := filepath.Join(t.TempDir(), "tired.log")

	closer, err := setup(logger, path, "warn")
	require.NoError(t, err)
	logger.Info("quiet")
	logger.Warn("loud")
	require.NoError(t, closer.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "quiet")
	assert.Contains(t, string(content), "loud")
}

func TestSetupRejectsUnknownLevel(t *testing.T) {
	_, err := setup(logrus.New(), "", "chatty")
	assert.Error(t, err)
}

func TestSetupReportsUnwritableFile(t *testing.T) {
	logger := logrus.New()
	_, err := setup(logger, filepath.Join(t.TempDir(), "missing", "tired.log"), "info")
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, io.Discard, logger.Out)
}

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/tictactui/config"
)

func debugConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Debug = true
	cfg.LogDir = filepath.Join(t.TempDir(), "logs")
	return cfg
}

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	logger, logFile, err := setupLogging(config.Default())

	require.NoError(t, err)
	assert.Nil(t, logFile)
	assert.False(t, logger.Debug().Enabled(), "no-op logger expected")
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	cfg := debugConfig(t)

	logger, logFile, err := setupLogging(cfg)
	require.NoError(t, err)
	require.NotNil(t, logFile)
	defer logFile.Close()

	assert.DirExists(t, cfg.LogDir)
	logPath := filepath.Join(cfg.LogDir, logFileName)
	assert.FileExists(t, logPath)

	logger.Debug().Str("probe", "value").Msg("test log message")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"test log message"`)
	assert.Contains(t, string(data), `"probe":"value"`)
	assert.Contains(t, string(data), `"time":`)
}

func TestSetupLogging_RespectsLevel(t *testing.T) {
	cfg := debugConfig(t)
	cfg.LogLevel = "warn"

	logger, logFile, err := setupLogging(cfg)
	require.NoError(t, err)
	defer logFile.Close()

	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	data, err := os.ReadFile(filepath.Join(cfg.LogDir, logFileName))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestSetupLogging_Rotation(t *testing.T) {
	cfg := debugConfig(t)
	require.NoError(t, os.MkdirAll(cfg.LogDir, 0755))

	// Given a log file just over the size limit
	logPath := filepath.Join(cfg.LogDir, logFileName)
	require.NoError(t, os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644))

	// When
	_, logFile, err := setupLogging(cfg)
	require.NoError(t, err)
	defer logFile.Close()

	// Then the old file is kept aside and a fresh one started
	rotated, err := os.Stat(logPath + ".old")
	require.NoError(t, err)
	assert.EqualValues(t, maxLogSize+1, rotated.Size())

	info, err := os.Stat(logPath)
	require.NoError(t, err)
	assert.Less(t, info.Size(), int64(maxLogSize))
}

func TestSetupLogging_SmallFileAppends(t *testing.T) {
	cfg := debugConfig(t)
	require.NoError(t, os.MkdirAll(cfg.LogDir, 0755))
	logPath := filepath.Join(cfg.LogDir, logFileName)
	require.NoError(t, os.WriteFile(logPath, []byte("previous\n"), 0644))

	logger, logFile, err := setupLogging(cfg)
	require.NoError(t, err)
	logger.Info().Msg("next")
	require.NoError(t, logFile.Close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "previous\n")
	assert.Contains(t, string(data), "next")
	assert.NoFileExists(t, logPath+".old")
}

func TestSetupLogging_InvalidLevel(t *testing.T) {
	cfg := debugConfig(t)
	cfg.LogLevel = "chatty"

	_, logFile, err := setupLogging(cfg)

	assert.ErrorIs(t, err, config.ErrInvalidLogLevel)
	assert.Nil(t, logFile)
}

func TestSetupLogging_UnwritableDirectory(t *testing.T) {
	// A regular file where the directory should be
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	cfg := debugConfig(t)
	cfg.LogDir = filepath.Join(blocker, "logs")

	logger, logFile, err := setupLogging(cfg)

	assert.Error(t, err)
	assert.Nil(t, logFile)
	assert.False(t, logger.Debug().Enabled())
}

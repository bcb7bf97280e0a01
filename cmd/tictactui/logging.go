package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/tictactui/config"
)

const (
	logFileName = "tictactui.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging opens the debug log when enabled, rotating an oversized
// previous file to .old. Disabled logging returns a no-op logger and a nil file.
func setupLogging(cfg *config.Config) (zerolog.Logger, *os.File, error) {
	if !cfg.Debug {
		return zerolog.Nop(), nil, nil
	}

	level, err := cfg.Level()
	if err != nil {
		return zerolog.Nop(), nil, err
	}

	if err := os.MkdirAll(cfg.LogDir, 0755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("create log directory: %w", err)
	}

	logPath := filepath.Join(cfg.LogDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		if err := os.Rename(logPath, logPath+".old"); err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("rotate log file: %w", err)
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}

	logger := zerolog.New(f).Level(level).With().Timestamp().Logger()
	return logger, f, nil
}

package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tictactui/app"
	"github.com/lixenwraith/tictactui/audio"
	"github.com/lixenwraith/tictactui/config"
	"github.com/lixenwraith/tictactui/core"
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if code := run(); code != 0 {
		os.Exit(code)
	}
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Ignoring environment configuration: %v\n%s", err, config.Description())
	}

	logger, logFile, err := setupLogging(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Debug log unavailable: %v (continuing without logging)\n", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	opts := []app.Option{app.WithLogger(logger)}
	if cfg.Sound {
		sm := audio.NewSoundManager(cfg.Volume)
		if err := sm.Initialize(); err != nil {
			logger.Warn().Err(err).Msg("audio initialization failed, continuing without audio")
		} else {
			defer sm.Cleanup()
			opts = append(opts, app.WithCues(sm))
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create terminal: %v\n", err)
		return 1
	}

	if err := app.New(screen, opts...).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	return 0
}

// Package config reads the game's ambient settings from the environment.
package config

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rs/zerolog"
)

var ErrInvalidLogLevel = errors.New("invalid log level")

type Config struct {
	Debug    bool    `env:"TICTACTUI_DEBUG" env-default:"false" env-description:"write a debug log file"`
	LogDir   string  `env:"TICTACTUI_LOG_DIR" env-default:"logs" env-description:"directory for the debug log"`
	LogLevel string  `env:"TICTACTUI_LOG_LEVEL" env-default:"debug" env-description:"debug log level"`
	Sound    bool    `env:"TICTACTUI_SOUND" env-default:"false" env-description:"play audio cues"`
	Volume   float64 `env:"TICTACTUI_VOLUME" env-default:"-1.5" env-description:"cue volume, base 2 exponent"`
}

// Default returns the configuration used when the environment sets nothing
func Default() *Config {
	return &Config{
		LogDir:   "logs",
		LogLevel: "debug",
		Volume:   -1.5,
	}
}

// Load reads the environment. A malformed value yields the defaults
// together with the error, so callers can warn and carry on.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return Default(), fmt.Errorf("unable to read environment: %w", err)
	}
	if _, err := cfg.Level(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Level parses LogLevel
func (c *Config) Level() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		return zerolog.NoLevel, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	return lvl, nil
}

// Description lists the recognised environment variables
func Description() string {
	text, err := cleanenv.GetDescription(&Config{}, nil)
	if err != nil {
		return ""
	}
	return text
}

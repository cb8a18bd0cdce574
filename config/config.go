package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the whole game configuration. Load layers a TOML file over
// the defaults; a missing file is not an error so the game runs out of
// the box.
type Config struct {
	Display DisplayConfig `toml:"display"`
	Timing  TimingConfig  `toml:"timing"`
	Fishing FishingConfig `toml:"fishing"`
	Logging LoggingConfig `toml:"logging"`
}

type DisplayConfig struct {
	Width     int `toml:"width"`
	Height    int `toml:"height"`
	FrameRate int `toml:"frame_rate"`

	// UIRows are reserved at the bottom of the screen for the message
	// log and status line; the map occupies the rest.
	UIRows int `toml:"ui_rows"`
}

type TimingConfig struct {
	// ResponseThreshold is how long NPCs wait before responding while
	// the player is bound to an activity.
	ResponseThreshold time.Duration `toml:"response_threshold"`
}

type FishingConfig struct {
	// AttemptInterval is the elapsed time per bite attempt.
	AttemptInterval time.Duration `toml:"attempt_interval"`

	// BaseChance is the success probability of the first attempt.
	BaseChance float64 `toml:"base_chance"`

	// ChanceStep is added per subsequent attempt.
	ChanceStep float64 `toml:"chance_step"`

	// MaxChance caps the probability so a catch is never guaranteed.
	MaxChance float64 `toml:"max_chance"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// Default returns the shipped configuration.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Width:     40,
			Height:    30,
			FrameRate: 60,
			UIRows:    3,
		},
		Timing: TimingConfig{
			ResponseThreshold: 1500 * time.Millisecond,
		},
		Fishing: FishingConfig{
			AttemptInterval: 1500 * time.Millisecond,
			BaseChance:      0.30,
			ChanceStep:      0.10,
			MaxChance:       0.90,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads a TOML config over the defaults. A missing path returns the
// defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

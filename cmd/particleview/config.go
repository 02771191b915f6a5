package main

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the previewer settings. Environment variables override the
// defaults, command-line flags override both.
type Config struct {
	TickRate int    `env:"PVIEW_TICK_RATE"` // scheduler ticks per second
	Presets  string `env:"PVIEW_PRESETS"`   // preset directory, empty for the demo reel
	Sound    bool   `env:"PVIEW_SOUND"`     // audio cue on effect switch
	Debug    string `env:"PVIEW_DEBUG"`     // debug log file, empty for silent
}

func loadConfig() (Config, error) {
	cfg := Config{
		TickRate: 20, // Minecraft server tick rate
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse environment: %w", err)
	}

	flag.IntVar(&cfg.TickRate, "tick-rate", cfg.TickRate, "scheduler ticks per second")
	flag.StringVar(&cfg.Presets, "presets", cfg.Presets, "directory of .toml preset files")
	flag.BoolVar(&cfg.Sound, "sound", cfg.Sound, "play a tone when switching effects")
	flag.StringVar(&cfg.Debug, "debug", cfg.Debug, "write debug logs to this file")
	flag.Parse()

	if cfg.TickRate < 1 || cfg.TickRate > 200 {
		return cfg, fmt.Errorf("tick rate %d out of range 1-200", cfg.TickRate)
	}
	return cfg, nil
}

// Package config loads loop pacing settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"

	yaml "github.com/goccy/go-yaml"
)

// ErrInvalidConfig is returned for settings that cannot describe a
// schedule. Bad values are rejected outright, never clamped.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config mirrors the YAML config file.
type Config struct {
	UpdateRateHz int    `yaml:"update_rate_hz"` // 0 disables updates
	RenderRateHz int    `yaml:"render_rate_hz"` // 0 means unlimited
	Title        string `yaml:"title"`
}

// Default returns the settings used when no config file is present:
// 60 simulation steps per second, unlimited rendering.
func Default() Config {
	return Config{
		UpdateRateHz: 60,
		RenderRateHz: 0,
		Title:        "looptick demo",
	}
}

// Load reads YAML from path and overrides the defaults. An empty path
// or a missing file yields the defaults; an unreadable or invalid file
// is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the settings against ErrInvalidConfig.
func (c Config) Validate() error {
	if c.UpdateRateHz < 0 {
		return fmt.Errorf("%w: negative update rate %d", ErrInvalidConfig, c.UpdateRateHz)
	}
	if c.RenderRateHz < 0 {
		return fmt.Errorf("%w: negative render rate %d", ErrInvalidConfig, c.RenderRateHz)
	}
	return nil
}

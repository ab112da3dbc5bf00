// Package config loads application settings: built-in defaults, then an
// optional YAML file, then environment overrides, in that order.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config holds every tunable the application reads at startup.
type Config struct {
	DataDir         string  `yaml:"dataDir"         envconfig:"VALENTINE_DATA_DIR"`
	SwipeThreshold  float64 `yaml:"swipeThreshold"  envconfig:"VALENTINE_SWIPE_THRESHOLD"`
	ConfettiDelayMs int     `yaml:"confettiDelayMs" envconfig:"VALENTINE_CONFETTI_DELAY_MS"`
	AudioEnabled    bool    `yaml:"audioEnabled"    envconfig:"VALENTINE_AUDIO"`
	Debug           bool    `yaml:"debug"           envconfig:"VALENTINE_DEBUG"`
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		DataDir:         ".valentine",
		SwipeThreshold:  50,
		ConfettiDelayMs: 3000,
		AudioEnabled:    true,
	}
}

// Load builds the effective config. An empty path skips the file layer;
// a named file that does not exist is an error, since the user asked
// for it explicitly.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
	}
	if err := envconfig.Process("valentine", cfg); err != nil {
		return nil, fmt.Errorf("error processing environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.SwipeThreshold <= 0 {
		return fmt.Errorf("config: swipe threshold must be positive, got %v", c.SwipeThreshold)
	}
	if c.ConfettiDelayMs < 0 {
		return fmt.Errorf("config: confetti delay must be non-negative, got %d", c.ConfettiDelayMs)
	}
	return nil
}

// ConfettiDelay returns the auto-hide delay as a duration.
func (c *Config) ConfettiDelay() time.Duration {
	return time.Duration(c.ConfettiDelayMs) * time.Millisecond
}

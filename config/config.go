// Package config loads optional campaign overrides from a YAML file:
// reward copy and spin choreography. Everything has a built-in default; a
// missing file is not an error surface for the user, just the defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/prize-wheel/constants"
)

// Config is the on-disk override set
type Config struct {
	// Rewards replaces the built-in reward table; must list exactly one
	// label per segment when present
	Rewards []string `yaml:"rewards"`

	Spin Spin `yaml:"spin"`
}

// Spin overrides the spin choreography
type Spin struct {
	// Revolutions overrides the cosmetic full-turn count; 0 keeps the
	// variant default
	Revolutions int `yaml:"revolutions"`

	// RevealDelayMS overrides the dramatic pause in milliseconds; negative
	// is rejected, 0 keeps the default
	RevealDelayMS int `yaml:"reveal_delay_ms"`
}

// Load reads and validates a config file
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks the override invariants
func (c *Config) Validate() error {
	if len(c.Rewards) != 0 && len(c.Rewards) != constants.SegmentCount {
		return fmt.Errorf("rewards must list exactly %d labels, got %d", constants.SegmentCount, len(c.Rewards))
	}
	for i, r := range c.Rewards {
		if r == "" {
			return fmt.Errorf("reward %d is empty", i)
		}
	}
	if c.Spin.Revolutions < 0 {
		return fmt.Errorf("spin.revolutions must be >= 0, got %d", c.Spin.Revolutions)
	}
	if c.Spin.RevealDelayMS < 0 {
		return fmt.Errorf("spin.reveal_delay_ms must be >= 0, got %d", c.Spin.RevealDelayMS)
	}
	return nil
}

// Package config provides YAML-based settings for the game: board size,
// winning tile and spawn odds.
package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Limits for the board dimension.
const (
	MinSize = 2
	MaxSize = 16
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds the game settings.
type Config struct {
	Size              int     `yaml:"size"`
	Target            int     `yaml:"target"`
	Spawn4Probability float64 `yaml:"spawn4_probability"`
	Seed              int64   `yaml:"seed"` // 0 = time-based
}

// Default returns the classic 4x4 game to 2048.
func Default() Config {
	return Config{
		Size:              4,
		Target:            2048,
		Spawn4Probability: 0.10,
		Seed:              0,
	}
}

// Validate checks that the settings describe a playable game.
func (c Config) Validate() error {
	if c.Size < MinSize || c.Size > MaxSize {
		return fmt.Errorf("%w: size must be between %d and %d, got %d", ErrInvalid, MinSize, MaxSize, c.Size)
	}
	if c.Target < 4 || c.Target&(c.Target-1) != 0 {
		return fmt.Errorf("%w: target must be a power of two of at least 4, got %d", ErrInvalid, c.Target)
	}
	if c.Spawn4Probability < 0 || c.Spawn4Probability > 1 {
		return fmt.Errorf("%w: spawn4_probability must be within [0, 1], got %v", ErrInvalid, c.Spawn4Probability)
	}
	return nil
}

// YAML encodes the config in the same format Load reads.
func (c Config) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: encode: %w", err)
	}
	return data, nil
}

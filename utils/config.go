package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/torus-life/model"
)

const (
	seedRandom        = "random"
	seedDeterministic = "deterministic"
	seedEmpty         = "empty"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the game
type Config struct {
	Width               uint32        `json:"width"`
	Height              uint32        `json:"height"`
	FrameRate           time.Duration `json:"frame_rate"`
	Seed                string        `json:"seed"`
	RandomSeed          int64         `json:"random_seed"`
	AddPatterns         bool          `json:"add_patterns"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	MaxGenerations      uint32        `json:"max_generations"`
	Interactive         bool          `json:"interactive"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               64,
		Height:              32,
		FrameRate:           150 * time.Millisecond,
		Seed:                seedRandom,
		AddPatterns:         false,
		AutoRestart:         true,
		StagnationThreshold: 5,
		MaxGenerations:      1000,
		Interactive:         false,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] file: %+v", filename)
	}

	return config, nil
}

// Validate rejects configurations the engine or the game loop cannot run
func (c Config) Validate() error {
	if c.Width == 0 || c.Height == 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] dimensions %dx%d", c.Width, c.Height)
	}
	if c.FrameRate <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] non-positive frame_rate %v", c.FrameRate)
	}
	if c.StagnationThreshold < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative stagnation_threshold %d", c.StagnationThreshold)
	}
	if _, err := c.SeedPolicy(); err != nil {
		return err
	}
	return nil
}

// SeedPolicy maps the seed name to the engine's policy
func (c Config) SeedPolicy() (model.SeedPolicy, error) {
	switch c.Seed {
	case seedRandom:
		return model.SeedRandom, nil
	case seedDeterministic:
		return model.SeedDeterministic, nil
	case seedEmpty:
		return model.SeedEmpty, nil
	}
	return 0, errors.Wrapf(ErrInvalidConfig, "[SeedPolicy] unknown seed %q", c.Seed)
}

package clouds

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Params holds the tunable fluid and seeding values for the cloud sim.
type Params struct {
	NoiseScale     float64 `yaml:"noise_scale"`
	DiffusionRate  float64 `yaml:"diffusion_rate"`
	SeedBlobCount  int     `yaml:"seed_blob_count"`
	SeedBlobAmount float64 `yaml:"seed_blob_amount"`
}

// Config controls the shared cloud window dimensions and fluid parameters.
type Config struct {
	Width    int   `yaml:"width"`
	Height   int   `yaml:"height"`
	GridSize int   `yaml:"grid_size"`
	Seed     int64 `yaml:"seed"`

	Params Params `yaml:"params"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:    120,
		Height:   120,
		GridSize: 2,
		Seed:     1337,
		Params: Params{
			NoiseScale:     5,
			DiffusionRate:  0.01,
			SeedBlobCount:  4,
			SeedBlobAmount: 12000,
		},
	}
}

// Validate reports the first unusable configuration value, if any. The window
// must be at least 3 cells per axis and divisible by 3 on both axes: the
// recentering conveyor moves whole thirds, and a remainder row or column
// would never be shifted or zeroed.
func (c Config) Validate() error {
	if c.Width < 3 {
		return fmt.Errorf("clouds: width must be at least 3, got %d", c.Width)
	}
	if c.Height < 3 {
		return fmt.Errorf("clouds: height must be at least 3, got %d", c.Height)
	}
	if c.Width%3 != 0 {
		return fmt.Errorf("clouds: width must be divisible by 3, got %d", c.Width)
	}
	if c.Height%3 != 0 {
		return fmt.Errorf("clouds: height must be divisible by 3, got %d", c.Height)
	}
	if c.GridSize <= 0 {
		return fmt.Errorf("clouds: grid size must be positive, got %d", c.GridSize)
	}
	if c.Params.NoiseScale <= 0 {
		return fmt.Errorf("clouds: noise scale must be positive, got %v", c.Params.NoiseScale)
	}
	if c.Params.DiffusionRate < 0 {
		return fmt.Errorf("clouds: diffusion rate must be non-negative, got %v", c.Params.DiffusionRate)
	}
	if c.Params.SeedBlobCount < 0 {
		return fmt.Errorf("clouds: seed blob count must be non-negative, got %d", c.Params.SeedBlobCount)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["grid_size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.GridSize = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["noise_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.NoiseScale = parsed
		}
	}
	if v, ok := cfg["diffusion_rate"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.DiffusionRate = parsed
		}
	}
	if v, ok := cfg["seed_blob_count"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.SeedBlobCount = parsed
		}
	}
	if v, ok := cfg["seed_blob_amount"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.SeedBlobAmount = parsed
		}
	}
	return c
}

// FromFile loads a YAML configuration file over the defaults, so omitted
// keys keep their default values.
func FromFile(path string) (Config, error) {
	c := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("clouds: parse %s: %w", path, err)
	}
	return c, nil
}

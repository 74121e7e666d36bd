package clouds

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(c *Config) {}, true},
		{"minimum window", func(c *Config) { c.Width = 3; c.Height = 3 }, true},
		{"width too small", func(c *Config) { c.Width = 2 }, false},
		{"height too small", func(c *Config) { c.Height = 0 }, false},
		{"width leaves a remainder column", func(c *Config) { c.Width = 100 }, false},
		{"height leaves a remainder row", func(c *Config) { c.Height = 40 }, false},
		{"zero grid size", func(c *Config) { c.GridSize = 0 }, false},
		{"negative noise scale", func(c *Config) { c.Params.NoiseScale = -1 }, false},
		{"zero diffusion ok", func(c *Config) { c.Params.DiffusionRate = 0 }, true},
		{"negative diffusion", func(c *Config) { c.Params.DiffusionRate = -0.01 }, false},
		{"negative blob count", func(c *Config) { c.Params.SeedBlobCount = -1 }, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.ok && err == nil {
				t.Fatal("expected a validation error")
			}
		})
	}
}

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":              "66",
		"grid_size":      "4",
		"seed":           "7",
		"diffusion_rate": "0.05",
	})
	if cfg.Width != 66 || cfg.GridSize != 4 || cfg.Seed != 7 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Params.DiffusionRate != 0.05 {
		t.Fatalf("diffusion rate = %v, want 0.05", cfg.Params.DiffusionRate)
	}
	// Untouched keys keep their defaults.
	if cfg.Height != DefaultConfig().Height {
		t.Fatalf("height changed without an override: %d", cfg.Height)
	}
}

func TestFromMapIgnoresBadValues(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":           "not-a-number",
		"grid_size":   "-3",
		"noise_scale": "0",
	})
	def := DefaultConfig()
	if cfg.Width != def.Width || cfg.GridSize != def.GridSize || cfg.Params.NoiseScale != def.Params.NoiseScale {
		t.Fatalf("invalid overrides leaked into the config: %+v", cfg)
	}
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clouds.yaml")
	data := []byte("width: 60\nseed: 99\nparams:\n  diffusion_rate: 0.02\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile: %v", err)
	}
	if cfg.Width != 60 || cfg.Seed != 99 || cfg.Params.DiffusionRate != 0.02 {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	// Keys the file omits stay at their defaults.
	if cfg.Height != 120 || cfg.Params.NoiseScale != 5 {
		t.Fatalf("defaults lost on partial file: %+v", cfg)
	}
}

func TestFromFileMissing(t *testing.T) {
	if _, err := FromFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

package clouds

import (
	"strconv"

	"cloudsim/internal/core"
)

// Parameters captures the current tunables for the debug overlay.
func (s *System) Parameters() core.ParameterSnapshot {
	params := s.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "Window",
			Params: []core.Parameter{
				intParam("w", "Width", s.cfg.Width),
				intParam("h", "Height", s.cfg.Height),
				intParam("grid_size", "Cell size", s.cfg.GridSize),
				int64Param("seed", "Seed", s.cfg.Seed),
			},
		},
		{
			Name: "Fluid",
			Params: []core.Parameter{
				floatParam("noise_scale", "Noise scale", params.NoiseScale),
				floatParam("diffusion_rate", "Diffusion rate", params.DiffusionRate),
			},
		},
		{
			Name: "Seeding",
			Params: []core.Parameter{
				intParam("seed_blob_count", "Seed blob count", params.SeedBlobCount),
				floatParam("seed_blob_amount", "Seed blob amount", params.SeedBlobAmount),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the tunables adjustable from the overlay.
func (s *System) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{
			Key:    "diffusion_rate",
			Label:  "Diffusion rate",
			Type:   core.ParamTypeFloat,
			Step:   0.005,
			Min:    0,
			Max:    0.5,
			HasMin: true,
			HasMax: true,
		},
		{
			Key:    "noise_scale",
			Label:  "Noise scale",
			Type:   core.ParamTypeFloat,
			Step:   0.5,
			Min:    0.5,
			HasMin: true,
		},
		{
			Key:    "seed_blob_count",
			Label:  "Seed blob count",
			Type:   core.ParamTypeInt,
			Step:   1,
			Min:    0,
			HasMin: true,
		},
	}
}

// SetFloatParameter updates a float tunable; changing the noise scale
// rebuilds the velocity field. Returns false for unknown keys.
func (s *System) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "diffusion_rate":
		if value < 0 {
			value = 0
		}
		if value > 0.5 {
			value = 0.5
		}
		s.cfg.Params.DiffusionRate = value
		return true
	case "noise_scale":
		if value < 0.5 {
			value = 0.5
		}
		s.cfg.Params.NoiseScale = value
		s.velocity = NewVelocityField(s.width, s.height, value, s.cfg.Seed)
		return true
	case "seed_blob_amount":
		if value < 0 {
			value = 0
		}
		s.cfg.Params.SeedBlobAmount = value
		return true
	}
	return false
}

// SetIntParameter updates an integer tunable. Returns false for unknown
// keys.
func (s *System) SetIntParameter(key string, value int) bool {
	switch key {
	case "seed_blob_count":
		if value < 0 {
			value = 0
		}
		s.cfg.Params.SeedBlobCount = value
		return true
	}
	return false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.FormatInt(value, 10)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'g', -1, 64)}
}

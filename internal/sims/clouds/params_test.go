package clouds

import "testing"

func TestSetFloatParameterClamps(t *testing.T) {
	sys, _ := newTestSystem(t, 30, 30, 2)

	if !sys.SetFloatParameter("diffusion_rate", 2) {
		t.Fatal("diffusion_rate not recognized")
	}
	if got := sys.cfg.Params.DiffusionRate; got != 0.5 {
		t.Fatalf("diffusion rate clamped to %v, want 0.5", got)
	}

	if !sys.SetFloatParameter("diffusion_rate", -1) {
		t.Fatal("diffusion_rate not recognized")
	}
	if got := sys.cfg.Params.DiffusionRate; got != 0 {
		t.Fatalf("diffusion rate clamped to %v, want 0", got)
	}

	if sys.SetFloatParameter("no_such_key", 1) {
		t.Fatal("unknown key accepted")
	}
}

func TestSetNoiseScaleRebuildsVelocity(t *testing.T) {
	sys, _ := newTestSystem(t, 30, 30, 2)
	before := sys.velocity

	if !sys.SetFloatParameter("noise_scale", 9) {
		t.Fatal("noise_scale not recognized")
	}
	if sys.velocity == before {
		t.Fatal("velocity field not rebuilt after noise scale change")
	}
	if got := sys.cfg.Params.NoiseScale; got != 9 {
		t.Fatalf("noise scale = %v, want 9", got)
	}
}

func TestSetIntParameter(t *testing.T) {
	sys, _ := newTestSystem(t, 30, 30, 2)

	if !sys.SetIntParameter("seed_blob_count", 7) {
		t.Fatal("seed_blob_count not recognized")
	}
	if got := sys.cfg.Params.SeedBlobCount; got != 7 {
		t.Fatalf("seed blob count = %d, want 7", got)
	}
	if !sys.SetIntParameter("seed_blob_count", -4) {
		t.Fatal("seed_blob_count not recognized")
	}
	if got := sys.cfg.Params.SeedBlobCount; got != 0 {
		t.Fatalf("negative blob count not clamped: %d", got)
	}
	if sys.SetIntParameter("w", 1) {
		t.Fatal("width must not be adjustable at runtime")
	}
}

package clouds

import (
	"errors"
	"testing"
)

func TestTickWithoutReference(t *testing.T) {
	sys, err := New(30, 30)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := sys.Tick(); !errors.Is(err, ErrNoReference) {
		t.Fatalf("Tick without a reference = %v, want ErrNoReference", err)
	}
}

func TestStepPanicsWithoutReference(t *testing.T) {
	sys, err := New(30, 30)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("Step must panic when Tick errors")
		}
	}()
	sys.Step()
}

func TestCloudsJoinOnFirstTick(t *testing.T) {
	sys, _ := newTestSystem(t, 30, 30, 2)
	cloud := sys.AddCompound(DefaultCompounds()[0])

	if cloud.Density() != nil {
		t.Fatal("cloud arrays must not be allocated before the first tick")
	}
	if len(sys.Clouds()) != 0 {
		t.Fatal("pending cloud listed as active before the first tick")
	}

	if err := sys.Tick(); err != nil {
		t.Fatalf("tick: %v", err)
	}

	if cloud.Density() == nil {
		t.Fatal("cloud not initialized by the first tick")
	}
	if g := cloud.Density(); g.W != 30 || g.H != 30 {
		t.Fatalf("cloud sized %dx%d, want 30x30", g.W, g.H)
	}
	if len(sys.Clouds()) != 1 {
		t.Fatalf("expected one active cloud, got %d", len(sys.Clouds()))
	}
}

func TestLateCloudInheritsWindowPlacement(t *testing.T) {
	sys, ref := newTestSystem(t, 120, 120, 2)
	sys.AddCompound(DefaultCompounds()[0])

	ref.X = 41
	if err := sys.Tick(); err != nil {
		t.Fatalf("tick: %v", err)
	}

	late := sys.AddCompound(DefaultCompounds()[1])
	if err := sys.Tick(); err != nil {
		t.Fatalf("tick: %v", err)
	}

	offsetX, offsetY, _ := sys.Window()
	lateX, lateY, _ := late.Window()
	if lateX != offsetX || lateY != offsetY {
		t.Fatalf("late cloud at (%d,%d), window at (%d,%d)", lateX, lateY, offsetX, offsetY)
	}
}

func TestSurfaceIDsAreSequential(t *testing.T) {
	sys, _ := newTestSystem(t, 30, 30, 2)
	a := sys.AddCompound(DefaultCompounds()[0])
	b := sys.AddCompound(DefaultCompounds()[1])

	if a.SurfaceID() != "cloud-surface-1" || b.SurfaceID() != "cloud-surface-2" {
		t.Fatalf("surface ids %q and %q, want cloud-surface-1 and cloud-surface-2",
			a.SurfaceID(), b.SurfaceID())
	}
}

type countingFactory struct {
	calls int
}

func (f *countingFactory) NewCloud(c Compound) *Cloud {
	f.calls++
	return &Cloud{compound: c}
}

func TestCloudFactoryOverride(t *testing.T) {
	sys, _ := newTestSystem(t, 30, 30, 2)
	factory := &countingFactory{}
	sys.SetCloudFactory(factory)

	sys.AddCompound(DefaultCompounds()[0])
	sys.AddCompound(DefaultCompounds()[1])

	if factory.calls != 2 {
		t.Fatalf("factory called %d times, want 2", factory.calls)
	}
}

type recordingSink struct {
	snaps []Snapshot
}

func (k *recordingSink) Present(snap Snapshot) { k.snaps = append(k.snaps, snap) }

func TestSinkReceivesEveryCloud(t *testing.T) {
	sys, ref := newTestSystem(t, 30, 30, 2)
	sink := &recordingSink{}
	sys.SetSink(sink)

	cloud := sys.AddCompound(DefaultCompounds()[0])
	sys.AddCompound(DefaultCompounds()[1])

	if err := sys.Tick(); err != nil {
		t.Fatalf("tick: %v", err)
	}
	cloud.AddDensity(300, ref.X, ref.Y)
	sink.snaps = sink.snaps[:0]
	if err := sys.Tick(); err != nil {
		t.Fatalf("tick: %v", err)
	}

	if len(sink.snaps) != 2 {
		t.Fatalf("sink saw %d snapshots, want 2", len(sink.snaps))
	}
	snap := sink.snaps[0]
	if snap.SurfaceID != "cloud-surface-1" {
		t.Fatalf("first snapshot surface %q", snap.SurfaceID)
	}
	if snap.Width != 30 || snap.Height != 30 || snap.GridSize != 2 {
		t.Fatalf("snapshot geometry %dx%d cell=%d", snap.Width, snap.Height, snap.GridSize)
	}
	if len(snap.Density) != 900 || len(snap.Pixels) != 4*900 {
		t.Fatalf("snapshot buffers sized %d and %d", len(snap.Density), len(snap.Pixels))
	}

	tint := snap.Compound.Tint
	for i, d := range snap.Density {
		alpha := int(d)
		if alpha > 255 {
			alpha = 255
		}
		if alpha < 0 {
			alpha = 0
		}
		p := snap.Pixels[4*i:]
		if p[0] != tint.R || p[1] != tint.G || p[2] != tint.B || p[3] != byte(alpha) {
			t.Fatalf("pixel %d = %v, want tint %v alpha %d", i, p[:4], tint, alpha)
		}
	}
}

func TestVelocityFieldDeterministic(t *testing.T) {
	a := NewVelocityField(16, 16, 5, 42)
	b := NewVelocityField(16, 16, 5, 42)
	c := NewVelocityField(16, 16, 5, 43)

	differs := false
	for i, v := range a.vx.Values() {
		if v != b.vx.Values()[i] || a.vy.Values()[i] != b.vy.Values()[i] {
			t.Fatalf("same seed produced different flow at linear index %d", i)
		}
		if v != c.vx.Values()[i] {
			differs = true
		}
	}
	if !differs {
		t.Fatal("different seeds produced an identical flow field")
	}
}

func TestResetIsDeterministic(t *testing.T) {
	run := func() []float64 {
		sys, ref := newTestSystem(t, 42, 42, 2)
		sys.cfg.Params.SeedBlobCount = 4
		sys.cfg.Params.SeedBlobAmount = 9000
		cloud := sys.AddCompound(DefaultCompounds()[0])
		sys.Reset(99)
		for i := 0; i < 20; i++ {
			ref.MoveBy(1, 0)
			if err := sys.Tick(); err != nil {
				t.Fatalf("tick %d: %v", i, err)
			}
		}
		out := make([]float64, 42*42)
		cloud.Density().CopyInto(out)
		return out
	}

	first := run()
	second := run()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("densities diverge at linear index %d: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestResetClearsWindowAndTicks(t *testing.T) {
	sys, ref := newTestSystem(t, 120, 120, 2)
	sys.AddCompound(DefaultCompounds()[0])

	ref.X = 1000
	for i := 0; i < 3; i++ {
		if err := sys.Tick(); err != nil {
			t.Fatalf("tick: %v", err)
		}
	}
	if offsetX, _, _ := sys.Window(); offsetX == 0 {
		t.Fatal("window never shifted, test precondition broken")
	}

	sys.Reset(0)
	if offsetX, offsetY, _ := sys.Window(); offsetX != 0 || offsetY != 0 {
		t.Fatalf("reset left window at (%d,%d)", offsetX, offsetY)
	}
	if sys.Ticks() != 0 {
		t.Fatalf("reset left tick counter at %d", sys.Ticks())
	}
}

func TestDisplayBufferTracksDensity(t *testing.T) {
	sys, ref := newTestSystem(t, 30, 30, 2)
	cloud := sys.AddCompound(DefaultCompounds()[0])
	if err := sys.Tick(); err != nil {
		t.Fatalf("tick: %v", err)
	}

	cloud.AddDensity(100000, ref.X, ref.Y)
	if err := sys.Tick(); err != nil {
		t.Fatalf("tick: %v", err)
	}

	max := uint8(0)
	for _, v := range sys.Cells() {
		if v > max {
			max = v
		}
	}
	if max == 0 {
		t.Fatal("display buffer stayed empty with a dense cloud present")
	}
}

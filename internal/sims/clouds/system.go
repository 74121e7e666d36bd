package clouds

import (
	"errors"
	"fmt"
	"math/rand"

	"cloudsim/internal/core"
	"cloudsim/internal/render"
)

// ErrNoReference reports that a tick was attempted without a tracked
// reference point attached. Simulating without one would silently run an
// invalid window, so the tick refuses to proceed instead.
var ErrNoReference = errors.New("clouds: no reference position provider attached")

// ReferenceProvider supplies the world-space position the window follows.
// It must be attached before the first tick.
type ReferenceProvider interface {
	ReferencePosition() (x, y float64)
}

// PointReference is a plain settable ReferenceProvider.
type PointReference struct {
	X, Y float64
}

// ReferencePosition returns the current point.
func (p *PointReference) ReferencePosition() (float64, float64) { return p.X, p.Y }

// MoveBy displaces the reference point by world-space deltas.
func (p *PointReference) MoveBy(dx, dy float64) {
	p.X += dx
	p.Y += dy
}

// Snapshot is the per-cloud state handed to a presentation sink after each
// tick. Density and Pixels are point-in-time copies owned by the system;
// they stay valid until the next tick overwrites them.
type Snapshot struct {
	SurfaceID string
	Compound  Compound

	Width    int
	Height   int
	GridSize int
	OffsetX  int
	OffsetY  int

	// Density is the post-diffusion/advection field, row-major.
	Density []float64
	// Pixels is the field encoded as RGBA: tint color, alpha = clamped
	// density.
	Pixels []byte
}

// Sink receives the authoritative post-tick state of every cloud, once per
// tick per cloud.
type Sink interface {
	Present(snap Snapshot)
}

// CloudFactory builds the per-compound state for a newly registered
// compound. Variant strategies can pre-shape the cloud; the system still
// sizes it to the shared window on its first tick.
type CloudFactory interface {
	NewCloud(c Compound) *Cloud
}

type defaultFactory struct{}

func (defaultFactory) NewCloud(c Compound) *Cloud { return &Cloud{compound: c} }

// System owns the shared window placement, the velocity field and all
// active compound clouds, and advances them once per tick.
type System struct {
	cfg Config

	width    int
	height   int
	gridSize int
	offsetX  int
	offsetY  int

	velocity *VelocityField

	clouds  []*Cloud
	pending []*Cloud

	factory CloudFactory
	ref     ReferenceProvider
	sink    Sink

	surfaceCounter int
	ticks          uint64

	display []uint8
}

// New returns a system with the given window dimensions and defaults for
// everything else.
func New(w, h int) (*System, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig validates the configuration and builds the system, including
// its static velocity field.
func NewWithConfig(cfg Config) (*System, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &System{
		cfg:      cfg,
		width:    cfg.Width,
		height:   cfg.Height,
		gridSize: cfg.GridSize,
		factory:  defaultFactory{},
		display:  make([]uint8, cfg.Width*cfg.Height),
	}
	s.velocity = NewVelocityField(s.width, s.height, cfg.Params.NoiseScale, cfg.Seed)
	return s, nil
}

// SetReference attaches the provider of the tracked world position.
func (s *System) SetReference(p ReferenceProvider) { s.ref = p }

// SetSink attaches the presentation collaborator. Nil disables hand-off.
func (s *System) SetSink(k Sink) { s.sink = k }

// SetCloudFactory replaces the strategy used to build newly registered
// clouds.
func (s *System) SetCloudFactory(f CloudFactory) {
	if f != nil {
		s.factory = f
	}
}

// AddCompound registers a compound type with the system. The returned cloud
// joins the simulation on the next tick; until then its arrays are not
// allocated.
func (s *System) AddCompound(c Compound) *Cloud {
	cl := s.factory.NewCloud(c)
	s.surfaceCounter++
	cl.surfaceID = fmt.Sprintf("cloud-surface-%d", s.surfaceCounter)
	s.pending = append(s.pending, cl)
	return cl
}

// Clouds returns the active (initialized) cloud instances.
func (s *System) Clouds() []*Cloud { return s.clouds }

// Window reports the shared window placement.
func (s *System) Window() (offsetX, offsetY, gridSize int) {
	return s.offsetX, s.offsetY, s.gridSize
}

// Ticks returns the number of completed ticks since construction or the
// last reset.
func (s *System) Ticks() uint64 { return s.ticks }

// Tick advances every cloud by one simulation step: recenter the shared
// window, initialize clouds registered since the last tick, walk stale
// clouds to the shared offset, diffuse, advect, and hand the results to the
// presentation sink.
func (s *System) Tick() error {
	if s.ref == nil {
		return ErrNoReference
	}
	refX, refY := s.ref.ReferencePosition()
	s.recenterWindow(refX, refY)

	if len(s.pending) > 0 {
		for _, c := range s.pending {
			c.initWindow(s.width, s.height, s.gridSize, s.offsetX, s.offsetY)
			s.clouds = append(s.clouds, c)
		}
		s.pending = s.pending[:0]
	}

	for _, c := range s.clouds {
		c.syncWindow(s.offsetX, s.offsetY, s.bandStrideX(), s.bandStrideY())
		diffuse(s.cfg.Params.DiffusionRate, c.previous, c.density)
		advect(s.velocity, c.previous, c.density)
	}

	s.rebuildDisplay()
	s.presentAll()
	s.ticks++
	return nil
}

// presentAll copies each cloud's post-tick state and hands it to the sink.
func (s *System) presentAll() {
	if s.sink == nil {
		return
	}
	total := s.width * s.height
	for _, c := range s.clouds {
		if len(c.present) != total {
			c.present = make([]float64, total)
			c.pix = make([]byte, 4*total)
		}
		c.density.CopyInto(c.present)
		render.FillDensityRGBA(c.pix, c.present, c.compound.Tint)
		s.sink.Present(Snapshot{
			SurfaceID: c.surfaceID,
			Compound:  c.compound,
			Width:     s.width,
			Height:    s.height,
			GridSize:  s.gridSize,
			OffsetX:   c.offsetX,
			OffsetY:   c.offsetY,
			Density:   c.present,
			Pixels:    c.pix,
		})
	}
}

// Name returns the simulation identifier.
func (s *System) Name() string { return "clouds" }

// Size reports the window dimensions in cells.
func (s *System) Size() core.Size { return core.Size{W: s.width, H: s.height} }

// Cells exposes the composite display buffer (summed density, clamped to a
// byte per cell).
func (s *System) Cells() []uint8 { return s.display }

// Step advances one tick for the core.Sim contract. It panics when no
// reference provider is attached; embedders that want an error instead
// should call Tick directly.
func (s *System) Step() {
	if err := s.Tick(); err != nil {
		panic(err)
	}
}

// Reset recenters the window at the origin, rebuilds the velocity field for
// the given seed, initializes any pending clouds and deterministically seeds
// each cloud with a few density blobs so there is visible state to simulate.
// A zero seed falls back to the configured seed.
func (s *System) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = s.cfg.Seed
	}

	s.offsetX = 0
	s.offsetY = 0
	s.ticks = 0
	s.velocity = NewVelocityField(s.width, s.height, s.cfg.Params.NoiseScale, effective)

	if len(s.pending) > 0 {
		for _, c := range s.pending {
			c.initWindow(s.width, s.height, s.gridSize, s.offsetX, s.offsetY)
			s.clouds = append(s.clouds, c)
		}
		s.pending = s.pending[:0]
	}

	rng := rand.New(rand.NewSource(effective))
	for _, c := range s.clouds {
		c.offsetX = 0
		c.offsetY = 0
		c.density.Clear()
		c.previous.Clear()
		s.seedBlobs(c, rng)
	}

	s.rebuildDisplay()
}

// seedBlobs deposits the configured number of density spikes at interior
// cells. Diffusion and advection spread them out over the following ticks.
func (s *System) seedBlobs(c *Cloud, rng *rand.Rand) {
	count := s.cfg.Params.SeedBlobCount
	amount := s.cfg.Params.SeedBlobAmount
	if count <= 0 || amount <= 0 || s.width < 5 || s.height < 5 {
		return
	}
	for i := 0; i < count; i++ {
		x := 2 + rng.Intn(s.width-4)
		y := 2 + rng.Intn(s.height-4)
		c.density.Add(x, y, amount)
	}
}

// WindVectorAt samples the velocity field at fractional cell coordinates,
// clamped into the window. Used by the debug overlay.
func (s *System) WindVectorAt(x, y float64) (float64, float64) {
	cx := int(x)
	cy := int(y)
	if cx < 0 {
		cx = 0
	}
	if cx >= s.width {
		cx = s.width - 1
	}
	if cy < 0 {
		cy = 0
	}
	if cy >= s.height {
		cy = s.height - 1
	}
	return s.velocity.At(cx, cy)
}

// TrackedPosition reports the current reference point, when attached.
func (s *System) TrackedPosition() (x, y float64, ok bool) {
	if s.ref == nil {
		return 0, 0, false
	}
	x, y = s.ref.ReferencePosition()
	return x, y, true
}

// Stats exposes live figures for the debug overlay.
func (s *System) Stats() []core.StatLine {
	lines := []core.StatLine{
		{Label: "tick", Value: fmt.Sprintf("%d", s.ticks)},
		{Label: "window", Value: fmt.Sprintf("(%d, %d) cell=%d", s.offsetX, s.offsetY, s.gridSize)},
	}
	if x, y, ok := s.TrackedPosition(); ok {
		lines = append(lines, core.StatLine{Label: "reference", Value: fmt.Sprintf("(%.1f, %.1f)", x, y)})
	}
	for _, c := range s.clouds {
		lines = append(lines, core.StatLine{
			Label: c.compound.Name,
			Value: fmt.Sprintf("%.0f", c.Total()),
		})
	}
	return lines
}

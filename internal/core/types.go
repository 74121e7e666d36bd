package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a grid simulation must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// StatLine is a label/value pair exposed for debug overlays.
type StatLine struct {
	Label string
	Value string
}

// StatsProvider is implemented by sims that publish live figures for the
// debug overlay.
type StatsProvider interface {
	Stats() []StatLine
}

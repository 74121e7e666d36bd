package clouds

import "image/color"

// CompoundID identifies a chemical tracked by the simulation.
type CompoundID uint16

// Built-in compound identifiers.
const (
	CompoundGlucose CompoundID = iota + 1
	CompoundOxygen
	CompoundAmmonia
	CompoundCarbonDioxide
)

// Compound describes one diffusible chemical and the tint its cloud is
// rendered with. The tint is opaque to the simulation itself.
type Compound struct {
	ID   CompoundID
	Name string
	Tint color.NRGBA
}

// DefaultCompounds returns the built-in compound catalog.
func DefaultCompounds() []Compound {
	return []Compound{
		{ID: CompoundGlucose, Name: "glucose", Tint: color.NRGBA{R: 220, G: 170, B: 60, A: 255}},
		{ID: CompoundOxygen, Name: "oxygen", Tint: color.NRGBA{R: 90, G: 160, B: 240, A: 255}},
		{ID: CompoundAmmonia, Name: "ammonia", Tint: color.NRGBA{R: 170, G: 90, B: 220, A: 255}},
		{ID: CompoundCarbonDioxide, Name: "carbondioxide", Tint: color.NRGBA{R: 110, G: 200, B: 140, A: 255}},
	}
}

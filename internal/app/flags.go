package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Scale      int
	TPS        int
	Seed       int64
	Width      int
	Height     int
	ConfigFile string
}

// NewConfig returns a Config populated with sensible defaults. Zero width
// or height means "use the simulation's own default".
func NewConfig() *Config {
	return &Config{Scale: 4, TPS: 60, Seed: 1337}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Width, "w", c.Width, "window width in cells (0 = default)")
	fs.IntVar(&c.Height, "h", c.Height, "window height in cells (0 = default)")
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "optional YAML configuration file")
}

package app

import (
	"flag"

	"mapforge/internal/mapgen"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Map   mapgen.Config
	Scale int
	TPS   int

	// ErosionRate is the number of animated erosion rounds per second.
	ErosionRate int

	// ErosionRounds is how many rounds one press of the erosion key runs.
	ErosionRounds int

	HUDWidth int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Map:           mapgen.DefaultConfig(),
		Scale:         5,
		TPS:           60,
		ErosionRate:   4,
		ErosionRounds: 10,
		HUDWidth:      240,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	c.Map.Bind(fs)
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.ErosionRate, "erosion-rate", c.ErosionRate, "animated erosion rounds per second")
	fs.IntVar(&c.ErosionRounds, "erosion-rounds", c.ErosionRounds, "erosion rounds per key press")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "parameter panel width in pixels (0 hides it)")
}

package mapgen

import (
	"errors"
	"flag"
	"fmt"
	"strconv"

	"mapforge/internal/core"
	"mapforge/internal/terrain"
)

// ErrInvalidConfig wraps every configuration error reported by Validate.
var ErrInvalidConfig = errors.New("mapgen: invalid config")

// Config extends the terrain settings with the settlement and river passes.
type Config struct {
	terrain.Config

	Cities      int
	Territories int
	RiverLimit  float64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Config:      terrain.DefaultConfig(),
		Cities:      15,
		Territories: 5,
		RiverLimit:  0.01,
	}
}

// FromMap populates the config from a string map. Unknown keys are ignored and
// unparseable values keep their defaults.
func FromMap(m map[string]string) Config {
	c := DefaultConfig()
	c.Config = terrain.FromMap(m)
	if m == nil {
		return c
	}
	if v, ok := m["cities"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Cities = parsed
		}
	}
	if v, ok := m["territories"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Territories = parsed
		}
	}
	if v, ok := m["river_limit"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.RiverLimit = parsed
		}
	}
	return c
}

// Validate reports configuration errors before the pipeline runs.
func (c Config) Validate() error {
	if err := c.Config.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Cities < 0 || c.Territories < 0 {
		return fmt.Errorf("%w: negative city (%d) or territory (%d) count", ErrInvalidConfig, c.Cities, c.Territories)
	}
	if c.RiverLimit < 0 {
		return fmt.Errorf("%w: negative river limit %g", ErrInvalidConfig, c.RiverLimit)
	}
	return nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed")
	fs.StringVar(&c.Preset, "preset", c.Preset, fmt.Sprintf("base shape %v", terrain.PresetNames()))
	fs.IntVar(&c.Mountains, "mountains", c.Mountains, "number of mountain peaks")
	fs.IntVar(&c.RelaxPasses, "relax", c.RelaxPasses, "smoothing passes")
	fs.Float64Var(&c.ErosionAmount, "erosion", c.ErosionAmount, "height removed per erosion round (0 disables)")
	fs.IntVar(&c.ErosionIterations, "erosion-iterations", c.ErosionIterations, "erosion rounds")
	fs.Float64Var(&c.SeaLevelMin, "sea-level-min", c.SeaLevelMin, "lowest sea level quantile")
	fs.Float64Var(&c.SeaLevelMax, "sea-level-max", c.SeaLevelMax, "highest sea level quantile")
	fs.IntVar(&c.CoastIterations, "coast-iterations", c.CoastIterations, "coastline cleanup passes")
	fs.Float64Var(&c.BoundaryMargin, "margin", c.BoundaryMargin, "near-boundary margin fraction")
	fs.IntVar(&c.Cities, "cities", c.Cities, "number of cities to place")
	fs.IntVar(&c.Territories, "territories", c.Territories, "number of regional capitals")
	fs.Float64Var(&c.RiverLimit, "river-limit", c.RiverLimit, "flux threshold for rivers")
}

// Parameters returns a display snapshot of the configuration.
func (c Config) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		c.Config.Parameters(),
		{
			Name: "Settlements",
			Params: []core.Parameter{
				core.IntParam("cities", "Cities", c.Cities),
				core.IntParam("territories", "Territories", c.Territories),
				core.FloatParam("river_limit", "River limit", c.RiverLimit),
			},
		},
	}}
}

package terrain

import (
	"fmt"
	"strconv"

	"mapforge/internal/core"
)

// Config controls how a height field is generated.
type Config struct {
	Width  int
	Height int

	Seed   int64
	Preset string

	Mountains   int
	RelaxPasses int

	ErosionAmount     float64
	ErosionIterations int

	// Sea level is drawn uniformly from [SeaLevelMin, SeaLevelMax] as a
	// quantile of the height distribution.
	SeaLevelMin float64
	SeaLevelMax float64

	CoastIterations int

	// BoundaryMargin is the symmetric near-boundary fraction shared by
	// contours, rivers, city scoring and borders.
	BoundaryMargin float64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:             128,
		Height:            128,
		Seed:              1337,
		Preset:            "coast",
		Mountains:         50,
		RelaxPasses:       10,
		ErosionAmount:     0.05,
		ErosionIterations: 5,
		SeaLevelMin:       0.2,
		SeaLevelMax:       0.6,
		CoastIterations:   3,
		BoundaryMargin:    core.DefaultBoundaryMargin,
	}
}

// Extent returns the configured grid dimensions.
func (c Config) Extent() core.Extent { return core.Extent{W: c.Width, H: c.Height} }

// Validate reports configuration errors before any work is done.
func (c Config) Validate() error {
	if !c.Extent().Valid() {
		return fmt.Errorf("terrain: %w: got %dx%d", core.ErrInvalidExtent, c.Width, c.Height)
	}
	if _, ok := Presets()[c.Preset]; !ok {
		return fmt.Errorf("terrain: unknown preset %q", c.Preset)
	}
	if c.SeaLevelMin < 0 || c.SeaLevelMax > 1 || c.SeaLevelMin > c.SeaLevelMax {
		return fmt.Errorf("terrain: sea level range [%g, %g] must lie within [0, 1]", c.SeaLevelMin, c.SeaLevelMax)
	}
	if c.BoundaryMargin <= 0 || c.BoundaryMargin >= 0.5 {
		return fmt.Errorf("terrain: boundary margin %g must lie in (0, 0.5)", c.BoundaryMargin)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["preset"]; ok && v != "" {
		c.Preset = v
	}
	if v, ok := cfg["mountains"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Mountains = parsed
		}
	}
	if v, ok := cfg["relax"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.RelaxPasses = parsed
		}
	}
	if v, ok := cfg["erosion"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.ErosionAmount = parsed
		}
	}
	if v, ok := cfg["erosion_iterations"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.ErosionIterations = parsed
		}
	}
	if v, ok := cfg["sea_level_min"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.SeaLevelMin = parsed
		}
	}
	if v, ok := cfg["sea_level_max"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.SeaLevelMax = parsed
		}
	}
	if c.SeaLevelMax < c.SeaLevelMin {
		c.SeaLevelMax = c.SeaLevelMin
	}
	if v, ok := cfg["coast_iterations"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.CoastIterations = parsed
		}
	}
	if v, ok := cfg["margin"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 && parsed < 0.5 {
			c.BoundaryMargin = parsed
		}
	}
	return c
}

// Parameters returns a display snapshot of the configuration.
func (c Config) Parameters() core.ParameterGroup {
	return core.ParameterGroup{
		Name: "Terrain",
		Params: []core.Parameter{
			core.IntParam("w", "Width", c.Width),
			core.IntParam("h", "Height", c.Height),
			core.Int64Param("seed", "Seed", c.Seed),
			core.StringParam("preset", "Preset", c.Preset),
			core.IntParam("mountains", "Mountains", c.Mountains),
			core.IntParam("relax", "Relax passes", c.RelaxPasses),
			core.FloatParam("erosion", "Erosion amount", c.ErosionAmount),
			core.IntParam("erosion_iterations", "Erosion iterations", c.ErosionIterations),
			core.FloatParam("sea_level_min", "Sea level min", c.SeaLevelMin),
			core.FloatParam("sea_level_max", "Sea level max", c.SeaLevelMax),
			core.IntParam("coast_iterations", "Coast iterations", c.CoastIterations),
			core.FloatParam("margin", "Boundary margin", c.BoundaryMargin),
		},
	}
}

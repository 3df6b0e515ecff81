package terrain

import (
	"fmt"

	"mapforge/internal/core"
	pcore "mapforge/pkg/core"
)

// Generate builds a finished height field: the preset's base shape is relaxed,
// sharpened, eroded, cut at sea level and given a cleaned coastline. All
// randomness is drawn from rng.
func Generate(cfg Config, rng *pcore.RNG) (*HeightField, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	topo, err := core.NewTopology(cfg.Extent())
	if err != nil {
		return nil, err
	}
	base, err := presets[cfg.Preset](topo, cfg, rng)
	if err != nil {
		return nil, fmt.Errorf("terrain: preset %q: %w", cfg.Preset, err)
	}
	return Finish(base, cfg, rng), nil
}

// Finish runs the shared post-processing passes over a base shape.
func Finish(h *HeightField, cfg Config, rng *pcore.RNG) *HeightField {
	h = RelaxN(h, cfg.RelaxPasses)
	h = Peaky(h)
	if cfg.ErosionAmount > 0 && cfg.ErosionIterations > 0 {
		h = DoErosion(h, cfg.ErosionAmount, cfg.ErosionIterations)
	}
	h = SetSeaLevel(h, rng.Uniform(cfg.SeaLevelMin, cfg.SeaLevelMax))
	return CleanCoast(h, cfg.CoastIterations)
}

package terrain

import (
	"sort"

	"mapforge/internal/core"
	pcore "mapforge/pkg/core"
)

// Preset builds the raw base shape of a map before the shared smoothing,
// erosion and sea level passes run.
type Preset func(topo *core.Topology, cfg Config, rng *pcore.RNG) (*HeightField, error)

var presets = map[string]Preset{}

// Register adds a preset under the provided name.
func Register(name string, p Preset) {
	if name == "" || p == nil {
		return
	}
	presets[name] = p
}

// Presets exposes the registry of available presets.
func Presets() map[string]Preset {
	return presets
}

// PresetNames returns the registered preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// unitScale converts grid units to the unit square so preset weights stay
// comparable across grid sizes.
func unitScale(topo *core.Topology) float64 {
	ext := topo.Extent()
	return float64(max(ext.W, ext.H))
}

// coastPreset tilts the map in a random direction, lifts the centre and
// scatters mountains, producing a continent that runs into the sea on one side.
func coastPreset(topo *core.Topology, cfg Config, rng *pcore.RNG) (*HeightField, error) {
	s := unitScale(topo)
	return Add(
		Slope(topo, rng.RandomVector(4).Mul(1/s)),
		Cone(topo, -1/s),
		Mountains(topo, RandomPeaks(rng, topo, cfg.Mountains), 0),
	)
}

// islandPreset raises a central dome ringed by sea.
func islandPreset(topo *core.Topology, cfg Config, rng *pcore.RNG) (*HeightField, error) {
	s := unitScale(topo)
	return Add(
		Cone(topo, -2/s),
		Scale(Mountains(topo, RandomPeaks(rng, topo, cfg.Mountains), 0), 0.5),
	)
}

// noisePreset layers Perlin noise over a shallow dome.
func noisePreset(topo *core.Topology, cfg Config, rng *pcore.RNG) (*HeightField, error) {
	s := unitScale(topo)
	return Add(
		Noise(topo, cfg.Seed, s/6),
		Cone(topo, -1/s),
		Scale(Mountains(topo, RandomPeaks(rng, topo, cfg.Mountains/2), 0), 0.25),
	)
}

func init() {
	Register("coast", coastPreset)
	Register("island", islandPreset)
	Register("noise", noisePreset)
}

package terrain

import (
	"mapforge/internal/core"

	perlin "github.com/aquilax/go-perlin"
)

const (
	noiseAlpha  = 2
	noiseBeta   = 2
	noiseOctave = 3
)

// Noise samples 2D Perlin noise over the grid. scale is the feature size in
// cells; values fall roughly in [-1, 1].
func Noise(topo *core.Topology, seed int64, scale float64) *HeightField {
	if scale <= 0 {
		scale = 1
	}
	p := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctave, seed)
	out := New(topo)
	for i := range out.h {
		pos := topo.Position(i)
		out.h[i] = p.Noise2D(pos.X()/scale, pos.Y()/scale)
	}
	return out
}

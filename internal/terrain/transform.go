package terrain

import (
	"math"

	"mapforge/internal/core"
	pcore "mapforge/pkg/core"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Slope returns a tilted plane: height(p) = dot(p - centre, direction).
func Slope(topo *core.Topology, direction mgl64.Vec2) *HeightField {
	out := New(topo)
	c := topo.Center()
	for i := range out.h {
		out.h[i] = topo.Position(i).Sub(c).Dot(direction)
	}
	return out
}

// Cone returns height(p) = k * |p - centre|. Negative k yields a central peak.
func Cone(topo *core.Topology, k float64) *HeightField {
	out := New(topo)
	c := topo.Center()
	for i := range out.h {
		out.h[i] = k * topo.Position(i).Sub(c).Len()
	}
	return out
}

// DefaultMountainRadius returns the bump radius used when callers pass r <= 0.
func DefaultMountainRadius(topo *core.Topology) float64 {
	ext := topo.Extent()
	return 0.05 * float64(max(ext.W, ext.H))
}

// Mountains sums a squared gaussian bump of radius r around each peak.
func Mountains(topo *core.Topology, peaks []mgl64.Vec2, r float64) *HeightField {
	if r <= 0 {
		r = DefaultMountainRadius(topo)
	}
	out := New(topo)
	denom := 2 * r * r
	for i := range out.h {
		p := topo.Position(i)
		sum := 0.0
		for _, m := range peaks {
			d := p.Sub(m)
			e := math.Exp(-d.Dot(d) / denom)
			sum += e * e
		}
		out.h[i] = sum
	}
	return out
}

// RandomPeaks samples n peak positions uniformly over the grid.
func RandomPeaks(rng *pcore.RNG, topo *core.Topology, n int) []mgl64.Vec2 {
	ext := topo.Extent()
	peaks := make([]mgl64.Vec2, 0, n)
	for i := 0; i < n; i++ {
		x := rng.Uniform(0, float64(ext.W))
		y := rng.Uniform(0, float64(ext.H))
		peaks = append(peaks, mgl64.Vec2{x, y})
	}
	return peaks
}

// Add returns the elementwise sum of fields. All operands must share one topology.
func Add(fields ...*HeightField) (*HeightField, error) {
	if len(fields) == 0 {
		return nil, ErrNoFields
	}
	out := New(fields[0].topo)
	for _, f := range fields {
		if f.topo != out.topo {
			return nil, ErrTopologyMismatch
		}
		floats.Add(out.h, f.h)
	}
	return out, nil
}

// Scale multiplies every height by k.
func Scale(f *HeightField, k float64) *HeightField {
	out := f.Clone()
	floats.Scale(k, out.h)
	return out
}

// Normalize linearly rescales f onto [0, 1]. A constant field maps to zero.
func Normalize(f *HeightField) *HeightField {
	lo := floats.Min(f.h)
	hi := floats.Max(f.h)
	if hi-lo == 0 {
		return New(f.topo)
	}
	span := hi - lo
	return f.Map(func(v float64) float64 { return (v - lo) / span })
}

// Peaky normalizes f and takes the square root, sharpening summits.
func Peaky(f *HeightField) *HeightField {
	return Normalize(f).Map(math.Sqrt)
}

// Relax replaces each cell with at least three neighbours by the mean of its
// neighbour heights. Cells with fewer neighbours become zero.
func Relax(f *HeightField) *HeightField {
	return f.Transform(func(_ float64, _ mgl64.Vec2, nbh []float64) float64 {
		if len(nbh) < 3 {
			return 0
		}
		return stat.Mean(nbh, nil)
	})
}

// RelaxN applies Relax n times.
func RelaxN(f *HeightField, n int) *HeightField {
	for i := 0; i < n; i++ {
		f = Relax(f)
	}
	return f
}

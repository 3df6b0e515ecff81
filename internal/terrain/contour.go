package terrain

import (
	"mapforge/internal/core"
	"mapforge/internal/paths"

	"github.com/go-gl/mathgl/mgl64"
)

// EdgeSegment returns the cell-boundary segment separating adjacent cells a
// and b, where b is the east or south neighbour of a.
func EdgeSegment(topo *core.Topology, a, b int) paths.Segment {
	pa := topo.Position(a)
	pb := topo.Position(b)
	mid := pa.Add(pb).Mul(0.5)
	// perpendicular half-step along the shared edge
	d := pb.Sub(pa)
	half := mgl64.Vec2{-d.Y(), d.X()}.Mul(0.5)
	return paths.Segment{mid.Sub(half), mid.Add(half)}
}

// ForEachEdge calls fn once per internal grid edge, with b the east or south
// neighbour of a.
func ForEachEdge(topo *core.Topology, fn func(a, b int)) {
	for i := 0; i < topo.Len(); i++ {
		if e, ok := topo.Neighbor(i, core.East); ok {
			fn(i, e)
		}
		if s, ok := topo.Neighbor(i, core.South); ok {
			fn(i, s)
		}
	}
}

// ContourSegments returns the unmerged cell-boundary segments separating cells
// above level from cells at or below it, skipping cells near the boundary.
func ContourSegments(f *HeightField, level, margin float64) []paths.Segment {
	topo := f.topo
	var segs []paths.Segment
	ForEachEdge(topo, func(a, b int) {
		if topo.IsNearBoundary(a, margin) || topo.IsNearBoundary(b, margin) {
			return
		}
		ha, hb := f.h[a], f.h[b]
		if (ha > level && hb <= level) || (hb > level && ha <= level) {
			segs = append(segs, EdgeSegment(topo, a, b))
		}
	})
	return segs
}

// Contour traces the iso-line at level as merged paths. Level 0 yields the coastline.
func Contour(f *HeightField, level, margin float64) []paths.Path {
	return paths.Merge(ContourSegments(f, level, margin))
}

// Rivers links every land cell whose flux exceeds limit (scaled by the land
// fraction) to its downhill neighbour. Links into the sea stop halfway, at the
// coast. Results are merged and relaxed.
func Rivers(f *HeightField, limit, margin float64) []paths.Path {
	topo := f.topo
	dh := Downhill(f)
	flux := Flux(f)
	limit *= float64(f.LandCount()) / float64(len(f.h))

	var segs []paths.Segment
	for i, info := range dh {
		if topo.IsNearBoundary(i, margin) || info.Terminal() {
			continue
		}
		if flux.h[i] <= limit || f.h[i] <= 0 {
			continue
		}
		up := topo.Position(i)
		down := topo.Position(info.Downhill)
		if f.h[info.Downhill] <= 0 {
			down = up.Add(down).Mul(0.5)
		}
		segs = append(segs, paths.Segment{up, down})
	}
	return paths.RelaxAll(paths.Merge(segs))
}

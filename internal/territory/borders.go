package territory

import (
	"mapforge/internal/paths"
	"mapforge/internal/terrain"

	"github.com/go-gl/mathgl/mgl64"
)

// Borders traces the land boundaries between territories as relaxed paths.
// Edges touching the sea or the boundary band are skipped.
func Borders(f *terrain.HeightField, terr []int, margin float64) []paths.Path {
	topo := f.Topology()
	var segs []paths.Segment
	terrain.ForEachEdge(topo, func(a, b int) {
		if topo.IsNearBoundary(a, margin) || topo.IsNearBoundary(b, margin) {
			return
		}
		if !f.IsLand(a) || !f.IsLand(b) {
			return
		}
		if terr[a] != terr[b] {
			segs = append(segs, terrain.EdgeSegment(topo, a, b))
		}
	})
	return paths.RelaxAll(paths.Merge(segs))
}

// Center returns the centroid of the cells owned by city, optionally counting
// land only. A city owning nothing falls back to its own position.
func Center(f *terrain.HeightField, terr []int, city int, landOnly bool) mgl64.Vec2 {
	topo := f.Topology()
	var sum mgl64.Vec2
	n := 0
	for i, owner := range terr {
		if owner != city || (landOnly && !f.IsLand(i)) {
			continue
		}
		sum = sum.Add(topo.Position(i))
		n++
	}
	if n == 0 {
		return topo.Position(city)
	}
	return mgl64.Vec2{sum.X() / float64(n), sum.Y() / float64(n)}
}

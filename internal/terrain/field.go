// Package terrain implements height fields over a shared grid topology and the
// transforms, hydrology, erosion and coastline passes applied to them.
//
// Every operation is pure: it reads its input field and returns a freshly
// allocated one. Fields never own their topology; they hold a pointer to the
// immutable core.Topology they were built on.
package terrain

import (
	"errors"
	"fmt"

	"mapforge/internal/core"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrTopologyMismatch is returned when combining fields built on different grids.
var ErrTopologyMismatch = errors.New("terrain: fields do not share a topology")

// ErrNoFields is returned by Add when it is given nothing to sum.
var ErrNoFields = errors.New("terrain: no fields to combine")

// HeightField stores one height per grid cell in row-major order.
type HeightField struct {
	topo *core.Topology
	h    []float64
}

// New returns an all-zero field on topo.
func New(topo *core.Topology) *HeightField {
	return &HeightField{topo: topo, h: make([]float64, topo.Len())}
}

// Build constructs a topology for ext and returns an all-zero field on it.
func Build(ext core.Extent) (*HeightField, error) {
	topo, err := core.NewTopology(ext)
	if err != nil {
		return nil, err
	}
	return New(topo), nil
}

// FromValues wraps a copy of values as a field on topo.
func FromValues(topo *core.Topology, values []float64) (*HeightField, error) {
	if len(values) != topo.Len() {
		return nil, fmt.Errorf("terrain: %d values for a grid of %d cells", len(values), topo.Len())
	}
	return &HeightField{topo: topo, h: append([]float64(nil), values...)}, nil
}

// Topology returns the shared grid the field is defined on.
func (f *HeightField) Topology() *core.Topology { return f.topo }

// Len returns the number of cells.
func (f *HeightField) Len() int { return len(f.h) }

// HeightAt returns the height stored at index i.
func (f *HeightField) HeightAt(i int) float64 { return f.h[i] }

// HeightAtCoord returns the height stored at grid coordinate (x, y). It panics
// when the coordinate lies outside the grid.
func (f *HeightField) HeightAtCoord(x, y int) float64 {
	if !f.topo.InBounds(x, y) {
		panic(fmt.Sprintf("terrain: coordinate (%d, %d) outside %dx%d grid", x, y, f.topo.Extent().W, f.topo.Extent().H))
	}
	return f.h[f.topo.Index(x, y)]
}

// Values returns a copy of the heights.
func (f *HeightField) Values() []float64 { return append([]float64(nil), f.h...) }

// Clone returns an independent copy sharing the same topology.
func (f *HeightField) Clone() *HeightField {
	return &HeightField{topo: f.topo, h: append([]float64(nil), f.h...)}
}

// IsLand reports whether the cell at i lies above sea level.
func (f *HeightField) IsLand(i int) bool { return f.h[i] > 0 }

// CellFunc computes a new height from a cell's current height, its position
// and the heights of its neighbours in W, N, E, S order.
type CellFunc func(height float64, pos mgl64.Vec2, neighbours []float64) float64

// Transform applies fn to every cell and returns the resulting field.
func (f *HeightField) Transform(fn CellFunc) *HeightField {
	out := New(f.topo)
	nbh := make([]float64, 0, 4)
	for i, v := range f.h {
		nbh = nbh[:0]
		for _, n := range f.topo.Neighbors(i) {
			nbh = append(nbh, f.h[n])
		}
		out.h[i] = fn(v, f.topo.Position(i), nbh)
	}
	return out
}

// Map applies fn to every height.
func (f *HeightField) Map(fn func(float64) float64) *HeightField {
	out := New(f.topo)
	for i, v := range f.h {
		out.h[i] = fn(v)
	}
	return out
}

// LandCount returns the number of cells above sea level.
func (f *HeightField) LandCount() int {
	n := 0
	for _, v := range f.h {
		if v > 0 {
			n++
		}
	}
	return n
}

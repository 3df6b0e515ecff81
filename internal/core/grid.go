package core

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrInvalidExtent is returned when a grid is requested with a non-positive side.
var ErrInvalidExtent = errors.New("core: extent must have positive width and height")

// DefaultBoundaryMargin is the symmetric margin fraction used by IsNearBoundary
// when callers do not configure one. A cell is near the boundary when its
// offset from the grid centre exceeds margin*W horizontally or margin*H
// vertically.
const DefaultBoundaryMargin = 0.45

// Direction names one of the four compass neighbours of a grid point.
type Direction uint8

const (
	West Direction = iota
	North
	East
	South
)

// Directions lists the compass directions in neighbour order.
var Directions = [4]Direction{West, North, East, South}

var directionOffsets = [4][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 1}}

// Opposite returns the direction pointing back.
func (d Direction) Opposite() Direction { return (d + 2) % 4 }

func (d Direction) String() string {
	switch d {
	case West:
		return "W"
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	default:
		return fmt.Sprintf("Direction(%d)", d)
	}
}

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// Topology stores the points and 4-neighbour adjacency of a W*H grid in
// row-major order. It is immutable after construction and is shared by
// pointer between every field derived from it.
type Topology struct {
	ext Extent
	adj [][4]int
	nbs [][]int
	cx  float64
	cy  float64
}

// NewTopology builds the adjacency for the given extent.
func NewTopology(ext Extent) (*Topology, error) {
	if ext.W <= 0 || ext.H <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidExtent, ext.W, ext.H)
	}
	total := ext.W * ext.H
	t := &Topology{
		ext: ext,
		adj: make([][4]int, total),
		nbs: make([][]int, total),
		cx:  float64(ext.W-1) / 2,
		cy:  float64(ext.H-1) / 2,
	}
	for y := 0; y < ext.H; y++ {
		for x := 0; x < ext.W; x++ {
			idx := y*ext.W + x
			list := make([]int, 0, 4)
			for d, off := range directionOffsets {
				nx, ny := x+off[0], y+off[1]
				if nx < 0 || nx >= ext.W || ny < 0 || ny >= ext.H {
					t.adj[idx][d] = -1
					continue
				}
				n := ny*ext.W + nx
				t.adj[idx][d] = n
				list = append(list, n)
			}
			t.nbs[idx] = list
		}
	}
	return t, nil
}

// Extent reports the grid dimensions.
func (t *Topology) Extent() Extent { return t.ext }

// Len returns the number of grid points.
func (t *Topology) Len() int { return len(t.adj) }

// Index returns the linear slice index for coordinates (x, y).
func (t *Topology) Index(x, y int) int { return y*t.ext.W + x }

// InBounds reports whether (x, y) lies on the grid.
func (t *Topology) InBounds(x, y int) bool {
	return x >= 0 && x < t.ext.W && y >= 0 && y < t.ext.H
}

// Point returns the grid coordinate of index i.
func (t *Topology) Point(i int) Point {
	return Point{X: i % t.ext.W, Y: i / t.ext.W}
}

// Position returns the coordinate of index i as a vector.
func (t *Topology) Position(i int) mgl64.Vec2 {
	return mgl64.Vec2{float64(i % t.ext.W), float64(i / t.ext.W)}
}

// Center returns the geometric centre of the grid in point coordinates.
func (t *Topology) Center() mgl64.Vec2 { return mgl64.Vec2{t.cx, t.cy} }

// Points enumerates every grid point in index order.
func (t *Topology) Points() []Point {
	pts := make([]Point, t.Len())
	for i := range pts {
		pts[i] = t.Point(i)
	}
	return pts
}

// Neighbors returns the indices adjacent to i in W, N, E, S order, skipping
// directions that fall off the grid. The slice is shared and must not be modified.
func (t *Topology) Neighbors(i int) []int { return t.nbs[i] }

// Neighbor returns the index adjacent to i in direction d.
func (t *Topology) Neighbor(i int, d Direction) (int, bool) {
	n := t.adj[i][d]
	return n, n >= 0
}

// Degree returns the number of neighbours of i.
func (t *Topology) Degree(i int) int { return len(t.nbs[i]) }

// IsEdge reports whether i lies on the outer ring of the grid.
func (t *Topology) IsEdge(i int) bool { return len(t.nbs[i]) < 4 }

// IsNearBoundary reports whether i lies within the outer margin band. A
// non-positive margin selects DefaultBoundaryMargin.
func (t *Topology) IsNearBoundary(i int, margin float64) bool {
	if margin <= 0 {
		margin = DefaultBoundaryMargin
	}
	dx := float64(i%t.ext.W) - t.cx
	dy := float64(i/t.ext.W) - t.cy
	w := float64(t.ext.W)
	h := float64(t.ext.H)
	return dx < -margin*w || dx > margin*w || dy < -margin*h || dy > margin*h
}

// Distance returns the Euclidean distance between the points at a and b.
func (t *Topology) Distance(a, b int) float64 {
	return t.Position(a).Sub(t.Position(b)).Len()
}

package core

import (
	"errors"
	"testing"
	"time"
)

func TestNewTopologyRejectsInvalidExtent(t *testing.T) {
	for _, ext := range []Extent{{0, 4}, {4, 0}, {-1, 3}} {
		if _, err := NewTopology(ext); !errors.Is(err, ErrInvalidExtent) {
			t.Fatalf("extent %v: expected ErrInvalidExtent, got %v", ext, err)
		}
	}
}

func TestPointEnumeration(t *testing.T) {
	for _, ext := range []Extent{{1, 1}, {1, 7}, {5, 3}, {16, 9}} {
		topo, err := NewTopology(ext)
		if err != nil {
			t.Fatal(err)
		}
		pts := topo.Points()
		if len(pts) != ext.W*ext.H {
			t.Fatalf("%v: expected %d points, got %d", ext, ext.W*ext.H, len(pts))
		}
		seen := make(map[Point]bool, len(pts))
		for i, p := range pts {
			if seen[p] {
				t.Fatalf("%v: duplicate point %v", ext, p)
			}
			seen[p] = true
			idx := topo.Index(p.X, p.Y)
			if idx != i || idx < 0 || idx >= ext.W*ext.H {
				t.Fatalf("%v: point %v maps to index %d, enumerated at %d", ext, p, idx, i)
			}
		}
	}
}

func TestAdjacencySymmetric(t *testing.T) {
	topo, err := NewTopology(Extent{W: 6, H: 4})
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < topo.Len(); i++ {
		for _, d := range Directions {
			j, ok := topo.Neighbor(i, d)
			if !ok {
				continue
			}
			back, ok := topo.Neighbor(j, d.Opposite())
			if !ok || back != i {
				t.Fatalf("cell %d has %s->%d but %d has %s->%d (ok=%v)", i, d, j, j, d.Opposite(), back, ok)
			}
		}
	}
}

func TestEdgeAndDegree(t *testing.T) {
	topo, err := NewTopology(Extent{W: 3, H: 3})
	if err != nil {
		t.Fatal(err)
	}
	center := topo.Index(1, 1)
	if topo.IsEdge(center) || topo.Degree(center) != 4 {
		t.Fatalf("centre should be interior with degree 4, got %d", topo.Degree(center))
	}
	if got := topo.Degree(topo.Index(0, 0)); got != 2 {
		t.Fatalf("corner degree = %d, want 2", got)
	}
	if got := topo.Degree(topo.Index(1, 0)); got != 3 {
		t.Fatalf("border degree = %d, want 3", got)
	}
	want := []int{topo.Index(0, 1), topo.Index(1, 0), topo.Index(2, 1), topo.Index(1, 2)}
	got := topo.Neighbors(center)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("neighbour order = %v, want %v", got, want)
		}
	}
}

func TestIsNearBoundarySymmetric(t *testing.T) {
	topo, err := NewTopology(Extent{W: 100, H: 100})
	if err != nil {
		t.Fatal(err)
	}
	near := 0
	for x := 0; x < 100; x++ {
		if topo.IsNearBoundary(topo.Index(x, 50), DefaultBoundaryMargin) {
			near++
			if x > 4 && x < 95 {
				t.Fatalf("x=%d unexpectedly near boundary", x)
			}
		}
	}
	if near != 10 {
		t.Fatalf("expected five near-boundary cells on each side, got %d total", near)
	}
	if !topo.IsNearBoundary(topo.Index(50, 0), 0) {
		t.Fatal("non-positive margin should select the default margin")
	}
}

func TestFixedStepPacing(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }
	fs.Reset()

	if fs.ShouldStep() {
		t.Fatal("no time elapsed; step should not fire")
	}
	clock = clock.Add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("half an interval should not fire")
	}
	clock = clock.Add(60 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("a full interval should fire")
	}
}

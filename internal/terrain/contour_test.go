package terrain

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func discField(t *testing.T, size int, centre mgl64.Vec2, radius float64) *HeightField {
	t.Helper()
	topo := mustTopology(t, size, size)
	return New(topo).Transform(func(_ float64, pos mgl64.Vec2, _ []float64) float64 {
		if pos.Sub(centre).Len() <= radius {
			return 1
		}
		return -1
	})
}

func TestContourTracesClosedCoast(t *testing.T) {
	f := discField(t, 20, mgl64.Vec2{10, 10}, 4.5)
	segs := ContourSegments(f, 0, 0)
	if len(segs) == 0 {
		t.Fatal("expected coastline segments")
	}
	for _, s := range segs {
		if s[0].Sub(s[1]).Len() != 1 {
			t.Fatalf("segment %v is not a unit cell edge", s)
		}
	}
	coast := Contour(f, 0, 0)
	if len(coast) != 1 {
		t.Fatalf("expected one coastline, got %d", len(coast))
	}
	loop := coast[0]
	if loop[0] != loop[len(loop)-1] {
		t.Fatalf("coastline is not closed: %v .. %v", loop[0], loop[len(loop)-1])
	}
	if len(loop)-1 != len(segs) {
		t.Fatalf("coastline has %d edges, want %d", len(loop)-1, len(segs))
	}
}

func TestContourSkipsBoundaryBand(t *testing.T) {
	topo := mustTopology(t, 20, 20)
	// Land along the west edge only: the coast sits inside the margin band.
	f := New(topo).Transform(func(_ float64, pos mgl64.Vec2, _ []float64) float64 {
		if pos.X() == 0 {
			return 1
		}
		return -1
	})
	if segs := ContourSegments(f, 0, 0); len(segs) != 0 {
		t.Fatalf("expected no segments near the boundary, got %d", len(segs))
	}
}

func TestRiversRunToTheCoast(t *testing.T) {
	topo := mustTopology(t, 20, 20)
	f := New(topo).Transform(func(_ float64, pos mgl64.Vec2, _ []float64) float64 {
		return pos.X() - 5
	})
	rivers := Rivers(f, 0.01, 0)
	if len(rivers) != 18 {
		t.Fatalf("expected one river per interior row, got %d", len(rivers))
	}
	for _, r := range rivers {
		if len(r) < 2 {
			t.Fatalf("river too short: %v", r)
		}
		var mouth mgl64.Vec2
		switch {
		case r[0].X() == 5.5:
			mouth = r[0]
		case r[len(r)-1].X() == 5.5:
			mouth = r[len(r)-1]
		default:
			t.Fatalf("river %v does not end at the coast", r)
		}
		for _, p := range r {
			if p.Y() != mouth.Y() {
				t.Fatalf("river %v wanders off its row", r)
			}
		}
	}
}

func TestRiversNeedLand(t *testing.T) {
	topo := mustTopology(t, 10, 10)
	f := New(topo).Map(func(float64) float64 { return -1 })
	if got := Rivers(f, 0.01, 0); len(got) != 0 {
		t.Fatalf("expected no rivers on an ocean, got %d", len(got))
	}
}

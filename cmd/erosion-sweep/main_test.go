package main

import (
	"testing"

	"mapforge/internal/mapgen"
	"mapforge/internal/paths"

	"github.com/go-gl/mathgl/mgl64"
)

func TestKVList(t *testing.T) {
	var l kvList
	_ = l.Set("w=10")
	_ = l.Set("h=12")
	if l.String() != "w=10,h=12" {
		t.Fatalf("unexpected list %q", l.String())
	}
}

func TestTotalLength(t *testing.T) {
	ps := []paths.Path{
		{mgl64.Vec2{0, 0}, mgl64.Vec2{3, 4}},
		{mgl64.Vec2{1, 1}, mgl64.Vec2{1, 2}, mgl64.Vec2{2, 2}},
	}
	if got := totalLength(ps); got != 7 {
		t.Fatalf("total length = %f, want 7", got)
	}
}

func TestRunScenario(t *testing.T) {
	base := mapgen.FromMap(map[string]string{"w": "32", "h": "32", "mountains": "8", "relax": "3", "cities": "3"})
	res, err := runScenario(base, paramSet{amount: 0.05, iterations: 1, seed: 9})
	if err != nil {
		t.Fatal(err)
	}
	if res.landFrac <= 0 || res.landFrac >= 1 {
		t.Fatalf("unexpected land fraction %f", res.landFrac)
	}
	if res.params.seed != 9 {
		t.Fatalf("scenario lost its params: %+v", res.params)
	}
}

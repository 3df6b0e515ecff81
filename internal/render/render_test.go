package render

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"mapforge/internal/core"
	"mapforge/internal/mapgen"
	"mapforge/internal/terrain"
)

func TestHeightColorSeaAndLand(t *testing.T) {
	if got := HeightColor(-2, -2, 3); got != seaStops[len(seaStops)-1].col {
		t.Fatalf("deepest sea = %v", got)
	}
	if got := HeightColor(3, -2, 3); got != landStops[len(landStops)-1].col {
		t.Fatalf("highest peak = %v", got)
	}
	if got := HeightColor(0, 0, 1); got != seaStops[0].col {
		t.Fatalf("shoreline on a field without sea = %v", got)
	}
}

func TestRampInterpolates(t *testing.T) {
	stops := []colorStop{
		{0, color.RGBA{R: 0, A: 255}},
		{1, color.RGBA{R: 200, A: 255}},
	}
	if got := ramp(stops, 0.5); got.R != 100 {
		t.Fatalf("midpoint red = %d, want 100", got.R)
	}
	if got := ramp(stops, 7); got.R != 200 {
		t.Fatalf("clamped red = %d, want 200", got.R)
	}
}

func TestHeightImage(t *testing.T) {
	topo, err := core.NewTopology(core.Extent{W: 3, H: 2})
	if err != nil {
		t.Fatal(err)
	}
	f, err := terrain.FromValues(topo, []float64{-1, 0, 1, 2, -0.5, 0.5})
	if err != nil {
		t.Fatal(err)
	}
	img := HeightImage(f)
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Fatalf("unexpected bounds %v", b)
	}
	if got := img.RGBAAt(0, 0); got != HeightColor(-1, -1, 2) {
		t.Fatalf("pixel (0,0) = %v", got)
	}
	if got := img.RGBAAt(0, 1); got != HeightColor(2, -1, 2) {
		t.Fatalf("pixel (0,1) = %v", got)
	}
}

func testMap(t *testing.T) *mapgen.Map {
	t.Helper()
	cfg := mapgen.DefaultConfig()
	cfg.Width = 32
	cfg.Height = 32
	cfg.Mountains = 8
	cfg.RelaxPasses = 3
	cfg.ErosionIterations = 1
	cfg.Cities = 4
	cfg.Territories = 2
	m, err := mapgen.Generate(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func near(a, b color.RGBA) bool {
	d := func(x, y uint8) int {
		if x > y {
			return int(x - y)
		}
		return int(y - x)
	}
	return d(a.R, b.R) <= 2 && d(a.G, b.G) <= 2 && d(a.B, b.B) <= 2
}

func TestPreviewDrawsCities(t *testing.T) {
	m := testMap(t)
	opts := DefaultPreviewOptions()
	img := Preview(m, opts)
	if b := img.Bounds(); b.Dx() != 32*opts.Scale || b.Dy() != 32*opts.Scale {
		t.Fatalf("unexpected bounds %v", b)
	}
	capitals := map[int]bool{}
	for _, c := range m.Capitals() {
		capitals[c] = true
	}
	topo := m.Heights.Topology()
	for _, c := range m.Cities {
		x, y := toPixel(topo.Position(c), float64(opts.Scale))
		got := img.RGBAAt(int(x), int(y))
		want := CityColor
		if capitals[c] {
			want = CapitalColor
		}
		if !near(got, want) {
			t.Fatalf("city %d marker = %v, want %v", c, got, want)
		}
	}
}

func TestPreviewWithoutLayersIsRaster(t *testing.T) {
	m := testMap(t)
	img := Preview(m, PreviewOptions{Scale: 2})
	base := HeightImage(m.Heights)
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			if !near(img.RGBAAt(2*x+1, 2*y+1), base.RGBAAt(x, y)) {
				t.Fatalf("pixel block (%d,%d) differs from the raster", x, y)
			}
		}
	}
}

func TestSavePNG(t *testing.T) {
	m := testMap(t)
	path := filepath.Join(t.TempDir(), "map.png")
	if err := SavePNG(path, Preview(m, DefaultPreviewOptions())); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Fatal("empty png")
	}
}

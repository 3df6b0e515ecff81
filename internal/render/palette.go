package render

import (
	"image/color"
	"math"

	"golang.org/x/image/colornames"
)

type colorStop struct {
	t   float64
	col color.RGBA
}

var seaStops = []colorStop{
	{0.0, colornames.Lightskyblue},
	{0.5, colornames.Steelblue},
	{1.0, colornames.Midnightblue},
}

var landStops = []colorStop{
	{0.0, colornames.Palegoldenrod},
	{0.15, colornames.Yellowgreen},
	{0.45, colornames.Olivedrab},
	{0.75, colornames.Sienna},
	{1.0, colornames.Snow},
}

// Overlay colours for paths and markers.
var (
	CoastColor   = colornames.Black
	RiverColor   = colornames.Royalblue
	BorderColor  = colornames.Crimson
	CityColor    = colornames.White
	CapitalColor = colornames.Gold
	MarkerEdge   = colornames.Black
)

// HeightColor shades h. Sea cells are scaled by the deepest point lo and land
// cells by the highest point hi.
func HeightColor(h, lo, hi float64) color.RGBA {
	if h <= 0 {
		t := 0.0
		if lo < 0 {
			t = h / lo
		}
		return ramp(seaStops, t)
	}
	t := 1.0
	if hi > 0 {
		t = h / hi
	}
	return ramp(landStops, t)
}

func ramp(stops []colorStop, t float64) color.RGBA {
	t = clamp01(t)
	for i := 1; i < len(stops); i++ {
		curr := stops[i]
		if t <= curr.t {
			prev := stops[i-1]
			span := curr.t - prev.t
			var local float64
			if span > 0 {
				local = (t - prev.t) / span
			}
			return lerpRGBA(prev.col, curr.col, local)
		}
	}
	return stops[len(stops)-1].col
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

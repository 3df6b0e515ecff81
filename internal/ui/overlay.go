//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"mapforge/internal/mapgen"
	"mapforge/internal/paths"
	"mapforge/internal/render"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws the map's paths and city markers on top of the height view.
// Keys 1-4 toggle coasts, rivers, borders and cities.
type Overlay struct {
	m      *mapgen.Map
	scale  int
	layers render.Layers
	pixel  *ebiten.Image

	capitals map[int]bool
}

// NewOverlay constructs a new overlay instance with every layer visible.
func NewOverlay(scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	o := &Overlay{scale: scale, layers: render.AllLayers}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// SetMap replaces the map being annotated. A nil map hides the overlay.
func (o *Overlay) SetMap(m *mapgen.Map) {
	o.m = m
	o.capitals = make(map[int]bool)
	if m == nil {
		return
	}
	for _, c := range m.Capitals() {
		o.capitals[c] = true
	}
}

// Update toggles layers from keyboard input.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.layers.Coasts = !o.layers.Coasts
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.layers.Rivers = !o.layers.Rivers
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.layers.Borders = !o.layers.Borders
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit4) {
		o.layers.Cities = !o.layers.Cities
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.m == nil {
		return
	}
	s := float64(o.scale)
	if o.layers.Coasts {
		o.drawPaths(screen, o.m.Coasts, 0.35*s, render.CoastColor)
	}
	if o.layers.Rivers {
		o.drawPaths(screen, o.m.Rivers, 0.25*s, render.RiverColor)
	}
	if o.layers.Borders {
		o.drawPaths(screen, o.m.Borders, 0.3*s, render.BorderColor)
	}
	if o.layers.Cities {
		topo := o.m.Heights.Topology()
		for _, c := range o.m.Cities {
			x, y := o.toScreen(topo.Position(c))
			size, col := 1.2*s, render.CityColor
			if o.capitals[c] {
				size, col = 1.8*s, render.CapitalColor
			}
			o.drawPoint(screen, x, y, size+2, render.MarkerEdge)
			o.drawPoint(screen, x, y, size, col)
		}
	}
}

func (o *Overlay) toScreen(p mgl64.Vec2) (float64, float64) {
	s := float64(o.scale)
	return (p.X() + 0.5) * s, (p.Y() + 0.5) * s
}

func (o *Overlay) drawPaths(screen *ebiten.Image, ps []paths.Path, thickness float64, col color.RGBA) {
	for _, p := range ps {
		for i := 1; i < len(p); i++ {
			x1, y1 := o.toScreen(p[i-1])
			x2, y2 := o.toScreen(p[i])
			o.drawLine(screen, x1, y1, x2, y2, thickness, col)
		}
	}
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if o.pixel == nil || size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

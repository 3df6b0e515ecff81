// Package render turns generated maps into pixels: a height-shaded raster with
// coastlines, rivers, borders and city markers drawn over it.
package render

import (
	"image"
	"image/color"

	"mapforge/internal/mapgen"
	"mapforge/internal/paths"
	"mapforge/internal/terrain"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/llgcode/draw2d"
	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
)

// Layers selects what is drawn over the height raster.
type Layers struct {
	Coasts  bool
	Rivers  bool
	Borders bool
	Cities  bool
}

// AllLayers enables every overlay.
var AllLayers = Layers{Coasts: true, Rivers: true, Borders: true, Cities: true}

// PreviewOptions controls Preview output.
type PreviewOptions struct {
	// Scale is the number of pixels per grid cell.
	Scale  int
	Layers Layers
}

// DefaultPreviewOptions returns a 4x preview with every layer enabled.
func DefaultPreviewOptions() PreviewOptions {
	return PreviewOptions{Scale: 4, Layers: AllLayers}
}

// HeightImage renders one pixel per cell.
func HeightImage(f *terrain.HeightField) *image.RGBA {
	ext := f.Topology().Extent()
	img := image.NewRGBA(image.Rect(0, 0, ext.W, ext.H))
	fillHeightRGBA(img.Pix, f.Values())
	return img
}

// Preview renders m at opts.Scale pixels per cell.
func Preview(m *mapgen.Map, opts PreviewOptions) *image.RGBA {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	base := HeightImage(m.Heights)
	b := base.Bounds()
	img := transform.Resize(base, b.Dx()*scale, b.Dy()*scale, transform.NearestNeighbor)

	s := float64(scale)
	gc := draw2dimg.NewGraphicContext(img)
	gc.SetLineCap(draw2d.RoundCap)
	gc.SetLineJoin(draw2d.RoundJoin)

	if opts.Layers.Coasts {
		strokePaths(gc, m.Coasts, CoastColor, 1.5, s)
	}
	if opts.Layers.Rivers {
		strokePaths(gc, m.Rivers, RiverColor, 1, s)
	}
	if opts.Layers.Borders {
		gc.SetLineDash([]float64{2 * s, s}, 0)
		strokePaths(gc, m.Borders, BorderColor, 1.25, s)
		gc.SetLineDash(nil, 0)
	}
	if opts.Layers.Cities {
		drawCities(gc, m, s)
	}
	return img
}

// toPixel maps a grid coordinate to the centre of its scaled pixel block.
func toPixel(p mgl64.Vec2, s float64) (float64, float64) {
	return (p.X() + 0.5) * s, (p.Y() + 0.5) * s
}

func strokePaths(gc *draw2dimg.GraphicContext, ps []paths.Path, col color.Color, width, s float64) {
	gc.SetStrokeColor(col)
	gc.SetLineWidth(width * s / 2)
	for _, p := range ps {
		if len(p) < 2 {
			continue
		}
		gc.BeginPath()
		gc.MoveTo(toPixel(p[0], s))
		for _, pt := range p[1:] {
			gc.LineTo(toPixel(pt, s))
		}
		gc.Stroke()
	}
}

func drawCities(gc *draw2dimg.GraphicContext, m *mapgen.Map, s float64) {
	topo := m.Heights.Topology()
	capitals := make(map[int]bool)
	for _, c := range m.Capitals() {
		capitals[c] = true
	}
	gc.SetStrokeColor(MarkerEdge)
	gc.SetLineWidth(s / 4)
	for _, c := range m.Cities {
		r := 0.55 * s
		gc.SetFillColor(CityColor)
		if capitals[c] {
			r = 0.8 * s
			gc.SetFillColor(CapitalColor)
		}
		x, y := toPixel(topo.Position(c), s)
		gc.BeginPath()
		draw2dkit.Circle(gc, x, y, r)
		gc.FillStroke()
	}
}

// SavePNG writes img to path as a PNG file.
func SavePNG(path string, img image.Image) error {
	return imgio.Save(path, img, imgio.PNGEncoder())
}

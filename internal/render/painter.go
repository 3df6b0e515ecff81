//go:build ebiten

package render

import (
	"mapforge/internal/terrain"

	"github.com/hajimehoshi/ebiten/v2"
)

// HeightPainter keeps a single ebiten image in sync with a height field.
type HeightPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewHeightPainter allocates a painter for a grid of size w*h.
func NewHeightPainter(w, h int) *HeightPainter {
	hp := &HeightPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	hp.img = ebiten.NewImage(w, h)
	return hp
}

// Blit uploads the field into the painter image and draws it scaled.
func (hp *HeightPainter) Blit(dst *ebiten.Image, f *terrain.HeightField, scale int) {
	if f == nil || f.Len() != hp.w*hp.h {
		return
	}
	fillHeightRGBA(hp.buf, f.Values())
	hp.img.WritePixels(hp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(hp.img, op)
}

// Size returns the dimensions of the underlying image.
func (hp *HeightPainter) Size() (int, int) { return hp.w, hp.h }

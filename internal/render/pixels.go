package render

import "gonum.org/v1/gonum/floats"

// fillHeightRGBA shades heights into RGBA pixels in buf.
func fillHeightRGBA(buf []byte, heights []float64) {
	if len(heights) == 0 {
		return
	}
	lo := floats.Min(heights)
	hi := floats.Max(heights)
	for i, h := range heights {
		col := HeightColor(h, lo, hi)
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

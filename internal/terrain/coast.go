package terrain

import (
	"math"
	"slices"
)

// Quantile returns the q-quantile of values using linear interpolation between
// order statistics of a sorted copy. q is clamped to [0, 1]; values must not be empty.
func Quantile(values []float64, q float64) float64 {
	sorted := append([]float64(nil), values...)
	slices.Sort(sorted)
	q = math.Max(0, math.Min(1, q))
	pos := float64(len(sorted)-1) * q
	lo := int(math.Floor(pos))
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// SetSeaLevel shifts f so that a fraction q of the cells lies at or below zero.
func SetSeaLevel(f *HeightField, q float64) *HeightField {
	delta := Quantile(f.h, q)
	return f.Map(func(v float64) float64 { return v - delta })
}

// CleanCoast smooths the coastline. Each iteration first sinks degree-3 land
// cells that touch at most one other land cell, then raises degree-3 sea cells
// that touch at most one other sea cell, each to half the nearest-to-zero
// height of the opposite kind around them.
func CleanCoast(f *HeightField, iterations int) *HeightField {
	for it := 0; it < iterations; it++ {
		f = sinkLandSpurs(f)
		f = fillSeaInlets(f)
	}
	return f
}

func sinkLandSpurs(f *HeightField) *HeightField {
	out := f.Clone()
	for i, h := range f.h {
		nbs := f.topo.Neighbors(i)
		if h <= 0 || len(nbs) != 3 {
			continue
		}
		count := 0
		best := math.Inf(-1)
		for _, n := range nbs {
			if f.h[n] > 0 {
				count++
			} else if f.h[n] > best {
				best = f.h[n]
			}
		}
		if count > 1 {
			continue
		}
		out.h[i] = best / 2
	}
	return out
}

func fillSeaInlets(f *HeightField) *HeightField {
	out := f.Clone()
	for i, h := range f.h {
		nbs := f.topo.Neighbors(i)
		if h > 0 || len(nbs) != 3 {
			continue
		}
		count := 0
		best := math.Inf(1)
		for _, n := range nbs {
			if f.h[n] <= 0 {
				count++
			} else if f.h[n] < best {
				best = f.h[n]
			}
		}
		if count > 1 {
			continue
		}
		out.h[i] = best / 2
	}
	return out
}

package terrain

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	riverErosionWeight = 1000
	maxErosionRate     = 200
)

// ErosionRate combines river incision (sqrt(flux) * slope) with soil creep
// (slope squared), capped at 200.
func ErosionRate(f *HeightField) *HeightField {
	flux := Flux(f)
	slope := Gradient(f)
	out := New(f.topo)
	for i := range out.h {
		s := slope.h[i]
		river := math.Sqrt(flux.h[i]) * s
		creep := s * s
		out.h[i] = math.Min(riverErosionWeight*river+creep, maxErosionRate)
	}
	return out
}

// Erode lowers each cell in proportion to its erosion rate; the fastest
// eroding cell loses exactly amount. A field with no erosion is returned unchanged.
func Erode(f *HeightField, amount float64) *HeightField {
	er := ErosionRate(f)
	maxr := floats.Max(er.h)
	if maxr <= 0 {
		return f.Clone()
	}
	out := New(f.topo)
	for i, h := range f.h {
		out.h[i] = h - amount*(er.h[i]/maxr)
	}
	return out
}

// DoErosion fills sinks, then runs iterations rounds of erosion, refilling
// after each one so no closed depressions survive.
func DoErosion(f *HeightField, amount float64, iterations int) *HeightField {
	if iterations < 1 {
		iterations = 1
	}
	f = FillSinks(f, DefaultFillEpsilon)
	for i := 0; i < iterations; i++ {
		f = Erode(f, amount)
		f = FillSinks(f, DefaultFillEpsilon)
	}
	return f
}

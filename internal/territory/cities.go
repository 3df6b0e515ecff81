// Package territory places cities on a finished height field and grows
// regional territories outward from the first few of them.
package territory

import (
	"math"

	"mapforge/internal/terrain"
)

const (
	centreBias  = 0.01
	crowdFactor = 0.02
	tiny        = 1e-9
)

// CityScore rates every cell as a city site. Well-watered cells score high,
// cells towards the map edge and close to existing cities score lower. Sea,
// near-boundary and already occupied cells are excluded with -Inf.
func CityScore(f *terrain.HeightField, cities []int, margin float64) []float64 {
	topo := f.Topology()
	ext := topo.Extent()
	halfW := float64(ext.W) / 2
	halfH := float64(ext.H) / 2
	c := topo.Center()
	flux := terrain.Flux(f)
	taken := make(map[int]bool, len(cities))
	for _, city := range cities {
		taken[city] = true
	}

	score := make([]float64, f.Len())
	for i := range score {
		if taken[i] || !f.IsLand(i) || topo.IsNearBoundary(i, margin) {
			score[i] = math.Inf(-1)
			continue
		}
		d := topo.Position(i).Sub(c)
		s := math.Sqrt(flux.HeightAt(i))
		s += centreBias / (tiny + math.Abs(d.X()) - halfW)
		s += centreBias / (tiny + math.Abs(d.Y()) - halfH)
		for _, city := range cities {
			s -= crowdFactor / (topo.Distance(city, i) + tiny)
		}
		score[i] = s
	}
	return score
}

// PlaceCity appends the best scoring cell to a copy of cities. It reports
// false, leaving the list unchanged, when no cell is eligible.
func PlaceCity(f *terrain.HeightField, cities []int, margin float64) ([]int, bool) {
	score := CityScore(f, cities, margin)
	best := -1
	bestScore := math.Inf(-1)
	for i, s := range score {
		if s > bestScore {
			best = i
			bestScore = s
		}
	}
	if best < 0 {
		return cities, false
	}
	out := make([]int, len(cities), len(cities)+1)
	copy(out, cities)
	return append(out, best), true
}

// PlaceCities greedily places up to n more cities, rescoring after each one.
func PlaceCities(f *terrain.HeightField, cities []int, n int, margin float64) []int {
	for i := 0; i < n; i++ {
		next, ok := PlaceCity(f, cities, margin)
		if !ok {
			break
		}
		cities = next
	}
	return cities
}

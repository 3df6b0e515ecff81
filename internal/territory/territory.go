package territory

import (
	"errors"
	"math"

	"mapforge/internal/terrain"
)

// ErrNoCities is returned when a partition is requested without any capital.
var ErrNoCities = errors.New("territory: no capital cities")

const (
	uphillDamping  = 10
	seaMultiplier  = 100
	riverPenalty   = 100
	coastCrossCost = 1000
)

// travelCost prices a step from u to v. Climbing is damped, rivers and open
// sea are slow, and crossing the coastline costs a flat 1000.
func travelCost(f *terrain.HeightField, flux *terrain.HeightField, u, v int) float64 {
	if f.IsLand(u) != f.IsLand(v) {
		return coastCrossCost
	}
	horiz := f.Topology().Distance(u, v)
	vert := f.HeightAt(v) - f.HeightAt(u)
	if vert > 0 {
		vert /= uphillDamping
	}
	mult := 1 + 0.25*(vert/horiz)*(vert/horiz) + riverPenalty*math.Sqrt(flux.HeightAt(u))
	if !f.IsLand(u) {
		mult = seaMultiplier
	}
	return horiz * mult
}

// Partition assigns every cell to the cheapest-to-reach of the first nterrs
// cities. Each entry of the result holds the owning city's cell index.
// nterrs is clamped to len(cities).
func Partition(f *terrain.HeightField, cities []int, nterrs int) ([]int, error) {
	n := min(nterrs, len(cities))
	if n <= 0 {
		return nil, ErrNoCities
	}
	topo := f.Topology()
	flux := terrain.Flux(f)

	terr := make([]int, f.Len())
	for i := range terr {
		terr[i] = -1
	}
	q := &frontier{}
	for _, city := range cities[:n] {
		terr[city] = city
		for _, nb := range topo.Neighbors(city) {
			q.add(travelCost(f, flux, city, nb), city, nb)
		}
	}
	for q.Len() > 0 {
		c := q.next()
		if terr[c.cell] >= 0 {
			continue
		}
		terr[c.cell] = c.city
		for _, nb := range topo.Neighbors(c.cell) {
			if terr[nb] >= 0 {
				continue
			}
			q.add(c.cost+travelCost(f, flux, c.cell, nb), c.city, nb)
		}
	}
	return terr, nil
}

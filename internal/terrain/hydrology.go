package terrain

import (
	"math"
	"sort"

	"github.com/Travis-Britz/structures/stack"
	"gonum.org/v1/gonum/floats"
)

// DefaultFillEpsilon is the minimum drop enforced between a filled cell and the
// neighbour it drains into.
const DefaultFillEpsilon = 1e-5

// DownhillInfo describes where water leaves a cell.
//
// Downhill holds the lowest strictly-lower neighbour, or -1 when the cell has
// none; use Target to read it. Edge cells drain off the map: consumers treat
// them as terminal even when a lower neighbour exists.
type DownhillInfo struct {
	Edge           bool
	Sink           bool
	Downhill       int
	DownhillHeight float64
}

// Target returns the downhill neighbour if there is one.
func (d DownhillInfo) Target() (int, bool) { return d.Downhill, d.Downhill >= 0 }

// Terminal reports whether water stops at this cell.
func (d DownhillInfo) Terminal() bool { return d.Edge || d.Sink }

// Downhill computes the steepest-descent neighbour of every cell. Ties go to
// the lowest neighbour index.
func Downhill(f *HeightField) []DownhillInfo {
	topo := f.topo
	out := make([]DownhillInfo, len(f.h))
	for i, h := range f.h {
		best := -1
		bestH := h
		for _, n := range topo.Neighbors(i) {
			nh := f.h[n]
			if nh < bestH || (nh == bestH && best >= 0 && n < best) {
				best = n
				bestH = nh
			}
		}
		out[i] = DownhillInfo{
			Edge:           topo.IsEdge(i),
			Sink:           best < 0,
			Downhill:       best,
			DownhillHeight: bestH,
		}
	}
	return out
}

// Drain is where a cell's downhill chain terminates: either off the edge of
// the map or in the sink at index Sink.
type Drain struct {
	OffEdge bool
	Sink    int
}

// FindSinks follows each cell's downhill chain to its end. Chains form a
// forest, so every visited chain is resolved once and reused.
func FindSinks(f *HeightField) []Drain {
	dh := Downhill(f)
	out := make([]Drain, len(dh))
	done := make([]bool, len(dh))
	chain := &stack.Stack[int]{}

	for start := range dh {
		if done[start] {
			continue
		}
		var res Drain
		cur := start
		for {
			if done[cur] {
				res = out[cur]
				break
			}
			info := dh[cur]
			if info.Edge {
				res = Drain{OffEdge: true, Sink: -1}
				break
			}
			if info.Sink {
				res = Drain{Sink: cur}
				break
			}
			chain.Push(cur)
			cur = info.Downhill
		}
		out[cur] = res
		done[cur] = true
		for i, more := chain.Pop(); more; i, more = chain.Pop() {
			out[i] = res
			done[i] = true
		}
	}
	return out
}

// FillSinks raises closed depressions until every interior cell can drain to
// the map edge, keeping a drop of at least epsilon along each drainage path.
// Edge cells keep their height; interior cells start at +Inf and are lowered
// until a fixed point is reached. A non-positive epsilon selects
// DefaultFillEpsilon.
func FillSinks(f *HeightField, epsilon float64) *HeightField {
	if epsilon <= 0 {
		epsilon = DefaultFillEpsilon
	}
	topo := f.topo
	out := New(topo)
	for i, h := range f.h {
		if topo.IsEdge(i) {
			out.h[i] = h
		} else {
			out.h[i] = math.Inf(1)
		}
	}
	for {
		changed := false
		for i, h := range f.h {
			if out.h[i] == h {
				continue
			}
			for _, n := range topo.Neighbors(i) {
				oh := out.h[n] + epsilon
				if h >= oh {
					out.h[i] = h
					changed = true
					break
				}
				if out.h[i] > oh && oh > h {
					out.h[i] = oh
					changed = true
				}
			}
		}
		if !changed {
			return out
		}
	}
}

// Flux accumulates drainage: every cell starts with 1/N units of water and
// passes everything it holds to its downhill neighbour, highest cells first.
// Water stops at sinks and edge cells.
func Flux(f *HeightField) *HeightField {
	dh := Downhill(f)
	n := len(f.h)
	out := New(f.topo)
	idxs := make([]int, n)
	for i := range idxs {
		idxs[i] = i
		out.h[i] = 1 / float64(n)
	}
	sort.SliceStable(idxs, func(a, b int) bool { return f.h[idxs[a]] > f.h[idxs[b]] })
	for _, j := range idxs {
		if dh[j].Terminal() {
			continue
		}
		out.h[dh[j].Downhill] += out.h[j]
	}
	return out
}

// TerminalFlux sums the water that came to rest at sinks and edge cells. For a
// flux field produced by Flux on the same heights it equals 1.
func TerminalFlux(f, flux *HeightField) float64 {
	dh := Downhill(f)
	vals := make([]float64, 0, len(dh))
	for i, d := range dh {
		if d.Terminal() {
			vals = append(vals, flux.h[i])
		}
	}
	return floats.Sum(vals)
}

// Gradient estimates the slope magnitude at each cell from the plane through
// its west, north and east neighbours. Cells without four neighbours get 0.
func Gradient(f *HeightField) *HeightField {
	out := New(f.topo)
	for i := range f.h {
		gx, gy := planeGradient(f, i)
		out.h[i] = math.Hypot(gx, gy)
	}
	return out
}

func planeGradient(f *HeightField, i int) (float64, float64) {
	topo := f.topo
	nbs := topo.Neighbors(i)
	if len(nbs) != 4 {
		return 0, 0
	}
	p0 := topo.Position(nbs[0])
	p1 := topo.Position(nbs[1])
	p2 := topo.Position(nbs[2])

	x1 := p1.X() - p0.X()
	x2 := p2.X() - p0.X()
	y1 := p1.Y() - p0.Y()
	y2 := p2.Y() - p0.Y()

	det := x1*y2 - x2*y1
	h1 := f.h[nbs[1]] - f.h[nbs[0]]
	h2 := f.h[nbs[2]] - f.h[nbs[0]]

	return (y2*h1 - y1*h2) / det, (-x2*h1 + x1*h2) / det
}

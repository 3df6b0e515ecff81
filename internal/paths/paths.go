// Package paths rebuilds open polylines from unordered line segments.
package paths

import "github.com/go-gl/mathgl/mgl64"

// Path is an open polyline.
type Path []mgl64.Vec2

// Segment is a single line piece between two points.
type Segment [2]mgl64.Vec2

// Merge joins segments that share endpoints into paths.
//
// Segments are treated as edges of an undirected multigraph over their
// endpoints. A path is seeded with the first unused segment and grown at
// either end, but only through endpoints of degree exactly two; junctions of
// degree three or more end the path. When several segments could extend a
// path, the one earliest in the input wins, and the front end is tried before
// the back. Degenerate segments whose endpoints coincide become single-point
// paths.
func Merge(segs []Segment) []Path {
	degree := make(map[mgl64.Vec2]int, 2*len(segs))
	incident := make(map[mgl64.Vec2][]int, 2*len(segs))
	for i, s := range segs {
		if s[0] == s[1] {
			continue
		}
		degree[s[0]]++
		degree[s[1]]++
		incident[s[0]] = append(incident[s[0]], i)
		incident[s[1]] = append(incident[s[1]], i)
	}

	used := make([]bool, len(segs))
	var out []Path

	// next returns the earliest unused segment touching p, provided p is a
	// plain pass-through point.
	next := func(p mgl64.Vec2) int {
		if degree[p] != 2 {
			return -1
		}
		for _, i := range incident[p] {
			if !used[i] {
				return i
			}
		}
		return -1
	}

	for seed := range segs {
		if used[seed] {
			continue
		}
		used[seed] = true
		s := segs[seed]
		if s[0] == s[1] {
			out = append(out, Path{s[0]})
			continue
		}
		front := []mgl64.Vec2{s[0]}
		back := []mgl64.Vec2{s[1]}
		for {
			head := front[len(front)-1]
			tail := back[len(back)-1]
			fi := next(head)
			bi := next(tail)
			if fi < 0 && bi < 0 {
				break
			}
			if fi >= 0 && (bi < 0 || fi <= bi) {
				used[fi] = true
				front = append(front, other(segs[fi], head))
				continue
			}
			used[bi] = true
			back = append(back, other(segs[bi], tail))
		}
		path := make(Path, 0, len(front)+len(back))
		for i := len(front) - 1; i >= 0; i-- {
			path = append(path, front[i])
		}
		path = append(path, back...)
		out = append(out, path)
	}
	return out
}

func other(s Segment, p mgl64.Vec2) mgl64.Vec2 {
	if s[0] == p {
		return s[1]
	}
	return s[0]
}

// Relax smooths the interior of path with a 1/4, 1/2, 1/4 kernel. Endpoints
// are kept in place.
func Relax(path Path) Path {
	out := make(Path, len(path))
	copy(out, path)
	for i := 1; i < len(path)-1; i++ {
		out[i] = path[i-1].Mul(0.25).Add(path[i].Mul(0.5)).Add(path[i+1].Mul(0.25))
	}
	return out
}

// RelaxAll applies Relax to every path.
func RelaxAll(ps []Path) []Path {
	out := make([]Path, len(ps))
	for i, p := range ps {
		out[i] = Relax(p)
	}
	return out
}

// Length returns the total polyline length.
func (p Path) Length() float64 {
	total := 0.0
	for i := 1; i < len(p); i++ {
		total += p[i].Sub(p[i-1]).Len()
	}
	return total
}

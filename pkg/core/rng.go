package core

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
// It also carries the cached second deviate of the polar Box–Muller transform,
// so two generators seeded alike always produce identical normal sequences.
type RNG struct {
	r *rand.Rand

	spare    float64
	hasSpare bool
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a uniform value in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// Uniform returns a uniform value in [lo, hi).
func (r *RNG) Uniform(lo, hi float64) float64 {
	return lo + r.r.Float64()*(hi-lo)
}

// IntN returns a uniform int in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Normal returns a standard normal deviate. Samples are produced in pairs; the
// second one is kept on the generator and returned by the next call.
func (r *RNG) Normal() float64 {
	if r.hasSpare {
		r.hasSpare = false
		return r.spare
	}
	var x1, x2, w float64
	w = 2
	for w >= 1 || w == 0 {
		x1 = r.Uniform(-1, 1)
		x2 = r.Uniform(-1, 1)
		w = x1*x1 + x2*x2
	}
	w = math.Sqrt(-2 * math.Log(w) / w)
	r.spare = x2 * w
	r.hasSpare = true
	return x1 * w
}

// RandomVector returns a vector whose components are normal deviates scaled by scale.
func (r *RNG) RandomVector(scale float64) mgl64.Vec2 {
	x := scale * r.Normal()
	y := scale * r.Normal()
	return mgl64.Vec2{x, y}
}

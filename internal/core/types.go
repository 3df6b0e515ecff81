package core

// Extent describes the dimensions of a generation grid.
type Extent struct {
	W int
	H int
}

// Area returns the number of cells covered by the extent.
func (e Extent) Area() int { return e.W * e.H }

// Valid reports whether both sides are positive.
func (e Extent) Valid() bool { return e.W > 0 && e.H > 0 }

package motion

import "math/rand"

// Dot is the demo particle payload: a point with velocity and an age in
// steps.
type Dot struct {
	X, Y   float64
	VX, VY float64
	Age    int
}

// Random returns a dot placed uniformly inside the given bounds with a small
// random velocity.
func Random(rng *rand.Rand, width, height float64) Dot {
	return Dot{
		X:  rng.Float64() * width,
		Y:  rng.Float64() * height,
		VX: rng.Float64()*2 - 1,
		VY: rng.Float64()*2 - 1,
	}
}

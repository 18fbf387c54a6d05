package fractal

import (
	"math"
	"math/cmplx"
)

const (
	// DefaultIterations is the per-point iteration budget.
	DefaultIterations = 170

	// MaxEscape is the largest escape value a sample can carry.
	MaxEscape = 255

	escapeRadius = 2.0
	// Width of one escape band in units of |z|.
	bandWidth    = 0.007
)

// Escape iterates z = z² + c from z = 0 and returns the escape value of c.
//
// A point that leaves the radius-2 disc gets 1 + min(floor(mind/0.007), 254)
// where mind is the smallest |z| seen before it left. A point that stays
// inside for the whole budget gets 0.
func Escape(c complex128, iterations int) int {
	var z complex128
	mind := escapeRadius

	for i := 0; i < iterations; i++ {
		z = z*z + c
		d := cmplx.Abs(z)
		if d >= escapeRadius {
			band := math.Floor(mind / bandWidth)
			if band > MaxEscape-1 {
				band = MaxEscape - 1
			}
			return int(band) + 1
		}
		mind = math.Min(d, mind)
	}

	return 0
}

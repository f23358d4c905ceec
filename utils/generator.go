package utils

import "math/rand/v2"

// RandomInRange returns a pseudo-random integer in [min, max]. Safe for
// concurrent use.
func RandomInRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + rand.IntN(max-min+1)
}

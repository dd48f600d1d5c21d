package utils

import "math/rand/v2"

// RandomFloat returns a uniform float64 in [0.0, 1.0) from the shared
// goroutine-safe source.
func RandomFloat() float64 {
	return rand.Float64()
}

package particle

import "math/rand"

// Random helpers shared by samplers and effects. The top-level math/rand
// functions are goroutine-safe, so these can run from scheduler callbacks.

// Random returns a random float64 in [min, max).
func Random(min, max float64) float64 {
	return min + rand.Float64()*(max-min)
}

// RandomMax returns a random float64 in [0, max).
func RandomMax(max float64) float64 {
	return Random(0, max)
}

// RandInt returns a random int in [min, max], inclusive on both ends.
func RandInt(min, max int) int {
	return min + rand.Intn(max-min+1)
}

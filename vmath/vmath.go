// Package vmath provides float64 3D vector math for particle placement.
// Coordinates follow Minecraft world space (Y up), angles are radians.
package vmath

import "math"

// TwoPi is a full turn. Samplers step theta from 0 to TwoPi for closed curves.
const TwoPi = 2 * math.Pi

// Radians converts degrees to radians
func Radians(deg float64) float64 {
	return deg * (math.Pi / 180)
}

// Degrees converts radians to degrees
func Degrees(rad float64) float64 {
	return rad * (180 / math.Pi)
}

// Clamp limits v to the [lo, hi] range
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates linearly between a and b, t=0 returns a, t=1 returns b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

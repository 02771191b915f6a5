package vmath

import "math"

// Axis rotations for offset vectors. The formulas match Bukkit's Vector
// rotation helpers so shapes carried over from Java plugins keep their
// orientation.

// RotateX rotates the vector around the X axis by angle radians
func (v Vec3) RotateX(angle float64) Vec3 {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Vec3{
		X: v.X,
		Y: v.Y*cos - v.Z*sin,
		Z: v.Y*sin + v.Z*cos,
	}
}

// RotateY rotates the vector around the Y axis by angle radians
func (v Vec3) RotateY(angle float64) Vec3 {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Vec3{
		X: v.X*cos + v.Z*sin,
		Y: v.Y,
		Z: -v.X*sin + v.Z*cos,
	}
}

// RotateZ rotates the vector around the Z axis by angle radians
func (v Vec3) RotateZ(angle float64) Vec3 {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Vec3{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
		Z: v.Z,
	}
}

// Rotate applies per-axis rotations in X, Y, Z order. The order matters for
// combined rotations and matches the display descriptor's spawn transform.
// A zero angles vector returns v unchanged without touching the FPU.
func (v Vec3) Rotate(angles Vec3) Vec3 {
	if angles.IsZero() {
		return v
	}
	return v.RotateX(angles.X).RotateY(angles.Y).RotateZ(angles.Z)
}

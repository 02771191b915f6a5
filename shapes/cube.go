package shapes

import (
	"github.com/lixenwraith/particlekit/particle"
	"github.com/lixenwraith/particlekit/vmath"
)

// Line spawns points from start toward end, stepping rate blocks per
// point. start and end are absolute world positions; the display's own
// origin is ignored but its rotation, kind and data apply.
func Line(start, end vmath.Vec3, rate float64, d *particle.Display) {
	dist := end.Sub(start)
	length := dist.Length()
	dir := dist.Normalize()

	c := d.Clone().At(start)
	for i := 0.0; i < length; i += rate {
		c.Spawn(dir.Mul(i))
	}
}

// cubeBounds orders two corners into the min and max corner of their box.
func cubeBounds(start, end vmath.Vec3) (min, max vmath.Vec3) {
	return start.Min(end), start.Max(end)
}

// onFace reports whether v is the first or last sample along one axis.
// Boundary detection tolerates the last step overshooting max.
func onFace(v, min, max, rate float64) bool {
	return v == min || v+rate > max
}

// FilledCube spawns a solid grid of points filling the box between two
// corners. The cube is anchored at the component-wise minimum corner
// regardless of argument order.
func FilledCube(start, end vmath.Vec3, rate float64, d *particle.Display) {
	min, max := cubeBounds(start, end)
	c := d.Clone().At(min)

	for x := min.X; x <= max.X; x += rate {
		for y := min.Y; y <= max.Y; y += rate {
			for z := min.Z; z <= max.Z; z += rate {
				c.Spawn(vmath.V3(x-min.X, y-min.Y, z-min.Z))
			}
		}
	}
}

// Cube spawns the six walls of the box between two corners, leaving the
// inside empty.
func Cube(start, end vmath.Vec3, rate float64, d *particle.Display) {
	min, max := cubeBounds(start, end)
	c := d.Clone().At(min)

	for x := min.X; x <= max.X; x += rate {
		for y := min.Y; y <= max.Y; y += rate {
			for z := min.Z; z <= max.Z; z += rate {
				if onFace(x, min.X, max.X, rate) || onFace(y, min.Y, max.Y, rate) || onFace(z, min.Z, max.Z, rate) {
					c.Spawn(vmath.V3(x-min.X, y-min.Y, z-min.Z))
				}
			}
		}
	}
}

// StructuredCube spawns only the twelve edges of the box between two
// corners: points where at least two axes sit on a face.
func StructuredCube(start, end vmath.Vec3, rate float64, d *particle.Display) {
	min, max := cubeBounds(start, end)
	c := d.Clone().At(min)

	for x := min.X; x <= max.X; x += rate {
		for y := min.Y; y <= max.Y; y += rate {
			for z := min.Z; z <= max.Z; z += rate {
				faces := 0
				if onFace(x, min.X, max.X, rate) {
					faces++
				}
				if onFace(y, min.Y, max.Y, rate) {
					faces++
				}
				if onFace(z, min.Z, max.Z, rate) {
					faces++
				}
				if faces >= 2 {
					c.Spawn(vmath.V3(x-min.X, y-min.Y, z-min.Z))
				}
			}
		}
	}
}

// cubeCorners returns the eight corners of a box in a fixed order, so
// corresponding corners of nested tesseracts can be connected.
func cubeCorners(min, max vmath.Vec3) [8]vmath.Vec3 {
	return [8]vmath.Vec3{
		{X: max.X, Y: max.Y, Z: max.Z},
		{X: min.X, Y: min.Y, Z: min.Z},
		{X: max.X, Y: min.Y, Z: max.Z},
		{X: min.X, Y: max.Y, Z: min.Z},
		{X: min.X, Y: min.Y, Z: max.Z},
		{X: max.X, Y: min.Y, Z: min.Z},
		{X: max.X, Y: max.Y, Z: min.Z},
		{X: min.X, Y: max.Y, Z: max.Z},
	}
}

// Hypercube spawns nested tesseract frames: cubes+1 structured cubes
// growing outward by sizeRate per layer, with corresponding corners of
// consecutive layers connected. cubes of 1 draws a 4D tesseract
// projection, higher values stack further frames.
func Hypercube(start, end vmath.Vec3, rate, sizeRate float64, cubes int, d *particle.Display) {
	var prev [8]vmath.Vec3
	havePrev := false

	for i := 0; i < cubes+1; i++ {
		grow := float64(i) * sizeRate
		layerStart := start.Sub(vmath.V3(grow, grow, grow))
		layerEnd := end.Add(vmath.V3(grow, grow, grow))

		min, max := cubeBounds(layerStart, layerEnd)
		corners := cubeCorners(min, max)

		if havePrev {
			for p := 0; p < 8; p++ {
				Line(prev[p], corners[p], rate, d)
			}
		}
		prev = corners
		havePrev = true

		StructuredCube(layerStart, layerEnd, rate, d)
	}
}

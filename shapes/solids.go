package shapes

import (
	"math"

	"github.com/lixenwraith/particlekit/particle"
	"github.com/lixenwraith/particlekit/vmath"
)

// Cone spawns a cone: a base circle with chords between opposite points
// and lines running up to the apex at the given height.
func Cone(height, radius, rate float64, d *particle.Display) {
	apex := d.Point(vmath.V3(0, height, 0))
	step := math.Pi / rate

	// Half a turn is enough since every point is mirrored.
	for theta := 0.0; theta <= math.Pi; theta += step {
		x := radius * math.Cos(theta)
		z := radius * math.Sin(theta)
		d.Spawn(vmath.V3(x, 0, z))
		d.Spawn(vmath.V3(-x, 0, -z))

		p1 := d.Point(vmath.V3(x, 0, z))
		p2 := d.Point(vmath.V3(-x, 0, -z))
		Line(p1, p2, 0.1, d)

		Line(apex, p1, 0.1, d)
		Line(apex, p2, 0.1, d)
	}
}

// Cylinder spawns a cylinder: two circles connected by chords across each
// cap and wall lines between the caps.
func Cylinder(height, radius, rate float64, d *particle.Display) {
	step := math.Pi / rate

	for theta := 0.0; theta <= math.Pi; theta += step {
		x := radius * math.Cos(theta)
		z := radius * math.Sin(theta)

		// Bottom circle.
		d.Spawn(vmath.V3(x, 0, z))
		d.Spawn(vmath.V3(-x, 0, -z))

		// Top circle.
		d.Spawn(vmath.V3(x, height, z))
		d.Spawn(vmath.V3(-x, height, -z))

		bottom1 := d.Point(vmath.V3(x, 0, z))
		bottom2 := d.Point(vmath.V3(-x, 0, -z))
		Line(bottom1, bottom2, 0.1, d)

		top1 := d.Point(vmath.V3(x, height, z))
		top2 := d.Point(vmath.V3(-x, height, -z))
		Line(top1, top2, 0.1, d)

		// Walls.
		Line(bottom1, top1, 0.1, d)
		Line(bottom2, top2, 0.1, d)
	}
}

// Ring spawns a torus lying in the XY plane. rate sets the number of
// tube circles around the ring, tubeRate the points per tube circle.
// A tubeRadius larger than radius widens the hole toward the middle.
func Ring(rate, tubeRate, radius, tubeRadius float64, d *particle.Display) {
	step := math.Pi / rate
	tubeStep := math.Pi / tubeRate

	for theta := 0.0; theta <= vmath.TwoPi; theta += step {
		cos := math.Cos(theta)
		sin := math.Sin(theta)

		for phi := 0.0; phi <= vmath.TwoPi; phi += tubeStep {
			finalRadius := radius + tubeRadius*math.Cos(phi)
			x := finalRadius * cos
			y := finalRadius * sin
			z := tubeRadius * math.Sin(phi)

			d.Spawn(vmath.V3(x, y, z))
		}
	}
}

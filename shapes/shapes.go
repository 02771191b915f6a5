// Package shapes contains the closed-form static samplers: each function
// walks a parametric curve and spawns one particle per computed point
// through a display descriptor.
//
// Unless a function documents otherwise, "rate" controls density as an
// angular step of pi/rate radians, so higher rates mean more points.
// Distance-stepped functions (Line, the cube family, the helix height
// loops) use rate directly as the step length instead.
//
// Samplers never mutate the caller's display: when a different anchor or
// rotation is needed they work on a clone.
package shapes

import (
	"math"

	"github.com/lixenwraith/particlekit/particle"
	"github.com/lixenwraith/particlekit/vmath"
)

// Circle spawns a full circle of the given radius in the XZ plane.
func Circle(radius, rate float64, d *particle.Display) {
	step := math.Pi / rate
	for theta := 0.0; theta <= vmath.TwoPi; theta += step {
		x := radius * math.Cos(theta)
		z := radius * math.Sin(theta)
		d.Spawn(vmath.V3(x, 0, z))
	}
}

// Ellipse spawns an ellipse in the XY plane, radius along X and
// otherRadius along Y.
func Ellipse(radius, otherRadius, rate float64, d *particle.Display) {
	step := math.Pi / rate
	for theta := 0.0; theta <= vmath.TwoPi; theta += step {
		x := radius * math.Cos(theta)
		y := otherRadius * math.Sin(theta)
		d.Spawn(vmath.V3(x, y, 0))
	}
}

// BlackSun spawns concentric circles around the display origin, the point
// density thinning toward the outer rings. radius is the base radius,
// radiusRate the ring spacing, rate the densest ring's rate and
// rateChange how much the rate drops per ring.
func BlackSun(radius, radiusRate, rate, rateChange float64, d *particle.Display) {
	j := 0.0
	for i := 10.0; i > 0; i -= radiusRate {
		j += rateChange
		Circle(radius+i, rate-j, d)
	}
}

// Crescent spawns a crescent moon: a 45..325 degree arc paired with a
// smaller shifted arc closing the opening toward +X.
func Crescent(radius, rate float64, d *particle.Display) {
	step := math.Pi / rate
	end := vmath.Radians(325)
	for theta := vmath.Radians(45); theta <= end; theta += step {
		x := math.Cos(theta)
		z := math.Sin(theta)
		d.Spawn(vmath.V3(radius*x, 0, radius*z))

		smaller := radius / 1.3
		d.Spawn(vmath.V3(smaller*x+0.8, 0, smaller*z))
	}
}

// Rainbow spawns seven stacked colored half-arcs in the violet-to-red
// order of particle.Rainbow. radius is the innermost arc, curve scales the
// arc height, layers repeats each color and compact is the spacing between
// consecutive arcs. The display supplies the origin; its particle kind is
// replaced by dust per color.
func Rainbow(radius, rate, curve, layers, compact float64, d *particle.Display) {
	secondRadius := radius * curve

	for i := 0; i < len(particle.Rainbow); i++ {
		colored := particle.PaintDust(d.World, d.Origin, particle.Rainbow[i], 1)

		for layer := 0.0; layer < layers; layer++ {
			step := math.Pi / (rate * float64(i+2))

			for theta := 0.0; theta <= math.Pi; theta += step {
				x := radius * math.Cos(theta)
				y := secondRadius * math.Sin(theta)
				colored.Spawn(vmath.V3(x, y, 0))
			}

			radius += compact
		}
	}
}

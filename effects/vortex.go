package effects

import (
	"math"

	"github.com/lixenwraith/particlekit/particle"
	"github.com/lixenwraith/particlekit/tick"
	"github.com/lixenwraith/particlekit/vmath"
)

// Vortex renders a galaxy-like vortex: points arms rotating around the
// display origin, each spawn streaming outward along its arm direction.
// rate is the angular speed (step pi/rate per tick). The particle speed
// on the display matters: speed 0 freezes the arms into static lines.
// Runs every tick until cancelled.
func Vortex(s tick.Scheduler, points int, rate float64, d *particle.Display) tick.Task {
	step := math.Pi / rate
	c := d.Clone().Directional()

	theta := 0.0
	return s.RunTimer(0, 1, func(tick.Task) {
		theta += step

		for i := 0; i < points; i++ {
			// Starting point of this arm on the unit circle.
			multiplier := vmath.TwoPi * float64(i) / float64(points)
			x := math.Cos(theta + multiplier)
			z := math.Sin(theta + multiplier)

			// Stream the particle outward along the arm.
			angle := math.Atan2(z, x)
			c.OffsetBy(vmath.V3(math.Cos(angle), 0, math.Sin(angle)))
			c.Spawn(vmath.V3(x, 0, z))
		}
	})
}

// Atomic renders rotating atom orbits: one point circling the origin,
// stamped once per orbit with the orbit plane fanned around the Z axis.
// rate is the angular step divisor. Runs every tick until cancelled.
func Atomic(s tick.Scheduler, orbits int, radius, rate float64, orbit *particle.Display) tick.Task {
	step := math.Pi / rate
	dist := math.Pi / float64(orbits)

	theta := 0.0
	return s.RunTimer(0, 1, func(tick.Task) {
		theta += step

		x := radius * math.Cos(theta)
		z := radius * math.Sin(theta)

		angle := 0.0
		for i := 0; i < orbits; i++ {
			tilted := orbit.Clone()
			tilted.SetRotation(vmath.V3(0, 0, angle))
			tilted.Spawn(vmath.V3(x, 0, z))
			angle += dist
		}
	})
}

package effects

import (
	"math"

	"github.com/lixenwraith/particlekit/particle"
	"github.com/lixenwraith/particlekit/tick"
	"github.com/lixenwraith/particlekit/vmath"
)

// The *Around effects wrap a caller-provided draw callback: each tick they
// translate or rotate the given displays, run fn, and restore what they
// moved. The displays passed here must be the same references fn draws
// with, otherwise the motion applies to nothing:
//
//	d := particle.New(w, particle.Flame, pos)
//	effects.MoveAround(s, 1, 0.1, 1.5, vmath.V3(1, 1, 1),
//		func() { shapes.Circle(1, 10, d) }, d)

// MoveAround oscillates the displays along the offset direction: the
// translation grows by rate per tick up to endRate times the offset, then
// shrinks back, forever. fn draws the shape at the translated position;
// origins are restored after each run. Runs every period ticks.
func MoveAround(s tick.Scheduler, period int64, rate, endRate float64, offset vmath.Vec3,
	fn func(), displays ...*particle.Display) tick.Task {
	multiplier := 0.0
	opposite := false

	return s.RunTimer(0, period, func(tick.Task) {
		if opposite {
			multiplier -= rate
		} else {
			multiplier += rate
		}

		v := offset.Mul(multiplier)
		for _, d := range displays {
			d.Origin = d.Origin.Add(v)
		}
		fn()
		for _, d := range displays {
			d.Origin = d.Origin.Sub(v)
		}

		if opposite {
			if multiplier <= 0 {
				opposite = false
			}
		} else {
			if multiplier >= endRate {
				opposite = true
			}
		}
	})
}

// RotateAround spins the displays' spawn rotation, rate degrees further
// per tick with the three axes phased 90/60/30 degrees apart and scaled
// by the offset components. fn draws with the rotation applied. Runs
// every period ticks.
func RotateAround(s tick.Scheduler, period int64, rate float64, offset vmath.Vec3,
	fn func(), displays ...*particle.Display) tick.Task {
	rotation := 180.0

	return s.RunTimer(0, period, func(tick.Task) {
		rotation += rate
		angles := vmath.V3(
			vmath.Radians((90+rotation)*offset.X),
			vmath.Radians((60+rotation)*offset.Y),
			vmath.Radians((30+rotation)*offset.Z),
		)

		for _, d := range displays {
			d.SetRotation(angles)
		}
		fn()
	})
}

// MoveRotatingAround swings the displays around their origin on a rotating
// arm: a fixed-length arm (offset times pi) is rotated further each tick
// and the displays are translated to its tip while fn draws, then moved
// back. Axes with a zero offset component do not rotate. Runs every
// period ticks.
func MoveRotatingAround(s tick.Scheduler, period int64, rate float64, offset vmath.Vec3,
	fn func(), displays ...*particle.Display) tick.Task {
	rotation := 180.0

	return s.RunTimer(0, period, func(tick.Task) {
		rotation += rate
		x := vmath.Radians(90 + rotation)
		y := vmath.Radians(60 + rotation)
		z := vmath.Radians(30 + rotation)

		arm := offset.Mul(math.Pi)
		if offset.X != 0 {
			arm = arm.RotateX(x)
		}
		if offset.Y != 0 {
			arm = arm.RotateY(y)
		}
		if offset.Z != 0 {
			arm = arm.RotateZ(z)
		}

		for _, d := range displays {
			d.Origin = d.Origin.Add(arm)
		}
		fn()
		for _, d := range displays {
			d.Origin = d.Origin.Sub(arm)
		}
	})
}

// Guard combines MoveRotatingAround and RotateAround: the displays orbit
// the origin on a rotating arm while their spawn rotation tracks the same
// angles, like a shield circling its owner. Runs every period ticks.
func Guard(s tick.Scheduler, period int64, rate float64, offset vmath.Vec3,
	fn func(), displays ...*particle.Display) tick.Task {
	rotation := 180.0

	return s.RunTimer(0, period, func(tick.Task) {
		rotation += rate
		x := vmath.Radians((90 + rotation) * offset.X)
		y := vmath.Radians((60 + rotation) * offset.Y)
		z := vmath.Radians((30 + rotation) * offset.Z)

		arm := offset.Mul(math.Pi).RotateX(x).RotateY(y).RotateZ(z)

		for _, d := range displays {
			d.SetRotation(vmath.V3(x, y, z))
			d.Origin = d.Origin.Add(arm)
		}
		fn()
		for _, d := range displays {
			d.Origin = d.Origin.Sub(arm)
		}
	})
}

package effects

import (
	"math"

	"github.com/lixenwraith/particlekit/particle"
	"github.com/lixenwraith/particlekit/shapes"
	"github.com/lixenwraith/particlekit/tick"
	"github.com/lixenwraith/particlekit/vmath"
)

// Spread fires animated spikes from start toward randomized points around
// end. Each tick draws rate spikes, each ending within plus or minus the
// offset components; the task cancels itself after amount ticks.
func Spread(s tick.Scheduler, amount, rate int, start, end, offset vmath.Vec3, d *particle.Display) tick.Task {
	count := amount
	return s.RunTimer(0, 1, func(task tick.Task) {
		count--

		for frame := rate; frame > 0; frame-- {
			jitter := vmath.V3(
				particle.Random(-offset.X, offset.X),
				particle.Random(-offset.Y, offset.Y),
				particle.Random(-offset.Z, offset.Z),
			)
			shapes.Line(start, end.Add(jitter), 0.1, d)
		}

		if count == 0 {
			task.Cancel()
		}
	})
}

// ExplosionWave renders an expanding ring wave with a damped sine height,
// so the wave climbs and settles as it spreads. rate sets the point
// density of the primary ring; secondary trails each primary point at a
// 1/64 turn offset. The task cancels itself once the wave has expanded
// past radius 20.
func ExplosionWave(s tick.Scheduler, rate float64, d, secondary *particle.Display) tick.Task {
	t := math.Pi / 4
	addition := math.Pi * 0.1

	return s.RunTimer(0, 1, func(task tick.Task) {
		t += addition

		for theta := 0.0; theta <= vmath.TwoPi; theta += math.Pi / rate {
			x := t * math.Cos(theta)
			y := 2*math.Exp(-0.1*t)*math.Sin(t) + 1.5
			z := t * math.Sin(theta)
			d.Spawn(vmath.V3(x, y, z))

			theta += math.Pi / 64
			x = t * math.Cos(theta)
			y = 2*math.Exp(-0.1*t)*math.Sin(t) + 1.5
			z = t * math.Sin(theta)
			secondary.Spawn(vmath.V3(x, y, z))
		}

		if t > 20 {
			task.Cancel()
		}
	})
}

// QuadSpiral renders four spiral arms converging inward and upward around
// the position reported by at, sampled once when the effect starts. The
// task runs every period ticks and cancels itself after repeat runs.
func QuadSpiral(s tick.Scheduler, at func() vmath.Vec3, repeat int, period int64, d *particle.Display) tick.Task {
	origin := at()

	times := repeat
	t := 0.0
	return s.RunTimer(0, period, func(task tick.Task) {
		t += math.Pi / 16

		for phi := 0.0; phi <= vmath.TwoPi; phi += math.Pi / 2 {
			radius := 0.3 * (4*math.Pi - t)
			x := radius * math.Cos(t+phi)
			y := 0.2 * t
			z := radius * math.Sin(t+phi)

			d.SpawnAt(origin.Add(vmath.V3(x, y, z)))
		}

		times--
		if times < 0 {
			task.Cancel()
		}
	})
}

// Starburst renders a layered explosion: two offset star polygons, an
// enclosing circle and a finale of spikes spraying upward from the
// origin. size shapes the explosion circle; 6 reads well. Returns the
// spike task, which cancels itself when the spray completes.
func Starburst(s tick.Scheduler, size float64, d *particle.Display) tick.Task {
	shapes.Polygon(10, 4, size, 0.02, 0.3, d)
	shapes.Polygon(10, 3, size/(size-1), 0.5, 0, d)
	shapes.Circle(size, 40, d)
	return Spread(s, 30, 2, d.Origin, d.Origin.Add(vmath.V3(0, 10, 0)), vmath.V3(5, 5, 5), d)
}

package shapes

import (
	"math"

	"github.com/lixenwraith/particlekit/particle"
	"github.com/lixenwraith/particlekit/vmath"
)

// Sphere spawns a sphere as a stack of latitude circles. Every point lies
// exactly radius away from the display origin.
func Sphere(radius, rate float64, d *particle.Display) {
	step := math.Pi / rate

	for phi := 0.0; phi <= math.Pi; phi += step {
		y := radius * math.Cos(phi)
		sinPhi := radius * math.Sin(phi)

		for theta := 0.0; theta <= vmath.TwoPi; theta += step {
			x := math.Cos(theta) * sinPhi
			z := math.Sin(theta) * sinPhi
			d.Spawn(vmath.V3(x, y, z))
		}
	}
}

// SpikeSphere spawns spikes growing outward from points on a sphere
// surface. The sphere points themselves are not rendered, only the spike
// lines. chance gates spike growth: 0 grows every spike, otherwise each
// candidate grows with probability 1/(chance+1). Spike length is random
// in [minRandom, maxRandom) times the radius.
func SpikeSphere(radius, rate float64, chance int, minRandom, maxRandom float64, d *particle.Display) {
	step := math.Pi / rate

	for phi := 0.0; phi <= math.Pi; phi += step {
		y := radius * math.Cos(phi)
		sinPhi := radius * math.Sin(phi)

		for theta := 0.0; theta <= vmath.TwoPi; theta += step {
			x := math.Cos(theta) * sinPhi
			z := math.Sin(theta) * sinPhi

			if chance == 0 || particle.RandInt(0, chance) == 1 {
				start := d.Point(vmath.V3(x, y, z))
				// Spikes grow along the center-to-surface direction so
				// they never point inward.
				dir := start.Sub(d.Origin).Mul(particle.Random(minRandom, maxRandom))
				Line(start, start.Add(dir), 0.1, d)
			}
		}
	}
}

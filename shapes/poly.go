package shapes

import (
	"math"

	"github.com/lixenwraith/particlekit/particle"
	"github.com/lixenwraith/particlekit/vmath"
)

// Polygon spawns a connected 2D polygon in the XZ plane. points vertices
// sit on a circle of the given size; each vertex connects to the vertex
// connection steps ahead, so points=5 connection=2 draws a star. rate is
// the parameter step along each edge and extend stretches the edges past
// their end vertex.
func Polygon(points, connection int, size, rate, extend float64, d *particle.Display) {
	for point := 0; point < points; point++ {
		angle := vmath.Radians(360 / float64(points) * float64(point))
		nextAngle := vmath.Radians(360 / float64(points) * float64(point+connection))

		x := math.Cos(angle) * size
		z := math.Sin(angle) * size

		x2 := math.Cos(nextAngle) * size
		z2 := math.Sin(nextAngle) * size

		deltaX := x2 - x
		deltaZ := z2 - z

		for pos := 0.0; pos < 1+extend; pos += rate {
			d.Spawn(vmath.V3(x+deltaX*pos, 0, z+deltaZ*pos))
		}
	}
}

// Pentagram spawns a five-pointed star inside an enclosing circle. star
// draws the pentagram edges, circle the surrounding ring.
func Pentagram(size, rate, extend float64, star, circle *particle.Display) {
	Polygon(5, 2, size, rate, extend, star)
	Circle(size+0.5, rate*1000, circle)
}

// Atom spawns an atom: orbits tilted circles evenly fanned around the Z
// axis plus a nucleus sphere at a third of the orbit radius. The orbit
// display's rotation is applied per orbit on a clone; the caller's
// displays stay untouched.
func Atom(orbits int, radius, rate float64, orbit, nucleus *particle.Display) {
	dist := math.Pi / float64(orbits)

	angle := 0.0
	for i := 0; i < orbits; i++ {
		tilted := orbit.Clone()
		tilted.SetRotation(vmath.V3(0, 0, angle))
		Circle(radius, rate, tilted)
		angle += dist
	}

	Sphere(radius/3, rate/2, nucleus)
}

// Heart spawns a heart-shaped curve standing in the YZ plane. cut sets
// the count of oval pairs and cutAngle their compression; 2 and 4 draw
// the classic heart. depth deepens the inner spike and compressHeight
// squashes the curve along Y.
func Heart(cut, cutAngle, depth, compressHeight, rate float64, d *particle.Display) {
	for theta := 0.0; theta <= vmath.TwoPi; theta += math.Pi / rate {
		phi := theta / cut
		cos := math.Cos(phi)
		sin := math.Sin(phi)
		omega := math.Pow(
			math.Abs(math.Sin(2*cutAngle*phi))+depth*math.Abs(math.Sin(cutAngle*phi)),
			1/compressHeight,
		)

		y := omega * (sin + cos)
		z := omega * (cos - sin)

		d.Spawn(vmath.V3(0, y, z))
	}
}

// WaveFunction spawns a randomized wave surface: horizontal circles
// rippling forward with heights re-randomized each full period. extend
// stretches the surface horizontally, heightRange bounds the random wave
// heights and size scales the terrain in full turns.
func WaveFunction(extend, heightRange, size, rate float64, d *particle.Display) {
	height := heightRange / 2
	increase := true
	randomizer := particle.Random(heightRange/2, heightRange)
	step := math.Pi / rate
	size *= vmath.TwoPi

	for x := 0.0; x <= size; x += step {
		xx := extend * x
		y1 := math.Sin(x)

		// A sin of exactly 1 marks a completed period; flip the wave
		// direction and roll a new height.
		if y1 == 1 {
			increase = !increase
			if increase {
				randomizer = particle.Random(heightRange/2, heightRange)
			} else {
				randomizer = particle.Random(-heightRange, -heightRange/2)
			}
		}
		height += randomizer

		for z := 0.0; z <= size; z += step {
			y2 := math.Cos(z)
			yy := height * y1 * y2
			zz := extend * z

			d.Spawn(vmath.V3(xx, yy, zz))
		}
	}
}

package shapes

import (
	"math"

	"github.com/lixenwraith/particlekit/particle"
	"github.com/lixenwraith/particlekit/vmath"
)

// Helix spawns a single helix strand climbing from the display origin.
// rate is the vertical step between points, extension the winding
// frequency and height the total climb.
func Helix(radius, rate, extension float64, height int, d *particle.Display) {
	for y := 0.0; y <= float64(height); y += rate {
		x := radius * math.Cos(extension*y)
		z := radius * math.Sin(extension*y)
		d.Spawn(vmath.V3(x, y, z))
	}
}

// DoubleHelix spawns two helix strands winding opposite each other at the
// same height.
func DoubleHelix(radius, rate, extension float64, height int, d *particle.Display) {
	for y := 0.0; y <= float64(height); y += rate {
		x := radius * math.Sin(extension*y)
		z := radius * math.Cos(extension*y)

		d.Spawn(vmath.V3(x, y, z))
		d.Spawn(vmath.V3(-x, y, -z))
	}
}

// AscendingHelix spawns a five-block-tall double strand whose radius
// tapers with height until the strands meet at the top. rate is the
// vertical step; 0.05 keeps the strands continuous.
func AscendingHelix(radius, rate float64, d *particle.Display) {
	for y := 5.0; y >= 0; y -= rate {
		radius = y / 3
		y2 := 5 - y
		x := radius * math.Cos(3*y)
		z := radius * math.Sin(3*y)

		d.Spawn(vmath.V3(x, y2, z))
		d.Spawn(vmath.V3(-x, y2, -z))
	}
}

// DNA spawns a double helix with crossbars between the strands every
// bondEvery points, like hydrogen bonds between nucleotides. strand
// renders the two backbones, bonds renders the crossbars.
func DNA(radius, rate, extension float64, height, bondEvery int, strand, bonds *particle.Display) {
	sinceBond := 0

	for y := 0.0; y <= float64(height); y += rate {
		sinceBond++

		x := radius * math.Cos(extension*y)
		z := radius * math.Sin(extension*y)

		// The two nucleotides face each other at the same height.
		nucleotide1 := strand.Point(vmath.V3(x, y, z))
		strand.Spawn(vmath.V3(x, y, z))
		nucleotide2 := strand.Point(vmath.V3(-x, y, -z))
		strand.Spawn(vmath.V3(-x, y, -z))

		if sinceBond >= bondEvery {
			sinceBond = 0
			Line(nucleotide1, nucleotide2, rate*2, bonds)
		}
	}
}

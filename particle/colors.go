package particle

import (
	"image/color"
	"math/rand"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Rainbow holds the seven rainbow colors in violet-to-red order. Shape
// samplers that layer colored arcs walk this slice directly.
var Rainbow = [7]color.NRGBA{
	{R: 128, G: 0, B: 128, A: 255}, // violet
	{R: 75, G: 0, B: 130, A: 255},  // indigo
	{R: 0, G: 0, B: 255, A: 255},   // blue
	{R: 0, G: 255, B: 0, A: 255},   // green
	{R: 255, G: 255, B: 0, A: 255}, // yellow
	{R: 255, G: 140, B: 0, A: 255}, // orange
	{R: 255, G: 0, B: 0, A: 255},   // red
}

// RandomColor returns a uniformly random opaque RGB color.
func RandomColor() color.NRGBA {
	return color.NRGBA{
		R: uint8(rand.Intn(256)),
		G: uint8(rand.Intn(256)),
		B: uint8(rand.Intn(256)),
		A: 255,
	}
}

// RandomDust returns dust data with a random color and a random size
// between 50 and 100.
func RandomDust() DustData {
	return DustData{
		Color: RandomColor(),
		Size:  float64(RandInt(5, 10)) / 0.1,
	}
}

// Colorful bridges an NRGBA into a go-colorful color for blending work.
func Colorful(c color.NRGBA) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// fromColorful clamps and converts back to NRGBA. Blends in HSV space can
// step slightly outside the RGB cube.
func fromColorful(c colorful.Color) color.NRGBA {
	c = c.Clamped()
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// Gradient returns steps colors blended from one color to another in HSV
// space. steps below 2 returns just the endpoints trimmed to length.
func Gradient(from, to color.NRGBA, steps int) []color.NRGBA {
	if steps <= 0 {
		return nil
	}
	if steps == 1 {
		return []color.NRGBA{from}
	}
	a, b := Colorful(from), Colorful(to)
	out := make([]color.NRGBA, steps)
	for i := range out {
		t := float64(i) / float64(steps-1)
		out[i] = fromColorful(a.BlendHsv(b, t))
	}
	return out
}

// RainbowAt returns a smoothly blended rainbow color for t in [0, 1],
// t=0 violet, t=1 red. Values outside the range are clamped.
func RainbowAt(t float64) color.NRGBA {
	if t <= 0 {
		return Rainbow[0]
	}
	if t >= 1 {
		return Rainbow[len(Rainbow)-1]
	}
	scaled := t * float64(len(Rainbow)-1)
	i := int(scaled)
	frac := scaled - float64(i)
	return fromColorful(Colorful(Rainbow[i]).BlendHsv(Colorful(Rainbow[i+1]), frac))
}

// Package render turns images and text into colored point grids that
// spawn as dust particles. Rendering is two ordinary library steps,
// decode-and-resize then pixel mapping; the only particle-specific part
// is the center-origin offset grid handed to the display calls.
package render

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/anthonynsimon/bild/transform"

	"github.com/lixenwraith/particlekit/vmath"

	// Standard and extended decoders registered for LoadImage.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Pixel is one rendered point: an offset from the image center and its
// color. The offset grid lies in the XY plane at Z zero; rotate through
// the display if the image should face elsewhere.
type Pixel struct {
	Offset vmath.Vec3
	Color  color.NRGBA
}

// LoadImage reads and decodes an image file. PNG, JPEG, GIF, BMP, TIFF
// and WebP decode out of the box.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("render: open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("render: decode %s: %w", path, err)
	}
	return img, nil
}

// ScaleImage resizes an image into a width-by-height bounding box,
// preserving aspect ratio: the longer image side maps to the matching
// box side and the other shrinks to fit.
func ScaleImage(img image.Image, width, height int) image.Image {
	b := img.Bounds()
	finalW, finalH := width, height

	if b.Dx() > b.Dy() {
		finalH = width * b.Dy() / b.Dx()
	} else {
		finalW = height * b.Dx() / b.Dy()
	}
	if finalW < 1 {
		finalW = 1
	}
	if finalH < 1 {
		finalH = 1
	}

	return transform.Resize(img, finalW, finalH, transform.Linear)
}

package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// ErrEmptyText is returned when asked to rasterize an empty string.
var ErrEmptyText = errors.New("render: empty text")

// TextOptions configures text rasterization. The zero value renders
// white 32pt text in the bundled Go Regular font at 72 DPI.
type TextOptions struct {
	// Face overrides the font face. When nil, a face is built from the
	// bundled Go Regular at SizePt and DPI.
	Face   font.Face
	SizePt float64
	DPI    float64
	Color  color.NRGBA
}

func (o TextOptions) withDefaults() TextOptions {
	if o.SizePt == 0 {
		o.SizePt = 32
	}
	if o.DPI == 0 {
		o.DPI = 72
	}
	if o.Color == (color.NRGBA{}) {
		o.Color = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return o
}

// TextImage rasterizes a string into a tightly bounded transparent image:
// measure first, then draw on the baseline. The result feeds straight
// into ImagePixels.
func TextImage(str string, opts TextOptions) (image.Image, error) {
	if str == "" {
		return nil, ErrEmptyText
	}
	opts = opts.withDefaults()

	face := opts.Face
	if face == nil {
		ft, err := opentype.Parse(goregular.TTF)
		if err != nil {
			return nil, fmt.Errorf("render: parse bundled font: %w", err)
		}
		face, err = opentype.NewFace(ft, &opentype.FaceOptions{
			Size:    opts.SizePt,
			DPI:     opts.DPI,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("render: build font face: %w", err)
		}
	}

	drawer := &font.Drawer{Face: face}
	width := drawer.MeasureString(str).Ceil()
	if width < 1 {
		return nil, ErrEmptyText
	}
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	height := ascent + metrics.Descent.Ceil()

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	drawer.Dst = img
	drawer.Src = image.NewUniform(opts.Color)
	drawer.Dot = fixed.P(0, ascent)
	drawer.DrawString(str)

	return img, nil
}

// TextPixels rasterizes a string and maps it to a center-origin pixel
// grid in one call.
func TextPixels(str string, opts TextOptions, compact float64) ([]Pixel, error) {
	img, err := TextImage(str, opts)
	if err != nil {
		return nil, err
	}
	return ImagePixels(img, compact), nil
}

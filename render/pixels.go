package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/lixenwraith/particlekit"
	"github.com/lixenwraith/particlekit/particle"
	"github.com/lixenwraith/particlekit/tick"
	"github.com/lixenwraith/particlekit/vmath"
)

// ImagePixels maps an image onto a center-origin pixel grid: each opaque
// pixel becomes one Pixel offset by its distance from the image center,
// scaled by compact blocks per pixel. Values between 0.1 and 0.5 read
// well; 0.2 is a good start. Fully transparent pixels are skipped.
// Pixels come out in row-major order, so spawn order is stable across
// frames.
func ImagePixels(img image.Image, compact float64) []Pixel {
	b := img.Bounds()
	centerX := float64(b.Dx()) / 2
	centerY := float64(b.Dy()) / 2

	pixels := make([]Pixel, 0, b.Dx()*b.Dy())
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			if c.A == 0 {
				continue
			}
			pixels = append(pixels, Pixel{
				Offset: vmath.V3(float64(x)-centerX, float64(y)-centerY, 0).Mul(compact),
				Color:  c,
			})
		}
	}
	return pixels
}

// RenderImageFile loads an image, scales it into a width-by-height box
// and maps it to pixels in one call.
func RenderImageFile(path string, width, height int, compact float64) ([]Pixel, error) {
	img, err := LoadImage(path)
	if err != nil {
		return nil, err
	}
	return ImagePixels(ScaleImage(img, width, height), compact), nil
}

// DisplayImage spawns a rendered pixel set once as dust particles around
// at. Pixel offsets are subtracted from the anchor, mirroring the image
// so it reads correctly from the viewer's side. quality is the particle
// count per pixel (1 reads well), speed the particle speed (0 holds the
// image still) and size the dust size (0.8 reads well).
func DisplayImage(pixels []Pixel, w particle.World, at vmath.Vec3, quality int, speed, size float64) {
	if len(pixels) == 0 {
		particlekit.Logger().Warn("display of empty pixel set dropped")
		return
	}
	for _, px := range pixels {
		w.SpawnParticle(particle.Dust, at.Sub(px.Offset), quality, vmath.Vec3{}, speed,
			particle.DustData{Color: px.Color, Size: size})
	}
}

// AnimateImage displays a rendered pixel set repeatedly at the position
// reported by at, re-sampled every run so the image can follow a moving
// anchor. The task runs every period ticks and cancels itself after
// repeat runs.
func AnimateImage(s tick.Scheduler, pixels []Pixel, w particle.World, at func() vmath.Vec3,
	repeat int, period int64, quality int, speed, size float64) tick.Task {
	times := repeat
	return s.RunTimer(0, period, func(task tick.Task) {
		DisplayImage(pixels, w, at(), quality, speed, size)
		times--
		if times < 1 {
			task.Cancel()
		}
	})
}

// SaveImage writes an image as PNG, refusing to overwrite an existing
// file. Useful for caching generated text images.
func SaveImage(img image.Image, path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("render: encode %s: %w", path, err)
	}
	return nil
}

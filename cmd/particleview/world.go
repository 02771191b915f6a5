package main

import (
	"image/color"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/particlekit/particle"
	"github.com/lixenwraith/particlekit/vmath"
)

const (
	particleTTLMs = 350
	// Terminal cells are roughly twice as tall as wide; halving the
	// vertical scale keeps circles round.
	cellAspect = 0.5
)

// point is one on-screen particle with its spawn time for decay.
type point struct {
	pos   vmath.Vec3
	color colorful.Color
	born  time.Time
}

// termWorld implements particle.World by projecting world positions onto
// the terminal grid. Spawns arrive from the scheduler goroutine; the draw
// loop reads them under the same lock.
type termWorld struct {
	mu     sync.Mutex
	points []point

	// camera center in world space and world units per cell column
	center vmath.Vec3
	scale  float64
}

func newTermWorld(center vmath.Vec3, scale float64) *termWorld {
	return &termWorld{center: center, scale: scale}
}

// SpawnParticle implements particle.World.
func (tw *termWorld) SpawnParticle(t particle.Type, pos vmath.Vec3, count int, offset vmath.Vec3, speed float64, data any) {
	c := typeColor(t)
	if dust, ok := data.(particle.DustData); ok {
		c = particle.Colorful(dust.Color)
	}

	tw.mu.Lock()
	tw.points = append(tw.points, point{pos: pos, color: c, born: time.Now()})
	tw.mu.Unlock()
}

// draw projects live points onto the screen and evicts expired ones.
func (tw *termWorld) draw(screen tcell.Screen, width, height int) {
	now := time.Now()

	tw.mu.Lock()
	kept := tw.points[:0]
	for _, p := range tw.points {
		age := now.Sub(p.born)
		if age > particleTTLMs*time.Millisecond {
			continue
		}
		kept = append(kept, p)

		x := width/2 + int((p.pos.X-tw.center.X)/tw.scale)
		y := height/2 - int((p.pos.Y-tw.center.Y)/tw.scale*cellAspect)
		if x < 0 || x >= width || y < 0 || y >= height {
			continue
		}

		// Fade toward black as the particle ages.
		intensity := 1 - float64(age)/float64(particleTTLMs*time.Millisecond)
		faded := p.color.BlendRgb(colorful.Color{}, 1-intensity)
		r, g, b := faded.RGB255()
		style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))

		glyph := '•'
		if intensity < 0.4 {
			glyph = '·'
		}
		screen.SetContent(x, y, glyph, nil, style)
	}
	tw.points = kept
	tw.mu.Unlock()
}

// reset drops all live points, used when switching effects.
func (tw *termWorld) reset() {
	tw.mu.Lock()
	tw.points = tw.points[:0]
	tw.mu.Unlock()
}

// typeColor picks a display color per particle kind. Unlisted kinds
// render white.
func typeColor(t particle.Type) colorful.Color {
	c, ok := typeColors[t]
	if !ok {
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	return c
}

var typeColors = map[particle.Type]colorful.Color{
	particle.Flame:         particle.Colorful(color.NRGBA{R: 255, G: 140, A: 255}),
	particle.SoulFireFlame: particle.Colorful(color.NRGBA{G: 200, B: 255, A: 255}),
	particle.Crit:          particle.Colorful(color.NRGBA{R: 255, G: 230, B: 120, A: 255}),
	particle.Cloud:         particle.Colorful(color.NRGBA{R: 220, G: 220, B: 220, A: 255}),
	particle.Rain:          particle.Colorful(color.NRGBA{R: 80, G: 120, B: 255, A: 255}),
	particle.Portal:        particle.Colorful(color.NRGBA{R: 180, B: 220, A: 255}),
	particle.Witch:         particle.Colorful(color.NRGBA{R: 150, B: 150, A: 255}),
	particle.Heart:         particle.Colorful(color.NRGBA{R: 255, G: 60, B: 120, A: 255}),
	particle.EndRod:        particle.Colorful(color.NRGBA{R: 240, G: 240, B: 255, A: 255}),
	particle.Firework:      particle.Colorful(color.NRGBA{R: 255, G: 220, B: 150, A: 255}),
	particle.Enchant:       particle.Colorful(color.NRGBA{R: 170, G: 110, B: 255, A: 255}),
	particle.Smoke:         particle.Colorful(color.NRGBA{R: 120, G: 120, B: 120, A: 255}),
}

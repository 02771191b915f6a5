package main

import (
	"github.com/lixenwraith/particlekit/effects"
	"github.com/lixenwraith/particlekit/particle"
	"github.com/lixenwraith/particlekit/preset"
	"github.com/lixenwraith/particlekit/shapes"
	"github.com/lixenwraith/particlekit/tick"
	"github.com/lixenwraith/particlekit/vmath"
)

// reelEntry is one effect in the preview cycle: a name for the status
// line and a starter returning the running task.
type reelEntry struct {
	name  string
	start func(s tick.Scheduler, w particle.World) (tick.Task, error)
}

// origin is the shared world anchor all demo effects render around.
var origin = vmath.V3(0, 64, 0)

// builtinReel is the demo cycle used when no preset directory is given.
var builtinReel = []reelEntry{
	{"circle", staticEntry(func(d *particle.Display) { shapes.Circle(6, 30, d) })},
	{"sphere", staticEntry(func(d *particle.Display) { shapes.Sphere(5, 12, d) })},
	{"double helix", staticEntry(func(d *particle.Display) {
		shapes.DoubleHelix(4, 0.2, 1, 10, d.At(origin.Sub(vmath.V3(0, 5, 0))))
	})},
	{"heart", staticEntry(func(d *particle.Display) {
		heart := particle.PaintDust(d.World, d.Origin, particle.Rainbow[6], 1)
		shapes.Heart(2, 4, 2, 2, 40, heart)
	})},
	{"rainbow", staticEntry(func(d *particle.Display) {
		shapes.Rainbow(4, 2, 0.6, 2, 0.4, d.At(origin.Sub(vmath.V3(0, 3, 0))))
	})},
	{"ring", staticEntry(func(d *particle.Display) { shapes.Ring(25, 12, 4, 1.2, d) })},
	{"pentagram", staticEntry(func(d *particle.Display) {
		shapes.Pentagram(5, 0.02, 0, d, d.Clone())
	})},
	{"atom", staticEntry(func(d *particle.Display) {
		nucleus := d.Clone()
		nucleus.Type = particle.Crit
		shapes.Atom(3, 5, 20, d, nucleus)
	})},
	{"hypercube", staticEntry(func(d *particle.Display) {
		shapes.Hypercube(origin.Sub(vmath.V3(2, 2, 2)), origin.Add(vmath.V3(2, 2, 2)), 0.5, 1, 1, d)
	})},
	{"vortex", func(s tick.Scheduler, w particle.World) (tick.Task, error) {
		d := particle.New(w, particle.Witch, origin)
		return effects.Vortex(s, 10, 2, d), nil
	}},
	{"atomic", func(s tick.Scheduler, w particle.World) (tick.Task, error) {
		d := particle.New(w, particle.EndRod, origin)
		return effects.Atomic(s, 4, 5, 10, d), nil
	}},
	{"explosion wave", func(s tick.Scheduler, w particle.World) (tick.Task, error) {
		d := particle.New(w, particle.Flame, origin)
		sec := particle.New(w, particle.Crit, origin)
		return effects.ExplosionWave(s, 12, d, sec), nil
	}},
	{"quad spiral", func(s tick.Scheduler, w particle.World) (tick.Task, error) {
		d := particle.New(w, particle.Portal, origin)
		return effects.QuadSpiral(s, func() vmath.Vec3 { return origin.Sub(vmath.V3(0, 2, 0)) }, 200, 1, d), nil
	}},
	{"starburst", func(s tick.Scheduler, w particle.World) (tick.Task, error) {
		d := particle.New(w, particle.Firework, origin)
		return effects.Starburst(s, 6, d), nil
	}},
	{"cloud", func(s tick.Scheduler, w particle.World) (tick.Task, error) {
		cloud := particle.Simple(w, particle.Cloud, 3).At(origin.Add(vmath.V3(0, 4, 0))).OffsetBy(vmath.V3(2.5, 0.5, 2.5))
		rain := particle.Simple(w, particle.Rain, 3).At(origin).OffsetBy(vmath.V3(2.5, 2, 2.5))
		return effects.Cloud(s, cloud, rain), nil
	}},
}

// staticEntry wraps a one-shot sampler into a per-tick redraw task.
func staticEntry(draw func(*particle.Display)) func(tick.Scheduler, particle.World) (tick.Task, error) {
	return func(s tick.Scheduler, w particle.World) (tick.Task, error) {
		d := particle.New(w, particle.Flame, origin)
		return effects.Repeat(s, func() { draw(d) }), nil
	}
}

// presetReel converts loaded presets into reel entries.
func presetReel(presets []preset.Preset) []reelEntry {
	reel := make([]reelEntry, 0, len(presets))
	for i := range presets {
		p := presets[i]
		name := p.Name
		if name == "" {
			name = p.Shape
		}
		reel = append(reel, reelEntry{
			name: name,
			start: func(s tick.Scheduler, w particle.World) (tick.Task, error) {
				return p.Start(s, w)
			},
		})
	}
	return reel
}

package preset

import (
	"fmt"

	"github.com/lixenwraith/particlekit/effects"
	"github.com/lixenwraith/particlekit/particle"
	"github.com/lixenwraith/particlekit/shapes"
	"github.com/lixenwraith/particlekit/tick"
	"github.com/lixenwraith/particlekit/vmath"
)

// Shape parameter defaults follow the recommended starting values of the
// sampler documentation, so a preset naming only a shape still renders
// something sensible.

// Spawn renders a static preset once. Animated shapes are rejected; use
// Start for those.
func (p *Preset) Spawn(w particle.World) error {
	d, err := p.Display(w)
	if err != nil {
		return err
	}
	draw, ok := staticShape(p, d)
	if !ok {
		if _, animated := animatedShape(p, d); animated {
			return fmt.Errorf("preset %q: shape %q is animated, use Start", p.Name, p.Shape)
		}
		return fmt.Errorf("preset %q: unknown shape %q", p.Name, p.Shape)
	}
	draw()
	return nil
}

// Start schedules a preset on the given scheduler and returns its task.
// Animated shapes run their own animation; static shapes redraw every
// tick through effects.Repeat.
func (p *Preset) Start(s tick.Scheduler, w particle.World) (tick.Task, error) {
	d, err := p.Display(w)
	if err != nil {
		return nil, err
	}
	if start, ok := animatedShape(p, d); ok {
		return start(s), nil
	}
	if draw, ok := staticShape(p, d); ok {
		return effects.Repeat(s, draw), nil
	}
	return nil, fmt.Errorf("preset %q: unknown shape %q", p.Name, p.Shape)
}

// staticShape resolves a one-shot sampler for the preset, bound to its
// display and parameters.
func staticShape(p *Preset, d *particle.Display) (func(), bool) {
	switch p.Shape {
	case "circle":
		return func() { shapes.Circle(p.param("radius", 3), p.param("rate", 30), d) }, true
	case "ellipse":
		return func() {
			shapes.Ellipse(p.param("radius", 3), p.param("other_radius", 2), p.param("rate", 30), d)
		}, true
	case "blacksun":
		return func() {
			shapes.BlackSun(p.param("radius", 3), p.param("radius_rate", 1),
				p.param("rate", 30), p.param("rate_change", 1), d)
		}, true
	case "crescent":
		return func() { shapes.Crescent(p.param("radius", 2), p.param("rate", 30), d) }, true
	case "rainbow":
		return func() {
			shapes.Rainbow(p.param("radius", 5), p.param("rate", 2), p.param("curve", 0.5),
				p.param("layers", 2), p.param("compact", 0.2), d)
		}, true
	case "sphere":
		return func() { shapes.Sphere(p.param("radius", 2), p.param("rate", 15), d) }, true
	case "spike_sphere":
		return func() {
			shapes.SpikeSphere(p.param("radius", 2), p.param("rate", 5), int(p.param("chance", 3)),
				p.param("min_random", 0.5), p.param("max_random", 1.5), d)
		}, true
	case "helix":
		return func() {
			shapes.Helix(p.param("radius", 2), p.param("rate", 0.1),
				p.param("extension", 1), int(p.param("height", 5)), d)
		}, true
	case "double_helix":
		return func() {
			shapes.DoubleHelix(p.param("radius", 2), p.param("rate", 0.1),
				p.param("extension", 1), int(p.param("height", 5)), d)
		}, true
	case "ascending_helix":
		return func() { shapes.AscendingHelix(p.param("radius", 2), p.param("rate", 0.05), d) }, true
	case "dna":
		return func() {
			shapes.DNA(p.param("radius", 2), p.param("rate", 0.2), p.param("extension", 1),
				int(p.param("height", 10)), int(p.param("bond_every", 5)), d, d)
		}, true
	case "ring":
		return func() {
			shapes.Ring(p.param("rate", 30), p.param("tube_rate", 15),
				p.param("radius", 3), p.param("tube_radius", 1), d)
		}, true
	case "heart":
		return func() {
			shapes.Heart(p.param("cut", 2), p.param("cut_angle", 4), p.param("depth", 2),
				p.param("compress_height", 2), p.param("rate", 20), d)
		}, true
	case "cone":
		return func() { shapes.Cone(p.param("height", 3), p.param("radius", 2), p.param("rate", 15), d) }, true
	case "cylinder":
		return func() { shapes.Cylinder(p.param("height", 3), p.param("radius", 2), p.param("rate", 15), d) }, true
	case "polygon":
		return func() {
			shapes.Polygon(int(p.param("points", 5)), int(p.param("connection", 2)),
				p.param("size", 3), p.param("rate", 0.1), p.param("extend", 0), d)
		}, true
	case "pentagram":
		return func() { shapes.Pentagram(p.param("size", 3), p.param("rate", 0.1), p.param("extend", 0), d, d) }, true
	case "atom":
		return func() { shapes.Atom(int(p.param("orbits", 3)), p.param("radius", 3), p.param("rate", 20), d, d) }, true
	case "wave_function":
		return func() {
			shapes.WaveFunction(p.param("extend", 3), p.param("height_range", 1),
				p.param("size", 3), p.param("rate", 30), d)
		}, true
	case "filled_cube":
		return func() { shapes.FilledCube(d.Origin, d.Origin.Add(p.cubeSpan()), p.param("rate", 0.5), d) }, true
	case "cube":
		return func() { shapes.Cube(d.Origin, d.Origin.Add(p.cubeSpan()), p.param("rate", 0.5), d) }, true
	case "structured_cube":
		return func() { shapes.StructuredCube(d.Origin, d.Origin.Add(p.cubeSpan()), p.param("rate", 0.5), d) }, true
	case "hypercube":
		return func() {
			shapes.Hypercube(d.Origin, d.Origin.Add(p.cubeSpan()), p.param("rate", 0.5),
				p.param("size_rate", 0.5), int(p.param("cubes", 1)), d)
		}, true
	}
	return nil, false
}

// animatedShape resolves a task starter for the preset.
func animatedShape(p *Preset, d *particle.Display) (func(tick.Scheduler) tick.Task, bool) {
	switch p.Shape {
	case "vortex":
		return func(s tick.Scheduler) tick.Task {
			return effects.Vortex(s, int(p.param("points", 12)), p.param("rate", 2), d)
		}, true
	case "atomic":
		return func(s tick.Scheduler) tick.Task {
			return effects.Atomic(s, int(p.param("orbits", 3)), p.param("radius", 3), p.param("rate", 10), d)
		}, true
	case "cloud":
		return func(s tick.Scheduler) tick.Task {
			rain := particle.Simple(d.World, particle.Rain, d.Count).At(d.Origin).OffsetBy(d.Offset)
			return effects.Cloud(s, d, rain)
		}, true
	case "explosion_wave":
		return func(s tick.Scheduler) tick.Task {
			secondary := d.Clone()
			secondary.Type = particle.Crit
			return effects.ExplosionWave(s, p.param("rate", 10), d, secondary)
		}, true
	case "quad_spiral":
		return func(s tick.Scheduler) tick.Task {
			origin := d.Origin
			return effects.QuadSpiral(s, func() vmath.Vec3 { return origin },
				int(p.param("repeat", 60)), int64(p.param("period", 1)), d)
		}, true
	case "spread":
		return func(s tick.Scheduler) tick.Task {
			end := d.Origin.Add(vmath.V3(0, p.param("height", 10), 0))
			jitter := p.param("jitter", 5)
			return effects.Spread(s, int(p.param("amount", 30)), int(p.param("rate", 2)),
				d.Origin, end, vmath.V3(jitter, jitter, jitter), d)
		}, true
	case "starburst":
		return func(s tick.Scheduler) tick.Task {
			return effects.Starburst(s, p.param("size", 6), d)
		}, true
	}
	return nil, false
}

// cubeSpan reads the box dimensions of the cube shapes.
func (p *Preset) cubeSpan() vmath.Vec3 {
	return vmath.V3(p.param("width", 2), p.param("height", 2), p.param("depth", 2))
}

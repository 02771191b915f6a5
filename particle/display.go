package particle

import (
	"image/color"

	"github.com/lixenwraith/particlekit"
	"github.com/lixenwraith/particlekit/vmath"
)

// World is the host's particle-spawning surface. One call renders count
// particles of kind t at pos. The offset triple is passed through to the
// host: for counted spawns it is the random spread per axis, for
// directional spawns (count 0) the client reads it as a velocity vector
// scaled by speed. data carries kind-specific extras such as Dust.
//
// Implementations must be safe for use from the scheduler goroutine.
type World interface {
	SpawnParticle(t Type, pos vmath.Vec3, count int, offset vmath.Vec3, speed float64, data any)
}

// DustData is the extra payload for Dust particles: an RGB color and a
// render size multiplier.
type DustData struct {
	Color color.NRGBA
	Size  float64
}

// Display is the particle display descriptor: everything one spawn call
// needs. Shape samplers call Spawn once per computed point; the point
// is rotated by Rotation (when set) and translated by Origin before it
// reaches the World.
//
// Displays meant for shape work should keep Count at 1 and Offset and
// Speed at zero so each sampled point renders exactly one particle.
type Display struct {
	Type   Type
	World  World
	Origin vmath.Vec3
	Count  int
	Offset vmath.Vec3
	Speed  float64
	Data   any

	// Rotation, when non-nil, is applied to every spawned offset in
	// X, Y, Z axis order before translation. Nil means no rotation and
	// skips the transform entirely.
	Rotation *vmath.Vec3
}

// New creates a display with a single particle per point and no offset,
// the configuration shape samplers expect.
func New(w World, t Type, origin vmath.Vec3) *Display {
	return &Display{Type: t, World: w, Origin: origin, Count: 1}
}

// Simple creates a display with an explicit count and no origin. Useful
// for cloud-style effects where the host-side spread does the shaping.
func Simple(w World, t Type, count int) *Display {
	return &Display{Type: t, World: w, Count: count}
}

// PaintDust creates a dust display with the given color and size.
func PaintDust(w World, origin vmath.Vec3, c color.NRGBA, size float64) *Display {
	return &Display{
		Type:   Dust,
		World:  w,
		Origin: origin,
		Count:  1,
		Data:   DustData{Color: c, Size: size},
	}
}

// Clone returns a deep copy. The copy shares the World but owns its
// Rotation, so rotating one display never disturbs the other.
func (d *Display) Clone() *Display {
	c := *d
	if d.Rotation != nil {
		rot := *d.Rotation
		c.Rotation = &rot
	}
	return &c
}

// At moves the display origin and returns the receiver for chaining.
func (d *Display) At(pos vmath.Vec3) *Display {
	d.Origin = pos
	return d
}

// OffsetBy sets the per-axis offset passed to the host.
func (d *Display) OffsetBy(offset vmath.Vec3) *Display {
	d.Offset = offset
	return d
}

// WithData attaches kind-specific extra data.
func (d *Display) WithData(data any) *Display {
	d.Data = data
	return d
}

// Directional switches the display to directional mode: count drops to
// zero and the client interprets Offset as a velocity direction scaled
// by Speed. Used by effects that stream particles outward.
func (d *Display) Directional() *Display {
	d.Count = 0
	return d
}

// IsDirectional reports whether the display spawns moving particles.
func (d *Display) IsDirectional() bool {
	return d.Count == 0
}

// Rotate accumulates per-axis rotation angles (radians) applied to every
// subsequent spawn.
func (d *Display) Rotate(angles vmath.Vec3) *Display {
	if d.Rotation == nil {
		rot := angles
		d.Rotation = &rot
		return d
	}
	*d.Rotation = d.Rotation.Add(angles)
	return d
}

// SetRotation replaces the rotation outright. A zero vector still counts
// as a rotation; use ClearRotation to remove the transform.
func (d *Display) SetRotation(angles vmath.Vec3) *Display {
	rot := angles
	d.Rotation = &rot
	return d
}

// ClearRotation removes the spawn rotation.
func (d *Display) ClearRotation() *Display {
	d.Rotation = nil
	return d
}

// Point returns the world position an offset would spawn at, applying
// Rotation and Origin without emitting a particle. Samplers use it to
// anchor connecting lines between computed points.
func (d *Display) Point(offset vmath.Vec3) vmath.Vec3 {
	if d.Rotation != nil {
		offset = offset.Rotate(*d.Rotation)
	}
	return d.Origin.Add(offset)
}

// Spawn renders one point at Origin plus the rotated offset and returns
// the world position it spawned at. The display itself is not mutated.
// A display with no World is a no-op; misuse is logged at debug level
// rather than panicking so a detached preview descriptor stays harmless.
func (d *Display) Spawn(offset vmath.Vec3) vmath.Vec3 {
	if d.Rotation != nil {
		offset = offset.Rotate(*d.Rotation)
	}
	pos := d.Origin.Add(offset)
	if d.World == nil {
		particlekit.Logger().Debug("spawn on nil world dropped", "type", string(d.Type))
		return pos
	}
	d.World.SpawnParticle(d.Type, pos, d.Count, d.Offset, d.Speed, d.Data)
	return pos
}

// SpawnAt renders one point at an absolute world position, bypassing
// Origin and Rotation.
func (d *Display) SpawnAt(pos vmath.Vec3) vmath.Vec3 {
	if d.World == nil {
		particlekit.Logger().Debug("spawn on nil world dropped", "type", string(d.Type))
		return pos
	}
	d.World.SpawnParticle(d.Type, pos, d.Count, d.Offset, d.Speed, d.Data)
	return pos
}

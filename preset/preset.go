// Package preset loads declarative effect descriptions from TOML files
// and turns them into displays, one-shot spawns or scheduled tasks.
// Tools and the previewer use presets to describe effects without code;
// the library surface itself stays parameter-driven.
package preset

import (
	"fmt"
	"image/color"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/particlekit/particle"
	"github.com/lixenwraith/particlekit/vmath"
)

// Preset describes one effect: a shape name, its numeric parameters and
// the display configuration to render it with.
type Preset struct {
	Name     string             `toml:"name"`
	Shape    string             `toml:"shape"`
	Params   map[string]float64 `toml:"params,omitempty"`
	Particle string             `toml:"particle,omitempty"`
	Dust     *DustSpec          `toml:"dust,omitempty"`
	Count    int                `toml:"count,omitempty"`
	Speed    float64            `toml:"speed,omitempty"`
	Origin   [3]float64         `toml:"origin,omitempty"`
	Offset   [3]float64         `toml:"offset,omitempty"`
	Rotation [3]float64         `toml:"rotation,omitempty"`
}

// DustSpec colors a dust display. RGB components are 0-255.
type DustSpec struct {
	RGB  [3]int  `toml:"rgb"`
	Size float64 `toml:"size,omitempty"`
}

// File is the top-level TOML document: a list of [[preset]] tables.
type File struct {
	Preset []Preset `toml:"preset"`
}

// Parse decodes a TOML document into its presets. Presets without a
// shape are rejected; an absent particle defaults to flame.
func Parse(data []byte) ([]Preset, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("preset: parse: %w", err)
	}
	for i := range f.Preset {
		p := &f.Preset[i]
		if p.Shape == "" {
			return nil, fmt.Errorf("preset %q: missing shape", p.label(i))
		}
		if p.Particle != "" {
			if _, ok := particle.ByName(p.Particle); !ok {
				return nil, fmt.Errorf("preset %q: unknown particle %q", p.label(i), p.Particle)
			}
		}
	}
	return f.Preset, nil
}

// Load reads and parses one preset file.
func Load(path string) ([]Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("preset: read %s: %w", path, err)
	}
	presets, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return presets, nil
}

func (p *Preset) label(i int) string {
	if p.Name != "" {
		return p.Name
	}
	return fmt.Sprintf("#%d", i)
}

// Display builds the particle display this preset renders with.
func (p *Preset) Display(w particle.World) (*particle.Display, error) {
	origin := vmath.V3(p.Origin[0], p.Origin[1], p.Origin[2])

	var d *particle.Display
	switch {
	case p.Dust != nil:
		c := p.Dust.color()
		size := p.Dust.Size
		if size == 0 {
			size = 1
		}
		d = particle.PaintDust(w, origin, c, size)
	case p.Particle != "":
		t, ok := particle.ByName(p.Particle)
		if !ok {
			return nil, fmt.Errorf("preset %q: unknown particle %q", p.Name, p.Particle)
		}
		d = particle.New(w, t, origin)
	default:
		d = particle.New(w, particle.Flame, origin)
	}

	if p.Count > 0 {
		d.Count = p.Count
	}
	d.Speed = p.Speed
	d.OffsetBy(vmath.V3(p.Offset[0], p.Offset[1], p.Offset[2]))
	if p.Rotation != [3]float64{} {
		d.SetRotation(vmath.V3(p.Rotation[0], p.Rotation[1], p.Rotation[2]))
	}
	return d, nil
}

func (s *DustSpec) color() color.NRGBA {
	clamp := func(v int) uint8 {
		if v < 0 {
			return 0
		}
		if v > 255 {
			return 255
		}
		return uint8(v)
	}
	return color.NRGBA{R: clamp(s.RGB[0]), G: clamp(s.RGB[1]), B: clamp(s.RGB[2]), A: 255}
}

// param reads a shape parameter with a fallback default, so preset files
// only spell out what they change.
func (p *Preset) param(name string, def float64) float64 {
	if v, ok := p.Params[name]; ok {
		return v
	}
	return def
}

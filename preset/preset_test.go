package preset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/particlekit/particle"
	"github.com/lixenwraith/particlekit/tick"
	"github.com/lixenwraith/particlekit/vmath"
)

const sampleTOML = `
[[preset]]
name = "campfire-ring"
shape = "circle"
particle = "flame"
origin = [0.0, 64.0, 0.0]

[preset.params]
radius = 2.0
rate = 20.0

[[preset]]
name = "pink-heart"
shape = "heart"

[preset.dust]
rgb = [255, 105, 180]
size = 1.2

[[preset]]
name = "galaxy"
shape = "vortex"
particle = "witch"
speed = 0.5

[preset.params]
points = 8.0
rate = 3.0
`

func TestParse(t *testing.T) {
	presets, err := Parse([]byte(sampleTOML))
	if err != nil {
		t.Fatalf("Expected parse to succeed, got: %v", err)
	}
	if len(presets) != 3 {
		t.Fatalf("Expected 3 presets, got %d", len(presets))
	}

	ring := presets[0]
	if ring.Name != "campfire-ring" || ring.Shape != "circle" {
		t.Errorf("Unexpected first preset: %+v", ring)
	}
	if ring.Params["radius"] != 2.0 {
		t.Errorf("Expected radius param 2.0, got %v", ring.Params["radius"])
	}
	if ring.Origin != [3]float64{0, 64, 0} {
		t.Errorf("Expected origin [0,64,0], got %v", ring.Origin)
	}

	heart := presets[1]
	if heart.Dust == nil || heart.Dust.RGB != [3]int{255, 105, 180} {
		t.Errorf("Expected dust spec on heart preset, got %+v", heart.Dust)
	}
}

func TestParseRejectsMissingShape(t *testing.T) {
	_, err := Parse([]byte("[[preset]]\nname = \"broken\"\n"))
	if err == nil {
		t.Error("Expected error for preset without shape")
	}
}

func TestParseRejectsUnknownParticle(t *testing.T) {
	_, err := Parse([]byte("[[preset]]\nshape = \"circle\"\nparticle = \"bogus\"\n"))
	if err == nil {
		t.Error("Expected error for unknown particle name")
	}
}

func TestDisplayFromPreset(t *testing.T) {
	presets, err := Parse([]byte(sampleTOML))
	if err != nil {
		t.Fatal(err)
	}
	w := particle.NewCollector()

	d, err := presets[0].Display(w)
	if err != nil {
		t.Fatalf("Expected display, got: %v", err)
	}
	if d.Type != particle.Flame {
		t.Errorf("Expected flame display, got %q", d.Type)
	}
	if d.Origin != vmath.V3(0, 64, 0) {
		t.Errorf("Expected origin (0,64,0), got %v", d.Origin)
	}
	if d.Count != 1 {
		t.Errorf("Expected default count 1, got %d", d.Count)
	}

	dust, err := presets[1].Display(w)
	if err != nil {
		t.Fatalf("Expected dust display, got: %v", err)
	}
	if dust.Type != particle.Dust {
		t.Errorf("Expected dust display, got %q", dust.Type)
	}
	data, ok := dust.Data.(particle.DustData)
	if !ok {
		t.Fatalf("Expected DustData, got %T", dust.Data)
	}
	if data.Color.R != 255 || data.Color.G != 105 || data.Color.B != 180 || data.Size != 1.2 {
		t.Errorf("Unexpected dust data: %+v", data)
	}
}

func TestSpawnStaticShape(t *testing.T) {
	presets, err := Parse([]byte(sampleTOML))
	if err != nil {
		t.Fatal(err)
	}
	w := particle.NewCollector()

	if err := presets[0].Spawn(w); err != nil {
		t.Fatalf("Expected static spawn to succeed, got: %v", err)
	}
	if w.Len() == 0 {
		t.Error("Expected circle preset to spawn points")
	}
	for i, p := range w.Positions() {
		if p.Y != 64 {
			t.Fatalf("Point %d left the preset origin plane, y=%v", i, p.Y)
		}
	}
}

func TestSpawnRejectsAnimatedShape(t *testing.T) {
	presets, err := Parse([]byte(sampleTOML))
	if err != nil {
		t.Fatal(err)
	}
	if err := presets[2].Spawn(particle.NewCollector()); err == nil {
		t.Error("Expected Spawn to reject the animated vortex preset")
	}
}

func TestStartAnimatedShape(t *testing.T) {
	presets, err := Parse([]byte(sampleTOML))
	if err != nil {
		t.Fatal(err)
	}
	w := particle.NewCollector()
	s := tick.NewManualScheduler()

	task, err := presets[2].Start(s, w)
	if err != nil {
		t.Fatalf("Expected vortex preset to start, got: %v", err)
	}
	s.Advance(2)
	// 8 vortex arms over 2 ticks.
	if got := w.Len(); got != 16 {
		t.Errorf("Expected 16 spawns, got %d", got)
	}
	task.Cancel()
	s.Advance(2)
	if w.Len() != 16 {
		t.Errorf("Expected no spawns after cancel, got %d", w.Len())
	}
}

func TestStartStaticShapeRepeats(t *testing.T) {
	presets, err := Parse([]byte(sampleTOML))
	if err != nil {
		t.Fatal(err)
	}
	w := particle.NewCollector()
	s := tick.NewManualScheduler()

	if _, err := presets[0].Start(s, w); err != nil {
		t.Fatalf("Expected static preset to start, got: %v", err)
	}
	s.Advance(1)
	first := w.Len()
	if first == 0 {
		t.Fatal("Expected points after one tick")
	}
	s.Advance(1)
	if w.Len() != 2*first {
		t.Errorf("Expected the shape redrawn each tick, got %d then %d", first, w.Len())
	}
}

func TestUnknownShape(t *testing.T) {
	p := Preset{Name: "x", Shape: "dodecahedron"}
	if err := p.Spawn(particle.NewCollector()); err == nil {
		t.Error("Expected unknown shape error from Spawn")
	}
	if _, err := p.Start(tick.NewManualScheduler(), particle.NewCollector()); err == nil {
		t.Error("Expected unknown shape error from Start")
	}
}

func TestDiscoverAndLoadDir(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("b.toml", "[[preset]]\nshape = \"sphere\"\n")
	write("a.toml", "[[preset]]\nshape = \"circle\"\n")
	write(".hidden.toml", "[[preset]]\nshape = \"ring\"\n")
	write("notes.txt", "not a preset")

	files, err := Discover(dir)
	if err != nil {
		t.Fatalf("Expected discovery to succeed, got: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("Expected 2 preset files, got %d: %v", len(files), files)
	}
	if filepath.Base(files[0]) != "a.toml" || filepath.Base(files[1]) != "b.toml" {
		t.Errorf("Expected sorted discovery [a.toml b.toml], got %v", files)
	}

	presets, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("Expected LoadDir to succeed, got: %v", err)
	}
	if len(presets) != 2 {
		t.Fatalf("Expected 2 presets, got %d", len(presets))
	}
	if presets[0].Shape != "circle" || presets[1].Shape != "sphere" {
		t.Errorf("Expected presets in file order, got %q then %q", presets[0].Shape, presets[1].Shape)
	}
}

func TestDiscoverMissingDir(t *testing.T) {
	files, err := Discover(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Errorf("Expected missing dir to be harmless, got: %v", err)
	}
	if files != nil {
		t.Errorf("Expected no files, got %v", files)
	}
}

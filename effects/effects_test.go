package effects

import (
	"math"
	"testing"

	"github.com/lixenwraith/particlekit/particle"
	"github.com/lixenwraith/particlekit/tick"
	"github.com/lixenwraith/particlekit/vmath"
)

func TestRepeatRunsEveryTick(t *testing.T) {
	s := tick.NewManualScheduler()
	runs := 0
	task := Repeat(s, func() { runs++ })

	s.Advance(5)
	if runs != 5 {
		t.Errorf("Expected 5 runs, got %d", runs)
	}
	task.Cancel()
	s.Advance(5)
	if runs != 5 {
		t.Errorf("Expected no runs after cancel, got %d", runs)
	}
}

func TestCloudSpawnsBothDisplays(t *testing.T) {
	s := tick.NewManualScheduler()
	w := particle.NewCollector()
	cloud := particle.Simple(w, particle.Cloud, 5).At(vmath.V3(0, 70, 0)).OffsetBy(vmath.V3(2.5, 2.5, 2.5))
	rain := particle.Simple(w, particle.Rain, 5).At(vmath.V3(0, 70, 0)).OffsetBy(vmath.V3(2.5, 2.5, 2.5))

	Cloud(s, cloud, rain)
	s.Advance(3)

	spawns := w.Spawns()
	if len(spawns) != 6 {
		t.Fatalf("Expected 6 spawns over 3 ticks, got %d", len(spawns))
	}
	if spawns[0].Type != particle.Cloud || spawns[1].Type != particle.Rain {
		t.Errorf("Expected alternating cloud/rain, got %q then %q", spawns[0].Type, spawns[1].Type)
	}
}

func TestVortexSpawnsArmsPerTick(t *testing.T) {
	s := tick.NewManualScheduler()
	w := particle.NewCollector()
	d := particle.New(w, particle.Flame, vmath.V3(0, 64, 0))

	Vortex(s, 4, 2, d)
	s.Advance(3)

	spawns := w.Spawns()
	if len(spawns) != 12 {
		t.Fatalf("Expected 4 arms over 3 ticks = 12 spawns, got %d", len(spawns))
	}
	for i, sp := range spawns {
		if sp.Count != 0 {
			t.Fatalf("Spawn %d not directional, count %d", i, sp.Count)
		}
		// The stream direction points along the arm.
		if math.Abs(sp.Offset.Length()-1) > 1e-9 {
			t.Fatalf("Spawn %d direction not unit length: %v", i, sp.Offset)
		}
	}
	// The caller's display must stay non-directional.
	if d.IsDirectional() {
		t.Error("Expected vortex to work on a clone, caller display became directional")
	}
}

func TestAtomicStampsEveryOrbit(t *testing.T) {
	s := tick.NewManualScheduler()
	w := particle.NewCollector()
	orbit := particle.New(w, particle.Crit, vmath.Vec3{})

	Atomic(s, 3, 2, 10, orbit)
	s.Advance(4)

	if got := w.Len(); got != 12 {
		t.Errorf("Expected 3 orbits over 4 ticks = 12 spawns, got %d", got)
	}
	if orbit.Rotation != nil {
		t.Errorf("Expected orbit display rotation untouched, got %v", *orbit.Rotation)
	}
}

func TestSpreadSelfCancels(t *testing.T) {
	s := tick.NewManualScheduler()
	w := particle.NewCollector()
	d := particle.New(w, particle.Flame, vmath.Vec3{})

	task := Spread(s, 5, 2, vmath.V3(0, 0, 0), vmath.V3(0, 10, 0), vmath.V3(3, 3, 3), d)

	s.Advance(4)
	if task.IsCancelled() {
		t.Fatal("Expected spread to still run after 4 of 5 ticks")
	}
	s.Advance(1)
	if !task.IsCancelled() {
		t.Fatal("Expected spread to cancel itself after 5 ticks")
	}

	after := w.Len()
	s.Advance(5)
	if w.Len() != after {
		t.Errorf("Expected no spawns after self-cancel, count moved from %d to %d", after, w.Len())
	}
}

func TestSpreadSpikesStartAtStart(t *testing.T) {
	s := tick.NewManualScheduler()
	w := particle.NewCollector()
	d := particle.New(w, particle.Flame, vmath.Vec3{})
	start := vmath.V3(1, 2, 3)

	Spread(s, 1, 3, start, vmath.V3(1, 12, 3), vmath.V3(2, 2, 2), d)
	s.Advance(1)

	positions := w.Positions()
	if len(positions) == 0 {
		t.Fatal("Expected spike points")
	}
	found := 0
	for _, p := range positions {
		if p == start {
			found++
		}
	}
	if found != 3 {
		t.Errorf("Expected 3 spikes anchored at start, found %d", found)
	}
}

func TestExplosionWaveSelfCancels(t *testing.T) {
	s := tick.NewManualScheduler()
	w := particle.NewCollector()
	d := particle.New(w, particle.Flame, vmath.V3(0, 64, 0))
	sec := particle.New(w, particle.Crit, vmath.V3(0, 64, 0))

	task := ExplosionWave(s, 10, d, sec)

	// t starts at pi/4 and grows pi/10 per tick; crossing 20 takes 62 ticks.
	s.Advance(100)
	if !task.IsCancelled() {
		t.Fatal("Expected wave to cancel itself once expanded past 20")
	}

	after := w.Len()
	s.Advance(10)
	if w.Len() != after {
		t.Errorf("Expected no spawns after self-cancel, count moved from %d to %d", after, w.Len())
	}

	// Both kinds spawned.
	var primary, secondary bool
	for _, sp := range w.Spawns() {
		switch sp.Type {
		case particle.Flame:
			primary = true
		case particle.Crit:
			secondary = true
		}
	}
	if !primary || !secondary {
		t.Errorf("Expected both displays to spawn, primary=%v secondary=%v", primary, secondary)
	}
}

func TestQuadSpiralRepeatsThenCancels(t *testing.T) {
	s := tick.NewManualScheduler()
	w := particle.NewCollector()
	d := particle.New(w, particle.Witch, vmath.Vec3{})

	task := QuadSpiral(s, func() vmath.Vec3 { return vmath.V3(0, 60, 0) }, 3, 1, d)

	s.Advance(50)
	if !task.IsCancelled() {
		t.Fatal("Expected quad spiral to cancel itself after its repeats")
	}
	// repeat+1 runs with 4 arms per run, 5 when float accumulation keeps
	// the closing sample at 2pi.
	if got := w.Len(); got != 16 && got != 20 {
		t.Errorf("Expected 16 or 20 spawns over 4 runs, got %d", got)
	}
	for i, p := range w.Positions() {
		if p.Y < 60 {
			t.Fatalf("Spawn %d below the sampled origin: %v", i, p)
		}
	}
}

func TestMoveAroundTranslatesAndRestores(t *testing.T) {
	s := tick.NewManualScheduler()
	d := particle.New(particle.NewCollector(), particle.Flame, vmath.V3(0, 64, 0))

	var seen []vmath.Vec3
	MoveAround(s, 1, 0.5, 1.0, vmath.V3(1, 0, 0), func() {
		seen = append(seen, d.Origin)
	}, d)

	s.Advance(1)
	if d.Origin != vmath.V3(0, 64, 0) {
		t.Errorf("Expected origin restored after tick, got %v", d.Origin)
	}
	if len(seen) != 1 || seen[0] != vmath.V3(0.5, 64, 0) {
		t.Errorf("Expected callback to see translated origin (0.5,64,0), got %v", seen)
	}

	// Multiplier climbs to endRate then walks back down.
	s.Advance(3)
	want := []vmath.Vec3{
		{X: 0.5, Y: 64}, {X: 1.0, Y: 64}, {X: 0.5, Y: 64}, {X: 0, Y: 64},
	}
	if len(seen) != 4 {
		t.Fatalf("Expected 4 callback runs, got %d", len(seen))
	}
	for i, wv := range want {
		if math.Abs(seen[i].X-wv.X) > 1e-9 || seen[i].Y != 64 {
			t.Errorf("Run %d: expected origin %v, got %v", i, wv, seen[i])
		}
	}
}

func TestRotateAroundSetsRotationForCallback(t *testing.T) {
	s := tick.NewManualScheduler()
	d := particle.New(particle.NewCollector(), particle.Flame, vmath.Vec3{})

	var rotations []vmath.Vec3
	RotateAround(s, 1, 5, vmath.V3(1, 1, 1), func() {
		if d.Rotation != nil {
			rotations = append(rotations, *d.Rotation)
		}
	}, d)

	s.Advance(2)
	if len(rotations) != 2 {
		t.Fatalf("Expected rotation visible in both callback runs, got %d", len(rotations))
	}
	// 185 degrees then 190 degrees on the X axis.
	if math.Abs(rotations[0].X-vmath.Radians(275)) > 1e-9 {
		t.Errorf("Expected first X rotation %v, got %v", vmath.Radians(275), rotations[0].X)
	}
	if rotations[1].X <= rotations[0].X {
		t.Error("Expected rotation to keep advancing across ticks")
	}
}

func TestGuardRestoresOrigins(t *testing.T) {
	s := tick.NewManualScheduler()
	origin := vmath.V3(3, 70, -2)
	d := particle.New(particle.NewCollector(), particle.EndRod, origin)

	var movedDuring bool
	Guard(s, 1, 4, vmath.V3(1, 0.5, 0.5), func() {
		if d.Origin != origin {
			movedDuring = true
		}
	}, d)

	s.Advance(6)
	if !movedDuring {
		t.Error("Expected callback to observe a translated origin")
	}
	if d.Origin != origin {
		t.Errorf("Expected origin restored after each tick, got %v", d.Origin)
	}
}

func TestMoveRotatingAroundRestoresOrigins(t *testing.T) {
	s := tick.NewManualScheduler()
	origin := vmath.V3(0, 64, 0)
	d := particle.New(particle.NewCollector(), particle.Flame, origin)

	var armLengths []float64
	MoveRotatingAround(s, 1, 5, vmath.V3(1, 1, 0), func() {
		armLengths = append(armLengths, d.Origin.Sub(origin).Length())
	}, d)

	s.Advance(3)
	if d.Origin != origin {
		t.Errorf("Expected origin restored after ticks, got %v", d.Origin)
	}
	// The arm length is fixed: |offset| * pi, only its direction turns.
	want := vmath.V3(1, 1, 0).Mul(math.Pi).Length()
	for i, l := range armLengths {
		if math.Abs(l-want) > 1e-9 {
			t.Errorf("Run %d: expected arm length %v, got %v", i, want, l)
		}
	}
}

func TestStarburstDrawsThenSprays(t *testing.T) {
	s := tick.NewManualScheduler()
	w := particle.NewCollector()
	d := particle.New(w, particle.Firework, vmath.V3(0, 64, 0))

	task := Starburst(s, 6, d)

	// The polygons and circle render immediately, before any tick.
	if w.Len() == 0 {
		t.Fatal("Expected static burst shapes before the first tick")
	}
	static := w.Len()

	s.Advance(30)
	if !task.IsCancelled() {
		t.Error("Expected spray task to cancel itself after 30 ticks")
	}
	if w.Len() <= static {
		t.Error("Expected the spray to add spawns over its 30 ticks")
	}
}

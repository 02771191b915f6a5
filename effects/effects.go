// Package effects contains the animated particle tasks. Every effect
// registers a periodic callback with a tick.Scheduler and returns the
// task handle; per-tick state (an angle, a multiplier, a countdown) lives
// in the callback closure. Self-terminating effects cancel their own task
// from inside the callback.
//
// Callbacks never block and never sleep; per-tick work is bounded by the
// sampler loops they run.
package effects

import (
	"github.com/lixenwraith/particlekit/particle"
	"github.com/lixenwraith/particlekit/tick"
	"github.com/lixenwraith/particlekit/vmath"
)

// Repeat runs fn every tick until the returned task is cancelled. The
// plain way to keep a static shape visible, and a diagnosis helper when
// tuning sampler parameters.
func Repeat(s tick.Scheduler, fn func()) tick.Task {
	return s.RunTimer(0, 1, func(tick.Task) {
		fn()
	})
}

// Cloud renders a hovering cloud with rain falling out of it: both
// displays spawn at their own origin every tick, shaping entirely through
// their host-side offsets. Cloud particles want an offset above 2 on each
// axis, rain the same offset with a rain kind.
func Cloud(s tick.Scheduler, cloud, rain *particle.Display) tick.Task {
	return s.RunTimer(0, 1, func(tick.Task) {
		cloud.Spawn(vmath.Vec3{})
		rain.Spawn(vmath.Vec3{})
	})
}

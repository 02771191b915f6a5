// Package particlekit generates point sets for visual particle effects and
// schedules their repeated display through a host game server's tick scheduler.
//
// # Overview
//
// particlekit is a utility library for Minecraft-style tick servers. It computes
// offsets along parametric curves (circles, spheres, helices, tori, hearts,
// cubes, tesseracts), renders images and text to colored point grids, and hands
// every point to a host-provided particle-spawning call. The library owns no
// world state and draws nothing itself.
//
// # Quick start
//
//	world := ...              // the host's particle.World implementation
//	d := particle.New(world, particle.Flame, vmath.V3(0, 64, 0))
//	shapes.Circle(3, 30, d)   // one ring of flame particles
//
// Animated effects run on the host's tick scheduler and return a cancellable
// task handle:
//
//	task := effects.Vortex(sched, 12, 2, d)
//	...
//	task.Cancel()
//
// # Packages
//
//   - vmath: float64 3D vectors and axis rotations
//   - particle: the display descriptor, particle kinds, dust colors
//   - shapes: closed-form static samplers
//   - effects: scheduler-driven animated effects
//   - tick: the host scheduler contract and a reference runner
//   - render: image and text to point-grid rendering
//   - preset: TOML-described effects for tooling
//
// # Conventions
//
// Coordinates are float64 with Y up, matching Minecraft world space. Angles are
// radians. Most samplers take a "rate" parameter: the angular step between
// points is pi/rate, so higher rates produce denser shapes. Distance-stepped
// functions (Line, the cube family, Helix height steps) document the difference
// where it applies.
//
// particlekit produces no log output by default; see [SetLogger].
package particlekit

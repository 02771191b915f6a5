// Package particle defines the particle display descriptor and the host
// surfaces it talks to.
//
// A Display bundles everything one spawn call needs: the particle kind, the
// anchor position, the spawn count, per-axis offsets, speed, and optional
// extra data such as dust color and size. Shape samplers receive a Display
// and call Spawn once per computed point; the Display forwards each point to
// the host's World implementation. Displays intended for shape work should
// keep Count at 1 and Offset/Speed at zero so every sampled point maps to
// exactly one rendered particle.
package particle

// Package tick defines the host scheduler contract the effect tasks run on,
// plus a reference implementation for hosts and tests.
//
// The library itself only consumes the Scheduler interface: a game server
// embedding particlekit passes an adapter over its own tick loop. Runner is
// a standalone fixed-tick scheduler for hosts that do not have one, and
// ManualScheduler drives callbacks synchronously for deterministic tests
// and offline rendering.
package tick

// Task is a handle to a scheduled repeating callback.
type Task interface {
	// Cancel stops the task. Idempotent, and safe to call from inside the
	// task's own callback for self-terminating effects.
	Cancel()
	// IsCancelled reports whether Cancel has been called.
	IsCancelled() bool
}

// Scheduler runs callbacks on a fixed tick. Implementations own timing,
// threading and task lifecycle; the library never blocks inside callbacks.
type Scheduler interface {
	// RunTimer schedules fn to first run delay ticks from now and then
	// every period ticks. Period must be at least 1; implementations
	// panic on misuse since a zero period would spin. fn receives its
	// own task handle so effects can cancel themselves.
	RunTimer(delay, period int64, fn func(Task)) Task
}

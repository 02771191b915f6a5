package tick

import (
	"sync"
	"sync/atomic"
	"time"
)

// PausableClock provides pausable scheduler time with pause duration
// tracking. While paused, Now is frozen at the pause point; after resume
// the clock continues from where it stopped, so task deadlines survive a
// pause without a burst of catch-up ticks.
type PausableClock struct {
	mu sync.RWMutex

	source Clock

	realStartTime time.Time // when the clock was created (real time)
	gameStartTime time.Time // scheduler time epoch (adjusted for pauses)

	isPaused        atomic.Bool
	pauseStartTime  time.Time     // when the current pause started (real time)
	totalPausedTime time.Duration // cumulative pause duration
}

// NewPausableClock creates a pausable clock over the system clock.
func NewPausableClock() *PausableClock {
	return NewPausableClockWith(SystemClock{})
}

// NewPausableClockWith creates a pausable clock over a custom time source.
func NewPausableClockWith(source Clock) *PausableClock {
	now := source.Now()
	return &PausableClock{
		source:        source,
		realStartTime: now,
		gameStartTime: now,
	}
}

// Now returns current scheduler time (affected by pause).
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.isPaused.Load() {
		// During pause: frozen time at the pause point.
		return pc.gameStartTime.Add(pc.pauseStartTime.Sub(pc.realStartTime) - pc.totalPausedTime)
	}

	// Scheduler elapsed = real elapsed - total paused time.
	realElapsed := pc.source.Now().Sub(pc.realStartTime)
	return pc.gameStartTime.Add(realElapsed - pc.totalPausedTime)
}

// RealTime returns the wall clock time, unaffected by pause.
func (pc *PausableClock) RealTime() time.Time {
	return pc.source.Now()
}

// Pause stops scheduler time advancement.
func (pc *PausableClock) Pause() {
	if pc.isPaused.CompareAndSwap(false, true) {
		pc.mu.Lock()
		defer pc.mu.Unlock()
		pc.pauseStartTime = pc.source.Now()
	}
}

// Resume continues scheduler time advancement.
func (pc *PausableClock) Resume() {
	if pc.isPaused.CompareAndSwap(true, false) {
		pc.mu.Lock()
		defer pc.mu.Unlock()

		if !pc.pauseStartTime.IsZero() {
			pc.totalPausedTime += pc.source.Now().Sub(pc.pauseStartTime)
			pc.pauseStartTime = time.Time{}
		}
	}
}

// IsPaused returns the current pause state.
func (pc *PausableClock) IsPaused() bool {
	return pc.isPaused.Load()
}

// TotalPauseDuration returns cumulative pause time, including the current
// pause if one is in progress.
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.isPaused.Load() && !pc.pauseStartTime.IsZero() {
		total += pc.source.Now().Sub(pc.pauseStartTime)
	}
	return total
}

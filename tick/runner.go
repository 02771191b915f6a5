package tick

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/particlekit"
)

// Runner is a reference fixed-tick scheduler for hosts that do not bring
// their own, and for the previewer and tests. It runs registered tasks on
// a drift-corrected deadline loop with pause awareness and without
// busy-wait.
type Runner struct {
	clock        *PausableClock
	tickInterval time.Duration

	// Number of processed ticks. Tasks become due against this counter.
	tickCount atomic.Int64

	mu    sync.Mutex
	tasks []*runnerTask

	nextTickDeadline time.Time

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
	stopped  atomic.Bool
}

// runnerTask is the Task handle handed back by RunTimer.
type runnerTask struct {
	cancelled atomic.Bool
	next      int64 // tick number of the next run
	period    int64
	fn        func(Task)
}

func (t *runnerTask) Cancel()           { t.cancelled.Store(true) }
func (t *runnerTask) IsCancelled() bool { return t.cancelled.Load() }

// NewRunner creates a runner ticking at the given interval. A Minecraft
// server ticks every 50ms; pass that for parity with in-game timing.
func NewRunner(tickInterval time.Duration) *Runner {
	return NewRunnerWith(tickInterval, NewPausableClock())
}

// NewRunnerWith creates a runner over a caller-owned pausable clock, so a
// host can share one pause authority between the scheduler and its UI.
func NewRunnerWith(tickInterval time.Duration, clock *PausableClock) *Runner {
	if tickInterval <= 0 {
		panic(fmt.Sprintf("tick: non-positive tick interval %v", tickInterval))
	}
	return &Runner{
		clock:        clock,
		tickInterval: tickInterval,
		stopChan:     make(chan struct{}),
	}
}

// RunTimer implements Scheduler. The first run happens delay ticks after
// the next processed tick, then every period ticks.
func (r *Runner) RunTimer(delay, period int64, fn func(Task)) Task {
	if period < 1 {
		panic(fmt.Sprintf("tick: period must be >= 1, got %d", period))
	}
	if delay < 0 {
		delay = 0
	}
	t := &runnerTask{
		next:   r.tickCount.Load() + delay + 1,
		period: period,
		fn:     fn,
	}
	r.mu.Lock()
	r.tasks = append(r.tasks, t)
	r.mu.Unlock()
	return t
}

// Start begins the scheduler loop. A runner that has been stopped cannot
// be started again.
func (r *Runner) Start() {
	if r.stopped.Load() {
		return
	}
	if r.running.CompareAndSwap(false, true) {
		r.wg.Add(1)
		go r.loop()
	}
}

// Stop halts the scheduler loop and waits for it to exit.
func (r *Runner) Stop() {
	r.stopOnce.Do(func() {
		r.stopped.Store(true)
		if r.running.CompareAndSwap(true, false) {
			close(r.stopChan)
			r.wg.Wait()
		}
	})
}

// Pause freezes scheduler time. Due deadlines carry over the pause.
func (r *Runner) Pause() { r.clock.Pause() }

// Resume continues scheduler time advancement.
func (r *Runner) Resume() { r.clock.Resume() }

// IsPaused reports whether the runner is paused.
func (r *Runner) IsPaused() bool { return r.clock.IsPaused() }

// TickCount returns the number of ticks processed so far.
func (r *Runner) TickCount() int64 { return r.tickCount.Load() }

// loop runs the main scheduling loop with pause awareness.
func (r *Runner) loop() {
	defer r.wg.Done()

	r.nextTickDeadline = r.clock.Now().Add(r.tickInterval)

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	for {
		select {
		case <-r.stopChan:
			return
		default:
		}

		var sleep time.Duration

		if r.clock.IsPaused() {
			// Longer sleep while paused to save CPU.
			sleep = r.tickInterval * 2
		} else {
			now := r.clock.Now()
			deadline := r.nextTickDeadline

			if !now.Before(deadline) {
				r.processTick()

				r.nextTickDeadline = r.nextTickDeadline.Add(r.tickInterval)

				// If the loop fell too far behind (debugger, suspend),
				// rebase instead of firing a catch-up burst.
				maxBehind := r.tickInterval * 2
				if now.Sub(r.nextTickDeadline) > maxBehind {
					r.nextTickDeadline = now.Add(r.tickInterval)
				}
				deadline = r.nextTickDeadline

				sleep = deadline.Sub(r.clock.Now())
				if sleep < 0 {
					sleep = 0
				}
			} else {
				sleep = deadline.Sub(now)
			}
		}

		if sleep > 0 {
			timer.Reset(sleep)
			select {
			case <-timer.C:
			case <-r.stopChan:
				return
			}
		}
	}
}

// processTick executes one tick: runs every due task in registration
// order and compacts cancelled tasks out of the registry.
func (r *Runner) processTick() {
	n := r.tickCount.Add(1)

	r.mu.Lock()
	due := make([]*runnerTask, 0, len(r.tasks))
	kept := r.tasks[:0]
	for _, t := range r.tasks {
		if t.IsCancelled() {
			continue
		}
		if t.next <= n {
			due = append(due, t)
			t.next += t.period
		}
		kept = append(kept, t)
	}
	r.tasks = kept
	r.mu.Unlock()

	// Callbacks run outside the registry lock so they can schedule new
	// tasks or cancel themselves.
	for _, t := range due {
		if t.IsCancelled() {
			continue
		}
		t.fn(t)
	}

	if n%1200 == 0 {
		particlekit.Logger().Debug("runner tick", "tick", n, "tasks", r.taskCount())
	}
}

func (r *Runner) taskCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tasks)
}

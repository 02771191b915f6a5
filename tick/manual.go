package tick

import "fmt"

// ManualScheduler is a deterministic in-process Scheduler. Nothing runs
// until Advance is called; each advanced tick executes due callbacks
// synchronously in registration order. Tests and offline rendering use it
// to step effects frame by frame.
//
// Not safe for concurrent use; it is meant to be driven from one
// goroutine.
type ManualScheduler struct {
	tick  int64
	tasks []*manualTask
}

type manualTask struct {
	cancelled bool
	next      int64
	period    int64
	fn        func(Task)
}

func (t *manualTask) Cancel()           { t.cancelled = true }
func (t *manualTask) IsCancelled() bool { return t.cancelled }

// NewManualScheduler creates a scheduler at tick zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// RunTimer implements Scheduler. The first run happens on the
// (delay+1)-th advanced tick from now.
func (m *ManualScheduler) RunTimer(delay, period int64, fn func(Task)) Task {
	if period < 1 {
		panic(fmt.Sprintf("tick: period must be >= 1, got %d", period))
	}
	if delay < 0 {
		delay = 0
	}
	t := &manualTask{
		next:   m.tick + delay + 1,
		period: period,
		fn:     fn,
	}
	m.tasks = append(m.tasks, t)
	return t
}

// Advance processes n ticks. Tasks registered by a callback first run on
// a later tick, never within the Advance that created them mid-tick.
func (m *ManualScheduler) Advance(n int) {
	for i := 0; i < n; i++ {
		m.tick++

		// Snapshot the length so tasks scheduled during this tick wait
		// for the next one.
		count := len(m.tasks)
		for j := 0; j < count; j++ {
			t := m.tasks[j]
			if t.cancelled || t.next > m.tick {
				continue
			}
			t.next += t.period
			t.fn(t)
		}

		kept := m.tasks[:0]
		for _, t := range m.tasks {
			if !t.cancelled {
				kept = append(kept, t)
			}
		}
		m.tasks = kept
	}
}

// Tick returns the number of ticks advanced so far.
func (m *ManualScheduler) Tick() int64 {
	return m.tick
}

// Pending returns the number of live registered tasks.
func (m *ManualScheduler) Pending() int {
	return len(m.tasks)
}

package engine

import (
	"sync"
	"time"
)

// Scheduler runs deferred and repeating callbacks from the frame loop. No
// task fires from its own goroutine: Tick drains everything due, so all
// callbacks execute on the single frame goroutine and never race with
// per-frame state. Teardown cancels every pending task so nothing writes
// into a disposed scene.
type Scheduler struct {
	clock Clock

	mu     sync.Mutex
	tasks  []*Task
	nextID uint64
}

// Task is a scheduled callback handle
type Task struct {
	id        uint64
	runAt     time.Time
	interval  time.Duration // 0 for one-shot
	fn        func()
	cancelled bool
}

// NewScheduler creates a scheduler on the given clock
func NewScheduler(clock Clock) *Scheduler {
	return &Scheduler{clock: clock}
}

// After schedules fn to run once, on the first Tick at or past d from now
func (s *Scheduler) After(d time.Duration, fn func()) *Task {
	return s.add(d, 0, fn)
}

// Every schedules fn to run repeatedly with period d, first firing after d
func (s *Scheduler) Every(d time.Duration, fn func()) *Task {
	return s.add(d, d, fn)
}

func (s *Scheduler) add(d, interval time.Duration, fn func()) *Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	t := &Task{
		id:       s.nextID,
		runAt:    s.clock.Now().Add(d),
		interval: interval,
		fn:       fn,
	}
	s.tasks = append(s.tasks, t)
	return t
}

// Cancel marks the task dead; it will never fire again. Safe to call more
// than once and safe on already-fired one-shot tasks.
func (s *Scheduler) Cancel(t *Task) {
	if t == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	t.cancelled = true
}

// CancelAll drops every pending task. Called on teardown.
func (s *Scheduler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tasks {
		t.cancelled = true
	}
	s.tasks = s.tasks[:0]
}

// Tick fires every task due at the current clock reading. Called once per
// frame. Callbacks run outside the lock so they may schedule or cancel
// freely; a repeating task fires at most once per Tick.
func (s *Scheduler) Tick() {
	now := s.clock.Now()

	s.mu.Lock()
	var due []*Task
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.cancelled {
			continue
		}
		if !t.runAt.After(now) {
			due = append(due, t)
			if t.interval > 0 {
				t.runAt = now.Add(t.interval)
				kept = append(kept, t)
			}
		} else {
			kept = append(kept, t)
		}
	}
	s.tasks = kept
	s.mu.Unlock()

	for _, t := range due {
		s.mu.Lock()
		dead := t.cancelled
		s.mu.Unlock()
		if !dead {
			t.fn()
		}
	}
}

// Pending returns the number of live scheduled tasks
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}

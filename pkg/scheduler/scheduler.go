package scheduler

import (
	"context"
	"sync"
	"time"
)

// Scheduler throttles outbound calls to the Meta API. Every remote request in
// the application goes through a single shared instance so that two limits are
// respected globally: at most maxConcurrent requests in flight, and a minimum
// spacing between the start of consecutive requests once the concurrency limit
// has been reached.
//
// Tasks start in FIFO order relative to submission. The scheduler never retries
// a task; errors from the task are returned to the caller untouched.
type Scheduler struct {
	maxConcurrent int
	minSpacing    time.Duration

	mu         sync.Mutex
	queue      []*waiter
	running    int
	lastStart  time.Time
	saturated  bool
	timerArmed bool

	// now is replaceable in tests
	now func() time.Time
}

type waiter struct {
	ready   chan struct{}
	started bool
}

// New creates a Scheduler with the given concurrency limit and minimum start
// spacing. Values below the minimum are clamped so a misconfigured instance
// still makes progress.
func New(maxConcurrent int, minSpacing time.Duration) *Scheduler {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	if minSpacing < 0 {
		minSpacing = 0
	}

	return &Scheduler{
		maxConcurrent: maxConcurrent,
		minSpacing:    minSpacing,
		now:           time.Now,
	}
}

// Schedule enqueues task and blocks until it has run or ctx is done. The
// task's own error is returned as-is. When ctx is cancelled before the task
// started, the task is removed from the queue and never runs.
func (s *Scheduler) Schedule(ctx context.Context, task func() error) error {
	w := &waiter{ready: make(chan struct{})}

	s.mu.Lock()
	s.queue = append(s.queue, w)
	s.dispatchLocked()
	s.mu.Unlock()

	select {
	case <-w.ready:
	case <-ctx.Done():
		s.mu.Lock()
		if !w.started {
			s.removeLocked(w)
			s.mu.Unlock()
			return ctx.Err()
		}
		s.mu.Unlock()
		// The slot was granted in the same instant the context expired.
		// Run the task anyway so the bookkeeping stays consistent.
	}

	err := task()

	s.mu.Lock()
	s.running--
	if s.running == 0 && len(s.queue) == 0 {
		// Scheduler drained completely: the next burst starts a new
		// spacing window.
		s.saturated = false
	}
	s.dispatchLocked()
	s.mu.Unlock()

	return err
}

// Running reports how many tasks are currently executing.
func (s *Scheduler) Running() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Pending reports how many tasks are waiting for a slot.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

// dispatchLocked starts queued tasks while a concurrency slot is free.
// Spacing is only enforced after the concurrency limit was reached in the
// current window; an initial burst fills the free slots immediately. When the
// head of the queue has to wait for spacing, a timer re-runs dispatch.
func (s *Scheduler) dispatchLocked() {
	for s.running < s.maxConcurrent && len(s.queue) > 0 {
		now := s.now()

		if s.running > 0 && s.saturated {
			if wait := s.minSpacing - now.Sub(s.lastStart); wait > 0 {
				s.armTimerLocked(wait)
				return
			}
		}

		w := s.queue[0]
		s.queue = s.queue[1:]

		s.running++
		s.lastStart = now
		if s.running == s.maxConcurrent {
			s.saturated = true
		}

		w.started = true
		close(w.ready)
	}
}

func (s *Scheduler) armTimerLocked(wait time.Duration) {
	if s.timerArmed {
		return
	}
	s.timerArmed = true

	time.AfterFunc(wait, func() {
		s.mu.Lock()
		s.timerArmed = false
		s.dispatchLocked()
		s.mu.Unlock()
	})
}

func (s *Scheduler) removeLocked(target *waiter) {
	for i, w := range s.queue {
		if w == target {
			s.queue = append(s.queue[:i], s.queue[i+1:]...)
			return
		}
	}
}

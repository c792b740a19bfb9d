// Package schedule models the simulated latency of the assistant (typing
// indicator, availability checks, message delivery) as explicit scheduled
// tasks. Production wiring uses real timers; tests use ManualScheduler and
// advance virtual time deterministically.
package schedule

import (
	"sort"
	"sync"
	"time"
)

// Task is a handle to one pending delayed callback.
type Task interface {
	// Cancel stops the task. It reports false when the callback already ran.
	Cancel() bool
}

// Scheduler runs a callback once after a delay.
type Scheduler interface {
	After(d time.Duration, fn func()) Task
}

// TimerScheduler backs the Scheduler interface with real timers.
type TimerScheduler struct{}

type timerTask struct {
	timer *time.Timer
}

func (t *timerTask) Cancel() bool {
	return t.timer.Stop()
}

// After schedules fn on a time.AfterFunc timer.
func (TimerScheduler) After(d time.Duration, fn func()) Task {
	return &timerTask{timer: time.AfterFunc(d, fn)}
}

// ManualScheduler queues tasks against a virtual clock. Tasks fire only when
// Advance moves the clock past their due time, in due-time order.
type ManualScheduler struct {
	mu      sync.Mutex
	clock   *ManualClock
	pending []*manualTask
	seq     int
}

type manualTask struct {
	owner     *ManualScheduler
	due       time.Time
	seq       int
	fn        func()
	cancelled bool
	fired     bool
}

func (t *manualTask) Cancel() bool {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()
	if t.fired || t.cancelled {
		return false
	}
	t.cancelled = true
	return true
}

// NewManualScheduler returns a scheduler bound to the supplied virtual clock.
func NewManualScheduler(clock *ManualClock) *ManualScheduler {
	return &ManualScheduler{clock: clock}
}

// After enqueues fn to run once the clock reaches now+d.
func (s *ManualScheduler) After(d time.Duration, fn func()) Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	task := &manualTask{owner: s, due: s.clock.Now().Add(d), seq: s.seq, fn: fn}
	s.pending = append(s.pending, task)
	return task
}

// Advance moves the clock forward and fires every task that became due, in
// due-time order. The clock steps through each task's due time before its
// callback runs, so callbacks that schedule further tasks see consistent time
// and those tasks fire too if they fall within the window.
func (s *ManualScheduler) Advance(d time.Duration) {
	deadline := s.clock.Now().Add(d)
	for {
		task := s.popDue(deadline)
		if task == nil {
			break
		}
		if task.due.After(s.clock.Now()) {
			s.clock.Set(task.due)
		}
		task.fn()
	}
	s.clock.Set(deadline)
}

func (s *ManualScheduler) popDue(deadline time.Time) *manualTask {
	s.mu.Lock()
	defer s.mu.Unlock()

	sort.SliceStable(s.pending, func(i, j int) bool {
		if s.pending[i].due.Equal(s.pending[j].due) {
			return s.pending[i].seq < s.pending[j].seq
		}
		return s.pending[i].due.Before(s.pending[j].due)
	})

	for i, task := range s.pending {
		if task.cancelled {
			continue
		}
		if task.due.After(deadline) {
			break
		}
		task.fired = true
		s.pending = append(s.pending[:i:i], s.pending[i+1:]...)
		return task
	}

	// Drop cancelled leftovers so the queue does not grow unbounded.
	kept := s.pending[:0]
	for _, task := range s.pending {
		if !task.cancelled {
			kept = append(kept, task)
		}
	}
	s.pending = kept
	return nil
}

// PendingCount reports how many live tasks are queued.
func (s *ManualScheduler) PendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, task := range s.pending {
		if !task.cancelled {
			count++
		}
	}
	return count
}

// Package testing provides test doubles for the loading package.
package testing

import (
	"sort"
	"sync"
	"time"
)

type task struct {
	due time.Duration
	seq uint64
	fn  func()
}

// FakeScheduler is a virtual clock. Timers only fire inside Advance, in due
// order and in scheduling order for equal due times.
type FakeScheduler struct {
	mu    sync.Mutex
	now   time.Duration
	seq   uint64
	tasks map[uint64]*task

	// Call tracking
	Scheduled []time.Duration
	Fired     int
}

// NewFakeScheduler creates a scheduler at virtual time zero.
func NewFakeScheduler() *FakeScheduler {
	return &FakeScheduler{tasks: make(map[uint64]*task)}
}

// AfterFunc schedules fn to run d after the current virtual time.
func (s *FakeScheduler) AfterFunc(d time.Duration, fn func()) func() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if d < 0 {
		d = 0
	}
	s.seq++
	id := s.seq
	s.tasks[id] = &task{due: s.now + d, seq: id, fn: fn}
	s.Scheduled = append(s.Scheduled, d)

	return func() bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		_, ok := s.tasks[id]
		delete(s.tasks, id)
		return ok
	}
}

// Advance moves the clock forward by d, running every timer that falls due
// on the way. Timers scheduled by a callback run too if they fall due
// before the new time.
func (s *FakeScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now + d
	s.mu.Unlock()

	for {
		s.mu.Lock()
		next := s.nextDue(target)
		if next == nil {
			s.now = target
			s.mu.Unlock()
			return
		}
		delete(s.tasks, next.seq)
		s.now = next.due
		s.Fired++
		s.mu.Unlock()

		// Callbacks may schedule or stop timers.
		next.fn()
	}
}

// nextDue returns the earliest task due at or before target. Callers hold mu.
func (s *FakeScheduler) nextDue(target time.Duration) *task {
	due := make([]*task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.due <= target {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].seq < due[j].seq
	})
	return due[0]
}

// Now returns the virtual time elapsed since creation.
func (s *FakeScheduler) Now() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// Pending returns the number of timers not yet fired or stopped.
func (s *FakeScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

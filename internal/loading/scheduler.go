package loading

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Scheduler runs fn once after d. Callbacks must run on the same logical
// thread as the Manager calls. The returned stop function cancels the
// timer and reports whether it was still pending.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) (stop func() bool)
}

// timerMsg is delivered by a TeaScheduler tick.
type timerMsg struct {
	owner *TeaScheduler
	id    uint64
}

// TeaScheduler turns timers into Bubble Tea commands so every callback runs
// inside the program's Update. Route every message through Update and
// return its command.
type TeaScheduler struct {
	next   uint64
	tasks  map[uint64]func()
	queued []tea.Cmd
}

// NewTeaScheduler creates an empty scheduler.
func NewTeaScheduler() *TeaScheduler {
	return &TeaScheduler{tasks: make(map[uint64]func())}
}

// AfterFunc queues a tick that will run fn when it comes back through Update.
func (s *TeaScheduler) AfterFunc(d time.Duration, fn func()) func() bool {
	s.next++
	id := s.next
	s.tasks[id] = fn
	s.queued = append(s.queued, tea.Tick(d, func(time.Time) tea.Msg {
		return timerMsg{owner: s, id: id}
	}))
	return func() bool {
		_, ok := s.tasks[id]
		delete(s.tasks, id)
		return ok
	}
}

// Pending returns the number of timers not yet fired or stopped.
func (s *TeaScheduler) Pending() int {
	return len(s.tasks)
}

// Update runs the callback for a timer message owned by this scheduler and
// returns the commands for any timers queued since the last call.
func (s *TeaScheduler) Update(msg tea.Msg) tea.Cmd {
	if tm, ok := msg.(timerMsg); ok && tm.owner == s {
		if fn, ok := s.tasks[tm.id]; ok {
			delete(s.tasks, tm.id)
			fn()
		}
	}
	return s.Cmd()
}

// Cmd drains the queued ticks into one command. Nil when nothing is queued.
func (s *TeaScheduler) Cmd() tea.Cmd {
	if len(s.queued) == 0 {
		return nil
	}
	cmds := s.queued
	s.queued = nil
	return tea.Batch(cmds...)
}

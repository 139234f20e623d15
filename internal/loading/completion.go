package loading

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Completion signals that an asynchronous hide finished. It never fails.
// Resolution happens on the scheduler thread; Done may be waited on from
// any goroutine.
type Completion struct {
	done      chan struct{}
	resolved  bool
	callbacks []func()
}

func newCompletion() *Completion {
	return &Completion{done: make(chan struct{})}
}

func resolvedCompletion() *Completion {
	c := newCompletion()
	c.resolve()
	return c
}

// Done is closed once the completion resolves.
func (c *Completion) Done() <-chan struct{} {
	return c.done
}

// Resolved reports whether the completion has resolved.
func (c *Completion) Resolved() bool {
	return c.resolved
}

// OnDone runs fn after resolution, immediately if already resolved.
// Callbacks run in registration order on the scheduler thread.
func (c *Completion) OnDone(fn func()) {
	if c.resolved {
		fn()
		return
	}
	c.callbacks = append(c.callbacks, fn)
}

// Cmd returns a command that emits msg once the completion resolves.
func (c *Completion) Cmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		<-c.done
		return msg
	}
}

func (c *Completion) resolve() {
	if c.resolved {
		return
	}
	c.resolved = true
	close(c.done)
	callbacks := c.callbacks
	c.callbacks = nil
	for _, fn := range callbacks {
		fn()
	}
}

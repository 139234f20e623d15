package message

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/imgdeck/internal/ui"
)

// Timer schedules a callback. It matches loading.Scheduler so a Board can
// share the UI model's scheduler.
type Timer interface {
	AfterFunc(d time.Duration, fn func()) (stop func() bool)
}

// DefaultLimit caps the number of toasts a Board keeps.
const DefaultLimit = 5

type entry struct {
	msg  Message
	stop func() bool
}

// Board is a Sink that keeps the newest messages and expires them on a
// Timer. It must be used on the timer's goroutine.
type Board struct {
	timer   Timer
	limit   int
	entries []entry
}

// NewBoard creates a board expiring messages through timer.
func NewBoard(timer Timer) *Board {
	return &Board{timer: timer, limit: DefaultLimit}
}

// SetLimit changes how many messages are kept; the oldest are dropped first.
func (b *Board) SetLimit(n int) {
	if n > 0 {
		b.limit = n
	}
	b.trim()
}

// Add implements Sink.
func (b *Board) Add(msg Message) {
	e := entry{msg: msg}
	if msg.Duration > 0 {
		id := msg.ID
		e.stop = b.timer.AfterFunc(msg.Duration, func() { b.drop(id) })
	}
	b.entries = append(b.entries, e)
	b.trim()
}

// Remove implements Sink.
func (b *Board) Remove(id ID) {
	for _, e := range b.entries {
		if e.msg.ID == id && e.stop != nil {
			e.stop()
		}
	}
	b.drop(id)
}

// Clear implements Sink.
func (b *Board) Clear() {
	for _, e := range b.entries {
		if e.stop != nil {
			e.stop()
		}
	}
	b.entries = nil
}

// Messages returns the displayed messages, oldest first.
func (b *Board) Messages() []Message {
	out := make([]Message, 0, len(b.entries))
	for _, e := range b.entries {
		out = append(out, e.msg)
	}
	return out
}

func (b *Board) drop(id ID) {
	for i, e := range b.entries {
		if e.msg.ID == id {
			b.entries = append(b.entries[:i], b.entries[i+1:]...)
			return
		}
	}
}

func (b *Board) trim() {
	for len(b.entries) > b.limit {
		if b.entries[0].stop != nil {
			b.entries[0].stop()
		}
		b.entries = b.entries[1:]
	}
}

// View renders the messages one per line, newest last.
func (b *Board) View() string {
	lines := make([]string, 0, len(b.entries))
	for _, e := range b.entries {
		lines = append(lines, render(e.msg))
	}
	return strings.Join(lines, "\n")
}

func render(msg Message) string {
	var style lipgloss.Style
	var symbol string
	switch msg.Level {
	case LevelSuccess:
		style, symbol = ui.SuccessStyle(), ui.SymbolSuccess
	case LevelError:
		style, symbol = ui.ErrorStyle(), ui.SymbolFail
	case LevelWarning:
		style, symbol = ui.WarningStyle(), ui.SymbolWarning
	default:
		style, symbol = ui.InfoStyle(), ui.SymbolInfo
	}
	return style.Render(symbol) + " " + msg.Content
}

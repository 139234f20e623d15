// Package message shows short-lived toast notifications.
//
// A Service accepts messages from anywhere in the application. Until a Sink
// is registered (usually a Board owned by the UI model) messages are queued
// and flushed in order on SetSink.
package message

import (
	"time"

	"github.com/rileyhilliard/imgdeck/internal/logger"
)

// DefaultDuration is how long a toast stays up unless told otherwise.
const DefaultDuration = 3 * time.Second

// Level is the severity of a message.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// ID identifies one message.
type ID uint64

// Message is a single toast.
type Message struct {
	ID      ID
	Content string
	Level   Level
	// Duration is how long the toast is displayed. Zero keeps it until
	// removed.
	Duration time.Duration
}

// Sink displays messages.
type Sink interface {
	Add(msg Message)
	Remove(id ID)
	Clear()
}

// Service routes messages to the registered sink.
type Service struct {
	sink     Sink
	pending  []Message
	nextID   ID
	duration time.Duration
	log      logger.Logger
}

// NewService creates a service with no sink.
func NewService() *Service {
	return &Service{duration: DefaultDuration, log: logger.Default()}
}

// SetDuration changes the display time used by the level shortcuts.
func (s *Service) SetDuration(d time.Duration) {
	if d >= 0 {
		s.duration = d
	}
}

// SetLogger sets the logger used for queueing diagnostics.
func (s *Service) SetLogger(l logger.Logger) {
	s.log = l
}

// SetSink registers the display and flushes queued messages into it.
// A nil sink unregisters it.
func (s *Service) SetSink(sink Sink) {
	s.sink = sink
	if sink == nil {
		return
	}
	pending := s.pending
	s.pending = nil
	for _, msg := range pending {
		sink.Add(msg)
	}
}

// Pending returns the messages queued while no sink is registered.
func (s *Service) Pending() []Message {
	out := make([]Message, len(s.pending))
	copy(out, s.pending)
	return out
}

// Show displays content at level for duration and returns its ID. A
// negative duration means the service default.
func (s *Service) Show(content string, level Level, duration time.Duration) ID {
	if duration < 0 {
		duration = s.duration
	}
	if level == "" {
		level = LevelInfo
	}
	s.nextID++
	msg := Message{ID: s.nextID, Content: content, Level: level, Duration: duration}

	if s.sink == nil {
		s.log.Debug("message %d queued: no sink", msg.ID)
		s.pending = append(s.pending, msg)
		return msg.ID
	}
	s.sink.Add(msg)
	return msg.ID
}

// Success shows a success message.
func (s *Service) Success(content string) ID {
	return s.Show(content, LevelSuccess, s.duration)
}

// Error shows an error message.
func (s *Service) Error(content string) ID {
	return s.Show(content, LevelError, s.duration)
}

// Warning shows a warning message.
func (s *Service) Warning(content string) ID {
	return s.Show(content, LevelWarning, s.duration)
}

// Info shows an informational message.
func (s *Service) Info(content string) ID {
	return s.Show(content, LevelInfo, s.duration)
}

// Remove dismisses one message, queued or displayed.
func (s *Service) Remove(id ID) {
	for i, msg := range s.pending {
		if msg.ID == id {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
	if s.sink != nil {
		s.sink.Remove(id)
	}
}

// Clear dismisses every message.
func (s *Service) Clear() {
	s.pending = nil
	if s.sink != nil {
		s.sink.Clear()
	}
}

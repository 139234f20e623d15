// Package logger provides a simple logging interface for imgdeck components.
// It allows packages to log debug, info, warn, and error messages without
// being coupled to a specific logging implementation. The default
// implementation is backed by zerolog.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// DebugEnv enables debug output for environment-based loggers when set.
const DebugEnv = "IMGDECK_DEBUG"

// Logger defines the interface for logging operations.
// All methods accept a format string and arguments, similar to fmt.Printf.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// zeroLogger implements Logger on top of a zerolog.Logger.
type zeroLogger struct {
	prefix string
	base   zerolog.Logger
	// envDebug gates Debug on DebugEnv at call time instead of on the level.
	envDebug bool
}

// NewEnvLogger creates a logger that writes to stderr and respects the
// IMGDECK_DEBUG environment variable. The prefix is prepended to all log
// messages (e.g., "[loading]" or "[theme]").
func NewEnvLogger(prefix string) Logger {
	return newEnvLogger(os.Stderr, prefix)
}

func newEnvLogger(w io.Writer, prefix string) Logger {
	console := zerolog.ConsoleWriter{Out: w, NoColor: true, PartsExclude: []string{zerolog.TimestampFieldName}}
	return &zeroLogger{
		prefix:   prefix,
		base:     zerolog.New(console).Level(zerolog.DebugLevel),
		envDebug: true,
	}
}

// New creates a logger writing JSON lines to w at the given level
// ("debug", "info", "warn", "error"). An empty level means info.
// Used when the terminal belongs to the TUI and logs go to a file.
func New(w io.Writer, prefix, level string) (Logger, error) {
	lvl := zerolog.InfoLevel
	if level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(level))
		if err != nil {
			return nil, err
		}
		lvl = parsed
	}
	return &zeroLogger{
		prefix: prefix,
		base:   zerolog.New(w).Level(lvl).With().Timestamp().Logger(),
	}, nil
}

func (l *zeroLogger) msg(format string, args ...interface{}) string {
	text := fmt.Sprintf(format, args...)
	if l.prefix == "" {
		return text
	}
	return l.prefix + " " + text
}

func (l *zeroLogger) Debug(format string, args ...interface{}) {
	if l.envDebug && os.Getenv(DebugEnv) == "" {
		return
	}
	l.base.Debug().Msg(l.msg(format, args...))
}

func (l *zeroLogger) Info(format string, args ...interface{}) {
	l.base.Info().Msg(l.msg(format, args...))
}

func (l *zeroLogger) Warn(format string, args ...interface{}) {
	l.base.Warn().Msg(l.msg(format, args...))
}

func (l *zeroLogger) Error(format string, args ...interface{}) {
	l.base.Error().Msg(l.msg(format, args...))
}

// noopLogger implements Logger but discards all messages.
type noopLogger struct{}

// Noop returns a logger that discards all messages.
func Noop() Logger {
	return &noopLogger{}
}

func (l *noopLogger) Debug(format string, args ...interface{}) {}
func (l *noopLogger) Info(format string, args ...interface{})  {}
func (l *noopLogger) Warn(format string, args ...interface{})  {}
func (l *noopLogger) Error(format string, args ...interface{}) {}

// LogMessage represents a captured log message.
type LogMessage struct {
	Level   string
	Message string
}

// BufferLogger captures log messages for testing.
type BufferLogger struct {
	Messages []LogMessage
}

// NewBufferLogger creates a logger that captures messages for inspection.
func NewBufferLogger() *BufferLogger {
	return &BufferLogger{
		Messages: make([]LogMessage, 0),
	}
}

func (l *BufferLogger) Debug(format string, args ...interface{}) {
	l.Messages = append(l.Messages, LogMessage{Level: "debug", Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Info(format string, args ...interface{}) {
	l.Messages = append(l.Messages, LogMessage{Level: "info", Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Warn(format string, args ...interface{}) {
	l.Messages = append(l.Messages, LogMessage{Level: "warn", Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Error(format string, args ...interface{}) {
	l.Messages = append(l.Messages, LogMessage{Level: "error", Message: fmt.Sprintf(format, args...)})
}

// HasLevel returns true if any message was logged at the given level.
func (l *BufferLogger) HasLevel(level string) bool {
	for _, m := range l.Messages {
		if m.Level == level {
			return true
		}
	}
	return false
}

// Clear removes all captured messages.
func (l *BufferLogger) Clear() {
	l.Messages = l.Messages[:0]
}

var defaultLogger = NewEnvLogger("")

// Default returns the default logger for the package.
func Default() Logger {
	return defaultLogger
}

// SetDefault sets the default logger for the package.
func SetDefault(l Logger) {
	defaultLogger = l
}

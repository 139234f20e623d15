// Package theme tracks the light/dark appearance of the terminal UI.
package theme

import (
	"strings"

	"github.com/muesli/termenv"
	"github.com/rileyhilliard/imgdeck/internal/errors"
)

// Mode is the user's theme preference.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
	Auto  Mode = "auto" // follow the terminal background
)

// Modes is the Cycle order.
var Modes = []Mode{Light, Dark, Auto}

// ParseMode converts a config or flag value to a Mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Modes {
		if m == known {
			return m, nil
		}
	}
	return "", errors.Newf(errors.ErrTheme, "Use light, dark, or auto", "Unknown theme %q", s)
}

// Detector reports whether the terminal background is dark.
type Detector func() bool

// Manager holds the current mode and notifies listeners when the actual
// theme changes. It is not safe for concurrent use.
type Manager struct {
	mode      Mode
	detect    Detector
	system    Mode
	listeners []func(Mode)
}

// NewManager creates a manager in mode and reads the background once. A
// nil detector queries the terminal through termenv, which writes an OSC
// request to the tty, so build the manager before a tea.Program starts.
func NewManager(mode Mode, detect Detector) *Manager {
	if detect == nil {
		detect = termenv.HasDarkBackground
	}
	if _, err := ParseMode(string(mode)); err != nil {
		mode = Auto
	}
	m := &Manager{mode: mode, detect: detect}
	m.system = m.readBackground()
	return m
}

func (m *Manager) readBackground() Mode {
	if m.detect() {
		return Dark
	}
	return Light
}

// Mode returns the preference, which may be Auto.
func (m *Manager) Mode() Mode {
	return m.mode
}

// Current returns the actual theme: Light or Dark.
func (m *Manager) Current() Mode {
	if m.mode == Auto {
		return m.system
	}
	return m.mode
}

// IsDark reports whether the actual theme is dark.
func (m *Manager) IsDark() bool {
	return m.Current() == Dark
}

// Set switches to mode. Listeners are notified even when the actual theme
// is unchanged.
func (m *Manager) Set(mode Mode) error {
	parsed, err := ParseMode(string(mode))
	if err != nil {
		return err
	}
	m.mode = parsed
	m.notify()
	return nil
}

// Cycle moves to the next mode: light, dark, auto, light.
func (m *Manager) Cycle() Mode {
	next := Modes[0]
	for i, mode := range Modes {
		if mode == m.mode {
			next = Modes[(i+1)%len(Modes)]
			break
		}
	}
	m.mode = next
	m.notify()
	return next
}

// Toggle flips between light and dark starting from the actual theme.
// Auto mode is left for an explicit one.
func (m *Manager) Toggle() Mode {
	next := Dark
	if m.Current() == Dark {
		next = Light
	}
	m.mode = next
	m.notify()
	return next
}

// OnChange registers fn to receive the actual theme after every change.
func (m *Manager) OnChange(fn func(Mode)) {
	if fn != nil {
		m.listeners = append(m.listeners, fn)
	}
}

// Refresh re-reads the terminal background. In auto mode listeners are
// notified when it changed; it reports whether it did. The termenv detector
// must not run while a tea.Program is reading input.
func (m *Manager) Refresh() bool {
	system := m.readBackground()
	changed := system != m.system
	m.system = system
	if changed && m.mode == Auto {
		m.notify()
	}
	return changed
}

func (m *Manager) notify() {
	current := m.Current()
	for _, fn := range m.listeners {
		fn(current)
	}
}

package loading

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Handle is the caller's reference to one overlay.
type Handle struct {
	m  *Manager
	id InstanceID
}

// ID returns the overlay identity.
func (h *Handle) ID() InstanceID {
	return h.id
}

// Released reports whether Destroy finished and dropped the manager reference.
func (h *Handle) Released() bool {
	return h.m == nil
}

// State returns the overlay's lifecycle state.
func (h *Handle) State() State {
	if h.m == nil {
		return StateDestroyed
	}
	return h.m.State(h.id)
}

// Config returns the stored config; the zero Config once destroyed.
func (h *Handle) Config() Config {
	if h.m == nil {
		return Config{}
	}
	cfg, _ := h.m.Config(h.id)
	return cfg
}

// Hide starts hiding after delay. See Manager.Hide.
func (h *Handle) Hide(delay time.Duration) *Completion {
	if h.m == nil {
		return resolvedCompletion()
	}
	return h.m.Hide(h.id, delay)
}

// Destroy hides immediately and releases the handle once detached.
func (h *Handle) Destroy() *Completion {
	if h.m == nil {
		return resolvedCompletion()
	}
	c := h.m.Destroy(h.id)
	c.OnDone(func() { h.m = nil })
	return c
}

// UpdateText replaces the label. Empty text is ignored.
func (h *Handle) UpdateText(text string) {
	if h.m != nil {
		h.m.UpdateText(h.id, text)
	}
}

// UpdateColor replaces the spinner highlight. An empty color is ignored.
func (h *Handle) UpdateColor(color lipgloss.Color) {
	if h.m != nil {
		h.m.UpdateColor(h.id, color)
	}
}

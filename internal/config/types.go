package config

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/imgdeck/internal/loading"
	"github.com/rileyhilliard/imgdeck/internal/message"
	"github.com/rileyhilliard/imgdeck/internal/ui"
)

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .imgdeck.yaml configuration file.
type Config struct {
	Version int `yaml:"version" mapstructure:"version" validate:"gte=0"`

	// Theme is "light", "dark", or "auto" (follow the terminal background).
	Theme string `yaml:"theme" mapstructure:"theme" validate:"theme"`

	Loading LoadingConfig `yaml:"loading" mapstructure:"loading"`
	Toast   ToastConfig   `yaml:"toast" mapstructure:"toast"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// LoadingConfig holds the busy-indicator defaults.
type LoadingConfig struct {
	// Text is the label shown under the spinner.
	Text string `yaml:"text" mapstructure:"text" validate:"required"`

	// Mask dims the area behind the overlay.
	Mask bool `yaml:"mask" mapstructure:"mask"`

	// Color is the spinner highlight: a hex color or an ANSI color number.
	Color string `yaml:"color" mapstructure:"color" validate:"omitempty,hexcolor|numeric"`

	// Fullscreen covers the whole terminal instead of the target pane.
	Fullscreen bool `yaml:"fullscreen" mapstructure:"fullscreen"`

	ZIndex int `yaml:"z_index" mapstructure:"z_index"`

	// Anchor places non-fullscreen overlays as stacked boxes:
	// top-left, top-center, top-right, bottom-left, bottom-center, bottom-right.
	// Empty covers the whole pane.
	Anchor string `yaml:"anchor" mapstructure:"anchor" validate:"anchor"`

	// Offset is the distance in rows from the anchor edge.
	Offset int `yaml:"offset" mapstructure:"offset" validate:"gte=0"`

	// Inset is the distance in columns from the anchor side.
	Inset int `yaml:"inset" mapstructure:"inset" validate:"gte=0"`

	// Gap is the spacing in rows between stacked overlays.
	Gap int `yaml:"gap" mapstructure:"gap" validate:"gte=0"`

	ShowDelay time.Duration `yaml:"show_delay" mapstructure:"show_delay" validate:"gte=0"`
	Fade      time.Duration `yaml:"fade" mapstructure:"fade" validate:"gte=0"`
}

// ToastConfig controls notification toasts.
type ToastConfig struct {
	// Duration is how long a toast stays up. Zero keeps toasts until dismissed.
	Duration time.Duration `yaml:"duration" mapstructure:"duration" validate:"gte=0"`

	// Limit caps the number of toasts on screen.
	Limit int `yaml:"limit" mapstructure:"limit" validate:"gte=1,lte=20"`
}

// LogConfig controls diagnostic logging. The TUI owns the terminal, so logs
// go to a file.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level" mapstructure:"level" validate:"oneof=debug info warn error"`

	// File is the log path. Empty disables logging. Supports ~.
	File string `yaml:"file" mapstructure:"file"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Theme:   "auto",
		Loading: LoadingConfig{
			Text:       "Loading...",
			Mask:       true,
			Color:      string(ui.ColorAccent),
			Fullscreen: true,
			ZIndex:     9999,
			Offset:     loading.DefaultOffset,
			Inset:      loading.DefaultInset,
			Gap:        loading.DefaultGap,
			ShowDelay:  loading.DefaultShowDelay,
			Fade:       loading.DefaultFadeDuration,
		},
		Toast: ToastConfig{
			Duration: message.DefaultDuration,
			Limit:    message.DefaultLimit,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadingDefaults converts the loading section into overlay defaults,
// transition timings, and stacking layout.
func (c *Config) LoadingDefaults() (loading.Config, loading.Timings, loading.Layout, error) {
	anchor, err := loading.ParseAnchor(c.Loading.Anchor)
	if err != nil {
		return loading.Config{}, loading.Timings{}, loading.Layout{}, err
	}

	cfg := loading.Config{
		Text:       c.Loading.Text,
		Mask:       c.Loading.Mask,
		Color:      lipgloss.Color(strings.TrimSpace(c.Loading.Color)),
		Fullscreen: c.Loading.Fullscreen,
		ZIndex:     c.Loading.ZIndex,
		Anchor:     anchor,
	}
	timings := loading.Timings{ShowDelay: c.Loading.ShowDelay, Fade: c.Loading.Fade}
	layout := loading.Layout{Offset: c.Loading.Offset, Inset: c.Loading.Inset, Gap: c.Loading.Gap}
	return cfg, timings, layout, nil
}

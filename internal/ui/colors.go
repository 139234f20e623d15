package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Semantic colors for status indication
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
	ColorInfo    lipgloss.Color = "6" // Cyan
)

// Text colors for content hierarchy
const (
	ColorPrimary   lipgloss.Color = "7" // White/default
	ColorSecondary lipgloss.Color = "4" // Blue
	ColorMuted     lipgloss.Color = "8" // Gray (bright black)
)

// ColorAccent is the default busy-indicator highlight.
const ColorAccent lipgloss.Color = "#1677ff"

// Light and dark surface palette. Each pair is picked by the theme signal.
const (
	ColorSurfaceLight lipgloss.Color = "#f5f5f5"
	ColorSurfaceDark  lipgloss.Color = "#141414"

	// Backdrop behind a masked overlay.
	ColorMaskLight lipgloss.Color = "#e8e8e8"
	ColorMaskDark  lipgloss.Color = "#0a0a0a"

	ColorTextLight lipgloss.Color = "#666666"
	ColorTextDark  lipgloss.Color = "#cccccc"

	ColorBorderLight lipgloss.Color = "#d9d9d9"
	ColorBorderDark  lipgloss.Color = "#3a3a3a"

	ColorTitleLight lipgloss.Color = "#1f1f1f"
	ColorTitleDark  lipgloss.Color = "#fafafa"
)

// Pick returns the dark variant when dark is set, otherwise the light one.
func Pick(dark bool, light, darkColor lipgloss.Color) lipgloss.Color {
	if dark {
		return darkColor
	}
	return light
}

// SuccessStyle returns the style for success messages.
func SuccessStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorSuccess)
}

// ErrorStyle returns the style for error messages.
func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorError)
}

// WarningStyle returns the style for warning messages.
func WarningStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorWarning)
}

// InfoStyle returns the style for informational messages.
func InfoStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorInfo)
}

// MutedStyle returns the style for secondary text.
func MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorMuted)
}

// DisableColors switches lipgloss to monochrome output (for --no-color).
func DisableColors() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

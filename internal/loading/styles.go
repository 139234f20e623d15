package loading

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/imgdeck/internal/ui"
)

// StyleName keys a StyleTable.
type StyleName string

const (
	StyleBase       StyleName = "base"
	StyleFullscreen StyleName = "fullscreen"
	StyleAnchored   StyleName = "anchored"
	StyleMask       StyleName = "mask"
	StyleSpinner    StyleName = "spinner"
	StyleText       StyleName = "text"
	StyleLeaving    StyleName = "leaving"
)

// StyleSet is a light/dark pair of styles.
type StyleSet struct {
	Light lipgloss.Style
	Dark  lipgloss.Style
}

// Pick returns the variant for the theme signal.
func (s StyleSet) Pick(dark bool) lipgloss.Style {
	if dark {
		return s.Dark
	}
	return s.Light
}

// StyleTable holds the named style sets overlays are built from.
type StyleTable map[StyleName]StyleSet

// Apply composes the named sets in order; a later set wins for every
// property it sets explicitly. Padding and margins are not carried across
// sets (lipgloss Inherit semantics), so only the last set should set them.
func (t StyleTable) Apply(dark bool, names ...StyleName) lipgloss.Style {
	s := lipgloss.NewStyle()
	for _, name := range names {
		set, ok := t[name]
		if !ok {
			continue
		}
		s = set.Pick(dark).Inherit(s)
	}
	return s
}

func both(s lipgloss.Style) StyleSet {
	return StyleSet{Light: s, Dark: s}
}

// DefaultStyles returns the built-in overlay styles.
func DefaultStyles() StyleTable {
	return StyleTable{
		StyleBase: {
			Light: lipgloss.NewStyle().Foreground(ui.ColorTextLight),
			Dark:  lipgloss.NewStyle().Foreground(ui.ColorTextDark),
		},
		StyleFullscreen: both(lipgloss.NewStyle().
			AlignHorizontal(lipgloss.Center).
			AlignVertical(lipgloss.Center)),
		StyleAnchored: {
			Light: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ui.ColorBorderLight).
				Padding(0, 1),
			Dark: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ui.ColorBorderDark).
				Padding(0, 1),
		},
		StyleMask: {
			Light: lipgloss.NewStyle().Background(ui.ColorMaskLight),
			Dark:  lipgloss.NewStyle().Background(ui.ColorMaskDark),
		},
		// Foreground is the ring track, used when no accent is set.
		StyleSpinner: {
			Light: lipgloss.NewStyle().Foreground(ui.ColorBorderLight),
			Dark:  lipgloss.NewStyle().Foreground(ui.ColorBorderDark).Bold(true),
		},
		StyleText: {
			Light: lipgloss.NewStyle().Foreground(ui.ColorTextLight),
			Dark:  lipgloss.NewStyle().Foreground(ui.ColorTextDark),
		},
		StyleLeaving: both(lipgloss.NewStyle().Faint(true)),
	}
}

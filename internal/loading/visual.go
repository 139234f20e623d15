package loading

import (
	"github.com/charmbracelet/lipgloss"
)

// phase is the transition state of a visual's styling.
type phase int

const (
	phaseHidden  phase = iota // attached, not painted yet
	phaseShown                // fully painted
	phaseLeaving              // faded and nudged, about to be detached
)

type node struct {
	style lipgloss.Style
	text  string
}

// Placement is where the layout engine put an anchored visual, relative to
// its container.
type Placement struct {
	Vertical VerticalEdge
	// Offset is the distance in rows from the Vertical edge.
	Offset     int
	Horizontal HorizontalEdge
	// Inset is the distance in columns from the Horizontal edge. Unused
	// when centered.
	Inset int
}

// Visual is the rendered tree of one overlay: root, optional mask, spinner
// and text nodes. It is owned by exactly one instance.
type Visual struct {
	container  Container
	fullscreen bool
	anchor     Anchor
	zIndex     int
	mask       bool

	root    lipgloss.Style
	leaving lipgloss.Style
	spinner node
	text    node

	phase     phase
	placement Placement

	stage *Stage
	seq   uint64
}

// Attached reports whether the visual is currently on a stage.
func (v *Visual) Attached() bool {
	return v != nil && v.stage != nil
}

// Text returns the rendered label.
func (v *Visual) Text() string {
	return v.text.text
}

// Accent returns the spinner highlight color.
func (v *Visual) Accent() lipgloss.Color {
	if c, ok := v.spinner.style.GetForeground().(lipgloss.Color); ok {
		return c
	}
	return ""
}

// Placement returns the last position assigned by the layout engine.
func (v *Visual) Placement() Placement {
	return v.placement
}

// Shown reports whether the visual is painted by the compositor.
func (v *Visual) Shown() bool {
	return v.phase != phaseHidden
}

// Leaving reports whether the disappear transition is applied.
func (v *Visual) Leaving() bool {
	return v.phase == phaseLeaving
}

// anchored reports whether the visual renders as a compact placed box.
func (v *Visual) anchored() bool {
	return !v.fullscreen && v.anchor != AnchorNone
}

func (v *Visual) setText(text string) {
	v.text.text = text
}

func (v *Visual) setColor(c lipgloss.Color) {
	v.spinner.style = v.spinner.style.Foreground(c)
}

func (v *Visual) place(p Placement) {
	v.placement = p
}

// styled applies the leaving fade on top of s while the visual is leaving.
func (v *Visual) styled(s lipgloss.Style) lipgloss.Style {
	if v.phase == phaseLeaving {
		return s.Inherit(v.leaving)
	}
	return s
}

func (v *Visual) content(glyph string) string {
	spin := v.styled(v.spinner.style).Render(glyph)
	label := v.styled(v.text.style).Render(v.text.text)
	return lipgloss.JoinVertical(lipgloss.Center, spin, label)
}

func (v *Visual) box(glyph string) string {
	return v.styled(v.root).Render(v.content(glyph))
}

// Height is the measured content height in rows of an anchored visual.
func (v *Visual) Height() int {
	return lipgloss.Height(v.box(" "))
}

// Width is the measured content width in columns of an anchored visual.
func (v *Visual) Width() int {
	return lipgloss.Width(v.box(" "))
}

// render returns the block to paint and its top-left corner in viewport
// coordinates, given the area the visual covers.
func (v *Visual) render(area Rect, glyph string) (string, int, int) {
	if v.anchored() {
		block := v.box(glyph)
		w, h := lipgloss.Width(block), lipgloss.Height(block)
		x, y := v.origin(area, w, h)
		if v.phase == phaseLeaving {
			y--
		}
		return block, x, y
	}

	if v.mask {
		block := v.styled(v.root).
			Width(area.Width).
			Height(area.Height).
			Render(v.content(glyph))
		return block, area.X, area.Y
	}

	block := v.content(glyph)
	w, h := lipgloss.Width(block), lipgloss.Height(block)
	return block, area.X + (area.Width-w)/2, area.Y + (area.Height-h)/2
}

func (v *Visual) origin(area Rect, w, h int) (int, int) {
	p := v.placement
	var x, y int
	switch p.Horizontal {
	case EdgeCenter:
		x = area.X + (area.Width-w)/2
	case EdgeRight:
		x = area.X + area.Width - p.Inset - w
	default:
		x = area.X + p.Inset
	}
	switch p.Vertical {
	case EdgeBottom:
		y = area.Y + area.Height - p.Offset - h
	default:
		y = area.Y + p.Offset
	}
	return x, y
}

package loading

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/x/ansi"
	"github.com/rileyhilliard/imgdeck/internal/ui"
)

// Stage is the terminal document overlays attach to: the viewport, its
// root container, the attached visuals, and the keyframe stylesheet.
type Stage struct {
	width, height int
	root          *Pane
	visuals       []*Visual
	seq           uint64
	keyframes     map[string]spinner.Spinner
	frame         int
}

// NewStage creates a stage for a viewport of the given size.
func NewStage(width, height int) *Stage {
	return &Stage{
		width:     width,
		height:    height,
		root:      NewPane("root", Rect{Width: width, Height: height}),
		keyframes: make(map[string]spinner.Spinner),
	}
}

// Root returns the container covering the whole viewport.
func (s *Stage) Root() Container {
	return s.root
}

// Size returns the viewport size in cells.
func (s *Stage) Size() (int, int) {
	return s.width, s.height
}

// Resize updates the viewport and the root container.
func (s *Stage) Resize(width, height int) {
	s.width, s.height = width, height
	s.root.SetBounds(Rect{Width: width, Height: height})
}

// Attach adds v on top of the visuals already attached. Attaching an
// attached visual is a no-op.
func (s *Stage) Attach(v *Visual) {
	if v == nil || v.stage == s {
		return
	}
	s.seq++
	v.stage = s
	v.seq = s.seq
	s.visuals = append(s.visuals, v)
}

// Detach removes v from the stage. It reports whether v was attached.
func (s *Stage) Detach(v *Visual) bool {
	if v == nil || v.stage != s {
		return false
	}
	for i, attached := range s.visuals {
		if attached == v {
			s.visuals = append(s.visuals[:i], s.visuals[i+1:]...)
			break
		}
	}
	v.stage = nil
	return true
}

// Len returns the number of attached visuals.
func (s *Stage) Len() int {
	return len(s.visuals)
}

// Attached returns the attached visuals in attach order.
func (s *Stage) Attached() []*Visual {
	out := make([]*Visual, len(s.visuals))
	copy(out, s.visuals)
	return out
}

// InjectKeyframes registers an animation under id. Definitions are
// write-once: it reports false and changes nothing when id already exists.
func (s *Stage) InjectKeyframes(id string, sp spinner.Spinner) bool {
	if _, ok := s.keyframes[id]; ok {
		return false
	}
	s.keyframes[id] = sp
	return true
}

// Keyframes returns the animation registered under id.
func (s *Stage) Keyframes(id string) (spinner.Spinner, bool) {
	sp, ok := s.keyframes[id]
	return sp, ok
}

// Advance moves the shared spinner to its next frame.
func (s *Stage) Advance() {
	s.frame++
}

func (s *Stage) glyph() string {
	sp, ok := s.keyframes[ui.SpinnerKeyframesID]
	if !ok || len(sp.Frames) == 0 {
		return " "
	}
	return sp.Frames[s.frame%len(sp.Frames)]
}

// areaOf returns the rectangle a visual covers before placement.
func (s *Stage) areaOf(v *Visual) Rect {
	switch {
	case v.fullscreen:
		return Rect{Width: s.width, Height: s.height}
	case v.container == nil:
		return s.root.Bounds()
	default:
		return v.container.Bounds()
	}
}

// Compose paints every shown visual over base, lowest ZIndex first and in
// attach order for equal ZIndex. The result is exactly the viewport size.
func (s *Stage) Compose(base string) string {
	lines := fitLines(base, s.width, s.height)

	order := make([]*Visual, 0, len(s.visuals))
	for _, v := range s.visuals {
		if v.Shown() {
			order = append(order, v)
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		if order[i].zIndex != order[j].zIndex {
			return order[i].zIndex < order[j].zIndex
		}
		return order[i].seq < order[j].seq
	})

	glyph := s.glyph()
	for _, v := range order {
		block, x, y := v.render(s.areaOf(v), glyph)
		overlayAt(lines, block, x, y, s.width)
	}
	return strings.Join(lines, "\n")
}

// fitLines splits base into exactly h lines of exactly w cells.
func fitLines(base string, w, h int) []string {
	src := strings.Split(base, "\n")
	lines := make([]string, h)
	for i := range lines {
		var line string
		if i < len(src) {
			line = src[i]
		}
		if n := ansi.StringWidth(line); n < w {
			line += strings.Repeat(" ", w-n)
		} else if n > w {
			line = ansi.Truncate(line, w, "")
		}
		lines[i] = line
	}
	return lines
}

// overlayAt splices block into lines with its top-left corner at (x, y),
// clipping anything outside the viewport.
func overlayAt(lines []string, block string, x, y, w int) {
	for i, fg := range strings.Split(block, "\n") {
		row := y + i
		if row < 0 || row >= len(lines) {
			continue
		}

		start := x
		fgW := ansi.StringWidth(fg)
		if start < 0 {
			fg = ansi.TruncateLeft(fg, -start, "")
			fgW += start
			start = 0
		}
		if fgW <= 0 || start >= w {
			continue
		}
		if start+fgW > w {
			fg = ansi.Truncate(fg, w-start, "")
			fgW = w - start
		}

		bg := lines[row]
		lines[row] = ansi.Cut(bg, 0, start) + fg + ansi.Cut(bg, start+fgW, w)
	}
}

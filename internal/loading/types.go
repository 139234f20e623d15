package loading

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/imgdeck/internal/ui"
)

// InstanceID identifies one overlay instance. IDs are never reused within a
// Manager.
type InstanceID uint64

// State is the lifecycle state of an overlay instance.
type State int

const (
	StatePending   State = iota // Attached, appear transition not yet started
	StateVisible                // Appear transition done
	StateHiding                 // Disappear transition running
	StateDestroyed              // Detached and released (terminal)
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateVisible:
		return "visible"
	case StateHiding:
		return "hiding"
	case StateDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// Anchor is a named position inside a container used to stack
// non-fullscreen overlays. The zero value means "not anchored".
type Anchor string

const (
	AnchorNone         Anchor = ""
	AnchorTopLeft      Anchor = "top-left"
	AnchorTopCenter    Anchor = "top-center"
	AnchorTopRight     Anchor = "top-right"
	AnchorBottomLeft   Anchor = "bottom-left"
	AnchorBottomCenter Anchor = "bottom-center"
	AnchorBottomRight  Anchor = "bottom-right"
)

// Anchors lists every valid non-empty anchor.
var Anchors = []Anchor{
	AnchorTopLeft, AnchorTopCenter, AnchorTopRight,
	AnchorBottomLeft, AnchorBottomCenter, AnchorBottomRight,
}

// ParseAnchor converts a string like "bottom-right" to an Anchor.
// The empty string parses to AnchorNone.
func ParseAnchor(s string) (Anchor, error) {
	a := Anchor(strings.ToLower(strings.TrimSpace(s)))
	if a == AnchorNone || a.Valid() {
		return a, nil
	}
	return AnchorNone, fmt.Errorf("unknown anchor %q", s)
}

// Valid reports whether a is one of the six named anchors.
func (a Anchor) Valid() bool {
	for _, known := range Anchors {
		if a == known {
			return true
		}
	}
	return false
}

// Edges splits the anchor into its vertical and horizontal parts.
func (a Anchor) Edges() (VerticalEdge, HorizontalEdge) {
	v, h, _ := strings.Cut(string(a), "-")
	return VerticalEdge(v), HorizontalEdge(h)
}

// Centered reports whether the anchor sits on the horizontal midline.
func (a Anchor) Centered() bool {
	_, h := a.Edges()
	return h == EdgeCenter
}

// VerticalEdge is the edge an anchored overlay is measured from.
type VerticalEdge string

// HorizontalEdge is the edge (or midline) an anchored overlay aligns to.
type HorizontalEdge string

const (
	EdgeTop    VerticalEdge   = "top"
	EdgeBottom VerticalEdge   = "bottom"
	EdgeLeft   HorizontalEdge = "left"
	EdgeCenter HorizontalEdge = "center"
	EdgeRight  HorizontalEdge = "right"
)

// Config is the resolved configuration of one overlay.
type Config struct {
	// Text is the status label under the spinner.
	Text string
	// Mask renders a dimming backdrop over the covered area.
	Mask bool
	// Color is the spinner highlight.
	Color lipgloss.Color
	// Fullscreen anchors the overlay to the viewport instead of Container.
	Fullscreen bool
	ZIndex     int
	// Container is where the overlay attaches. Nil means the stage root.
	Container Container
	// Anchor places a non-fullscreen overlay as a compact box and makes it
	// take part in stacking. AnchorNone covers the whole container.
	Anchor Anchor
	OnShow func()
	OnHide func()
}

// DefaultConfig returns the process-wide overlay defaults.
func DefaultConfig() Config {
	return Config{
		Text:       "Loading...",
		Mask:       true,
		Color:      ui.ColorAccent,
		Fullscreen: true,
		ZIndex:     9999,
	}
}

// stacks reports whether the overlay takes part in anchor-group layout.
func (c Config) stacks() bool {
	return !c.Fullscreen && c.Anchor != AnchorNone
}

// Request is what Show accepts: a bare Label or a partial Options.
type Request interface {
	options() Options
}

// Label is a bare status text; every other field comes from the defaults.
type Label string

func (l Label) options() Options {
	return Options{Text: string(l)}
}

// Options overrides selected defaults. Zero-valued fields keep the
// default; Mask, Fullscreen and ZIndex are pointers so false and 0 can be
// told apart from unset.
type Options struct {
	Text       string
	Mask       *bool
	Color      lipgloss.Color
	Fullscreen *bool
	ZIndex     *int
	Container  Container
	Anchor     Anchor
	OnShow     func()
	OnHide     func()
}

func (o Options) options() Options {
	return o
}

// Bool returns a pointer to b, for the boolean fields of Options.
func Bool(b bool) *bool {
	return &b
}

// Int returns a pointer to n, for Options.ZIndex.
func Int(n int) *int {
	return &n
}

// resolve merges a request over the defaults.
func resolve(defaults Config, req Request) Config {
	cfg := defaults
	if req == nil {
		return cfg
	}
	o := req.options()
	if o.Text != "" {
		cfg.Text = o.Text
	}
	if o.Mask != nil {
		cfg.Mask = *o.Mask
	}
	if o.Color != "" {
		cfg.Color = o.Color
	}
	if o.Fullscreen != nil {
		cfg.Fullscreen = *o.Fullscreen
	}
	if o.ZIndex != nil {
		cfg.ZIndex = *o.ZIndex
	}
	if o.Container != nil {
		cfg.Container = o.Container
	}
	if o.Anchor != AnchorNone {
		cfg.Anchor = o.Anchor
	}
	if o.OnShow != nil {
		cfg.OnShow = o.OnShow
	}
	if o.OnHide != nil {
		cfg.OnHide = o.OnHide
	}
	return cfg
}

package loading

// Rect is a rectangle in terminal cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Container is a rectangular region overlays can attach to.
type Container interface {
	Name() string
	Bounds() Rect
}

// Pane is a named, resizable Container. Panes compare by identity, so two
// panes with the same name are still different containers.
type Pane struct {
	name   string
	bounds Rect
}

// NewPane creates a pane covering bounds.
func NewPane(name string, bounds Rect) *Pane {
	return &Pane{name: name, bounds: bounds}
}

// Name returns the pane name.
func (p *Pane) Name() string {
	return p.name
}

// Bounds returns the pane rectangle in viewport coordinates.
func (p *Pane) Bounds() Rect {
	return p.bounds
}

// SetBounds moves or resizes the pane.
func (p *Pane) SetBounds(r Rect) {
	p.bounds = r
}

package tactile

var _ Element = (*Layout)(nil)

// LayoutKind selects how a Layout positions its children.
type LayoutKind uint8

const (
	LayoutFree       LayoutKind = iota // children keep the boxes they were given
	LayoutVertical                     // children stacked top to bottom, full content width
	LayoutHorizontal                   // children placed left to right, full content height
)

func (k LayoutKind) String() string {
	switch k {
	case LayoutVertical:
		return "vertical"
	case LayoutHorizontal:
		return "horizontal"
	default:
		return "free"
	}
}

// Layout is a container element. Children are owned exclusively by the layout
// and receive the layout's box as their outer constraint, so a child dragged
// on its own cannot leave its parent.
type Layout struct {
	elementBase

	Kind    LayoutKind
	Padding int32
	Spacing int32

	// EqualSplit divides the main axis evenly among the children instead of
	// keeping each child's own height (vertical) or width (horizontal).
	EqualSplit bool

	// Background is not painted when fully transparent.
	Background Color
	Border     Color
}

// NewLayout creates an empty layout occupying box.
func NewLayout(name string, kind LayoutKind, box BoundingBox) *Layout {
	return &Layout{
		elementBase: newElementBase(name, box),
		Kind:        kind,
		Border:      Color{A: 1},
	}
}

// AddChild appends child and re-arranges.
func (l *Layout) AddChild(child Element) {
	if child == nil {
		return
	}
	l.attach(child)
	l.Arrange()
}

// RemoveChild detaches child and re-arranges. It reports whether child was a
// direct child of l.
func (l *Layout) RemoveChild(child Element) bool {
	if !l.detach(child) {
		return false
	}
	l.Arrange()
	return true
}

// NumChildren returns the number of direct children.
func (l *Layout) NumChildren() int {
	return len(l.children)
}

// SetBoundingBox replaces the layout's box and re-arranges its children.
func (l *Layout) SetBoundingBox(box BoundingBox) {
	l.elementBase.SetBoundingBox(box)
	l.Arrange()
}

// Arrange positions the children according to Kind and refreshes their outer
// boxes. Free layouts only refresh the outer boxes.
func (l *Layout) Arrange() {
	content := l.contentBox()
	switch l.Kind {
	case LayoutVertical:
		share := l.share(content.Height)
		y := content.Y
		for _, c := range l.children {
			cb := c.BoundingBox()
			cb.X, cb.Y, cb.Width = content.X, y, content.Width
			if l.EqualSplit {
				cb.Height = share
			}
			c.SetBoundingBox(cb)
			y += cb.Height + l.Spacing
		}
	case LayoutHorizontal:
		share := l.share(content.Width)
		x := content.X
		for _, c := range l.children {
			cb := c.BoundingBox()
			cb.X, cb.Y, cb.Height = x, content.Y, content.Height
			if l.EqualSplit {
				cb.Width = share
			}
			c.SetBoundingBox(cb)
			x += cb.Width + l.Spacing
		}
	}
	l.constrainChildren()
}

// share is one child's slice of length when EqualSplit is set.
func (l *Layout) share(length int32) int32 {
	n := int32(len(l.children))
	if n == 0 {
		return 0
	}
	return max((length-l.Spacing*(n-1))/n, 0)
}

func (l *Layout) contentBox() BoundingBox {
	return NewBoundingBox(
		l.box.X+l.Padding,
		l.box.Y+l.Padding,
		l.box.Width-2*l.Padding,
		l.box.Height-2*l.Padding,
	)
}

// MoveForm moves the layout and, rigidly, all of its children.
func (l *Layout) MoveForm(dx, dy int32, top bool) {
	moveConstrained(l, &l.elementBase, dx, dy, top)
}

// Draw paints the background and border, then the children in order.
func (l *Layout) Draw() {
	if l.renderer != nil && l.Background.A > 0 {
		l.renderer.FillRect(l.box, l.Background)
	}
	l.strokeBorder(l.Border)
	l.drawChildren()
}

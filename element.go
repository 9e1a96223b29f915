package tactile

import (
	"iter"
	"slices"
)

// Renderer is the drawing collaborator elements paint through. All
// coordinates are device pixels. Implementations must tolerate boxes that
// extend past the display.
type Renderer interface {
	FillRect(box BoundingBox, c Color)
	StrokeRect(box BoundingBox, width int, c Color)
	// ClearRect paints box fully transparent.
	ClearRect(box BoundingBox)
}

// Clickable is the capability invoked by a tap.
type Clickable interface {
	Click()
}

// ClickFunc adapts a plain function to Clickable.
type ClickFunc func()

// Click calls f.
func (f ClickFunc) Click() { f() }

// Element is a node of the UI tree. Concrete kinds differ in how they draw and
// arrange children; the engine only relies on this capability set. Absent
// capabilities are reported as false or nil, never as errors.
type Element interface {
	ID() uint32
	Name() string

	BoundingBox() BoundingBox
	SetBoundingBox(BoundingBox)
	BorderWidth() int
	SetBorderWidth(int)

	// Children yields the direct children in insertion order.
	Children() iter.Seq[Element]

	Clickable() (Clickable, bool)
	IsMovable() bool
	SetMovable(bool)

	// MoveForm moves the element by (dx, dy). When top is true the element
	// is the drag origin: it erases itself, clamps against its outer box,
	// and redraws. Children always receive the realized displacement with
	// top set to false.
	MoveForm(dx, dy int32, top bool)

	Clear()
	Draw()
}

// Constrainable is implemented by elements that accept an outer box from
// their owner. A nil outer box leaves the element unconstrained.
type Constrainable interface {
	OuterBox() (BoundingBox, bool)
	SetOuterBox(outer *BoundingBox)
}

// Updater is implemented by elements with per-tick state, such as button
// flashes.
type Updater interface {
	Update(dt float32)
}

type rendererSetter interface {
	SetRenderer(r Renderer)
}

// elementIDCounter is a plain counter; the engine is single-threaded.
var elementIDCounter uint32

func nextElementID() uint32 {
	elementIDCounter++
	return elementIDCounter
}

// elementBase carries the state shared by every element kind. Concrete kinds
// embed it and supply Draw and MoveForm.
type elementBase struct {
	id       uint32
	name     string
	box      BoundingBox
	border   int
	movable  bool
	outer    *BoundingBox
	renderer Renderer
	children []Element
}

func newElementBase(name string, box BoundingBox) elementBase {
	return elementBase{
		id:   nextElementID(),
		name: name,
		box:  NewBoundingBox(box.X, box.Y, box.Width, box.Height),
	}
}

// ID returns the element's process-unique identifier.
func (b *elementBase) ID() uint32 { return b.id }

// Name returns the element's debug name.
func (b *elementBase) Name() string { return b.name }

// BoundingBox returns the element's current box.
func (b *elementBase) BoundingBox() BoundingBox { return b.box }

// SetBoundingBox replaces the element's box. Negative sizes become zero.
func (b *elementBase) SetBoundingBox(box BoundingBox) {
	b.box = NewBoundingBox(box.X, box.Y, box.Width, box.Height)
}

// BorderWidth returns the stroke width in pixels.
func (b *elementBase) BorderWidth() int { return b.border }

// SetBorderWidth sets the stroke width in pixels.
func (b *elementBase) SetBorderWidth(w int) { b.border = max(w, 0) }

// Children yields the direct children in insertion order.
func (b *elementBase) Children() iter.Seq[Element] {
	return slices.Values(b.children)
}

// Clickable reports no click capability. Kinds with actions override it.
func (b *elementBase) Clickable() (Clickable, bool) { return nil, false }

// IsMovable reports whether the element may be dragged. Defaults to false.
func (b *elementBase) IsMovable() bool { return b.movable }

// SetMovable marks the element as draggable or not.
func (b *elementBase) SetMovable(movable bool) { b.movable = movable }

// OuterBox returns the box supplied by the element's owner, if any.
func (b *elementBase) OuterBox() (BoundingBox, bool) {
	if b.outer == nil {
		return BoundingBox{}, false
	}
	return *b.outer, true
}

// SetOuterBox stores a copy of outer. Passing nil removes the constraint.
func (b *elementBase) SetOuterBox(outer *BoundingBox) {
	if outer == nil {
		b.outer = nil
		return
	}
	o := *outer
	b.outer = &o
}

// SetRenderer attaches r to the element and every descendant.
func (b *elementBase) SetRenderer(r Renderer) {
	b.renderer = r
	for _, c := range b.children {
		if rs, ok := c.(rendererSetter); ok {
			rs.SetRenderer(r)
		}
	}
}

// Clear erases the element's footprint and those of its children.
func (b *elementBase) Clear() {
	if b.renderer != nil && !b.box.Empty() {
		b.renderer.ClearRect(b.box)
	}
	for _, c := range b.children {
		c.Clear()
	}
}

func (b *elementBase) drawChildren() {
	for _, c := range b.children {
		c.Draw()
	}
}

func (b *elementBase) strokeBorder(c Color) {
	if b.renderer == nil || b.border == 0 {
		return
	}
	b.renderer.StrokeRect(b.box, b.border, c)
}

// attach appends child, hands it this element's renderer and box as its
// outer constraint.
func (b *elementBase) attach(child Element) {
	b.children = append(b.children, child)
	if rs, ok := child.(rendererSetter); ok && b.renderer != nil {
		rs.SetRenderer(b.renderer)
	}
	if debugEnabled {
		debugCheckChildCount(b)
	}
	b.constrainChildren()
}

// detach removes child, reporting whether it was present.
func (b *elementBase) detach(child Element) bool {
	i := slices.Index(b.children, child)
	if i < 0 {
		return false
	}
	b.children = slices.Delete(b.children, i, i+1)
	if c, ok := child.(Constrainable); ok {
		c.SetOuterBox(nil)
	}
	return true
}

// constrainChildren hands every child this element's box as its outer box.
func (b *elementBase) constrainChildren() {
	for _, c := range b.children {
		if cc, ok := c.(Constrainable); ok {
			cc.SetOuterBox(&b.box)
		}
	}
}

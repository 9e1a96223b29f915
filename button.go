package tactile

var _ Element = (*Button)(nil)

// Default button appearance.
var (
	defaultButtonBackground = Color{R: 0.59, G: 0.59, B: 0.59, A: 1}
	defaultButtonHighlight  = Color{R: 0.9, G: 0.9, B: 0.9, A: 1}
	defaultButtonBorder     = Color{A: 1}
)

const defaultFlashTicks = 12

// Button is an element with an optional click action and at most one child,
// typically a label drawn on top of it. A click flashes the button toward
// Highlight and fades back over FlashDuration ticks.
type Button struct {
	elementBase

	Background Color
	Highlight  Color
	Border     Color

	// FlashDuration is the press feedback length in ticks. Zero disables it.
	FlashDuration float32

	onClick func()
	flash   flash
}

// NewButton creates a button occupying box. onClick may be nil, in which case
// the button is not clickable.
func NewButton(name string, box BoundingBox, onClick func()) *Button {
	b := &Button{
		elementBase:   newElementBase(name, box),
		Background:    defaultButtonBackground,
		Highlight:     defaultButtonHighlight,
		Border:        defaultButtonBorder,
		FlashDuration: defaultFlashTicks,
		onClick:       onClick,
	}
	b.border = 1
	return b
}

// OnClick replaces the click action. nil removes the capability.
func (b *Button) OnClick(fn func()) {
	b.onClick = fn
}

// SetChild replaces the button's child. The child keeps its own box, is
// drawn over the button and moves with it. nil removes the current child.
func (b *Button) SetChild(child Element) {
	for len(b.children) > 0 {
		b.detach(b.children[0])
	}
	if child != nil {
		b.attach(child)
	}
}

// Child returns the button's child, if any.
func (b *Button) Child() (Element, bool) {
	if len(b.children) == 0 {
		return nil, false
	}
	return b.children[0], true
}

// Clickable returns the button itself when it has an action.
func (b *Button) Clickable() (Clickable, bool) {
	if b.onClick == nil {
		return nil, false
	}
	return b, true
}

// Click runs the action and starts the press flash.
func (b *Button) Click() {
	if b.onClick == nil {
		return
	}
	b.onClick()
	b.flash.start(b.FlashDuration)
	b.redraw()
}

// Flashing reports whether the press feedback is still fading.
func (b *Button) Flashing() bool {
	return b.flash.active
}

// Update advances the press flash by dt ticks.
func (b *Button) Update(dt float32) {
	if b.flash.update(dt) {
		b.redraw()
	}
}

// MoveForm moves the button, clamped to its outer box when it is the drag
// origin.
func (b *Button) MoveForm(dx, dy int32, top bool) {
	moveConstrained(b, &b.elementBase, dx, dy, top)
}

// Draw fills the button, strokes its border, then draws the child.
func (b *Button) Draw() {
	if b.renderer == nil {
		return
	}
	b.renderer.FillRect(b.box, b.Background.Lerp(b.Highlight, b.flash.level))
	b.strokeBorder(b.Border)
	b.drawChildren()
}

func (b *Button) redraw() {
	b.Clear()
	b.Draw()
}

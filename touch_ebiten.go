package tactile

import "github.com/hajimehoshi/ebiten/v2"

var _ TouchSource = (*EbitenTouches)(nil)

// EbitenTouches reads the active touches from ebiten each tick.
type EbitenTouches struct {
	// MouseAsTouch reports the cursor as a touch while the left button is
	// held, for desktop development.
	MouseAsTouch bool

	ids []ebiten.TouchID
}

// AppendTouches appends the current touch positions to buf. Readings outside
// the non-negative device space are skipped.
func (t *EbitenTouches) AppendTouches(buf []Point) []Point {
	t.ids = ebiten.AppendTouchIDs(t.ids[:0])
	for _, id := range t.ids {
		x, y := ebiten.TouchPosition(id)
		if x < 0 || y < 0 {
			continue
		}
		buf = append(buf, Point{X: int32(x), Y: int32(y)})
	}
	if t.MouseAsTouch && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if x >= 0 && y >= 0 {
			buf = append(buf, Point{X: int32(x), Y: int32(y)})
		}
	}
	return buf
}

package tactile

import (
	"fmt"
	"image"
)

// BoundingBox is an axis-aligned rectangle in device pixels. The origin is the
// top-left corner, with Y increasing downward. Width and Height are never
// negative.
type BoundingBox struct {
	X, Y          int32
	Width, Height int32
}

// NewBoundingBox returns a box, clamping negative sizes to zero.
func NewBoundingBox(x, y, width, height int32) BoundingBox {
	return BoundingBox{X: x, Y: y, Width: max(width, 0), Height: max(height, 0)}
}

// IsInBound reports whether (x, y) lies inside the box. The low edges are
// inclusive and the high edges exclusive, so adjacent boxes never share a
// pixel.
func (b BoundingBox) IsInBound(x, y int32) bool {
	return x >= b.X && x < b.X+b.Width &&
		y >= b.Y && y < b.Y+b.Height
}

// Center returns the midpoint of the box, truncated toward the origin.
func (b BoundingBox) Center() (int32, int32) {
	return b.X + b.Width/2, b.Y + b.Height/2
}

// IsEnclosed reports whether b fits entirely inside outer. Each axis is a
// size check plus both edge checks.
func (b BoundingBox) IsEnclosed(outer BoundingBox) bool {
	xOK := b.Width <= outer.Width && b.X >= outer.X && b.X+b.Width <= outer.X+outer.Width
	yOK := b.Height <= outer.Height && b.Y >= outer.Y && b.Y+b.Height <= outer.Y+outer.Height
	return xOK && yOK
}

// RebaseToOuterBox shrinks b to at most the size of outer and then pushes it
// back inside on every violated edge. It returns the position correction
// applied on each axis, zero where none was needed.
func (b *BoundingBox) RebaseToOuterBox(outer BoundingBox) (int32, int32) {
	if b.Width > outer.Width {
		b.Width = outer.Width
	}
	if b.Height > outer.Height {
		b.Height = outer.Height
	}
	if b.IsEnclosed(outer) {
		return 0, 0
	}

	var dx, dy int32
	if b.X < outer.X {
		dx = outer.X - b.X
	} else if right, limit := b.X+b.Width, outer.X+outer.Width; right > limit {
		dx = limit - right
	}
	if b.Y < outer.Y {
		dy = outer.Y - b.Y
	} else if bottom, limit := b.Y+b.Height, outer.Y+outer.Height; bottom > limit {
		dy = limit - bottom
	}

	b.X += dx
	b.Y += dy
	return dx, dy
}

// MoveInDirection translates b by (dx, dy). With a non-nil outer box the
// result is rebased into it. The returned displacement is what was actually
// realized (requested plus clamp correction); dependents must be moved by
// that amount to keep their relative offsets.
func (b *BoundingBox) MoveInDirection(dx, dy int32, outer *BoundingBox) (int32, int32) {
	b.X += dx
	b.Y += dy
	if outer == nil {
		return dx, dy
	}
	cx, cy := b.RebaseToOuterBox(*outer)
	return dx + cx, dy + cy
}

// Translate returns a copy of b offset by (dx, dy).
func (b BoundingBox) Translate(dx, dy int32) BoundingBox {
	b.X += dx
	b.Y += dy
	return b
}

// Rectangle converts b to an image.Rectangle.
func (b BoundingBox) Rectangle() image.Rectangle {
	return image.Rect(int(b.X), int(b.Y), int(b.X+b.Width), int(b.Y+b.Height))
}

// Empty reports whether the box covers no pixels.
func (b BoundingBox) Empty() bool {
	return b.Width == 0 || b.Height == 0
}

func (b BoundingBox) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", b.X, b.Y, b.Width, b.Height)
}

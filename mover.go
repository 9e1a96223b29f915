package tactile

// moveConstrained implements the movement protocol shared by every element
// kind. The drag origin (top) erases itself, moves clamped to its outer box,
// and redraws once the whole subtree has moved. Descendants are moved by the
// realized displacement without clamping so they keep their offsets.
func moveConstrained(e Element, b *elementBase, dx, dy int32, top bool) (int32, int32) {
	if top {
		e.Clear()
	}

	var outer *BoundingBox
	if top {
		outer = b.outer
	}
	mx, my := b.box.MoveInDirection(dx, dy, outer)

	if len(b.children) > 0 {
		b.constrainChildren()
		for _, c := range b.children {
			c.MoveForm(mx, my, false)
		}
	}

	if top {
		e.Draw()
	}
	return mx, my
}

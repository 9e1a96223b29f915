package tactile

import (
	"iter"
	"slices"
)

// FindHit returns the first candidate whose box contains (x, y). Candidates
// are tested in iteration order and the first match wins, so the caller's
// ordering is the z-order. Children are not searched; pass DepthFirst(root)
// or a hand-built sequence to reach nested targets.
func FindHit(candidates iter.Seq[Element], x, y int32) (Element, bool) {
	if candidates == nil {
		return nil, false
	}
	for e := range candidates {
		if e.BoundingBox().IsInBound(x, y) {
			return e, true
		}
	}
	return nil, false
}

// Candidates yields elems in the given order, skipping nils.
func Candidates(elems ...Element) iter.Seq[Element] {
	return func(yield func(Element) bool) {
		for _, e := range elems {
			if e == nil {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// DepthFirst yields root and all of its descendants in pre-order.
func DepthFirst(root Element) iter.Seq[Element] {
	return func(yield func(Element) bool) {
		if root != nil {
			walk(root, yield)
		}
	}
}

func walk(e Element, yield func(Element) bool) bool {
	if !yield(e) {
		return false
	}
	for c := range e.Children() {
		if !walk(c, yield) {
			return false
		}
	}
	return true
}

// TopmostFirst yields root's descendants deepest-last-drawn first: the reverse
// of painter order, so an element drawn over another is tested before it.
// root itself is yielded last.
func TopmostFirst(root Element) iter.Seq[Element] {
	return func(yield func(Element) bool) {
		if root == nil {
			return
		}
		order := slices.Collect(DepthFirst(root))
		for i := len(order) - 1; i >= 0; i-- {
			if !yield(order[i]) {
				return
			}
		}
	}
}

// Movables filters seq down to elements marked movable.
func Movables(seq iter.Seq[Element]) iter.Seq[Element] {
	return func(yield func(Element) bool) {
		for e := range seq {
			if e.IsMovable() && !yield(e) {
				return
			}
		}
	}
}

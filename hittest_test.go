package tactile

import (
	"slices"
	"testing"
)

func names(seq []Element) []string {
	out := make([]string, len(seq))
	for i, e := range seq {
		out[i] = e.Name()
	}
	return out
}

func TestFindHitFirstMatchWins(t *testing.T) {
	a := NewButton("a", NewBoundingBox(0, 0, 50, 50), nil)
	b := NewButton("b", NewBoundingBox(25, 25, 50, 50), nil)

	tests := []struct {
		name  string
		order []Element
		x, y  int32
		want  string
	}{
		{"overlap a first", []Element{a, b}, 30, 30, "a"},
		{"overlap b first", []Element{b, a}, 30, 30, "b"},
		{"only b", []Element{a, b}, 60, 60, "b"},
		{"only a", []Element{b, a}, 10, 10, "a"},
		{"miss", []Element{a, b}, 90, 90, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindHit(Candidates(tt.order...), tt.x, tt.y)
			if tt.want == "" {
				if ok {
					t.Errorf("FindHit = %s, want no hit", got.Name())
				}
				return
			}
			if !ok || got.Name() != tt.want {
				t.Errorf("FindHit = %v, %v; want %s", got, ok, tt.want)
			}
		})
	}
}

func TestFindHitDoesNotRecurse(t *testing.T) {
	screen, _, _ := screenWithPanel()
	// The button at (12,12) is a grandchild; only screen is a candidate.
	got, ok := FindHit(Candidates(screen), 13, 13)
	if !ok || got != screen {
		t.Errorf("FindHit = %v, %v; want screen", got, ok)
	}
}

func TestFindHitNilAndEmpty(t *testing.T) {
	if _, ok := FindHit(nil, 0, 0); ok {
		t.Error("nil candidates should not hit")
	}
	if _, ok := FindHit(Candidates(), 0, 0); ok {
		t.Error("empty candidates should not hit")
	}
}

func TestTraversalOrders(t *testing.T) {
	screen, _, _ := screenWithPanel()
	other := NewLayout("other", LayoutFree, NewBoundingBox(50, 50, 10, 10))
	screen.AddChild(other)

	if got, want := names(slices.Collect(DepthFirst(screen))), []string{"screen", "panel", "btn", "other"}; !slices.Equal(got, want) {
		t.Errorf("DepthFirst = %v, want %v", got, want)
	}
	if got, want := names(slices.Collect(TopmostFirst(screen))), []string{"other", "btn", "panel", "screen"}; !slices.Equal(got, want) {
		t.Errorf("TopmostFirst = %v, want %v", got, want)
	}
	if got, want := names(slices.Collect(Movables(TopmostFirst(screen)))), []string{"panel"}; !slices.Equal(got, want) {
		t.Errorf("Movables = %v, want %v", got, want)
	}
}

func TestTopmostFirstPicksChildOverParent(t *testing.T) {
	screen, _, btn := screenWithPanel()
	got, ok := FindHit(TopmostFirst(screen), 13, 13)
	if !ok || got != btn {
		t.Errorf("FindHit = %v, %v; want btn", got, ok)
	}
}

func TestCandidatesSkipsNil(t *testing.T) {
	a := NewButton("a", NewBoundingBox(0, 0, 1, 1), nil)
	got := slices.Collect(Candidates(nil, a, nil))
	if len(got) != 1 || got[0] != a {
		t.Errorf("Candidates = %v, want [a]", got)
	}
}

func TestIteratorsStopEarly(t *testing.T) {
	screen, _, _ := screenWithPanel()
	n := 0
	for range DepthFirst(screen) {
		n++
		break
	}
	for range TopmostFirst(screen) {
		n++
		break
	}
	if n != 2 {
		t.Errorf("n = %d, want 2", n)
	}
}

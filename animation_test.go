package tactile

import "testing"

func TestButtonFlashFades(t *testing.T) {
	b := NewButton("b", NewBoundingBox(0, 0, 10, 10), func() {})
	b.FlashDuration = 4

	b.Click()
	if !b.Flashing() {
		t.Fatal("Flashing() = false right after click")
	}
	if b.flash.level != 1 {
		t.Errorf("level = %v, want 1", b.flash.level)
	}

	prev := b.flash.level
	for i := range 3 {
		b.Update(1)
		if b.flash.level > prev {
			t.Errorf("tick %d: level rose from %v to %v", i, prev, b.flash.level)
		}
		prev = b.flash.level
	}
	if !b.Flashing() {
		t.Error("flash ended early")
	}

	b.Update(1)
	if b.Flashing() {
		t.Error("flash still active after its duration")
	}
	if b.flash.level != 0 {
		t.Errorf("level = %v, want 0 after fade", b.flash.level)
	}
}

func TestButtonFlashDisabled(t *testing.T) {
	b := NewButton("b", NewBoundingBox(0, 0, 10, 10), func() {})
	b.FlashDuration = 0
	b.Click()
	if b.Flashing() {
		t.Error("zero FlashDuration should not flash")
	}
}

func TestFlashRedrawsWhileActive(t *testing.T) {
	r := &recordingRenderer{}
	b := NewButton("b", NewBoundingBox(0, 0, 10, 10), func() {})
	b.FlashDuration = 2
	b.SetRenderer(r)
	b.Click()
	r.reset()

	b.Update(1)
	if len(r.ops) == 0 {
		t.Error("active flash should redraw on update")
	}
	b.Update(1)
	r.reset()
	b.Update(1)
	if len(r.ops) != 0 {
		t.Errorf("idle button redrew: %v", r.ops)
	}
}

func TestUpdateTreeReachesNestedButtons(t *testing.T) {
	screen, panel, _ := screenWithPanel()
	nested := NewButton("nested", NewBoundingBox(14, 14, 4, 4), func() {})
	nested.FlashDuration = 1
	panel.AddChild(nested)

	nested.Click()
	UpdateTree(screen, 1)
	if nested.Flashing() {
		t.Error("UpdateTree did not advance the nested button")
	}
	UpdateTree(nil, 1)
}

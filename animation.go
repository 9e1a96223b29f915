package tactile

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// flash fades a highlight strength from 1 to 0 after a press. Durations are
// measured in ticks, so callers advance it with dt = 1 per tick.
//
// There is no global animation manager; each element updates its own flash
// from Update.
type flash struct {
	tween  *gween.Tween
	level  float64
	active bool
}

// start restarts the fade. A non-positive duration disables the flash.
func (f *flash) start(duration float32) {
	if duration <= 0 {
		f.stop()
		return
	}
	f.tween = gween.New(1, 0, duration, ease.OutQuad)
	f.level = 1
	f.active = true
}

// update advances the fade by dt and reports whether the level changed.
func (f *flash) update(dt float32) bool {
	if !f.active {
		return false
	}
	val, finished := f.tween.Update(dt)
	f.level = float64(val)
	if finished {
		f.stop()
	}
	return true
}

func (f *flash) stop() {
	f.tween = nil
	f.level = 0
	f.active = false
}

// UpdateTree advances every Updater in the tree rooted at root, in pre-order.
func UpdateTree(root Element, dt float32) {
	if root == nil {
		return
	}
	for e := range DepthFirst(root) {
		if u, ok := e.(Updater); ok {
			u.Update(dt)
		}
	}
}

package tactile

import "iter"

// TouchSample is a touch reading stamped with the tick it was recorded on.
type TouchSample struct {
	X, Y int32
	Tick uint64
}

// TouchHistory is a sliding window of touch samples, oldest first. Samples
// older than the max age relative to the tick passed to Update are dropped.
type TouchHistory struct {
	samples []TouchSample
	maxAge  uint64
}

// NewTouchHistory creates an empty history with the default max age.
func NewTouchHistory() *TouchHistory {
	return NewTouchHistoryWithMaxAge(DefaultMaxAge)
}

// NewTouchHistoryWithMaxAge creates an empty history that keeps samples at
// most maxAge ticks old.
func NewTouchHistoryWithMaxAge(maxAge uint64) *TouchHistory {
	return &TouchHistory{maxAge: maxAge}
}

// MaxAge returns the age threshold in ticks.
func (h *TouchHistory) MaxAge() uint64 {
	return h.maxAge
}

// Update ages the window against curTicks and then appends every touch
// stamped with curTicks. A sample survives while curTicks-sample.Tick is at
// most the max age. Ticks are expected to be non-decreasing across calls;
// samples stamped after curTicks are treated as zero ticks old.
// It returns how many samples were evicted.
func (h *TouchHistory) Update(curTicks uint64, touches []Point) int {
	evicted := 0
	for evicted < len(h.samples) && age(curTicks, h.samples[evicted].Tick) > h.maxAge {
		evicted++
	}
	if evicted > 0 {
		n := copy(h.samples, h.samples[evicted:])
		clear(h.samples[n:])
		h.samples = h.samples[:n]
	}

	for _, p := range touches {
		h.samples = append(h.samples, TouchSample{X: p.X, Y: p.Y, Tick: curTicks})
	}
	return evicted
}

func age(cur, tick uint64) uint64 {
	if tick > cur {
		return 0
	}
	return cur - tick
}

// Len returns the number of retained samples.
func (h *TouchHistory) Len() int {
	return len(h.samples)
}

// Samples returns the retained samples, oldest first. The returned slice
// MUST NOT be mutated and is only valid until the next Update.
func (h *TouchHistory) Samples() []TouchSample {
	return h.samples
}

// All yields the retained samples, oldest first.
func (h *TouchHistory) All() iter.Seq[TouchSample] {
	return func(yield func(TouchSample) bool) {
		for _, s := range h.samples {
			if !yield(s) {
				return
			}
		}
	}
}

// Reset drops every sample.
func (h *TouchHistory) Reset() {
	clear(h.samples)
	h.samples = h.samples[:0]
}

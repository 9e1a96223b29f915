package tactile

import (
	"iter"
	"math"
	"slices"
)

// GestureTrace is a run of samples believed to come from one continuous
// touch. Traces are rebuilt from the history on every tick; they carry no
// identity from one tick to the next.
type GestureTrace struct {
	Samples []TouchSample
}

// Len returns the number of samples in the trace.
func (t GestureTrace) Len() int { return len(t.Samples) }

// First returns the oldest sample. The trace must not be empty.
func (t GestureTrace) First() TouchSample { return t.Samples[0] }

// Last returns the newest sample. The trace must not be empty.
func (t GestureTrace) Last() TouchSample { return t.Samples[len(t.Samples)-1] }

// Travel returns the straight-line distance from the first to the last
// sample, rounded down.
func (t GestureTrace) Travel() uint64 {
	if len(t.Samples) < 2 {
		return 0
	}
	f, l := t.First(), t.Last()
	return ISqrt(uint64(SquaredDistance(f.X, f.Y, l.X, l.Y)))
}

// SquaredDistance returns (x1-x2)² + (y1-y2)² in 64 bits. The result is exact
// while each axis difference fits in an int32.
func SquaredDistance(x1, y1, x2, y2 int32) int64 {
	dx := int64(x1) - int64(x2)
	dy := int64(y1) - int64(y2)
	return dx*dx + dy*dy
}

// ISqrt returns the integer square root of n, rounded down.
func ISqrt(n uint64) uint64 {
	r := uint64(math.Sqrt(float64(n)))
	if r > math.MaxUint32 {
		r = math.MaxUint32
	}
	for r*r > n {
		r--
	}
	for r < math.MaxUint32 && (r+1)*(r+1) <= n {
		r++
	}
	return r
}

// ClusterSamples groups samples into traces in one greedy, oldest-first
// pass. A sample joins a trace when its squared distance to the trace's last
// point is below maxDistance². Without firstMatchOnly a sample joins every
// trace it is close to, so the same sample can end up in several traces.
// A sample close to no trace starts a new one.
func ClusterSamples(samples []TouchSample, maxDistance int32, firstMatchOnly bool) []GestureTrace {
	limit := int64(maxDistance) * int64(maxDistance)
	var traces []GestureTrace
	for _, s := range samples {
		matched := false
		for i := range traces {
			last := traces[i].Last()
			if SquaredDistance(last.X, last.Y, s.X, s.Y) >= limit {
				continue
			}
			traces[i].Samples = append(traces[i].Samples, s)
			matched = true
			if firstMatchOnly {
				break
			}
		}
		if !matched {
			traces = append(traces, GestureTrace{Samples: []TouchSample{s}})
		}
	}
	return traces
}

// CheckForObjectMoves clusters the current history and, for each trace,
// hit-tests the trace's first point against candidates. A movable hit is
// moved as the drag origin by the trace's displacement (see DeltaMode).
// Traces that hit nothing or hit an element that is not movable are
// dropped. candidates is consumed once.
func (m *Manipulator) CheckForObjectMoves(candidates iter.Seq[Element]) {
	m.traces = ClusterSamples(m.history.Samples(), m.maxDistance, m.firstMatchOnly)
	if len(m.traces) == 0 {
		return
	}

	var targets []Element
	if candidates != nil {
		targets = slices.Collect(candidates)
	}
	for i := range m.traces {
		m.dispatch(&m.traces[i], targets)
	}
}

// dispatch resolves and applies a single trace.
func (m *Manipulator) dispatch(tr *GestureTrace, targets []Element) {
	origin := tr.First()
	hit, ok := FindHit(slices.Values(targets), origin.X, origin.Y)
	if !ok {
		m.drop(tr, DropNoHit)
		return
	}

	if m.isTap(tr) {
		if c, ok := hit.Clickable(); ok {
			c.Click()
			m.metrics.ElementClicked()
			m.emit(ManipulationEvent{
				Type: EventClick, ElementID: hit.ID(), ElementName: hit.Name(),
				X: origin.X, Y: origin.Y,
				Before: hit.BoundingBox(), After: hit.BoundingBox(),
				Tick: m.curTick,
			})
		}
	}

	if !hit.IsMovable() {
		m.drop(tr, DropNotMovable)
		return
	}

	dx, dy, ok := m.delta(tr)
	if !ok {
		return
	}
	before := hit.BoundingBox()
	hit.MoveForm(dx, dy, true)
	after := hit.BoundingBox()

	m.metrics.ElementMoved()
	m.logger.Debug("element moved",
		"element", hit.Name(), "requested_x", dx, "requested_y", dy,
		"before", before.String(), "after", after.String(), "samples", tr.Len())
	m.emit(ManipulationEvent{
		Type: EventMove, ElementID: hit.ID(), ElementName: hit.Name(),
		X: tr.Last().X, Y: tr.Last().Y,
		DeltaX: after.X - before.X, DeltaY: after.Y - before.Y,
		Before: before, After: after,
		Tick: m.curTick,
	})
}

// isTap reports whether tr is a touch that first appeared on this tick.
func (m *Manipulator) isTap(tr *GestureTrace) bool {
	return tr.Len() == 1 && tr.Last().Tick == m.curTick
}

// delta computes the movement vector for tr under the configured mode. ok is
// false when the trace should not move anything this tick.
func (m *Manipulator) delta(tr *GestureTrace) (dx, dy int32, ok bool) {
	last := tr.Last()
	switch m.deltaMode {
	case DeltaLastStep:
		if tr.Len() < 2 || last.Tick != m.curTick {
			return 0, 0, false
		}
		prev := tr.Samples[tr.Len()-2]
		dx, dy = last.X-prev.X, last.Y-prev.Y
		return dx, dy, dx != 0 || dy != 0
	default:
		return last.X, last.Y, true
	}
}

func (m *Manipulator) drop(tr *GestureTrace, reason DropReason) {
	m.metrics.TraceDropped(reason)
	origin := tr.First()
	m.logger.Debug("trace dropped",
		"reason", reason.String(), "origin_x", origin.X, "origin_y", origin.Y,
		"samples", tr.Len(), "travel", tr.Travel())
}

package tactile

// DropReason explains why a trace produced no movement.
type DropReason uint8

const (
	DropNoHit      DropReason = iota // the trace origin hit no candidate
	DropNotMovable                   // the hit element is not movable
)

func (r DropReason) String() string {
	switch r {
	case DropNoHit:
		return "no_hit"
	case DropNotMovable:
		return "not_movable"
	default:
		return "unknown"
	}
}

// Metrics receives pipeline counters. The metrics package provides a
// Prometheus implementation.
type Metrics interface {
	TickProcessed(samples, traces int)
	SamplesEvicted(n int)
	TraceDropped(reason DropReason)
	ElementMoved()
	ElementClicked()
}

type nopMetrics struct{}

func (nopMetrics) TickProcessed(int, int)  {}
func (nopMetrics) SamplesEvicted(int)      {}
func (nopMetrics) TraceDropped(DropReason) {}
func (nopMetrics) ElementMoved()           {}
func (nopMetrics) ElementClicked()         {}

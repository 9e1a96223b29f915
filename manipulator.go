package tactile

import (
	"iter"
	"log/slog"
)

// Option configures a Manipulator.
type Option func(*Manipulator)

// WithMaxAge sets how many ticks a touch sample stays in the history.
func WithMaxAge(ticks uint64) Option {
	return func(m *Manipulator) {
		if ticks > 0 {
			m.maxAge = ticks
		}
	}
}

// WithClusterDistance sets the linear distance below which a sample joins a
// trace.
func WithClusterDistance(distance int32) Option {
	return func(m *Manipulator) {
		if distance > 0 {
			m.maxDistance = distance
		}
	}
}

// WithFirstMatchOnly makes each sample join at most one trace instead of
// every trace it is close to.
func WithFirstMatchOnly(enabled bool) Option {
	return func(m *Manipulator) {
		m.firstMatchOnly = enabled
	}
}

// WithDeltaMode selects how traces are turned into displacements.
func WithDeltaMode(mode DeltaMode) Option {
	return func(m *Manipulator) {
		m.deltaMode = mode
	}
}

// WithLogger sets the structured logger. Per-trace outcomes are logged at
// debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manipulator) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithMetrics sets the metrics receiver.
func WithMetrics(metrics Metrics) Option {
	return func(m *Manipulator) {
		if metrics != nil {
			m.metrics = metrics
		}
	}
}

// WithEventSink sets the receiver for click and move events.
func WithEventSink(sink EventSink) Option {
	return func(m *Manipulator) {
		m.sink = sink
	}
}

// Manipulator runs the direct-manipulation pipeline once per tick: age and
// extend the touch history, cluster it into traces, hit-test each trace's
// origin, and move the element it landed on. It is not safe for concurrent
// use; the element tree must only be mutated from the goroutine calling Tick.
type Manipulator struct {
	history    *TouchHistory
	candidates func() iter.Seq[Element]

	maxAge         uint64
	maxDistance    int32
	firstMatchOnly bool
	deltaMode      DeltaMode

	logger  *slog.Logger
	metrics Metrics
	sink    EventSink

	traces  []GestureTrace
	curTick uint64
}

// NewManipulator creates a Manipulator. candidates is called once per tick
// and must yield the drag targets in priority order (first match wins).
func NewManipulator(candidates func() iter.Seq[Element], opts ...Option) *Manipulator {
	m := &Manipulator{
		candidates:  candidates,
		maxAge:      DefaultMaxAge,
		maxDistance: DefaultClusterDistance,
		logger:      slog.New(slog.DiscardHandler),
		metrics:     nopMetrics{},
	}
	for _, opt := range opts {
		opt(m)
	}
	m.history = NewTouchHistoryWithMaxAge(m.maxAge)
	return m
}

// Tick advances the pipeline by one step. curTicks is the host's monotonic
// tick counter and touches the touch points active right now.
func (m *Manipulator) Tick(curTicks uint64, touches []Point) {
	m.curTick = curTicks
	if evicted := m.history.Update(curTicks, touches); evicted > 0 {
		m.metrics.SamplesEvicted(evicted)
	}

	var candidates iter.Seq[Element]
	if m.candidates != nil {
		candidates = m.candidates()
	}
	m.CheckForObjectMoves(candidates)
	m.metrics.TickProcessed(m.history.Len(), len(m.traces))
}

// History returns the touch history owned by m.
func (m *Manipulator) History() *TouchHistory {
	return m.history
}

// Traces returns the traces built on the most recent tick. The returned slice
// MUST NOT be mutated.
func (m *Manipulator) Traces() []GestureTrace {
	return m.traces
}

// CurrentTick returns the tick passed to the most recent Tick call.
func (m *Manipulator) CurrentTick() uint64 {
	return m.curTick
}

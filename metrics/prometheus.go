package metrics

import (
	"github.com/phanxgames/tactile"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var _ tactile.Metrics = (*Collector)(nil)

// Collector records manipulation pipeline metrics.
type Collector struct {
	namespace    string
	subsystem    string
	traceBuckets []float64
	registry     prometheus.Registerer

	ticks          prometheus.Counter
	historySamples prometheus.Gauge
	tracesPerTick  prometheus.Histogram
	evicted        prometheus.Counter
	dropped        *prometheus.CounterVec
	moved          prometheus.Counter
	clicked        prometheus.Counter
}

// NewCollector creates the metrics on the configured registry. Creating two
// collectors with the same names on one registry panics.
func NewCollector(opts ...Option) *Collector {
	c := &Collector{
		namespace:    "tactile",
		subsystem:    "manipulator",
		traceBuckets: []float64{0, 1, 2, 3, 4, 5, 8, 10},
		registry:     prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(c)
	}

	auto := promauto.With(c.registry)
	c.ticks = auto.NewCounter(prometheus.CounterOpts{
		Namespace: c.namespace,
		Subsystem: c.subsystem,
		Name:      "ticks_total",
		Help:      "Total number of ticks processed",
	})
	c.historySamples = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: c.namespace,
		Subsystem: c.subsystem,
		Name:      "history_samples",
		Help:      "Touch samples retained after the last tick",
	})
	c.tracesPerTick = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: c.namespace,
		Subsystem: c.subsystem,
		Name:      "traces_per_tick",
		Help:      "Gesture traces found per tick",
		Buckets:   c.traceBuckets,
	})
	c.evicted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: c.namespace,
		Subsystem: c.subsystem,
		Name:      "samples_evicted_total",
		Help:      "Touch samples dropped for exceeding the max age",
	})
	c.dropped = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: c.namespace,
		Subsystem: c.subsystem,
		Name:      "traces_dropped_total",
		Help:      "Traces that moved nothing, by reason",
	}, []string{"reason"})
	c.moved = auto.NewCounter(prometheus.CounterOpts{
		Namespace: c.namespace,
		Subsystem: c.subsystem,
		Name:      "element_moves_total",
		Help:      "Constrained moves applied to elements",
	})
	c.clicked = auto.NewCounter(prometheus.CounterOpts{
		Namespace: c.namespace,
		Subsystem: c.subsystem,
		Name:      "element_clicks_total",
		Help:      "Taps delivered to clickable elements",
	})
	return c
}

// TickProcessed implements tactile.Metrics.
func (c *Collector) TickProcessed(samples, traces int) {
	c.ticks.Inc()
	c.historySamples.Set(float64(samples))
	c.tracesPerTick.Observe(float64(traces))
}

// SamplesEvicted implements tactile.Metrics.
func (c *Collector) SamplesEvicted(n int) {
	if n > 0 {
		c.evicted.Add(float64(n))
	}
}

// TraceDropped implements tactile.Metrics.
func (c *Collector) TraceDropped(reason tactile.DropReason) {
	c.dropped.WithLabelValues(reason.String()).Inc()
}

// ElementMoved implements tactile.Metrics.
func (c *Collector) ElementMoved() { c.moved.Inc() }

// ElementClicked implements tactile.Metrics.
func (c *Collector) ElementClicked() { c.clicked.Inc() }

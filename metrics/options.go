// Package metrics provides a Prometheus implementation of tactile.Metrics.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Option applies a configuration option to the Collector.
type Option func(*Collector)

// WithNamespace sets the namespace for all metrics.
func WithNamespace(namespace string) Option {
	return func(c *Collector) {
		if namespace != "" {
			c.namespace = namespace
		}
	}
}

// WithSubsystem sets the subsystem for all metrics.
func WithSubsystem(subsystem string) Option {
	return func(c *Collector) {
		if subsystem != "" {
			c.subsystem = subsystem
		}
	}
}

// WithTraceBuckets sets the histogram buckets for traces per tick.
func WithTraceBuckets(buckets []float64) Option {
	return func(c *Collector) {
		if len(buckets) > 0 {
			c.traceBuckets = buckets
		}
	}
}

// WithRegistry sets the Prometheus registerer the metrics are created on.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Collector) {
		if registry != nil {
			c.registry = registry
		}
	}
}

package telemetry

import (
	"time"

	"github.com/delaneyj/bitflush/reactive"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "bitflush").
	Namespace string
	Subsystem string

	// ConstLabels are added to every metric, e.g. the component name.
	ConstLabels prometheus.Labels

	// Buckets for the flush duration histogram.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry defaults to prometheus.DefaultRegisterer.
	Registry prometheus.Registerer
}

type MetricsOption func(*MetricsConfig)

func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "bitflush",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics counts writes by outcome and records every flush.
type Metrics struct {
	writes        *prometheus.CounterVec
	flushes       prometheus.Counter
	flushDuration prometheus.Histogram
	flushBits     prometheus.Histogram
}

var _ reactive.Observer = (*Metrics)(nil)

// NewMetrics registers the collectors on the configured registry. Register
// one Metrics per registry; use ConstLabels to tell components apart.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		writes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "writes_total",
			Help:        "Reactive value writes, by whether the value changed",
			ConstLabels: config.ConstLabels,
		}, []string{"result"}),

		flushes: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "flushes_total",
			Help:        "Update callbacks run",
			ConstLabels: config.ConstLabels,
		}),

		flushDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "flush_duration_seconds",
			Help:        "Time spent in update callbacks",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		flushBits: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "flush_dirty_bits",
			Help:        "Number of dirty bits coalesced into one flush",
			ConstLabels: config.ConstLabels,
			Buckets:     prometheus.LinearBuckets(1, 1, 8),
		}),
	}
}

func (m *Metrics) Wrote(_ reactive.Mask, changed bool) {
	if changed {
		m.writes.WithLabelValues("changed").Inc()
		return
	}
	m.writes.WithLabelValues("unchanged").Inc()
}

func (m *Metrics) Flushed(bits reactive.Mask, _ time.Time, elapsed time.Duration) {
	m.flushes.Inc()
	m.flushDuration.Observe(elapsed.Seconds())
	m.flushBits.Observe(float64(bits.Count()))
}

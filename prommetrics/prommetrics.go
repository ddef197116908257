// Package prommetrics exports kdtree build and query metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	collector, err := prommetrics.New(reg, prommetrics.WithNamespace("geo"))
//	tree, err := kdtree.BuildOrdered(points, acc, kdtree.WithMetricsCollector(collector))
package prommetrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/kdtree"
)

var _ kdtree.MetricsCollector = (*Collector)(nil)

// Options configures the metric names.
type Options struct {
	Namespace string
	Subsystem string

	// Buckets are the latency histogram buckets in seconds.
	Buckets []float64
}

// DefaultOptions contains the default configuration.
var DefaultOptions = Options{
	Namespace: "kdtree",
	Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
}

// WithNamespace sets the metric namespace.
func WithNamespace(ns string) func(o *Options) {
	return func(o *Options) {
		o.Namespace = ns
	}
}

// Collector implements kdtree.MetricsCollector on Prometheus metrics.
type Collector struct {
	builds         *prometheus.CounterVec
	buildItems     prometheus.Counter
	buildDuration  *prometheus.HistogramVec
	searches       *prometheus.CounterVec
	searchResults  *prometheus.CounterVec
	searchDuration *prometheus.HistogramVec
}

// New creates a Collector and registers its metrics with reg.
func New(reg prometheus.Registerer, optFns ...func(o *Options)) (*Collector, error) {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	c := &Collector{
		builds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: opts.Namespace,
			Subsystem: opts.Subsystem,
			Name:      "builds_total",
			Help:      "Number of tree builds and decodes.",
		}, []string{"parallel", "status"}),
		buildItems: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: opts.Namespace,
			Subsystem: opts.Subsystem,
			Name:      "build_items_total",
			Help:      "Number of items indexed by successful builds.",
		}),
		buildDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: opts.Namespace,
			Subsystem: opts.Subsystem,
			Name:      "build_duration_seconds",
			Help:      "Duration of tree builds.",
			Buckets:   opts.Buckets,
		}, []string{"parallel"}),
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: opts.Namespace,
			Subsystem: opts.Subsystem,
			Name:      "searches_total",
			Help:      "Number of queries by kind.",
		}, []string{"kind"}),
		searchResults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: opts.Namespace,
			Subsystem: opts.Subsystem,
			Name:      "search_results_total",
			Help:      "Number of items returned by queries.",
		}, []string{"kind"}),
		searchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: opts.Namespace,
			Subsystem: opts.Subsystem,
			Name:      "search_duration_seconds",
			Help:      "Duration of queries.",
			Buckets:   opts.Buckets,
		}, []string{"kind"}),
	}

	for _, m := range []prometheus.Collector{
		c.builds, c.buildItems, c.buildDuration,
		c.searches, c.searchResults, c.searchDuration,
	} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// RecordBuild implements kdtree.MetricsCollector.
func (c *Collector) RecordBuild(count int, parallel bool, duration time.Duration, err error) {
	p := strconv.FormatBool(parallel)
	status := "ok"
	if err != nil {
		status = "error"
	} else {
		c.buildItems.Add(float64(count))
	}
	c.builds.WithLabelValues(p, status).Inc()
	c.buildDuration.WithLabelValues(p).Observe(duration.Seconds())
}

// RecordSearch implements kdtree.MetricsCollector.
func (c *Collector) RecordSearch(kind kdtree.SearchKind, results int, duration time.Duration) {
	k := string(kind)
	c.searches.WithLabelValues(k).Inc()
	c.searchResults.WithLabelValues(k).Add(float64(results))
	c.searchDuration.WithLabelValues(k).Observe(duration.Seconds())
}

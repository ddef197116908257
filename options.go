package kdtree

import (
	"log/slog"
	"runtime"

	"github.com/hupe1980/kdtree/codec"
)

const (
	// DefaultParallelThreshold is the region size above which the parallel
	// build forks its two sub-regions.
	DefaultParallelThreshold = 1024
)

type options struct {
	codec             codec.Codec
	metricsCollector  MetricsCollector
	logger            *Logger
	parallelThreshold int
	maxWorkers        int
}

// Option configures tree construction and decoding.
type Option func(*options)

// WithCodec configures the codec used by MarshalJSON and UnmarshalJSON.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithParallelThreshold sets the fan-out threshold of ParBuild and
// ParBuildOrdered. Regions of at most n items are built sequentially.
//
// Values below 1 are ignored. The threshold never changes the resulting
// layout, only how the work is scheduled.
func WithParallelThreshold(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.parallelThreshold = n
		}
	}
}

// WithMaxWorkers bounds the number of sub-regions built concurrently by the
// parallel builders. When all workers are busy, the forking goroutine
// recurses into both halves itself.
//
// If n <= 0, runtime.GOMAXPROCS(0) is used.
func WithMaxWorkers(n int) Option {
	return func(o *options) {
		o.maxWorkers = n
	}
}

// WithMetricsCollector configures a metrics collector for monitoring builds
// and queries. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &kdtree.BasicMetricsCollector{}
//	tree, _ := kdtree.BuildOrdered(points, point.Array3[float64]{}, kdtree.WithMetricsCollector(metrics))
//	// ... query tree ...
//	stats := metrics.GetStats()
//	fmt.Printf("Searches: %d, Avg latency: %dns\n", stats.SearchCount, stats.SearchAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for builds and decoding.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := kdtree.NewJSONLogger(slog.LevelDebug)
//	tree := kdtree.Build(points, point.Array2[int]{}, kdtree.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		codec:             codec.Default,
		metricsCollector:  NoopMetricsCollector{},
		logger:            NoopLogger(),
		parallelThreshold: DefaultParallelThreshold,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.maxWorkers <= 0 {
		o.maxWorkers = runtime.GOMAXPROCS(0)
	}
	return o
}

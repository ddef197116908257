package kdtree

import (
	"sync/atomic"
	"time"
)

// SearchKind identifies a query operation in metrics.
type SearchKind string

const (
	SearchNearest      SearchKind = "nearest"
	SearchNearests     SearchKind = "nearests"
	SearchWithin       SearchKind = "within"
	SearchWithinRadius SearchKind = "within_radius"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; package
// prommetrics provides a Prometheus implementation.
//
// Implementations must be safe for concurrent use, since queries may run
// from many goroutines at once.
type MetricsCollector interface {
	// RecordBuild is called after each build or decode.
	// count is the number of items, err is nil if successful.
	RecordBuild(count int, parallel bool, duration time.Duration, err error)

	// RecordSearch is called after each query.
	// results is the number of items returned.
	RecordSearch(kind SearchKind, results int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBuild(int, bool, time.Duration, error) {}
func (NoopMetricsCollector) RecordSearch(SearchKind, int, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	BuildCount         atomic.Int64
	BuildErrors        atomic.Int64
	BuildItems         atomic.Int64
	ParallelBuildCount atomic.Int64
	BuildTotalNanos    atomic.Int64
	SearchCount        atomic.Int64
	SearchResults      atomic.Int64
	SearchTotalNanos   atomic.Int64
}

// RecordBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBuild(count int, parallel bool, duration time.Duration, err error) {
	b.BuildCount.Add(1)
	b.BuildTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.BuildErrors.Add(1)
		return
	}
	b.BuildItems.Add(int64(count))
	if parallel {
		b.ParallelBuildCount.Add(1)
	}
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(_ SearchKind, results int, duration time.Duration) {
	b.SearchCount.Add(1)
	b.SearchResults.Add(int64(results))
	b.SearchTotalNanos.Add(duration.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		BuildCount:         b.BuildCount.Load(),
		BuildErrors:        b.BuildErrors.Load(),
		BuildItems:         b.BuildItems.Load(),
		ParallelBuildCount: b.ParallelBuildCount.Load(),
		BuildAvgNanos:      avg(b.BuildTotalNanos.Load(), b.BuildCount.Load()),
		SearchCount:        b.SearchCount.Load(),
		SearchResults:      b.SearchResults.Load(),
		SearchAvgNanos:     avg(b.SearchTotalNanos.Load(), b.SearchCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	BuildCount         int64
	BuildErrors        int64
	BuildItems         int64
	ParallelBuildCount int64
	BuildAvgNanos      int64
	SearchCount        int64
	SearchResults      int64
	SearchAvgNanos     int64
}

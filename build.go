package kdtree

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/hupe1980/kdtree/internal/selection"
	"github.com/hupe1980/kdtree/point"
)

// validateChunk is the number of items checked per goroutine when the parallel
// builders scan for NaN coordinates.
const validateChunk = 4096

// Build constructs a tree over items with integer coordinates.
//
// Build takes ownership of items and permutes it in place; the caller must not
// use the slice afterwards. The resulting layout depends only on the input
// order.
func Build[T any, S point.Integer](items []T, acc point.Accessor[T, S], optFns ...Option) *Tree[T, S] {
	o := applyOptions(optFns)
	start := time.Now()

	newBuilder(acc, o).build(items, 0)

	t := newTree(items, acc, o)
	t.observeBuild(false, time.Since(start), nil)
	return t
}

// BuildOrdered constructs a tree over items with floating-point coordinates.
//
// Every coordinate is checked through point.Ordered before the slice is
// touched. A NaN fails the whole build with an *InvalidCoordinateError and
// leaves items unmodified. On success BuildOrdered takes ownership of items.
func BuildOrdered[T any, S point.Float](items []T, acc point.Accessor[T, S], optFns ...Option) (*Tree[T, S], error) {
	o := applyOptions(optFns)
	start := time.Now()

	b := newBuilder(acc, o)
	if err := checkOrdered(items, acc, 0); err != nil {
		o.metricsCollector.RecordBuild(len(items), false, time.Since(start), err)
		o.logger.WithCount(len(items)).WithDimension(b.dims).LogBuild(false, time.Since(start), err)
		return nil, err
	}
	b.build(items, 0)

	t := newTree(items, acc, o)
	t.observeBuild(false, time.Since(start), nil)
	return t, nil
}

// ParBuild is Build with the two halves of every large region built
// concurrently. The result is identical to Build for the same input.
func ParBuild[T any, S point.Integer](items []T, acc point.Accessor[T, S], optFns ...Option) *Tree[T, S] {
	o := applyOptions(optFns)
	start := time.Now()

	newBuilder(acc, o).parBuild(items, 0)

	t := newTree(items, acc, o)
	t.observeBuild(true, time.Since(start), nil)
	return t
}

// ParBuildOrdered is BuildOrdered with the NaN scan and the two halves of
// every large region processed concurrently. The resulting layout is
// identical to BuildOrdered for the same input. It blocks until the whole
// tree is built.
func ParBuildOrdered[T any, S point.Float](items []T, acc point.Accessor[T, S], optFns ...Option) (*Tree[T, S], error) {
	o := applyOptions(optFns)
	start := time.Now()

	b := newBuilder(acc, o)
	if err := parCheckOrdered(items, acc, b.workers); err != nil {
		o.metricsCollector.RecordBuild(len(items), true, time.Since(start), err)
		o.logger.WithCount(len(items)).WithDimension(b.dims).LogBuild(true, time.Since(start), err)
		return nil, err
	}
	b.parBuild(items, 0)

	t := newTree(items, acc, o)
	t.observeBuild(true, time.Since(start), nil)
	return t, nil
}

func (t *Tree[T, S]) observeBuild(parallel bool, d time.Duration, err error) {
	t.opts.metricsCollector.RecordBuild(len(t.items), parallel, d, err)
	t.opts.logger.WithCount(len(t.items)).WithDimension(t.dims).LogBuild(parallel, d, err)
}

type builder[T any, S point.Scalar] struct {
	acc       point.Accessor[T, S]
	dims      int
	threshold int
	workers   int
	sem       *semaphore.Weighted
}

func newBuilder[T any, S point.Scalar](acc point.Accessor[T, S], o options) *builder[T, S] {
	return &builder[T, S]{
		acc:       acc,
		dims:      mustDims(acc),
		threshold: o.parallelThreshold,
		workers:   o.maxWorkers,
		sem:       semaphore.NewWeighted(int64(o.maxWorkers)),
	}
}

func mustDims[T any, S point.Scalar](acc point.Accessor[T, S]) int {
	if acc == nil {
		panic("kdtree: nil accessor")
	}
	dims := acc.Dims()
	if dims < 1 {
		panic("kdtree: accessor must have at least one axis")
	}
	return dims
}

// partition moves the median of items on the depth's axis to len(items)/2.
func (b *builder[T, S]) partition(items []T, depth int) int {
	axis := depth % b.dims
	return selection.Partition(items, func(item T) S {
		return b.acc.Coord(item, axis)
	})
}

func (b *builder[T, S]) build(items []T, depth int) {
	if len(items) <= 1 {
		return
	}
	mid := b.partition(items, depth)
	b.build(items[:mid], depth+1)
	b.build(items[mid+1:], depth+1)
}

// parBuild forks the left region onto a new goroutine while the calling
// goroutine handles the right one. Both regions are sliced out of items by
// index range around the pivot; the left slice is capped at mid so neither
// half can reach into the other.
func (b *builder[T, S]) parBuild(items []T, depth int) {
	if len(items) <= b.threshold {
		b.build(items, depth)
		return
	}

	mid := b.partition(items, depth)
	left, right := items[:mid:mid], items[mid+1:]

	if !b.sem.TryAcquire(1) {
		b.parBuild(left, depth+1)
		b.parBuild(right, depth+1)
		return
	}

	var g errgroup.Group
	g.Go(func() error {
		defer b.sem.Release(1)
		b.parBuild(left, depth+1)
		return nil
	})
	b.parBuild(right, depth+1)
	_ = g.Wait()
}

// checkOrdered reports the first NaN coordinate in items. offset is added to
// the reported index.
func checkOrdered[T any, S point.Float](items []T, acc point.Accessor[T, S], offset int) error {
	ord := point.Ordered[T, S]{Accessor: acc}
	for i, item := range items {
		if err := ord.Check(item); err != nil {
			var nanErr *point.NaNError
			if !errors.As(err, &nanErr) {
				return err
			}
			return &InvalidCoordinateError{Index: offset + i, Axis: nanErr.Axis, cause: err}
		}
	}
	return nil
}

// parCheckOrdered scans items in chunks on up to workers goroutines and
// stops at the first NaN. With several offending items, any one of them may
// be reported.
func parCheckOrdered[T any, S point.Float](items []T, acc point.Accessor[T, S], workers int) error {
	if len(items) <= validateChunk {
		return checkOrdered(items, acc, 0)
	}
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(workers)
	for lo := 0; lo < len(items); lo += validateChunk {
		if ctx.Err() != nil {
			break
		}
		hi := min(lo+validateChunk, len(items))
		g.Go(func() error {
			return checkOrdered(items[lo:hi], acc, lo)
		})
	}
	return g.Wait()
}

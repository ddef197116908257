package kdtree

import (
	"iter"
	"slices"
	"sync"
	"time"

	"github.com/hupe1980/kdtree/internal/queue"
	"github.com/hupe1980/kdtree/point"
)

// Tree is a static k-d tree over items of type T with coordinates of type S.
//
// The tree owns a single slice whose order encodes an implicit balanced tree:
// the node of a region items[lo:hi] sits at lo+(hi-lo)/2, its left subtree is
// the region before it and its right subtree the region after it. The node at
// depth d splits on axis d mod K.
//
// A Tree is immutable after construction. All query methods are safe for
// concurrent use.
type Tree[T any, S point.Scalar] struct {
	items []T
	acc   point.Accessor[T, S]
	dims  int
	opts  options

	// recordSearch is false when metrics are disabled, so queries skip the clock.
	recordSearch bool

	// queues recycles the bounded heaps used by Nearests.
	queues sync.Pool
}

// Neighbor is a query result: a reference to a stored item and its squared
// distance to the query. Item points into the tree and stays valid as long
// as the tree does.
type Neighbor[T any, S point.Scalar] struct {
	Item            *T
	SquaredDistance S
}

func newTree[T any, S point.Scalar](items []T, acc point.Accessor[T, S], o options) *Tree[T, S] {
	if items == nil {
		items = []T{}
	}
	_, noop := o.metricsCollector.(NoopMetricsCollector)
	t := &Tree[T, S]{
		items:        items,
		acc:          acc,
		dims:         acc.Dims(),
		opts:         o,
		recordSearch: !noop,
	}
	t.queues.New = func() any {
		return queue.NewMax[*T, S](16)
	}
	return t
}

// Empty returns a tree without items, typically used as the target of
// UnmarshalJSON.
func Empty[T any, S point.Scalar](acc point.Accessor[T, S], optFns ...Option) *Tree[T, S] {
	mustDims(acc)
	return newTree(nil, acc, applyOptions(optFns))
}

// Len returns the number of items in the tree.
func (t *Tree[T, S]) Len() int { return len(t.items) }

// Dims returns the number of axes K.
func (t *Tree[T, S]) Dims() int { return t.dims }

// Accessor returns the coordinate accessor of the tree.
func (t *Tree[T, S]) Accessor() point.Accessor[T, S] { return t.acc }

// All returns an iterator over references to all items in internal order.
// The sequence may be ranged over any number of times.
func (t *Tree[T, S]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := range t.items {
			if !yield(&t.items[i]) {
				return
			}
		}
	}
}

// Items returns a copy of the items in internal order.
func (t *Tree[T, S]) Items() []T {
	return slices.Clone(t.items)
}

// Validate checks that the current layout satisfies the k-d tree invariant:
// for every node, items in its left region are <= the node and items in its
// right region are >= the node on the node's axis. NaN coordinates fail.
func (t *Tree[T, S]) Validate() error {
	return t.validate(0, len(t.items), 0)
}

func (t *Tree[T, S]) validate(lo, hi, depth int) error {
	if hi-lo == 0 {
		return nil
	}
	mid := lo + (hi-lo)/2
	axis := depth % t.dims
	v := t.acc.Coord(t.items[mid], axis)
	if v != v {
		return &LayoutError{Node: mid, Item: mid, Axis: axis, Depth: depth}
	}
	for i := lo; i < hi; i++ {
		c := t.acc.Coord(t.items[i], axis)
		if c != c || (i < mid && c > v) || (i > mid && c < v) {
			return &LayoutError{Node: mid, Item: i, Axis: axis, Depth: depth}
		}
	}
	if err := t.validate(lo, mid, depth+1); err != nil {
		return err
	}
	return t.validate(mid+1, hi, depth+1)
}

func (t *Tree[T, S]) observe(kind SearchKind, start time.Time, results int) {
	t.opts.metricsCollector.RecordSearch(kind, results, time.Since(start))
}

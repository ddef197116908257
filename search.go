package kdtree

import (
	"time"

	"github.com/hupe1980/kdtree/distance"
	"github.com/hupe1980/kdtree/internal/queue"
	"github.com/hupe1980/kdtree/point"
)

// Nearest returns the stored item closest to query. It returns false only
// when the tree is empty. Among equidistant items, which one is returned is
// unspecified.
func (t *Tree[T, S]) Nearest(query T) (Neighbor[T, S], bool) {
	if len(t.items) == 0 {
		return Neighbor[T, S]{}, false
	}
	var start time.Time
	if t.recordSearch {
		start = time.Now()
	}

	s := nearestSearch[T, S]{acc: t.acc, dims: t.dims, query: query}
	s.visit(t.items, 0)

	if t.recordSearch {
		t.observe(SearchNearest, start, 1)
	}
	return Neighbor[T, S]{Item: s.best, SquaredDistance: s.dist}, true
}

// Nearests returns the min(k, Len()) stored items closest to query, sorted by
// ascending squared distance. Every item not returned is at least as far from
// query as the last returned one. Order among equidistant items is
// unspecified. k <= 0 yields nil.
func (t *Tree[T, S]) Nearests(query T, k int) []Neighbor[T, S] {
	if k <= 0 || len(t.items) == 0 {
		return nil
	}
	var start time.Time
	if t.recordSearch {
		start = time.Now()
	}

	pq := t.queues.Get().(*queue.PriorityQueue[*T, S])
	s := nearestsSearch[T, S]{acc: t.acc, dims: t.dims, query: query, k: min(k, len(t.items)), pq: pq}
	s.visit(t.items, 0)

	found := pq.Drain()
	t.queues.Put(pq)

	out := make([]Neighbor[T, S], len(found))
	for i, it := range found {
		out[i] = Neighbor[T, S]{Item: it.Value, SquaredDistance: it.Distance}
	}

	if t.recordSearch {
		t.observe(SearchNearests, start, len(out))
	}
	return out
}

// Within returns every item inside the axis-aligned box spanned by box[0]
// (minimum corner) and box[1] (maximum corner), bounds inclusive, in no
// particular order.
//
// The box must be normalized by the caller: box[0] <= box[1] on every axis.
// A box inverted on some axis contains nothing and yields nil.
func (t *Tree[T, S]) Within(box [2]T) []*T {
	if len(t.items) == 0 {
		return nil
	}
	for axis := range t.dims {
		if t.acc.Coord(box[0], axis) > t.acc.Coord(box[1], axis) {
			return nil
		}
	}
	var start time.Time
	if t.recordSearch {
		start = time.Now()
	}

	s := withinSearch[T, S]{acc: t.acc, dims: t.dims, lo: box[0], hi: box[1]}
	s.visit(t.items, 0)

	if t.recordSearch {
		t.observe(SearchWithin, start, len(s.out))
	}
	return s.out
}

// WithinRadius returns every item whose squared distance to query is strictly
// less than radius², in no particular order. A radius <= 0 yields nil.
func (t *Tree[T, S]) WithinRadius(query T, radius S) []*T {
	if len(t.items) == 0 || radius <= 0 {
		return nil
	}
	var start time.Time
	if t.recordSearch {
		start = time.Now()
	}

	s := radiusSearch[T, S]{acc: t.acc, dims: t.dims, query: query, r2: radius * radius}
	s.visit(t.items, 0)

	if t.recordSearch {
		t.observe(SearchWithinRadius, start, len(s.out))
	}
	return s.out
}

// split returns the two regions on either side of the node of a non-empty
// region, the one on query's side of the splitting plane first. q and v are
// the query's and the node's coordinates on the node's axis.
func split[T any, S point.Scalar](items []T, q, v S) (near, far []T) {
	mid := len(items) / 2
	if q < v {
		return items[:mid], items[mid+1:]
	}
	return items[mid+1:], items[:mid]
}

type nearestSearch[T any, S point.Scalar] struct {
	acc   point.Accessor[T, S]
	dims  int
	query T
	best  *T
	dist  S
}

func (s *nearestSearch[T, S]) visit(items []T, depth int) {
	if len(items) == 0 {
		return
	}
	node := &items[len(items)/2]
	if d := distance.SquaredEuclidean(s.acc, *node, s.query); s.best == nil || d < s.dist {
		s.best, s.dist = node, d
	}

	axis := depth % s.dims
	q, v := s.acc.Coord(s.query, axis), s.acc.Coord(*node, axis)
	near, far := split(items, q, v)

	s.visit(near, depth+1)
	if distance.Axis(s.acc, s.query, *node, axis) < s.dist {
		s.visit(far, depth+1)
	}
}

type nearestsSearch[T any, S point.Scalar] struct {
	acc   point.Accessor[T, S]
	dims  int
	query T
	k     int
	pq    *queue.PriorityQueue[*T, S] // max-heap of the k best so far
}

func (s *nearestsSearch[T, S]) visit(items []T, depth int) {
	if len(items) == 0 {
		return
	}
	node := &items[len(items)/2]
	d := distance.SquaredEuclidean(s.acc, *node, s.query)
	s.pq.PushItemBounded(queue.Item[*T, S]{Value: node, Distance: d}, s.k)

	axis := depth % s.dims
	q, v := s.acc.Coord(s.query, axis), s.acc.Coord(*node, axis)
	near, far := split(items, q, v)

	s.visit(near, depth+1)
	if worst, _ := s.pq.TopItem(); s.pq.Len() < s.k || distance.Axis(s.acc, s.query, *node, axis) < worst.Distance {
		s.visit(far, depth+1)
	}
}

type withinSearch[T any, S point.Scalar] struct {
	acc    point.Accessor[T, S]
	dims   int
	lo, hi T
	out    []*T
}

func (s *withinSearch[T, S]) contains(item T) bool {
	for axis := range s.dims {
		c := s.acc.Coord(item, axis)
		if c < s.acc.Coord(s.lo, axis) || c > s.acc.Coord(s.hi, axis) {
			return false
		}
	}
	return true
}

func (s *withinSearch[T, S]) visit(items []T, depth int) {
	if len(items) == 0 {
		return
	}
	mid := len(items) / 2
	node := &items[mid]
	if s.contains(*node) {
		s.out = append(s.out, node)
	}

	// Left items are <= v and right items >= v on this axis, so a side is
	// skipped only when the box lies strictly beyond v.
	axis := depth % s.dims
	v := s.acc.Coord(*node, axis)
	if s.acc.Coord(s.lo, axis) <= v {
		s.visit(items[:mid], depth+1)
	}
	if v <= s.acc.Coord(s.hi, axis) {
		s.visit(items[mid+1:], depth+1)
	}
}

type radiusSearch[T any, S point.Scalar] struct {
	acc   point.Accessor[T, S]
	dims  int
	query T
	r2    S
	out   []*T
}

func (s *radiusSearch[T, S]) visit(items []T, depth int) {
	if len(items) == 0 {
		return
	}
	node := &items[len(items)/2]
	if distance.SquaredEuclidean(s.acc, *node, s.query) < s.r2 {
		s.out = append(s.out, node)
	}

	axis := depth % s.dims
	q, v := s.acc.Coord(s.query, axis), s.acc.Coord(*node, axis)
	near, far := split(items, q, v)

	s.visit(near, depth+1)
	if distance.Axis(s.acc, s.query, *node, axis) < s.r2 {
		s.visit(far, depth+1)
	}
}

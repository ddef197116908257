// Package queue provides a bounded value-based max-heap keyed by distance.
package queue

import "cmp"

// Item is a heap entry.
type Item[E any, D cmp.Ordered] struct {
	Value    E // Value is the payload, typically a reference into the tree.
	Distance D // Distance is the priority of the item in the queue.
}

// PriorityQueue is a binary max-heap of Items; the top is the item with the
// largest distance. Value-based storage; it does NOT implement container/heap
// to avoid interface overhead.
type PriorityQueue[E any, D cmp.Ordered] struct {
	items []Item[E, D]
}

// NewMax initializes a new priority queue with maximum priority.
func NewMax[E any, D cmp.Ordered](capacity int) *PriorityQueue[E, D] {
	return &PriorityQueue[E, D]{
		items: make([]Item[E, D], 0, capacity),
	}
}

// Len returns the number of elements in the priority queue.
func (pq *PriorityQueue[E, D]) Len() int { return len(pq.items) }

// TopItem returns the item with the largest distance.
func (pq *PriorityQueue[E, D]) TopItem() (Item[E, D], bool) {
	if len(pq.items) == 0 {
		return Item[E, D]{}, false
	}
	return pq.items[0], true
}

// PushItem inserts an item while maintaining the heap invariant.
func (pq *PriorityQueue[E, D]) PushItem(item Item[E, D]) {
	pq.items = append(pq.items, item)
	pq.siftUp(len(pq.items) - 1)
}

// PushItemBounded inserts an item into a heap holding at most capacity items.
// Once the heap is full, an item replaces the top only if it is strictly
// closer, so the heap keeps the capacity smallest distances seen.
func (pq *PriorityQueue[E, D]) PushItemBounded(item Item[E, D], capacity int) {
	if capacity <= 0 {
		return
	}
	if len(pq.items) < capacity {
		pq.PushItem(item)
		return
	}
	if item.Distance < pq.items[0].Distance {
		pq.items[0] = item
		pq.siftDown(0)
	}
}

// PopItem removes and returns the item with the largest distance.
func (pq *PriorityQueue[E, D]) PopItem() (Item[E, D], bool) {
	n := len(pq.items)
	if n == 0 {
		return Item[E, D]{}, false
	}
	root := pq.items[0]
	last := pq.items[n-1]
	pq.items[n-1] = Item[E, D]{}
	pq.items = pq.items[:n-1]
	if n-1 > 0 {
		pq.items[0] = last
		pq.siftDown(0)
	}
	return root, true
}

// Drain empties the queue and returns its items by ascending distance.
func (pq *PriorityQueue[E, D]) Drain() []Item[E, D] {
	out := make([]Item[E, D], len(pq.items))
	for i := len(out) - 1; i >= 0; i-- {
		out[i], _ = pq.PopItem()
	}
	return out
}

func (pq *PriorityQueue[E, D]) less(i, j int) bool {
	return pq.items[i].Distance > pq.items[j].Distance
}

func (pq *PriorityQueue[E, D]) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !pq.less(i, p) {
			return
		}
		pq.items[i], pq.items[p] = pq.items[p], pq.items[i]
		i = p
	}
}

func (pq *PriorityQueue[E, D]) siftDown(i int) {
	n := len(pq.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		best := l
		r := l + 1
		if r < n && pq.less(r, l) {
			best = r
		}
		if !pq.less(best, i) {
			return
		}
		pq.items[i], pq.items[best] = pq.items[best], pq.items[i]
		i = best
	}
}

// Package selection implements in-place order statistics for the k-d tree build.
//
// The algorithm is a quickselect with a deterministic pivot (median of three,
// Tukey's ninther for larger regions) and a three-way partition. Equal keys are
// collapsed into the middle band, so duplicate-heavy inputs stay linear.
// No randomness is involved: the resulting order is a pure function of the
// input order, which lets the sequential and parallel builds agree exactly.
package selection

import "cmp"

// ninther is the region size above which the pivot is chosen by Tukey's ninther.
const ninther = 40

// Select rearranges items in place so that items[k] holds the element of rank k
// by key. Afterwards key(items[i]) <= key(items[k]) for every i < k and
// key(items[i]) >= key(items[k]) for every i > k.
//
// key must impose a total order; callers filter NaN before selecting floats.
// Select panics if k is out of range.
func Select[T any, S cmp.Ordered](items []T, k int, key func(T) S) {
	if k < 0 || k >= len(items) {
		panic("selection: rank out of range")
	}

	lo, hi := 0, len(items)
	for hi-lo > 1 {
		p := key(items[choosePivot(items, lo, hi, key)])
		lt, gt := partition3(items, lo, hi, p, key)

		switch {
		case k < lt:
			hi = lt
		case k >= gt:
			lo = gt
		default:
			return
		}
	}
}

// Partition selects the median of a non-empty region and returns its position,
// which is always len(items)/2.
func Partition[T any, S cmp.Ordered](items []T, key func(T) S) int {
	mid := len(items) / 2
	Select(items, mid, key)
	return mid
}

// partition3 splits items[lo:hi] into three bands around p:
// items[lo:lt] < p, items[lt:gt] == p, items[gt:hi] > p.
func partition3[T any, S cmp.Ordered](items []T, lo, hi int, p S, key func(T) S) (lt, gt int) {
	lt, gt = lo, hi
	for i := lo; i < gt; {
		v := key(items[i])
		switch {
		case v < p:
			items[lt], items[i] = items[i], items[lt]
			lt++
			i++
		case v > p:
			gt--
			items[i], items[gt] = items[gt], items[i]
		default:
			i++
		}
	}
	return lt, gt
}

func choosePivot[T any, S cmp.Ordered](items []T, lo, hi int, key func(T) S) int {
	n := hi - lo
	mid := lo + n/2
	last := hi - 1
	if n > ninther {
		s := n / 8
		a := medianOfThree(items, lo, lo+s, lo+2*s, key)
		b := medianOfThree(items, mid-s, mid, mid+s, key)
		c := medianOfThree(items, last-2*s, last-s, last, key)
		return medianOfThree(items, a, b, c, key)
	}
	return medianOfThree(items, lo, mid, last, key)
}

// medianOfThree returns whichever of the indices a, b, c holds the median key.
func medianOfThree[T any, S cmp.Ordered](items []T, a, b, c int, key func(T) S) int {
	ka, kb, kc := key(items[a]), key(items[b]), key(items[c])
	if ka > kb {
		a, b = b, a
		ka, kb = kb, ka
	}
	if kb > kc {
		b = c
		kb = kc
	}
	if ka > kb {
		return a
	}
	return b
}

// File: deque/sort.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Interop with the standard sort machinery. The ring sorts and searches in
// place through its logical indices; elements are never copied out.

package deque

import "sort"

// byLess adapts a deque and an ordering to sort.Interface.
type byLess[T any] struct {
	d    *Deque[T]
	less func(a, b T) bool
}

func (s byLess[T]) Len() int { return s.d.size }

func (s byLess[T]) Less(i, j int) bool {
	return s.less(s.d.data[s.d.slot(i)], s.d.data[s.d.slot(j)])
}

func (s byLess[T]) Swap(i, j int) { s.d.swapAt(i, j) }

// Sort orders the elements in place under less. The sort is not stable.
func (d *Deque[T]) Sort(less func(a, b T) bool) {
	sort.Sort(byLess[T]{d: d, less: less})
}

// SortStable is Sort with the stable algorithm: elements that compare equal
// keep their relative order.
func (d *Deque[T]) SortStable(less func(a, b T) bool) {
	sort.Stable(byLess[T]{d: d, less: less})
}

// Search returns the smallest logical index at which pred is true, given
// that pred is false for some prefix of the deque and true for the rest
// (the sort.Search contract). It returns Len when pred is never true.
func (d *Deque[T]) Search(pred func(T) bool) int {
	return sort.Search(d.size, func(i int) bool { return pred(d.data[d.slot(i)]) })
}

// IndexFunc returns the first logical index whose element satisfies pred,
// or -1 when none does.
func (d *Deque[T]) IndexFunc(pred func(T) bool) int {
	for i := 0; i < d.size; i++ {
		if pred(d.data[d.slot(i)]) {
			return i
		}
	}
	return -1
}

// File: deque/iterator.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Random-access iterator over the ring. An iterator is a (deque, logical
// offset) pair. It never caches a slot address, so re-homing the storage
// through growth or Reserve cannot strand it.

package deque

// Iterator addresses the element at a logical offset from the deque's
// front. Every dereference resolves the physical slot through the owning
// deque at call time.
//
// Iterators are plain values: copies are independent and freely reusable.
// An iterator denotes an offset, not an element identity. After front pops,
// Insert or Erase, iterators at or beyond the edited region address
// different elements than before the edit.
//
// The zero Iterator is not attached to any deque; dereferencing it panics.
type Iterator[T any] struct {
	d   *Deque[T]
	off int
}

// Begin returns an iterator at logical offset 0, the front element.
func (d *Deque[T]) Begin() Iterator[T] { return Iterator[T]{d: d} }

// End returns the past-the-end iterator at offset Len. It is a boundary
// marker only; dereferencing it panics.
func (d *Deque[T]) End() Iterator[T] { return Iterator[T]{d: d, off: d.size} }

// Next returns an iterator advanced by one element.
func (it Iterator[T]) Next() Iterator[T] { return Iterator[T]{d: it.d, off: it.off + 1} }

// Prev returns an iterator moved back by one element.
func (it Iterator[T]) Prev() Iterator[T] { return Iterator[T]{d: it.d, off: it.off - 1} }

// Add returns an iterator advanced by n elements; n may be negative.
func (it Iterator[T]) Add(n int) Iterator[T] { return Iterator[T]{d: it.d, off: it.off + n} }

// Sub returns an iterator moved back by n elements; n may be negative.
func (it Iterator[T]) Sub(n int) Iterator[T] { return it.Add(-n) }

// Diff returns the distance it minus o, in elements. Both iterators must
// belong to the same deque.
func (it Iterator[T]) Diff(o Iterator[T]) int {
	if it.d != o.d {
		panic("deque: Diff of iterators from different deques")
	}
	return it.off - o.off
}

// Pos returns the logical offset from Begin.
func (it Iterator[T]) Pos() int { return it.off }

// Valid reports whether the iterator is attached to a deque and its offset
// currently addresses a live element. End iterators are attached but not
// valid.
func (it Iterator[T]) Valid() bool {
	return it.d != nil && it.off >= 0 && it.off < it.d.size
}

// Value returns the element the iterator addresses.
func (it Iterator[T]) Value() T {
	it.mustAttach()
	return it.d.At(it.off)
}

// Set writes v through the iterator.
func (it Iterator[T]) Set(v T) {
	it.mustAttach()
	it.d.Set(it.off, v)
}

// At returns the element n positions past the iterator; n may be negative.
func (it Iterator[T]) At(n int) T {
	it.mustAttach()
	return it.d.At(it.off + n)
}

// Equal reports whether both iterators address the same offset of the same
// deque.
func (it Iterator[T]) Equal(o Iterator[T]) bool {
	return it.d == o.d && it.off == o.off
}

// Before reports whether it precedes o. Ordering compares offsets only and
// carries no meaning across different deques.
func (it Iterator[T]) Before(o Iterator[T]) bool { return it.off < o.off }

// After reports whether it follows o. Same cross-deque caveat as Before.
func (it Iterator[T]) After(o Iterator[T]) bool { return it.off > o.off }

// Compare orders two iterators by offset: -1 when it is earlier, 0 when
// the offsets match, +1 when it is later.
func (it Iterator[T]) Compare(o Iterator[T]) int {
	switch {
	case it.off < o.off:
		return -1
	case it.off > o.off:
		return +1
	}
	return 0
}

func (it Iterator[T]) mustAttach() {
	if it.d == nil {
		panic("deque: use of unattached iterator")
	}
}

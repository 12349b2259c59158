// File: deque/clone.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Copying and equality. Clones allocate exactly Len slots: capacity records
// a buffer's growth history, not its value, and does not travel with
// copies.

package deque

import "fmt"

// Clone returns a new deque with the same elements in the same logical
// order. The clone's capacity equals the source's length; slack slots are
// not carried over, and an empty source clones without allocating.
func (d *Deque[T]) Clone() *Deque[T] {
	c := &Deque[T]{}
	if d.size == 0 {
		return c
	}
	c.data = make([]T, d.size)
	for i := 0; i < d.size; i++ {
		c.data[i] = d.data[d.slot(i)]
	}
	c.size = d.size
	return c
}

// CloneFunc returns a deque whose elements are produced by clone, applied
// in logical order. On the first error the partial copy is discarded, the
// receiver is untouched, and the returned error wraps the cause with the
// failing element's logical index.
func (d *Deque[T]) CloneFunc(clone func(T) (T, error)) (*Deque[T], error) {
	c := &Deque[T]{}
	if d.size == 0 {
		return c, nil
	}
	c.data = make([]T, d.size)
	for i := 0; i < d.size; i++ {
		v, err := clone(d.data[d.slot(i)])
		if err != nil {
			return nil, fmt.Errorf("deque: clone element %d: %w", i, err)
		}
		c.data[i] = v
	}
	c.size = d.size
	return c, nil
}

// CopyFrom replaces the receiver's content with a copy of o using the
// clone-and-swap idiom: the copy is fully built first, then adopted in one
// O(1) exchange, so the receiver keeps its old state if cloning panics
// partway. Copying a deque onto itself is a no-op. Like Clone, the adopted
// capacity equals o.Len().
func (d *Deque[T]) CopyFrom(o *Deque[T]) {
	if d == o {
		return
	}
	d.Swap(o.Clone())
}

// Slice returns the elements as a fresh slice in logical order. The slice
// shares no storage with the deque.
func (d *Deque[T]) Slice() []T {
	out := make([]T, d.size)
	for i := 0; i < d.size; i++ {
		out[i] = d.data[d.slot(i)]
	}
	return out
}

// Equal reports whether a and b hold the same elements in the same logical
// order. Capacity and head position do not participate: equality is a
// property of the sequence, not of the storage layout.
func Equal[T comparable](a, b *Deque[T]) bool {
	if a.size != b.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if a.data[a.slot(i)] != b.data[b.slot(i)] {
			return false
		}
	}
	return true
}

// EqualFunc is Equal with a caller-supplied element comparison, usable when
// the element types differ or are not comparable.
func EqualFunc[T, U any](a *Deque[T], b *Deque[U], eq func(T, U) bool) bool {
	if a.size != b.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if !eq(a.data[a.slot(i)], b.data[b.slot(i)]) {
			return false
		}
	}
	return true
}

// File: deque/seq.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Range-over-func iteration, mirroring the slices package surface.

package deque

import "iter"

// All returns an iterator over (logical index, element) pairs, front to
// back. The deque must not be mutated during iteration.
func (d *Deque[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < d.size; i++ {
			if !yield(i, d.data[d.slot(i)]) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements, front to back.
func (d *Deque[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < d.size; i++ {
			if !yield(d.data[d.slot(i)]) {
				return
			}
		}
	}
}

// Backward returns an iterator over (logical index, element) pairs, back to
// front.
func (d *Deque[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := d.size - 1; i >= 0; i-- {
			if !yield(i, d.data[d.slot(i)]) {
				return
			}
		}
	}
}

// Collect builds a deque from seq by pushing each value onto the back.
func Collect[T any](seq iter.Seq[T]) *Deque[T] {
	d := New[T]()
	for v := range seq {
		d.PushBack(v)
	}
	return d
}

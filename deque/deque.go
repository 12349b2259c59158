// File: deque/deque.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Growable double-ended ring buffer. Storage is one contiguous slot block;
// the live window starts at head and wraps modulo capacity.

package deque

import (
	"fmt"

	"github.com/momentics/hioload-deque/api"
)

// Ensure compile-time interface compliance.
var _ api.Deque[any] = (*Deque[any])(nil)

// Deque is a double-ended queue backed by a growable ring buffer.
//
// The zero value is an empty deque ready for use. Storage is allocated on
// first push, doubles whenever the window fills, and holds exactly the
// requested slot count after Reserve.
//
// A Deque is not safe for concurrent use.
type Deque[T any] struct {
	data []T // slot block; len(data) is the capacity, nil until first growth
	head int // physical slot of the logical first element
	size int // live element count; size == 0 whenever len(data) == 0
}

// New returns an empty deque with no allocated storage.
func New[T any]() *Deque[T] { return &Deque[T]{} }

// NewWithCapacity returns an empty deque with capacity slots pre-allocated.
func NewWithCapacity[T any](capacity int) *Deque[T] {
	if capacity < 0 {
		panic(fmt.Sprintf("deque: NewWithCapacity(%d) with negative capacity", capacity))
	}
	d := &Deque[T]{}
	d.Reserve(capacity)
	return d
}

// Len returns the number of live elements.
func (d *Deque[T]) Len() int { return d.size }

// Cap returns the number of allocated element slots.
func (d *Deque[T]) Cap() int { return len(d.data) }

// Empty reports whether the deque holds no elements.
func (d *Deque[T]) Empty() bool { return d.size == 0 }

// slot maps a logical index onto its physical slot. Callers guarantee the
// block is non-empty.
func (d *Deque[T]) slot(i int) int { return (d.head + i) % len(d.data) }

// At returns the element at logical index i.
func (d *Deque[T]) At(i int) T {
	if i < 0 || i >= d.size {
		panic(fmt.Sprintf("deque: index %d out of range with length %d", i, d.size))
	}
	return d.data[d.slot(i)]
}

// Set replaces the element at logical index i with v.
func (d *Deque[T]) Set(i int, v T) {
	if i < 0 || i >= d.size {
		panic(fmt.Sprintf("deque: index %d out of range with length %d", i, d.size))
	}
	d.data[d.slot(i)] = v
}

// Front returns the first element without removing it.
func (d *Deque[T]) Front() T {
	if d.size == 0 {
		panic("deque: Front on empty deque")
	}
	return d.data[d.head]
}

// Back returns the last element without removing it.
func (d *Deque[T]) Back() T {
	if d.size == 0 {
		panic("deque: Back on empty deque")
	}
	return d.data[d.slot(d.size-1)]
}

// PushBack appends v as the new last element, doubling capacity when the
// window is full.
func (d *Deque[T]) PushBack(v T) {
	if d.size == len(d.data) {
		d.grow()
	}
	d.data[d.slot(d.size)] = v
	d.size++
}

// PushFront prepends v as the new first element, doubling capacity when the
// window is full. The head steps one slot backward, wrapping to the end of
// the block.
func (d *Deque[T]) PushFront(v T) {
	if d.size == len(d.data) {
		d.grow()
	}
	h := (d.head - 1 + len(d.data)) % len(d.data)
	d.data[h] = v
	d.head = h
	d.size++
}

// PopBack removes and returns the last element.
func (d *Deque[T]) PopBack() T {
	if d.size == 0 {
		panic("deque: PopBack on empty deque")
	}
	i := d.slot(d.size - 1)
	v := d.data[i]
	var zero T
	d.data[i] = zero // release the slot so the GC can reclaim what it referenced
	d.size--
	return v
}

// PopFront removes and returns the first element.
func (d *Deque[T]) PopFront() T {
	if d.size == 0 {
		panic("deque: PopFront on empty deque")
	}
	v := d.data[d.head]
	var zero T
	d.data[d.head] = zero
	d.head = (d.head + 1) % len(d.data)
	d.size--
	return v
}

// Reserve grows the slot block to exactly n slots when n exceeds the
// current capacity; smaller or equal requests are no-ops. Content and
// logical order are preserved, and iterators keep their meaning because
// offsets are relative to the head.
func (d *Deque[T]) Reserve(n int) {
	d.ensureCapacity(n)
}

// Clear removes every element. Capacity is unchanged, so the block can be
// refilled without reallocating.
func (d *Deque[T]) Clear() {
	var zero T
	for i := 0; i < d.size; i++ {
		d.data[d.slot(i)] = zero
	}
	d.size = 0
}

// Swap exchanges the entire state of two deques, including capacity, in
// O(1). Iterators follow the deque they were created from, not its former
// content.
func (d *Deque[T]) Swap(o *Deque[T]) {
	d.data, o.data = o.data, d.data
	d.head, o.head = o.head, d.head
	d.size, o.size = o.size, d.size
}

// grow doubles the capacity, or allocates a single slot for an empty block.
func (d *Deque[T]) grow() {
	if len(d.data) == 0 {
		d.ensureCapacity(1)
		return
	}
	d.ensureCapacity(2 * len(d.data))
}

// ensureCapacity re-homes the live window into a fresh block of exactly
// capacity slots, laid out from physical slot 0 in logical order. The old
// block is dropped wholesale and head resets to 0.
func (d *Deque[T]) ensureCapacity(capacity int) {
	if capacity <= len(d.data) {
		return
	}
	fresh := make([]T, capacity)
	for i := 0; i < d.size; i++ {
		fresh[i] = d.data[d.slot(i)]
	}
	d.data = fresh
	d.head = 0
}

// swapAt exchanges the elements at logical indices i and j.
func (d *Deque[T]) swapAt(i, j int) {
	pi, pj := d.slot(i), d.slot(j)
	d.data[pi], d.data[pj] = d.data[pj], d.data[pi]
}

// File: adapters/queue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// FIFO adapter over the ring-buffer deque.

package adapters

import (
	"github.com/momentics/hioload-deque/api"
	"github.com/momentics/hioload-deque/deque"
)

// Ensure compile-time interface compliance.
var _ api.Queue[any] = (*Queue[any])(nil)

// Queue is a growable FIFO queue backed by a ring-buffer deque. Enqueue
// appends at the back and Dequeue removes from the front, so both ends stay
// amortized O(1). The zero value is an empty queue ready for use.
type Queue[T any] struct {
	d deque.Deque[T]
}

// NewQueue returns an empty queue with no allocated storage.
func NewQueue[T any]() *Queue[T] { return &Queue[T]{} }

// NewQueueWithCapacity returns an empty queue with capacity slots
// pre-allocated.
func NewQueueWithCapacity[T any](capacity int) *Queue[T] {
	q := &Queue[T]{}
	q.d.Reserve(capacity)
	return q
}

// Enqueue appends item at the tail; storage grows as needed.
func (q *Queue[T]) Enqueue(item T) { q.d.PushBack(item) }

// Dequeue removes and returns the oldest item; ok is false on an empty
// queue.
func (q *Queue[T]) Dequeue() (item T, ok bool) {
	if q.d.Empty() {
		return item, false
	}
	return q.d.PopFront(), true
}

// Peek returns the oldest item without removing it; ok is false on an
// empty queue.
func (q *Queue[T]) Peek() (item T, ok bool) {
	if q.d.Empty() {
		return item, false
	}
	return q.d.Front(), true
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int { return q.d.Len() }

// Cap returns the number of allocated slots.
func (q *Queue[T]) Cap() int { return q.d.Cap() }

// Reserve pre-allocates storage for at least n items.
func (q *Queue[T]) Reserve(n int) { q.d.Reserve(n) }

// Clear removes all queued items while keeping the allocated capacity.
func (q *Queue[T]) Clear() { q.d.Clear() }

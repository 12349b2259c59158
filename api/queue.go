// File: api/queue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// FIFO contract over a growable container.

package api

// Queue is a first-in-first-out view of a growable container. Reads use the
// comma-ok form instead of panicking, so adapters can sit directly on hot
// paths without recover scaffolding.
type Queue[T any] interface {
	// Enqueue appends item at the tail; storage grows as needed, so it
	// always succeeds.
	Enqueue(item T)

	// Dequeue removes and returns the oldest item; ok is false when the
	// queue is empty.
	Dequeue() (item T, ok bool)

	// Peek returns the oldest item without removing it; ok is false when
	// the queue is empty.
	Peek() (item T, ok bool)

	// Len returns the current number of queued items.
	Len() int
}

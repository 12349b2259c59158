// File: api/deque.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Double-ended container contract.

package api

// Deque is a growable double-ended sequence with amortized O(1) pushes and
// pops at both ends and O(1) random access by logical index. Index 0 is the
// front; index Len()-1 is the back.
//
// Implementations are single-goroutine containers. Callers that share an
// instance across goroutines must serialize access themselves.
type Deque[T any] interface {
	// PushBack appends v after the last element, growing storage as needed.
	PushBack(v T)

	// PushFront prepends v before the first element, growing storage as needed.
	PushFront(v T)

	// PopBack removes and returns the last element. Panics if empty.
	PopBack() T

	// PopFront removes and returns the first element. Panics if empty.
	PopFront() T

	// Front returns the first element without removing it. Panics if empty.
	Front() T

	// Back returns the last element without removing it. Panics if empty.
	Back() T

	// At returns the element at logical index i. Panics if i is out of range.
	At(i int) T

	// Set replaces the element at logical index i. Panics if i is out of range.
	Set(i int, v T)

	// Len returns the number of live elements.
	Len() int

	// Cap returns the number of allocated element slots.
	Cap() int

	// Empty reports whether the container holds no elements.
	Empty() bool

	// Reserve grows capacity to at least n slots. Requests that do not
	// exceed the current capacity are no-ops.
	Reserve(n int)

	// Clear removes all elements while keeping the allocated capacity.
	Clear()
}

// File: api/stack.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// LIFO contract over a growable container.

package api

// Stack is a last-in-first-out view of a growable container. Like Queue,
// reads use the comma-ok form instead of panicking.
type Stack[T any] interface {
	// Push places item on top of the stack; storage grows as needed.
	Push(item T)

	// Pop removes and returns the most recently pushed item; ok is false
	// when the stack is empty.
	Pop() (item T, ok bool)

	// Top returns the most recently pushed item without removing it; ok is
	// false when the stack is empty.
	Top() (item T, ok bool)

	// Len returns the current number of stacked items.
	Len() int
}

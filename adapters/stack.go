// File: adapters/stack.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// LIFO adapter over the ring-buffer deque.

package adapters

import (
	"github.com/momentics/hioload-deque/api"
	"github.com/momentics/hioload-deque/deque"
)

// Ensure compile-time interface compliance.
var _ api.Stack[any] = (*Stack[any])(nil)

// Stack is a growable LIFO stack backed by a ring-buffer deque. Push and
// Pop both work at the back of the ring. The zero value is an empty stack
// ready for use.
type Stack[T any] struct {
	d deque.Deque[T]
}

// NewStack returns an empty stack with no allocated storage.
func NewStack[T any]() *Stack[T] { return &Stack[T]{} }

// NewStackWithCapacity returns an empty stack with capacity slots
// pre-allocated.
func NewStackWithCapacity[T any](capacity int) *Stack[T] {
	s := &Stack[T]{}
	s.d.Reserve(capacity)
	return s
}

// Push places item on top of the stack; storage grows as needed.
func (s *Stack[T]) Push(item T) { s.d.PushBack(item) }

// Pop removes and returns the most recently pushed item; ok is false on an
// empty stack.
func (s *Stack[T]) Pop() (item T, ok bool) {
	if s.d.Empty() {
		return item, false
	}
	return s.d.PopBack(), true
}

// Top returns the most recently pushed item without removing it; ok is
// false on an empty stack.
func (s *Stack[T]) Top() (item T, ok bool) {
	if s.d.Empty() {
		return item, false
	}
	return s.d.Back(), true
}

// Len returns the number of stacked items.
func (s *Stack[T]) Len() int { return s.d.Len() }

// Cap returns the number of allocated slots.
func (s *Stack[T]) Cap() int { return s.d.Cap() }

// Reserve pre-allocates storage for at least n items.
func (s *Stack[T]) Reserve(n int) { s.d.Reserve(n) }

// Clear removes all stacked items while keeping the allocated capacity.
func (s *Stack[T]) Clear() { s.d.Clear() }

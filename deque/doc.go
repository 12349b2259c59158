// File: deque/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package deque implements a growable double-ended queue over a single
// contiguous ring buffer.
//
// The container owns one slot block and tracks the live window with a head
// index and a length; logical index i lives in physical slot
// (head+i) mod capacity. Pushes at either end are amortized O(1), random
// access is O(1), and positional Insert or Erase moves at most half of the
// live window by adjacent swaps. Capacity doubles on overflow, starting
// from one slot, and never shrinks short of Clone or CopyFrom.
//
// Iterators are (deque, logical offset) pairs resolved against the current
// head on every access. Growing the deque re-homes storage without changing
// what an iterator denotes, while front pops, Insert and Erase shift
// logical offsets and therefore do change it.
//
// A Deque is not safe for concurrent use. Callers sharing one across
// goroutines must serialize access.
package deque

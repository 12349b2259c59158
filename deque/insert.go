// File: deque/insert.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Positional insert and erase. Both push or pop at the cheaper end and walk
// the gap over with adjacent swaps, so an edit never moves more than half
// of the live window.

package deque

import "fmt"

// Insert places v immediately before pos and returns an iterator addressing
// the new element. pos may equal End, which appends.
//
// When pos sits in the front half, v is pushed onto the front and bubbled
// forward with adjacent swaps; otherwise it is pushed onto the back and
// bubbled backward. Elements on the chosen side shift by one position, so
// iterators on that side now address their former neighbor.
func (d *Deque[T]) Insert(pos Iterator[T], v T) Iterator[T] {
	d.claim(pos)
	delta := pos.off
	if delta < 0 || delta > d.size {
		panic(fmt.Sprintf("deque: Insert at offset %d with length %d", delta, d.size))
	}
	if delta < d.size/2 {
		d.PushFront(v)
		for i := 0; i < delta; i++ {
			d.swapAt(i, i+1)
		}
	} else {
		d.PushBack(v)
		for i := d.size - 1; i > delta; i-- {
			d.swapAt(i, i-1)
		}
	}
	return Iterator[T]{d: d, off: delta}
}

// EraseAt removes the single element at pos. It is shorthand for
// Erase(pos, pos.Next()).
func (d *Deque[T]) EraseAt(pos Iterator[T]) Iterator[T] {
	return d.Erase(pos, pos.Next())
}

// Erase removes the elements in [first, last) and returns an iterator
// addressing the element that followed the removed range, or End when the
// range reached the back. An empty range is a no-op that returns first.
//
// The smaller surviving side is slid across the gap with adjacent swaps and
// the vacated end is popped once per removed element: either the trailing
// survivors move left and the back pops, or the leading survivors move
// right and the front pops.
func (d *Deque[T]) Erase(first, last Iterator[T]) Iterator[T] {
	d.claim(first)
	d.claim(last)
	if first.off < 0 || last.off < first.off || last.off > d.size {
		panic(fmt.Sprintf("deque: Erase range [%d, %d) with length %d", first.off, last.off, d.size))
	}
	delta := last.off - first.off
	if delta == 0 {
		return first
	}
	trailing := d.size - last.off
	leading := first.off
	if trailing <= leading {
		for i := first.off; i+delta < d.size; i++ {
			d.swapAt(i, i+delta)
		}
		for i := 0; i < delta; i++ {
			d.PopBack()
		}
	} else {
		for i := last.off - 1; i >= delta; i-- {
			d.swapAt(i, i-delta)
		}
		for i := 0; i < delta; i++ {
			d.PopFront()
		}
	}
	return Iterator[T]{d: d, off: first.off}
}

// claim asserts that pos belongs to this deque.
func (d *Deque[T]) claim(pos Iterator[T]) {
	if pos.d != d {
		panic("deque: iterator belongs to a different deque")
	}
}

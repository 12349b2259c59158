// File: deque/seq_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Range-over-func iteration and interop with the standard slices package.

package deque_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/momentics/hioload-deque/deque"
)

func TestAllYieldsIndexedElements(t *testing.T) {
	d := wrapped(t)

	var idx, vals []int
	for i, v := range d.All() {
		idx = append(idx, i)
		vals = append(vals, v)
	}
	assert.Equal(t, []int{0, 1, 2, 3}, idx)
	assert.Equal(t, []int{3, 4, 5, 6}, vals)
}

func TestValuesCollects(t *testing.T) {
	d := wrapped(t)
	assert.Equal(t, []int{3, 4, 5, 6}, slices.Collect(d.Values()))
	assert.Empty(t, slices.Collect(deque.New[int]().Values()))
}

func TestBackwardYieldsReverseOrder(t *testing.T) {
	d := wrapped(t)

	var idx, vals []int
	for i, v := range d.Backward() {
		idx = append(idx, i)
		vals = append(vals, v)
	}
	assert.Equal(t, []int{3, 2, 1, 0}, idx)
	assert.Equal(t, []int{6, 5, 4, 3}, vals)
}

func TestIterationStopsEarly(t *testing.T) {
	d := wrapped(t)

	seen := 0
	for _, v := range d.All() {
		seen++
		if v == 4 {
			break
		}
	}
	assert.Equal(t, 2, seen)
}

func TestCollectRoundTrip(t *testing.T) {
	src := wrapped(t)
	got := deque.Collect(src.Values())

	assert.True(t, deque.Equal(src, got))
	assert.Equal(t, 4, got.Len())
}

func TestCollectFromSliceSeq(t *testing.T) {
	got := deque.Collect(slices.Values([]string{"a", "b", "c"}))
	assert.Equal(t, []string{"a", "b", "c"}, got.Slice())

	empty := deque.Collect(slices.Values([]int(nil)))
	assert.True(t, empty.Empty())
	assert.Equal(t, 0, empty.Cap())
}

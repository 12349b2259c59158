// File: deque/bench_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package deque_test

import (
	"testing"

	"github.com/momentics/hioload-deque/deque"
)

func benchDeque(n int) *deque.Deque[int] {
	d := deque.New[int]()
	for i := 0; i < n; i++ {
		d.PushBack(i)
	}
	return d
}

func BenchmarkPushPopBothEnds(b *testing.B) {
	d := benchDeque(64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.PushBack(i)
		d.PushFront(i)
		d.PopBack()
		d.PopFront()
	}
}

func BenchmarkAt(b *testing.B) {
	d := benchDeque(1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.At(i & 1023)
	}
}

func BenchmarkIteratorWalk(b *testing.B) {
	d := benchDeque(1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for it := d.Begin(); !it.Equal(d.End()); it = it.Next() {
			it.Value()
		}
	}
}

func BenchmarkValuesSeq(b *testing.B) {
	d := benchDeque(1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for v := range d.Values() {
			_ = v
		}
	}
}

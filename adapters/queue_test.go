// File: adapters/queue_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// FIFO adapter tests, including a randomized differential run against the
// eapache ring queue as reference.

package adapters_test

import (
	"math/rand"
	"testing"

	"github.com/eapache/queue"
	"github.com/stretchr/testify/assert"

	"github.com/momentics/hioload-deque/adapters"
)

func TestQueueFIFOOrder(t *testing.T) {
	q := adapters.NewQueue[int]()
	for i := 1; i <= 50; i++ {
		q.Enqueue(i)
	}
	assert.Equal(t, 50, q.Len())

	for i := 1; i <= 50; i++ {
		got, ok := q.Dequeue()
		assert.True(t, ok)
		assert.Equal(t, i, got)
	}
	assert.Equal(t, 0, q.Len())
}

func TestQueueEmptyReads(t *testing.T) {
	q := adapters.NewQueue[string]()

	got, ok := q.Dequeue()
	assert.False(t, ok)
	assert.Equal(t, "", got)

	got, ok = q.Peek()
	assert.False(t, ok)
	assert.Equal(t, "", got)
}

func TestQueuePeekDoesNotRemove(t *testing.T) {
	q := adapters.NewQueue[int]()
	q.Enqueue(7)
	q.Enqueue(8)

	got, ok := q.Peek()
	assert.True(t, ok)
	assert.Equal(t, 7, got)
	assert.Equal(t, 2, q.Len())
}

func TestQueueZeroValueIsReady(t *testing.T) {
	var q adapters.Queue[int]
	q.Enqueue(1)
	got, ok := q.Dequeue()
	assert.True(t, ok)
	assert.Equal(t, 1, got)
}

func TestQueueReserveAvoidsGrowth(t *testing.T) {
	q := adapters.NewQueueWithCapacity[int](16)
	assert.Equal(t, 16, q.Cap())

	for i := 0; i < 16; i++ {
		q.Enqueue(i)
	}
	assert.Equal(t, 16, q.Cap())

	q.Enqueue(16)
	assert.Equal(t, 32, q.Cap())
}

func TestQueueClearKeepsCapacity(t *testing.T) {
	q := adapters.NewQueueWithCapacity[int](8)
	for i := 0; i < 5; i++ {
		q.Enqueue(i)
	}

	q.Clear()
	assert.Equal(t, 0, q.Len())
	assert.Equal(t, 8, q.Cap())

	q.Enqueue(42)
	got, _ := q.Peek()
	assert.Equal(t, 42, got)
}

func TestQueueMatchesReferenceQueue(t *testing.T) {
	q := adapters.NewQueue[int]()
	oracle := queue.New()
	rnd := rand.New(rand.NewSource(7))

	for step := 0; step < 100000; step++ {
		switch {
		case rnd.Intn(3) < 2:
			v := rnd.Intn(1 << 20)
			q.Enqueue(v)
			oracle.Add(v)
		case oracle.Length() > 0:
			want := oracle.Remove().(int)
			got, ok := q.Dequeue()
			if !ok || got != want {
				t.Fatalf("step %d: Dequeue = %d, %v, want %d", step, got, ok, want)
			}
		default:
			if _, ok := q.Dequeue(); ok {
				t.Fatalf("step %d: Dequeue succeeded on empty queue", step)
			}
		}

		if q.Len() != oracle.Length() {
			t.Fatalf("step %d: Len = %d, reference has %d", step, q.Len(), oracle.Length())
		}
		if q.Len() > 0 {
			got, ok := q.Peek()
			if !ok || got != oracle.Peek().(int) {
				t.Fatalf("step %d: Peek = %d, %v, want %d", step, got, ok, oracle.Peek().(int))
			}
		}
	}
}

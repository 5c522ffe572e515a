// queue package

package queue

import (
	"fmt"
	"sync"
)

const (
	// DefaultQueueBufferSize is the capacity used when none is given
	DefaultQueueBufferSize = 1024
)

// InMemoryQueue implements a bounded, goroutine-safe in-memory queue.
type InMemoryQueue[T any] struct {
	ch   chan T
	lock sync.Mutex
}

var _ Queue[int] = &InMemoryQueue[int]{}

// NewInMemoryQueue creates a new queue holding at most size items.
func NewInMemoryQueue[T any](size int) *InMemoryQueue[T] {
	if size <= 0 {
		size = DefaultQueueBufferSize
	}
	return &InMemoryQueue[T]{
		ch: make(chan T, size),
	}
}

// Enqueue adds an item to the end of the queue. It fails instead of blocking when the queue is full.
func (q *InMemoryQueue[T]) Enqueue(item T) error {
	select {
	case q.ch <- item:
		return nil
	default:
		return fmt.Errorf("queue is full (%d items)", cap(q.ch))
	}
}

// Dequeue removes and returns the item from the front of the queue, if any.
func (q *InMemoryQueue[T]) Dequeue() (T, bool) {
	select {
	case item := <-q.ch:
		return item, true
	default:
		var zero T
		return zero, false
	}
}

// Size returns the current size of the queue.
func (q *InMemoryQueue[T]) Size() int {
	return len(q.ch)
}

// ReadAllMessages drains the items pending at the time of the call, in order.
func (q *InMemoryQueue[T]) ReadAllMessages() []T {
	q.lock.Lock()
	defer q.lock.Unlock()

	n := len(q.ch)
	messages := make([]T, 0, n)
	for i := 0; i < n; i++ {
		messages = append(messages, <-q.ch)
	}

	return messages
}

// ClearQueue clears all messages from the queue.
func (q *InMemoryQueue[T]) ClearQueue() {
	q.lock.Lock()
	defer q.lock.Unlock()

	for len(q.ch) > 0 {
		<-q.ch
	}
}

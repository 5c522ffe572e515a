package queue

// Queue is a FIFO of pending items drained once per frame.
type Queue[T any] interface {
	Enqueue(item T) error
	Dequeue() (T, bool)
	Size() int
	ReadAllMessages() []T
	ClearQueue()
}

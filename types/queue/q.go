// Package queue provides a generic FIFO queue.
package queue

// Q is a generic FIFO queue. Enqueue is O(1) amortized and Dequeue is O(1).
type Q[T any] struct {
	items []T
	head  int
}

// New creates a new Q
func New[T any]() *Q[T] {
	return &Q[T]{}
}

// Enqueue adds an item to the end of the queue
func (q *Q[T]) Enqueue(item T) {
	q.items = append(q.items, item)
}

// Dequeue removes and returns the first item of the queue
func (q *Q[T]) Dequeue() (T, bool) {
	if q.head >= len(q.items) {
		var zero T
		return zero, false
	}
	item := q.items[q.head]
	var zero T
	q.items[q.head] = zero
	q.head++
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	}
	return item, true
}

// Len returns the number of queued items
func (q *Q[T]) Len() int {
	return len(q.items) - q.head
}

// Drain dequeues every item, in order, and hands it to fn. Items enqueued by fn are drained as well.
func (q *Q[T]) Drain(fn func(item T)) {
	for {
		item, ok := q.Dequeue()
		if !ok {
			return
		}
		fn(item)
	}
}

package queue

import (
	"slices"
	"testing"
)

func TestQueueOperations(t *testing.T) {
	q := New[int]()

	q.Enqueue(1)
	q.Enqueue(2)
	q.Enqueue(3)

	if q.Len() != 3 {
		t.Errorf("expected length 3 but got %d", q.Len())
	}

	item, ok := q.Dequeue()
	if !ok || item != 1 {
		t.Errorf("expected to dequeue 1 but got %d", item)
	}

	if item, _ = q.Dequeue(); item != 2 {
		t.Errorf("expected to dequeue 2 but got %d", item)
	}
	if item, _ = q.Dequeue(); item != 3 {
		t.Errorf("expected to dequeue 3 but got %d", item)
	}
	if _, ok = q.Dequeue(); ok {
		t.Error("expected Dequeue on empty queue to return false")
	}
	if q.Len() != 0 {
		t.Errorf("expected empty queue but got length %d", q.Len())
	}
}

func TestDrain(t *testing.T) {
	q := New[string]()
	q.Enqueue("a")
	q.Enqueue("b")

	var seen []string
	q.Drain(func(s string) {
		seen = append(seen, s)
		if s == "a" {
			q.Enqueue("c")
		}
	})

	if !slices.Equal(seen, []string{"a", "b", "c"}) {
		t.Errorf("expected [a b c] but got %v", seen)
	}
	if q.Len() != 0 {
		t.Errorf("expected drained queue to be empty, got %d", q.Len())
	}
}

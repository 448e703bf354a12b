package adt

import (
	"fmt"

	"github.com/sarchlab/adtlab/naming"
)

// A Queue is a bounded first-in-first-out container. The front is the oldest
// element still present and the rear is the newest.
type Queue interface {
	Container

	// Enqueue adds v at the rear. It fails with ErrOverflow if the queue is
	// full.
	Enqueue(v Value) error

	// Dequeue removes and returns the front element. Dequeuing an empty queue
	// is not an error; the second return value is false instead.
	Dequeue() (Value, bool)

	// Front returns the oldest element.
	Front() (Value, bool)

	// Rear returns the newest element.
	Rear() (Value, bool)
}

// QueueBuilder builds Queues.
type QueueBuilder struct {
	capacity int
}

// MakeQueueBuilder creates a QueueBuilder with the default capacity.
func MakeQueueBuilder() QueueBuilder {
	return QueueBuilder{capacity: DefaultCapacity}
}

// WithCapacity sets the capacity of the queue.
func (b QueueBuilder) WithCapacity(capacity int) QueueBuilder {
	b.capacity = capacity
	return b
}

// Build creates a new Queue.
func (b QueueBuilder) Build(name string) Queue {
	capacityMustBeValid(b.capacity)

	q := &queueImpl{}
	q.NamedBase = naming.MakeNamedBase(name)
	q.capacity = b.capacity

	return q
}

type queueImpl struct {
	base
}

func (q *queueImpl) Enqueue(v Value) error {
	if q.IsFull() {
		return fmt.Errorf("%w: %s is at its capacity of %d",
			ErrOverflow, q.Name(), q.capacity)
	}

	q.elements = append(q.elements, v)

	q.invoke(q, HookPosPush, v, nil)

	return nil
}

func (q *queueImpl) Dequeue() (Value, bool) {
	if len(q.elements) == 0 {
		return "", false
	}

	v := q.elements[0]
	q.elements = q.elements[1:]

	q.invoke(q, HookPosPop, v, nil)

	return v, true
}

func (q *queueImpl) Front() (Value, bool) {
	if len(q.elements) == 0 {
		return "", false
	}

	return q.elements[0], true
}

func (q *queueImpl) Rear() (Value, bool) {
	if len(q.elements) == 0 {
		return "", false
	}

	return q.elements[len(q.elements)-1], true
}

// Search returns the index of v counted from the front, or -1 if v is not in
// the queue.
func (q *queueImpl) Search(v Value) int {
	return q.indexFromOldest(v)
}

func (q *queueImpl) Clear() {
	q.clear(q)
}

func (q *queueImpl) SetCapacity(capacity int) error {
	return q.setCapacity(q, capacity)
}

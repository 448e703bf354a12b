package demo

import (
	"fmt"

	"github.com/sarchlab/adtlab/adt"
)

// QueueController runs enqueue, dequeue, front, rear and clear commands
// against a bounded queue.
type QueueController struct {
	controllerBase

	queue adt.Queue
}

// Queue returns the queue owned by the controller.
func (c *QueueController) Queue() adt.Queue {
	return c.queue
}

// Ops lists the operations the queue controller accepts.
func (c *QueueController) Ops() []Op {
	return []Op{
		OpEnqueue, OpDequeue, OpFront, OpRear, OpClear, OpSearch, OpSetCapacity,
	}
}

// Dispatch runs a command against the queue.
func (c *QueueController) Dispatch(cmd Command) (ViewState, FeedbackEvent) {
	switch cmd.Op {
	case OpEnqueue:
		return c.Enqueue(cmd.Value)
	case OpDequeue:
		return c.Dequeue()
	case OpFront:
		return c.Front()
	case OpRear:
		return c.Rear()
	case OpClear:
		return c.Clear()
	case OpSearch:
		return c.Search(cmd.Value)
	case OpSetCapacity:
		return c.SetCapacity(cmd.Capacity)
	default:
		return c.finish(c, projectQueue(c.queue), c.newEvent(cmd.Op,
			FeedbackValidationError,
			fmt.Sprintf("The queue does not support %q.", cmd.Op)))
	}
}

// Enqueue adds a value at the rear of the queue.
func (c *QueueController) Enqueue(input adt.Value) (ViewState, FeedbackEvent) {
	v, ok := normalize(input)
	if !ok {
		return c.finish(c, projectQueue(c.queue), c.newEvent(OpEnqueue,
			FeedbackValidationError, "Please enter a value to enqueue."))
	}

	err := c.queue.Enqueue(v)
	if err != nil {
		return c.finish(c, projectQueue(c.queue), c.newValueEvent(OpEnqueue,
			failureKind(err), v,
			fmt.Sprintf("Queue overflow! Cannot enqueue %q, the queue is full (%d/%d).",
				v, c.queue.Size(), c.queue.Capacity())))
	}

	c.animate(OpEnqueue, v, c.queue.Size()-1)

	return c.finish(c, projectQueue(c.queue), c.newValueEvent(OpEnqueue,
		FeedbackSuccess, v,
		fmt.Sprintf("Enqueued %q at the rear.", v)))
}

// Dequeue removes the front of the queue. Dequeuing an empty queue is not a
// failure; the user is told the queue is empty.
func (c *QueueController) Dequeue() (ViewState, FeedbackEvent) {
	v, ok := c.queue.Dequeue()
	if !ok {
		return c.finish(c, projectQueue(c.queue), c.newEvent(OpDequeue,
			FeedbackInfo, "The queue is empty, there is nothing to dequeue."))
	}

	c.animate(OpDequeue, v, 0)

	return c.finish(c, projectQueue(c.queue), c.newValueEvent(OpDequeue,
		FeedbackSuccess, v,
		fmt.Sprintf("Dequeued %q from the front.", v)))
}

// Front reports the oldest element without removing it.
func (c *QueueController) Front() (ViewState, FeedbackEvent) {
	v, ok := c.queue.Front()
	if !ok {
		return c.finish(c, projectQueue(c.queue), c.newEvent(OpFront,
			FeedbackInfo, "The queue is empty, there is no front element."))
	}

	return c.finish(c, projectQueue(c.queue), c.newValueEvent(OpFront,
		FeedbackSuccess, v,
		fmt.Sprintf("The front element is %q.", v)))
}

// Rear reports the newest element without removing it.
func (c *QueueController) Rear() (ViewState, FeedbackEvent) {
	v, ok := c.queue.Rear()
	if !ok {
		return c.finish(c, projectQueue(c.queue), c.newEvent(OpRear,
			FeedbackInfo, "The queue is empty, there is no rear element."))
	}

	return c.finish(c, projectQueue(c.queue), c.newValueEvent(OpRear,
		FeedbackSuccess, v,
		fmt.Sprintf("The rear element is %q.", v)))
}

// Clear empties the queue. Clearing an empty queue still answers the user.
func (c *QueueController) Clear() (ViewState, FeedbackEvent) {
	if c.queue.IsEmpty() {
		return c.finish(c, projectQueue(c.queue), c.newEvent(OpClear,
			FeedbackInfo, "The queue is already empty."))
	}

	n := c.queue.Size()
	c.queue.Clear()
	c.animate(OpClear, "", -1)

	return c.finish(c, projectQueue(c.queue), c.newEvent(OpClear,
		FeedbackSuccess,
		fmt.Sprintf("Cleared %d elements from the queue.", n)))
}

// Search reports the position of a value counted from the front.
func (c *QueueController) Search(input adt.Value) (ViewState, FeedbackEvent) {
	v, ok := normalize(input)
	if !ok {
		return c.finish(c, projectQueue(c.queue), c.newEvent(OpSearch,
			FeedbackValidationError, "Please enter a value to search for."))
	}

	index := c.queue.Search(v)
	if index < 0 {
		return c.finish(c, projectQueue(c.queue), c.newValueEvent(OpSearch,
			FeedbackInfo, v,
			fmt.Sprintf("%q is not in the queue.", v)))
	}

	return c.finish(c, projectQueue(c.queue), c.newValueEvent(OpSearch,
		FeedbackSuccess, v,
		fmt.Sprintf("%q is at position %d from the front.", v, index)))
}

// SetCapacity changes the capacity of the queue. Shrinking below the current
// size discards the oldest elements.
func (c *QueueController) SetCapacity(capacity int) (ViewState, FeedbackEvent) {
	before := c.queue.Size()

	err := c.queue.SetCapacity(capacity)
	if err != nil {
		return c.finish(c, projectQueue(c.queue), c.newEvent(OpSetCapacity,
			failureKind(err),
			fmt.Sprintf("Capacity must be at least 1, got %d.", capacity)))
	}

	msg := fmt.Sprintf("Queue capacity set to %d.", capacity)
	if dropped := before - c.queue.Size(); dropped > 0 {
		c.animate(OpSetCapacity, "", -1)
		msg = fmt.Sprintf(
			"Queue capacity set to %d, discarded %d element(s) from the front.",
			capacity, dropped)
	}

	return c.finish(c, projectQueue(c.queue), c.newEvent(OpSetCapacity,
		FeedbackSuccess, msg))
}

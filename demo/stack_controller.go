package demo

import (
	"fmt"

	"github.com/sarchlab/adtlab/adt"
)

// StackController runs push, pop, peek and clear commands against a bounded
// stack.
type StackController struct {
	controllerBase

	stack adt.Stack
}

// Stack returns the stack owned by the controller.
func (c *StackController) Stack() adt.Stack {
	return c.stack
}

// Ops lists the operations the stack controller accepts.
func (c *StackController) Ops() []Op {
	return []Op{OpPush, OpPop, OpPeek, OpClear, OpSearch, OpSetCapacity}
}

// Dispatch runs a command against the stack.
func (c *StackController) Dispatch(cmd Command) (ViewState, FeedbackEvent) {
	switch cmd.Op {
	case OpPush:
		return c.Push(cmd.Value)
	case OpPop:
		return c.Pop()
	case OpPeek:
		return c.Peek()
	case OpClear:
		return c.Clear()
	case OpSearch:
		return c.Search(cmd.Value)
	case OpSetCapacity:
		return c.SetCapacity(cmd.Capacity)
	default:
		return c.finish(c, projectStack(c.stack), c.newEvent(cmd.Op,
			FeedbackValidationError,
			fmt.Sprintf("The stack does not support %q.", cmd.Op)))
	}
}

// Push adds a value on top of the stack.
func (c *StackController) Push(input adt.Value) (ViewState, FeedbackEvent) {
	v, ok := normalize(input)
	if !ok {
		return c.finish(c, projectStack(c.stack), c.newEvent(OpPush,
			FeedbackValidationError, "Please enter a value to push."))
	}

	err := c.stack.Push(v)
	if err != nil {
		return c.finish(c, projectStack(c.stack), c.newValueEvent(OpPush,
			failureKind(err), v,
			fmt.Sprintf("Stack overflow! Cannot push %q, the stack is full (%d/%d).",
				v, c.stack.Size(), c.stack.Capacity())))
	}

	c.animate(OpPush, v, c.stack.Size()-1)

	return c.finish(c, projectStack(c.stack), c.newValueEvent(OpPush,
		FeedbackSuccess, v,
		fmt.Sprintf("Pushed %q onto the stack.", v)))
}

// Pop removes the top of the stack. Popping an empty stack is an underflow.
func (c *StackController) Pop() (ViewState, FeedbackEvent) {
	index := c.stack.Size() - 1

	v, err := c.stack.Pop()
	if err != nil {
		return c.finish(c, projectStack(c.stack), c.newEvent(OpPop,
			failureKind(err),
			"Stack underflow! Cannot pop from an empty stack."))
	}

	c.animate(OpPop, v, index)

	return c.finish(c, projectStack(c.stack), c.newValueEvent(OpPop,
		FeedbackSuccess, v,
		fmt.Sprintf("Popped %q from the stack.", v)))
}

// Peek reports the top of the stack without removing it.
func (c *StackController) Peek() (ViewState, FeedbackEvent) {
	v, ok := c.stack.Peek()
	if !ok {
		return c.finish(c, projectStack(c.stack), c.newEvent(OpPeek,
			FeedbackInfo, "The stack is empty, there is nothing to peek."))
	}

	return c.finish(c, projectStack(c.stack), c.newValueEvent(OpPeek,
		FeedbackSuccess, v,
		fmt.Sprintf("The top element is %q.", v)))
}

// Clear empties the stack. Clearing an empty stack still answers the user.
func (c *StackController) Clear() (ViewState, FeedbackEvent) {
	if c.stack.IsEmpty() {
		return c.finish(c, projectStack(c.stack), c.newEvent(OpClear,
			FeedbackInfo, "The stack is already empty."))
	}

	n := c.stack.Size()
	c.stack.Clear()
	c.animate(OpClear, "", -1)

	return c.finish(c, projectStack(c.stack), c.newEvent(OpClear,
		FeedbackSuccess,
		fmt.Sprintf("Cleared %d elements from the stack.", n)))
}

// Search reports how far a value is from the top of the stack.
func (c *StackController) Search(input adt.Value) (ViewState, FeedbackEvent) {
	v, ok := normalize(input)
	if !ok {
		return c.finish(c, projectStack(c.stack), c.newEvent(OpSearch,
			FeedbackValidationError, "Please enter a value to search for."))
	}

	distance := c.stack.Search(v)
	if distance < 0 {
		return c.finish(c, projectStack(c.stack), c.newValueEvent(OpSearch,
			FeedbackInfo, v,
			fmt.Sprintf("%q is not in the stack.", v)))
	}

	return c.finish(c, projectStack(c.stack), c.newValueEvent(OpSearch,
		FeedbackSuccess, v,
		fmt.Sprintf("%q is %d position(s) below the top.", v, distance)))
}

// SetCapacity changes the capacity of the stack. Shrinking below the current
// size discards the oldest elements.
func (c *StackController) SetCapacity(capacity int) (ViewState, FeedbackEvent) {
	before := c.stack.Size()

	err := c.stack.SetCapacity(capacity)
	if err != nil {
		return c.finish(c, projectStack(c.stack), c.newEvent(OpSetCapacity,
			failureKind(err),
			fmt.Sprintf("Capacity must be at least 1, got %d.", capacity)))
	}

	msg := fmt.Sprintf("Stack capacity set to %d.", capacity)
	if dropped := before - c.stack.Size(); dropped > 0 {
		c.animate(OpSetCapacity, "", -1)
		msg = fmt.Sprintf(
			"Stack capacity set to %d, discarded %d element(s) from the bottom.",
			capacity, dropped)
	}

	return c.finish(c, projectStack(c.stack), c.newEvent(OpSetCapacity,
		FeedbackSuccess, msg))
}

package adt

import (
	"fmt"

	"github.com/sarchlab/adtlab/naming"
)

// A Stack is a bounded last-in-first-out container. The top is the most
// recently pushed element that has not been popped.
type Stack interface {
	Container

	// Push adds v on top. It fails with ErrInvalidValue if v is blank and
	// with ErrOverflow if the stack is full.
	Push(v Value) error

	// Pop removes and returns the top element. It fails with ErrUnderflow if
	// the stack is empty.
	Pop() (Value, error)

	// Peek returns the top element. The second return value is false if the
	// stack is empty.
	Peek() (Value, bool)

	// Bottom returns the oldest element.
	Bottom() (Value, bool)
}

// StackBuilder builds Stacks.
type StackBuilder struct {
	capacity int
}

// MakeStackBuilder creates a StackBuilder with the default capacity.
func MakeStackBuilder() StackBuilder {
	return StackBuilder{capacity: DefaultCapacity}
}

// WithCapacity sets the capacity of the stack.
func (b StackBuilder) WithCapacity(capacity int) StackBuilder {
	b.capacity = capacity
	return b
}

// Build creates a new Stack.
func (b StackBuilder) Build(name string) Stack {
	capacityMustBeValid(b.capacity)

	s := &stackImpl{}
	s.NamedBase = naming.MakeNamedBase(name)
	s.capacity = b.capacity

	return s
}

type stackImpl struct {
	base
}

func (s *stackImpl) Push(v Value) error {
	if v.IsBlank() {
		return ErrInvalidValue
	}

	if s.IsFull() {
		return fmt.Errorf("%w: %s is at its capacity of %d",
			ErrOverflow, s.Name(), s.capacity)
	}

	s.elements = append(s.elements, v)

	s.invoke(s, HookPosPush, v, nil)

	return nil
}

func (s *stackImpl) Pop() (Value, error) {
	if len(s.elements) == 0 {
		return "", fmt.Errorf("%w: %s is empty", ErrUnderflow, s.Name())
	}

	last := len(s.elements) - 1
	v := s.elements[last]
	s.elements = s.elements[:last]

	s.invoke(s, HookPosPop, v, nil)

	return v, nil
}

func (s *stackImpl) Peek() (Value, bool) {
	if len(s.elements) == 0 {
		return "", false
	}

	return s.elements[len(s.elements)-1], true
}

func (s *stackImpl) Bottom() (Value, bool) {
	if len(s.elements) == 0 {
		return "", false
	}

	return s.elements[0], true
}

// Search returns the distance of v from the top, 0 being the top itself, or
// -1 if v is not in the stack. The occurrence nearest to the top wins.
func (s *stackImpl) Search(v Value) int {
	for i := len(s.elements) - 1; i >= 0; i-- {
		if s.elements[i] == v {
			return len(s.elements) - 1 - i
		}
	}

	return -1
}

func (s *stackImpl) Clear() {
	s.clear(s)
}

func (s *stackImpl) SetCapacity(capacity int) error {
	return s.setCapacity(s, capacity)
}

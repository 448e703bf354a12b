// Package adt provides the bounded Stack and Queue containers used by the
// lab controllers.
package adt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sarchlab/adtlab/hooking"
	"github.com/sarchlab/adtlab/naming"
)

// Value is an opaque displayable element stored in a container.
type Value string

// IsBlank returns true if the value holds nothing but whitespace.
func (v Value) IsBlank() bool {
	return strings.TrimSpace(string(v)) == ""
}

var (
	// ErrOverflow is returned when adding to a container that is full.
	ErrOverflow = errors.New("container overflow")

	// ErrUnderflow is returned when popping from an empty stack.
	ErrUnderflow = errors.New("container underflow")

	// ErrInvalidValue is returned when pushing a blank value.
	ErrInvalidValue = errors.New("invalid value")

	// ErrInvalidCapacity is returned when a capacity is less than 1.
	ErrInvalidCapacity = errors.New("invalid capacity")
)

// HookPosPush marks when an element is added to a container.
var HookPosPush = &hooking.HookPos{Name: "Container Push"}

// HookPosPop marks when an element is removed from a container.
var HookPosPop = &hooking.HookPos{Name: "Container Pop"}

// HookPosClear marks when a container is cleared.
var HookPosClear = &hooking.HookPos{Name: "Container Clear"}

// HookPosResize marks when the capacity of a container changes. The Detail of
// the hook context holds the elements discarded by the resize.
var HookPosResize = &hooking.HookPos{Name: "Container Resize"}

// DefaultCapacity is the capacity used when a builder is not told otherwise.
const DefaultCapacity = 5

// A Container is the shape shared by Stack and Queue.
type Container interface {
	hooking.Hookable

	Size() int
	Capacity() int
	IsEmpty() bool
	IsFull() bool
	Contains(v Value) bool
	Search(v Value) int
	Clear()
	SetCapacity(capacity int) error

	// Items returns a copy of the elements in insertion order.
	Items() []Value
}

// base holds what Stack and Queue have in common. Elements are always kept in
// insertion order, oldest first.
type base struct {
	hooking.HookableBase
	naming.NamedBase

	capacity int
	elements []Value
}

func (b *base) Size() int {
	return len(b.elements)
}

func (b *base) Capacity() int {
	return b.capacity
}

func (b *base) IsEmpty() bool {
	return len(b.elements) == 0
}

func (b *base) IsFull() bool {
	return len(b.elements) >= b.capacity
}

func (b *base) Contains(v Value) bool {
	return b.indexFromOldest(v) >= 0
}

func (b *base) Items() []Value {
	items := make([]Value, len(b.elements))
	copy(items, b.elements)

	return items
}

func (b *base) indexFromOldest(v Value) int {
	for i, e := range b.elements {
		if e == v {
			return i
		}
	}

	return -1
}

func (b *base) clear(domain hooking.Hookable) {
	b.elements = nil

	b.invoke(domain, HookPosClear, nil, nil)
}

// setCapacity keeps the most recent capacity elements if the container
// shrinks below its occupancy.
func (b *base) setCapacity(domain hooking.Hookable, capacity int) error {
	if capacity < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}

	var discarded []Value
	if len(b.elements) > capacity {
		cut := len(b.elements) - capacity
		discarded = append(discarded, b.elements[:cut]...)
		b.elements = append([]Value(nil), b.elements[cut:]...)
	}

	b.capacity = capacity

	b.invoke(domain, HookPosResize, capacity, discarded)

	return nil
}

func (b *base) invoke(
	domain hooking.Hookable,
	pos *hooking.HookPos,
	item, detail interface{},
) {
	if b.NumHooks() == 0 {
		return
	}

	b.InvokeHook(hooking.HookCtx{
		Domain: domain,
		Pos:    pos,
		Item:   item,
		Detail: detail,
	})
}

func capacityMustBeValid(capacity int) {
	if capacity < 1 {
		panic("capacity must be at least 1")
	}
}

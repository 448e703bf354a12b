package demo

import (
	"github.com/sarchlab/adtlab/adt"
	"github.com/sarchlab/adtlab/idgen"
	"github.com/sarchlab/adtlab/naming"
)

// ControllerBuilder holds the settings shared by stack and queue
// controllers.
type ControllerBuilder struct {
	capacity int
	notifier Notifier
	animator Animator
	clock    Clock
	idGen    idgen.Generator
}

// MakeControllerBuilder creates a ControllerBuilder with default settings.
func MakeControllerBuilder() ControllerBuilder {
	return ControllerBuilder{
		capacity: adt.DefaultCapacity,
	}
}

// WithCapacity sets the initial capacity of the container.
func (b ControllerBuilder) WithCapacity(capacity int) ControllerBuilder {
	b.capacity = capacity
	return b
}

// WithNotifier sets the sink that shows feedback to the user.
func (b ControllerBuilder) WithNotifier(n Notifier) ControllerBuilder {
	b.notifier = n
	return b
}

// WithAnimator sets the animator that plays mutation animations.
func (b ControllerBuilder) WithAnimator(a Animator) ControllerBuilder {
	b.animator = a
	return b
}

// WithClock sets the clock that timestamps feedback.
func (b ControllerBuilder) WithClock(c Clock) ControllerBuilder {
	b.clock = c
	return b
}

// WithIDGenerator sets the generator that names feedback events.
func (b ControllerBuilder) WithIDGenerator(g idgen.Generator) ControllerBuilder {
	b.idGen = g
	return b
}

// BuildStackController creates a StackController that owns a new stack.
func (b ControllerBuilder) BuildStackController(name string) *StackController {
	c := &StackController{
		controllerBase: b.base(name, "stack"),
		stack: adt.MakeStackBuilder().
			WithCapacity(b.capacity).
			Build(name),
	}
	c.view = projectStack(c.stack)

	return c
}

// BuildQueueController creates a QueueController that owns a new queue.
func (b ControllerBuilder) BuildQueueController(name string) *QueueController {
	c := &QueueController{
		controllerBase: b.base(name, "queue"),
		queue: adt.MakeQueueBuilder().
			WithCapacity(b.capacity).
			Build(name),
	}
	c.view = projectQueue(c.queue)

	return c
}

func (b ControllerBuilder) base(name, kind string) controllerBase {
	base := controllerBase{
		NamedBase: naming.MakeNamedBase(name),
		kind:      kind,
		notifier:  b.notifier,
		animator:  b.animator,
		clock:     b.clock,
		idGen:     b.idGen,
	}

	if base.clock == nil {
		base.clock = wallClock{}
	}

	if base.idGen == nil {
		base.idGen = idgen.NewSequential()
	}

	return base
}

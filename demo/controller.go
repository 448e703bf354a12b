// Package demo binds user commands to the bounded containers, keeping the
// container, its view state and the user feedback consistent after every
// command.
package demo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sarchlab/adtlab/adt"
	"github.com/sarchlab/adtlab/hooking"
	"github.com/sarchlab/adtlab/idgen"
	"github.com/sarchlab/adtlab/naming"
)

// controllerBase holds the collaborators shared by both controllers.
type controllerBase struct {
	hooking.HookableBase
	naming.NamedBase

	kind     string
	notifier Notifier
	animator Animator
	clock    Clock
	idGen    idgen.Generator

	view ViewState
}

func (c *controllerBase) Kind() string {
	return c.kind
}

// View returns a copy of the latest view state.
func (c *controllerBase) View() ViewState {
	return copyView(c.view)
}

func (c *controllerBase) newEvent(op Op, kind FeedbackKind, msg string) FeedbackEvent {
	return FeedbackEvent{
		ID:        c.idGen.Generate(),
		Time:      c.clock.Now(),
		Container: c.Name(),
		Command:   op,
		Kind:      kind,
		Message:   msg,
	}
}

func (c *controllerBase) newValueEvent(
	op Op,
	kind FeedbackKind,
	v adt.Value,
	msg string,
) FeedbackEvent {
	e := c.newEvent(op, kind, msg)
	e.Value = v
	e.HasValue = true

	return e
}

// finish stores the freshly projected view and hands the event to the
// notifier and the hooks. Nothing here may block.
func (c *controllerBase) finish(
	domain hooking.Hookable,
	view ViewState,
	event FeedbackEvent,
) (ViewState, FeedbackEvent) {
	c.view = view

	if c.notifier != nil {
		c.notifier.Notify(event)
	}

	if c.NumHooks() > 0 {
		c.InvokeHook(hooking.HookCtx{
			Domain: domain,
			Pos:    HookPosCommand,
			Item:   event,
			Detail: copyView(view),
		})
	}

	return copyView(view), event
}

func (c *controllerBase) animate(op Op, v adt.Value, index int) {
	if c.animator == nil {
		return
	}

	c.animator.Animate(Animation{
		Container: c.Name(),
		Op:        op,
		Value:     v,
		Index:     index,
	})
}

// failureKind maps a container error to the feedback kind reported to the
// user.
func failureKind(err error) FeedbackKind {
	switch {
	case errors.Is(err, adt.ErrOverflow):
		return FeedbackOverflow
	case errors.Is(err, adt.ErrUnderflow):
		return FeedbackUnderflow
	case errors.Is(err, adt.ErrInvalidValue):
		return FeedbackValidationError
	case errors.Is(err, adt.ErrInvalidCapacity):
		return FeedbackInvalidCapacity
	default:
		panic(fmt.Sprintf("unexpected container error: %v", err))
	}
}

// normalize trims the user input. The second return value is false if
// nothing is left.
func normalize(v adt.Value) (adt.Value, bool) {
	if v.IsBlank() {
		return "", false
	}

	return adt.Value(strings.TrimSpace(string(v))), true
}

func copyView(v ViewState) ViewState {
	c := v
	c.Items = make([]ProjectedItem, len(v.Items))
	copy(c.Items, v.Items)

	if v.Lead != nil {
		c.Lead = valuePtr(*v.Lead)
	}

	if v.Trail != nil {
		c.Trail = valuePtr(*v.Trail)
	}

	return c
}

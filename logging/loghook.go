// Package logging writes controller and container activity to a logrus
// logger.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/sarchlab/adtlab/adt"
	"github.com/sarchlab/adtlab/demo"
	"github.com/sarchlab/adtlab/hooking"
)

// NewLogger creates a logrus logger writing to w at the given level, for
// example "info" or "debug".
func NewLogger(w io.Writer, level string, json bool) (*logrus.Logger, error) {
	l := logrus.New()
	l.SetOutput(w)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	l.SetLevel(lvl)

	if json {
		l.SetFormatter(&logrus.JSONFormatter{})
	}

	return l, nil
}

// A LogHook logs every command outcome of the controllers it is attached to.
// Failures are logged at warn level, everything else at info level. Attached
// to a container, it logs the raw mutations at debug level.
type LogHook struct {
	logger logrus.FieldLogger
}

// NewLogHook creates a LogHook that writes to the given logger.
func NewLogHook(logger logrus.FieldLogger) *LogHook {
	return &LogHook{logger: logger}
}

// Func logs the hook context.
func (h *LogHook) Func(ctx hooking.HookCtx) {
	switch ctx.Pos {
	case demo.HookPosCommand:
		h.logCommand(ctx)
	case adt.HookPosPush, adt.HookPosPop, adt.HookPosClear, adt.HookPosResize:
		h.logMutation(ctx)
	}
}

func (h *LogHook) logCommand(ctx hooking.HookCtx) {
	event := ctx.Item.(demo.FeedbackEvent)
	view := ctx.Detail.(demo.ViewState)

	entry := h.logger.WithFields(logrus.Fields{
		"container": event.Container,
		"command":   event.Command.String(),
		"kind":      event.Kind.String(),
		"size":      view.Size,
		"capacity":  view.Capacity,
	})

	if event.HasValue {
		entry = entry.WithField("value", string(event.Value))
	}

	if event.Kind.IsFailure() {
		entry.Warn(event.Message)
		return
	}

	entry.Info(event.Message)
}

func (h *LogHook) logMutation(ctx hooking.HookCtx) {
	entry := h.logger.WithFields(logrus.Fields{
		"container": ctx.Domain.Name(),
		"position":  ctx.Pos.Name,
	})

	if ctx.Item != nil {
		entry = entry.WithField("item", ctx.Item)
	}

	if ctx.Detail != nil {
		entry = entry.WithField("detail", ctx.Detail)
	}

	entry.Debug("container mutated")
}

package datarecording

import (
	"time"

	"github.com/sarchlab/adtlab/demo"
	"github.com/sarchlab/adtlab/hooking"
)

// FeedbackTable is the table that holds one row per command.
const FeedbackTable = "feedback"

// FeedbackEntry is a row of the feedback table.
type FeedbackEntry struct {
	ID        string
	Time      string
	Container string
	Command   string
	Kind      string
	Value     string
	HasValue  bool
	Message   string
	Size      int
	Capacity  int
}

// FeedbackRecorder is a hook that records every command outcome of the
// controllers it is attached to.
type FeedbackRecorder struct {
	recorder DataRecorder
}

// NewFeedbackRecorder creates a FeedbackRecorder and the feedback table.
func NewFeedbackRecorder(recorder DataRecorder) *FeedbackRecorder {
	recorder.CreateTable(FeedbackTable, FeedbackEntry{})

	return &FeedbackRecorder{recorder: recorder}
}

// Func records command outcomes and ignores other hook positions.
func (r *FeedbackRecorder) Func(ctx hooking.HookCtx) {
	if ctx.Pos != demo.HookPosCommand {
		return
	}

	event := ctx.Item.(demo.FeedbackEvent)
	view := ctx.Detail.(demo.ViewState)

	r.recorder.InsertData(FeedbackTable, FeedbackEntry{
		ID:        event.ID,
		Time:      event.Time.Format(time.RFC3339Nano),
		Container: event.Container,
		Command:   event.Command.String(),
		Kind:      event.Kind.String(),
		Value:     string(event.Value),
		HasValue:  event.HasValue,
		Message:   event.Message,
		Size:      view.Size,
		Capacity:  view.Capacity,
	})
}

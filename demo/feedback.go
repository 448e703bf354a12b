package demo

import (
	"fmt"
	"time"

	"github.com/sarchlab/adtlab/adt"
)

// FeedbackKind tells what kind of outcome a command had.
type FeedbackKind int

// The complete set of feedback kinds.
const (
	FeedbackSuccess FeedbackKind = iota
	FeedbackInfo
	FeedbackValidationError
	FeedbackOverflow
	FeedbackUnderflow
	FeedbackInvalidCapacity
)

var feedbackKindNames = map[FeedbackKind]string{
	FeedbackSuccess:         "success",
	FeedbackInfo:            "info",
	FeedbackValidationError: "validation-error",
	FeedbackOverflow:        "overflow",
	FeedbackUnderflow:       "underflow",
	FeedbackInvalidCapacity: "invalid-capacity",
}

func (k FeedbackKind) String() string {
	name, ok := feedbackKindNames[k]
	if !ok {
		return "unknown"
	}

	return name
}

// MarshalText writes the kind by its name.
func (k FeedbackKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText reads a kind written by MarshalText.
func (k *FeedbackKind) UnmarshalText(text []byte) error {
	for kind, name := range feedbackKindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}

	return fmt.Errorf("unknown feedback kind %q", text)
}

// IsFailure returns true if the command did not take effect.
func (k FeedbackKind) IsFailure() bool {
	switch k {
	case FeedbackSuccess, FeedbackInfo:
		return false
	case FeedbackValidationError,
		FeedbackOverflow,
		FeedbackUnderflow,
		FeedbackInvalidCapacity:
		return true
	default:
		panic("unknown feedback kind")
	}
}

// A FeedbackEvent is the outcome of exactly one command.
type FeedbackEvent struct {
	ID        string       `json:"id"`
	Time      time.Time    `json:"time"`
	Container string       `json:"container"`
	Command   Op           `json:"command"`
	Kind      FeedbackKind `json:"kind"`
	Value     adt.Value    `json:"value,omitempty"`
	HasValue  bool         `json:"has_value"`
	Message   string       `json:"message"`
}

// A Notifier shows feedback to the user. It owns its own display and timing
// and must return without waiting for either.
type Notifier interface {
	Notify(event FeedbackEvent)
}

// NotifierFunc turns a plain function into a Notifier.
type NotifierFunc func(event FeedbackEvent)

// Notify calls f.
func (f NotifierFunc) Notify(event FeedbackEvent) {
	f(event)
}

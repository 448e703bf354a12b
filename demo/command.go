package demo

import (
	"fmt"
	"strings"

	"github.com/sarchlab/adtlab/adt"
	"github.com/sarchlab/adtlab/hooking"
)

// Op is a command a user can send to a controller.
type Op int

// The complete set of operations. A controller accepts only the operations
// that belong to its container.
const (
	OpUnknown Op = iota
	OpPush
	OpPop
	OpPeek
	OpEnqueue
	OpDequeue
	OpFront
	OpRear
	OpClear
	OpSearch
	OpSetCapacity
)

var opNames = map[Op]string{
	OpUnknown:     "unknown",
	OpPush:        "push",
	OpPop:         "pop",
	OpPeek:        "peek",
	OpEnqueue:     "enqueue",
	OpDequeue:     "dequeue",
	OpFront:       "front",
	OpRear:        "rear",
	OpClear:       "clear",
	OpSearch:      "search",
	OpSetCapacity: "capacity",
}

func (o Op) String() string {
	name, ok := opNames[o]
	if !ok {
		return "unknown"
	}

	return name
}

// MarshalText writes the op by its name.
func (o Op) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText reads an op written by MarshalText.
func (o *Op) UnmarshalText(text []byte) error {
	if string(text) == opNames[OpUnknown] {
		*o = OpUnknown
		return nil
	}

	op, err := ParseOp(string(text))
	if err != nil {
		return err
	}

	*o = op

	return nil
}

// ParseOp finds the Op with the given name, ignoring case.
func ParseOp(name string) (Op, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	for op, n := range opNames {
		if op != OpUnknown && n == name {
			return op, nil
		}
	}

	return OpUnknown, fmt.Errorf("unknown command %q", name)
}

// A Command is a single request from the user.
type Command struct {
	Op       Op
	Value    adt.Value
	Capacity int
}

// HookPosCommand marks the completion of a command. The hook context carries
// the FeedbackEvent as Item and the ViewState as Detail.
var HookPosCommand = &hooking.HookPos{Name: "Controller Command"}

// A Controller runs commands against one container.
type Controller interface {
	hooking.Hookable

	// Kind returns "stack" or "queue".
	Kind() string

	// Ops lists the operations the controller accepts.
	Ops() []Op

	// Dispatch runs a command. Every call produces exactly one feedback
	// event.
	Dispatch(cmd Command) (ViewState, FeedbackEvent)

	// View returns the current view state.
	View() ViewState
}

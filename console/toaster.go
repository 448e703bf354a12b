package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/sarchlab/adtlab/demo"
)

// Toaster prints feedback events as one-line notices.
type Toaster struct {
	output io.Writer
}

// NewToaster creates a Toaster writing to w.
func NewToaster(w io.Writer) *Toaster {
	return &Toaster{output: w}
}

// Notify prints the event.
func (t *Toaster) Notify(event demo.FeedbackEvent) {
	fmt.Fprintf(t.output, "[%s] %s\n",
		strings.ToUpper(event.Kind.String()), event.Message)
}

// Animator prints a short arrow for every mutation. It never sleeps.
type Animator struct {
	output io.Writer
}

// NewAnimator creates an Animator writing to w.
func NewAnimator(w io.Writer) *Animator {
	return &Animator{output: w}
}

// Animate prints the animation.
func (a *Animator) Animate(anim demo.Animation) {
	switch anim.Op {
	case demo.OpPush, demo.OpEnqueue:
		fmt.Fprintf(a.output, "  --> %s [%d]\n", anim.Value, anim.Index)
	case demo.OpPop, demo.OpDequeue:
		fmt.Fprintf(a.output, "  <-- %s [%d]\n", anim.Value, anim.Index)
	default:
		fmt.Fprintf(a.output, "  ~~~ %s\n", anim.Op)
	}
}

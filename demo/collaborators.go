package demo

import (
	"time"

	"github.com/sarchlab/adtlab/adt"
)

// A Clock tells the time at which feedback is produced.
type Clock interface {
	Now() time.Time
}

type wallClock struct{}

func (wallClock) Now() time.Time {
	return time.Now()
}

// An Animation describes the visual transition caused by one successful
// mutation. Index is the position of the affected element in the projection
// before removal or after insertion, or -1 for whole-container changes.
type Animation struct {
	Container string
	Op        Op
	Value     adt.Value
	Index     int
}

// An Animator plays animations. Animate must return immediately; the
// controller never waits for an animation to finish.
type Animator interface {
	Animate(a Animation)
}

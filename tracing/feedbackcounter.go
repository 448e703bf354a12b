// Package tracing collects statistics about the commands run by controllers.
package tracing

import (
	"sort"
	"sync"

	"github.com/sarchlab/adtlab/demo"
	"github.com/sarchlab/adtlab/hooking"
)

// FeedbackFilter decides whether a feedback event should be counted.
type FeedbackFilter func(event demo.FeedbackEvent) bool

// CountAll is a FeedbackFilter that accepts every event.
func CountAll(demo.FeedbackEvent) bool {
	return true
}

// A FeedbackCount is the number of events of one kind for one command.
type FeedbackCount struct {
	Container string `json:"container"`
	Command   string `json:"command"`
	Kind      string `json:"kind"`
	Count     uint64 `json:"count"`
}

type countKey struct {
	container string
	command   demo.Op
	kind      demo.FeedbackKind
}

// FeedbackCounter is a hook that counts command outcomes. It can be read
// while controllers are running.
type FeedbackCounter struct {
	filter FeedbackFilter
	lock   sync.Mutex
	counts map[countKey]uint64
}

// NewFeedbackCounter creates a new FeedbackCounter.
func NewFeedbackCounter(filter FeedbackFilter) *FeedbackCounter {
	if filter == nil {
		filter = CountAll
	}

	return &FeedbackCounter{
		filter: filter,
		counts: make(map[countKey]uint64),
	}
}

// Func counts the event carried by a command hook.
func (t *FeedbackCounter) Func(ctx hooking.HookCtx) {
	if ctx.Pos != demo.HookPosCommand {
		return
	}

	event := ctx.Item.(demo.FeedbackEvent)
	if !t.filter(event) {
		return
	}

	t.lock.Lock()
	defer t.lock.Unlock()

	t.counts[countKey{
		container: event.Container,
		command:   event.Command,
		kind:      event.Kind,
	}]++
}

// Count returns how many events of the given kind a command produced on a
// container.
func (t *FeedbackCounter) Count(
	container string,
	command demo.Op,
	kind demo.FeedbackKind,
) uint64 {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.counts[countKey{container: container, command: command, kind: kind}]
}

// Failures returns how many commands on the container did not take effect.
func (t *FeedbackCounter) Failures(container string) uint64 {
	t.lock.Lock()
	defer t.lock.Unlock()

	var n uint64

	for k, c := range t.counts {
		if k.container == container && k.kind.IsFailure() {
			n += c
		}
	}

	return n
}

// Counts lists all the counts, sorted by container, command and kind.
func (t *FeedbackCounter) Counts() []FeedbackCount {
	type pair struct {
		key   countKey
		count uint64
	}

	t.lock.Lock()
	pairs := make([]pair, 0, len(t.counts))
	for k, c := range t.counts {
		pairs = append(pairs, pair{key: k, count: c})
	}
	t.lock.Unlock()

	sort.Slice(pairs, func(i, j int) bool {
		a, b := pairs[i].key, pairs[j].key
		if a.container != b.container {
			return a.container < b.container
		}

		if a.command != b.command {
			return a.command < b.command
		}

		return a.kind < b.kind
	})

	out := make([]FeedbackCount, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, FeedbackCount{
			Container: p.key.container,
			Command:   p.key.command.String(),
			Kind:      p.key.kind.String(),
			Count:     p.count,
		})
	}

	return out
}

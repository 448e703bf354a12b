package demo

import "github.com/sarchlab/adtlab/adt"

// ProjectedItem is one element of the rendered container. IsLead marks the
// top of a stack or the front of a queue, IsTrail the bottom or the rear.
type ProjectedItem struct {
	Value   adt.Value `json:"value"`
	IsLead  bool      `json:"is_lead"`
	IsTrail bool      `json:"is_trail"`
}

// ViewState is the read-only projection of a container after a command.
type ViewState struct {
	Kind     string          `json:"kind"`
	Name     string          `json:"name"`
	Size     int             `json:"size"`
	Capacity int             `json:"capacity"`
	IsEmpty  bool            `json:"is_empty"`
	IsFull   bool            `json:"is_full"`
	Lead     *adt.Value      `json:"lead"`
	Trail    *adt.Value      `json:"trail"`
	Items    []ProjectedItem `json:"items"`
}

// projectStack lists elements bottom to top; the top is the lead end.
func projectStack(s adt.Stack) ViewState {
	items := s.Items()
	v := newViewState("stack", s, items)

	if len(items) > 0 {
		v.Items[len(items)-1].IsLead = true
		v.Items[0].IsTrail = true
		v.Lead = valuePtr(items[len(items)-1])
		v.Trail = valuePtr(items[0])
	}

	return v
}

// projectQueue lists elements front to rear; the front is the lead end.
func projectQueue(q adt.Queue) ViewState {
	items := q.Items()
	v := newViewState("queue", q, items)

	if len(items) > 0 {
		v.Items[0].IsLead = true
		v.Items[len(items)-1].IsTrail = true
		v.Lead = valuePtr(items[0])
		v.Trail = valuePtr(items[len(items)-1])
	}

	return v
}

func newViewState(kind string, c adt.Container, items []adt.Value) ViewState {
	v := ViewState{
		Kind:     kind,
		Name:     c.Name(),
		Size:     len(items),
		Capacity: c.Capacity(),
		IsEmpty:  len(items) == 0,
		IsFull:   len(items) >= c.Capacity(),
		Items:    make([]ProjectedItem, len(items)),
	}

	for i, item := range items {
		v.Items[i].Value = item
	}

	return v
}

func valuePtr(v adt.Value) *adt.Value {
	return &v
}

package rowan

import "testing"

// stubView is a scriptable view for dispatch and render tests.
type stubView struct {
	rect     Rectangle
	children []View

	captures bool
	skips    bool
	emits    []Event
	consumes func(Event) bool

	seen    []Event
	painted int
}

func (v *stubView) HandleEvent(evt Event, hub Hub, bus *Bus, ctx *Context) bool {
	v.seen = append(v.seen, evt)
	for _, e := range v.emits {
		bus.Push(e)
	}
	v.emits = nil
	if v.consumes != nil {
		return v.consumes(evt)
	}
	return v.captures
}

func (v *stubView) Render(fb Framebuffer, res *Resources) { v.painted++ }
func (v *stubView) Rect() Rectangle                       { return v.rect }
func (v *stubView) SetRect(rect Rectangle)                { v.rect = rect }
func (v *stubView) Children() []View                      { return v.children }
func (v *stubView) MightSkip(evt Event) bool              { return v.skips }

// --- Dispatch ---

func TestDispatchLeafHandlesEvent(t *testing.T) {
	leaf := &stubView{captures: true}
	if !Dispatch(leaf, TapEvent{}, nil, &Bus{}, nil) {
		t.Error("capture should propagate to the caller")
	}
	if len(leaf.seen) != 1 {
		t.Errorf("leaf saw %d events, want 1", len(leaf.seen))
	}
}

func TestDispatchTopmostChildFirst(t *testing.T) {
	below := &stubView{captures: true}
	above := &stubView{captures: true}
	root := &stubView{children: []View{below, above}}

	if !Dispatch(root, TapEvent{}, nil, &Bus{}, nil) {
		t.Error("capture should propagate to the caller")
	}
	if len(above.seen) != 1 {
		t.Error("topmost child should see the event")
	}
	if len(below.seen) != 0 {
		t.Error("capture above should shield the child below")
	}
}

func TestDispatchParentSeesEventAfterChildCapture(t *testing.T) {
	child := &stubView{captures: true}
	root := &stubView{children: []View{child}}

	Dispatch(root, TapEvent{}, nil, &Bus{}, nil)
	if len(root.seen) != 1 {
		t.Error("the composite's own handler should still run")
	}
}

func TestDispatchSkipPrunesSubtree(t *testing.T) {
	child := &stubView{captures: true}
	root := &stubView{children: []View{child}, skips: true}

	if Dispatch(root, ClockTickEvent{}, nil, &Bus{}, nil) {
		t.Error("a skipped subtree should not capture")
	}
	if len(child.seen) != 0 || len(root.seen) != 0 {
		t.Error("a skipped subtree should see nothing")
	}
}

func TestDispatchSkipDoesNotApplyToLeaves(t *testing.T) {
	leaf := &stubView{skips: true, captures: true}
	if !Dispatch(leaf, TapEvent{}, nil, &Bus{}, nil) {
		t.Error("leaves handle events regardless of MightSkip")
	}
}

// --- Bus filtering ---

func TestDispatchConsumedBusEventIsDropped(t *testing.T) {
	child := &stubView{captures: true, emits: []Event{OpenEvent{}}}
	root := &stubView{children: []View{child}, consumes: func(evt Event) bool {
		_, ok := evt.(OpenEvent)
		return ok
	}}

	var parentBus Bus
	Dispatch(root, TapEvent{}, nil, &parentBus, nil)
	if parentBus.Len() != 0 {
		t.Errorf("parent bus holds %d events, want 0", parentBus.Len())
	}
}

func TestDispatchUnconsumedBusEventPropagates(t *testing.T) {
	child := &stubView{captures: true, emits: []Event{OpenEvent{}}}
	mid := &stubView{children: []View{child}}
	root := &stubView{children: []View{mid}, consumes: func(evt Event) bool {
		_, ok := evt.(OpenEvent)
		return ok
	}}

	var parentBus Bus
	Dispatch(root, TapEvent{}, nil, &parentBus, nil)
	if parentBus.Len() != 0 {
		t.Error("the root should have consumed the forwarded event")
	}
	// The middle composite saw the event on its way up.
	found := false
	for _, evt := range mid.seen {
		if _, ok := evt.(OpenEvent); ok {
			found = true
		}
	}
	if !found {
		t.Error("intermediate composite should be offered the bus event")
	}
}

func TestDispatchBusEventReachesCallerWhenNobodyConsumes(t *testing.T) {
	child := &stubView{captures: true, emits: []Event{OpenEvent{}}}
	root := &stubView{children: []View{child}}

	var parentBus Bus
	Dispatch(root, TapEvent{}, nil, &parentBus, nil)
	if parentBus.Len() != 1 {
		t.Errorf("parent bus holds %d events, want 1", parentBus.Len())
	}
}

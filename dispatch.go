package rowan

// Dispatch routes evt through the subtree rooted at view and reports
// whether any view captured it.
//
// Children are visited from the highest z-level down so that a popup above
// a shelf sees a tap first; the first capture stops the sweep. Events the
// children pushed on their side bus are offered to this view's handler —
// consumed ones are dropped, the rest are forwarded to parentBus. The
// view's own handler always sees the original event, even after a child
// captured it, so composites can observe what happened below them.
//
// There are no error returns: an event that nothing captures and nothing
// consumes simply disappears, which is the intended fate of broadcast
// events like clock ticks.
func Dispatch(view View, evt Event, hub Hub, parentBus *Bus, ctx *Context) bool {
	children := view.Children()
	if len(children) == 0 {
		return view.HandleEvent(evt, hub, parentBus, ctx)
	}

	if s, ok := view.(Skipper); ok && s.MightSkip(evt) {
		return false
	}

	captured := false
	var childBus Bus

	for i := len(children) - 1; i >= 0; i-- {
		if Dispatch(children[i], evt, hub, &childBus, ctx) {
			captured = true
			break
		}
	}

	for _, childEvt := range childBus.Drain() {
		if !view.HandleEvent(childEvt, hub, parentBus, ctx) {
			parentBus.Push(childEvt)
		}
	}

	return view.HandleEvent(evt, hub, parentBus, ctx) || captured
}

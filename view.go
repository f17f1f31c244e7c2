package rowan

import (
	"log/slog"

	"github.com/inkforge/rowan/catalog"
	"github.com/inkforge/rowan/settings"
)

// Bus is the side-channel a view uses to talk to its parent during one
// dispatch call. Each ancestor filters the bus through its own handler and
// forwards what it did not consume to its own parent; whatever reaches the
// root is drained onto the hub.
type Bus struct {
	events []Event
}

// Push appends an event to the bus.
func (b *Bus) Push(evt Event) {
	b.events = append(b.events, evt)
}

// Len returns the number of queued events.
func (b *Bus) Len() int {
	return len(b.events)
}

// Drain removes and returns all queued events.
func (b *Bus) Drain() []Event {
	out := b.events
	b.events = nil
	return out
}

// Hub is the process-wide broadcast channel. Views receive it as a
// capability to enqueue only; the event loop is the sole consumer. Sends
// never block as long as the loop is running.
type Hub chan<- Event

// Context is the shared application state threaded through every dispatch
// call. It is owned by the event loop goroutine; views must not retain it.
type Context struct {
	Settings *settings.Settings
	Library  []catalog.Entry
	Res      *Resources
	Log      *slog.Logger
}

// View is a node of the view tree: a rectangle, zero or more ordered
// children, an event handler, and a renderer. Sibling order is z-order —
// the last child is topmost. A view with no children is a leaf and decides
// for itself whether it captures an event; a view with children composes
// sub-behavior through Dispatch instead of re-implementing traversal.
type View interface {
	// HandleEvent reacts to evt and reports whether it was captured.
	// Follow-up events go to the parent via bus or process-wide via hub.
	HandleEvent(evt Event, hub Hub, bus *Bus, ctx *Context) bool
	// Render paints the view onto fb. It must stay inside Rect().
	Render(fb Framebuffer, res *Resources)
	// Rect returns the view's bounding rectangle.
	Rect() Rectangle
	// SetRect moves or resizes the view. Children are not moved; use Shift
	// to move a whole subtree.
	SetRect(rect Rectangle)
	// Children returns the ordered child list. Callers must not mutate the
	// returned slice; only the view itself restructures its children.
	Children() []View
}

// Skipper lets a composite reject a whole subtree for an event without
// the children being visited. Views that do not implement it never skip.
type Skipper interface {
	MightSkip(evt Event) bool
}

// Background marks a view as an opaque backdrop, always eligible for
// repaint when a crack overlaps it. Views that do not implement it are
// treated as transparent composites.
type Background interface {
	IsBackground() bool
}

// Identified gives a singleton view a stable identity for structural
// lookup. Views that do not implement it can only be found by type.
type Identified interface {
	ID() ViewID
}

// --- Structural helpers ---

// Locate returns the index of the first child of parent with concrete
// type T, or -1 when there is none.
func Locate[T View](parent View) int {
	for i, c := range parent.Children() {
		if _, ok := c.(T); ok {
			return i
		}
	}
	return -1
}

// LocateID returns the index of the first child of parent identified by
// id, or -1 when there is none. Absence is not an error; callers guard
// with the index before assuming a structural shape.
func LocateID(parent View, id ViewID) int {
	for i, c := range parent.Children() {
		if ident, ok := c.(Identified); ok && ident.ID() == id {
			return i
		}
	}
	return -1
}

// Shift moves view and its whole subtree by delta.
func Shift(view View, delta Point) {
	view.SetRect(view.Rect().Translate(delta))
	for _, c := range view.Children() {
		Shift(c, delta)
	}
}

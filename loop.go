package rowan

import (
	"context"
	"time"
)

const hubCapacity = 1024

// Loop owns the hub and turns queued events into dispatch and render
// passes over a single view tree. Views react to events by sending more
// events to the hub; the loop is the only goroutine that touches the
// tree or the framebuffer, so views need no locking.
type Loop struct {
	hub      chan Event
	queue    []Event
	fb       Framebuffer
	ctx      *Context
	updating Pending

	// OnEvent, when set, sees every non-render event before the tree
	// does. Returning true consumes the event. Hosts use it for
	// commands the tree emits but cannot serve itself, like taking a
	// screenshot or quitting.
	OnEvent func(Event) bool
}

// NewLoop creates an idle loop over the given framebuffer.
func NewLoop(fb Framebuffer, ctx *Context) *Loop {
	return &Loop{
		hub:      make(chan Event, hubCapacity),
		fb:       fb,
		ctx:      ctx,
		updating: Pending{},
	}
}

// Hub returns the sending end of the loop's event channel. It is
// generously buffered; producers outside the loop goroutine may block
// briefly under bursts, views inside it never should.
func (l *Loop) Hub() Hub {
	return l.hub
}

// Pending exposes the in-flight display updates, mainly for emulators
// that settle tokens themselves.
func (l *Loop) Pending() Pending {
	return l.updating
}

// Run processes events against root until a QuitEvent arrives or ctx is
// cancelled. A minute ticker feeds ClockTickEvents so clocks repaint.
func (l *Loop) Run(ctx context.Context, root View) error {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		if !l.Step(root) {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			l.queue = append(l.queue, ClockTickEvent{})
		case evt := <-l.hub:
			l.queue = append(l.queue, evt)
		}
	}
}

// Step processes everything currently queued without blocking and
// reports whether the loop should keep running. Hosts with a frame loop
// of their own, like the emulator, call it once per frame instead of
// Run.
func (l *Loop) Step(root View) bool {
	l.drainHub()
	for len(l.queue) > 0 {
		evt := l.queue[0]
		l.queue = l.queue[1:]
		if _, ok := evt.(QuitEvent); ok {
			return false
		}
		l.process(root, evt)
		l.drainHub()
	}
	return true
}

// drainHub moves everything already sitting in the hub onto the queue,
// so events sent during processing cannot fill the channel.
func (l *Loop) drainHub() {
	for {
		select {
		case evt := <-l.hub:
			l.queue = append(l.queue, evt)
		default:
			return
		}
	}
}

// process executes one event: render commands go to the render engine,
// everything else is dispatched into the tree. Events the tree emitted
// on its bus but left unconsumed at the root are queued for the next
// iteration.
func (l *Loop) process(root View, evt Event) {
	switch e := evt.(type) {
	case RenderEvent:
		rect := e.Rect
		Render(root, &rect, l.fb, l.ctx.Res, l.updating)
		l.flush(rect, e.Mode)
	case RenderNoWaitEvent:
		rect := e.Rect
		RenderNoWait(root, &rect, l.fb, l.ctx.Res, l.updating)
		l.flush(rect, e.Mode)
	case ExposeEvent:
		rect := e.Rect
		FillCrack(root, &rect, l.fb, l.ctx.Res, l.updating)
		l.flush(rect, UpdateGui)
	default:
		if l.OnEvent != nil && l.OnEvent(evt) {
			return
		}
		var bus Bus
		Dispatch(root, evt, l.hub, &bus, l.ctx)
		l.queue = append(l.queue, bus.Drain()...)
	}
}

// flush pushes the painted rectangle to the display and records the
// returned token until the refresh settles.
func (l *Loop) flush(rect Rectangle, mode UpdateMode) {
	token, err := l.fb.Update(rect, mode)
	if err != nil {
		if l.ctx.Log != nil {
			l.ctx.Log.Error("display update", "rect", rect, "error", err)
		}
		return
	}
	l.updating[token] = rect
}

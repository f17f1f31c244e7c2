package rowan

import "time"

// Clock shows the wall-clock time and repaints itself on every tick. It
// never captures the tick: every clock in the tree sees it.
type Clock struct {
	rect Rectangle
	text string
}

// NewClock creates a clock showing the current time.
func NewClock(rect Rectangle) *Clock {
	return &Clock{rect: rect, text: time.Now().Format("15:04")}
}

func (c *Clock) HandleEvent(evt Event, hub Hub, _ *Bus, _ *Context) bool {
	if _, ok := evt.(ClockTickEvent); ok {
		text := time.Now().Format("15:04")
		if text != c.text {
			c.text = text
			hub <- RenderEvent{Rect: c.rect, Mode: UpdateGui}
		}
	}
	return false
}

func (c *Clock) Render(fb Framebuffer, res *Resources) {
	fb.Fill(c.rect, ShadeWhite)
	fb.DrawText(c.rect, c.text, res.Face(FontRegular), ShadeBlack)
}

func (c *Clock) Rect() Rectangle        { return c.rect }
func (c *Clock) SetRect(rect Rectangle) { c.rect = rect }
func (c *Clock) Children() []View       { return nil }

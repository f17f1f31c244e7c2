package rowan

// Filler is an opaque rectangle of a single shade: separators between
// bars, and the white backdrop behind floating views. It never captures
// events and always answers for its pixels during crack filling.
type Filler struct {
	rect  Rectangle
	shade uint8
}

// NewFiller creates a filler covering rect with the given shade.
func NewFiller(rect Rectangle, shade uint8) *Filler {
	return &Filler{rect: rect, shade: shade}
}

func (f *Filler) HandleEvent(Event, Hub, *Bus, *Context) bool {
	return false
}

func (f *Filler) Render(fb Framebuffer, _ *Resources) {
	fb.Fill(f.rect, f.shade)
}

func (f *Filler) Rect() Rectangle         { return f.rect }
func (f *Filler) SetRect(rect Rectangle)  { f.rect = rect }
func (f *Filler) Children() []View        { return nil }
func (f *Filler) IsBackground() bool      { return true }

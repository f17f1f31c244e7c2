package rowan

// Keyboard is the on-screen keyboard's slot in the tree. Key layout and
// key widgets are a collaborator concern; this view reserves the space,
// keeps taps from leaking through to the shelf beneath it, and gives the
// browser something to locate when toggling.
type Keyboard struct {
	rect Rectangle
}

// NewKeyboard creates a keyboard placeholder covering rect.
func NewKeyboard(rect Rectangle) *Keyboard {
	return &Keyboard{rect: rect}
}

// ID returns the keyboard's singleton identity.
func (k *Keyboard) ID() ViewID {
	return ViewKeyboard
}

func (k *Keyboard) HandleEvent(evt Event, _ Hub, _ *Bus, _ *Context) bool {
	switch e := evt.(type) {
	case TapEvent:
		return k.rect.Contains(e.Center)
	case HoldEvent:
		return k.rect.Contains(e.Center)
	}
	return false
}

func (k *Keyboard) Render(fb Framebuffer, _ *Resources) {
	fb.Fill(k.rect, ShadeGray)
}

func (k *Keyboard) Rect() Rectangle        { return k.rect }
func (k *Keyboard) SetRect(rect Rectangle) { k.rect = rect }
func (k *Keyboard) Children() []View       { return nil }
func (k *Keyboard) IsBackground() bool     { return true }

package rowan

// Panel is a plain composite: a white backdrop with an ordered run of
// children. Bars and floating overlays that need no behavior of their own
// are panels; behavior lives in the children.
type Panel struct {
	rect     Rectangle
	id       ViewID
	children []View
	opaque   bool
}

// NewPanel creates a transparent composite covering rect.
func NewPanel(rect Rectangle, children ...View) *Panel {
	return &Panel{rect: rect, children: children}
}

// NewOpaquePanel creates a composite that paints a white backdrop and
// answers for its pixels during crack filling.
func NewOpaquePanel(rect Rectangle, children ...View) *Panel {
	return &Panel{rect: rect, children: children, opaque: true}
}

// WithID gives the panel a singleton identity for structural lookup.
func (p *Panel) WithID(id ViewID) *Panel {
	p.id = id
	return p
}

// Append adds a child on top of the panel's existing children.
func (p *Panel) Append(child View) {
	p.children = append(p.children, child)
}

func (p *Panel) HandleEvent(Event, Hub, *Bus, *Context) bool {
	return false
}

func (p *Panel) Render(fb Framebuffer, _ *Resources) {
	if p.opaque {
		fb.Fill(p.rect, ShadeWhite)
	}
}

func (p *Panel) Rect() Rectangle        { return p.rect }
func (p *Panel) SetRect(rect Rectangle) { p.rect = rect }
func (p *Panel) Children() []View       { return p.children }
func (p *Panel) ID() ViewID             { return p.id }
func (p *Panel) IsBackground() bool     { return p.opaque }

package rowan

// Align positions content horizontally inside a container.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Offset returns the x offset of content of the given width inside a
// container, with margin applied on the aligned side.
func (a Align) Offset(width, containerWidth, margin int) int {
	switch a {
	case AlignLeft:
		return margin
	case AlignRight:
		return containerWidth - width - margin
	default:
		return (containerWidth - width) / 2
	}
}

// Label is a leaf that draws one line of text on a white background. An
// optional event is emitted on the bus when the label is tapped.
type Label struct {
	rect  Rectangle
	text  string
	font  FontKind
	align Align
	// onTap, when non-nil, is pushed to the bus for a tap inside rect.
	onTap Event
}

// NewLabel creates a non-interactive label.
func NewLabel(rect Rectangle, text string, font FontKind, align Align) *Label {
	return &Label{rect: rect, text: text, font: font, align: align}
}

// NewTappableLabel creates a label that emits evt on its parent's bus when
// tapped.
func NewTappableLabel(rect Rectangle, text string, font FontKind, align Align, evt Event) *Label {
	return &Label{rect: rect, text: text, font: font, align: align, onTap: evt}
}

// SetText replaces the label's text and requests a repaint.
func (l *Label) SetText(text string, hub Hub) {
	if l.text == text {
		return
	}
	l.text = text
	hub <- RenderEvent{Rect: l.rect, Mode: UpdateGui}
}

// Text returns the label's current text.
func (l *Label) Text() string {
	return l.text
}

func (l *Label) HandleEvent(evt Event, _ Hub, bus *Bus, _ *Context) bool {
	tap, ok := evt.(TapEvent)
	if !ok || l.onTap == nil || !l.rect.Contains(tap.Center) {
		return false
	}
	bus.Push(l.onTap)
	return true
}

func (l *Label) Render(fb Framebuffer, res *Resources) {
	fb.Fill(l.rect, ShadeWhite)
	face := res.Face(l.font)
	if face == nil {
		return
	}
	width := face.Advance(l.text)
	if width > l.rect.Width() {
		width = l.rect.Width()
	}
	x := l.rect.Min.X + l.align.Offset(width, l.rect.Width(), textMargin)
	fb.DrawText(Rect(x, l.rect.Min.Y, x+width, l.rect.Max.Y), l.text, face, ShadeBlack)
}

func (l *Label) Rect() Rectangle        { return l.rect }
func (l *Label) SetRect(rect Rectangle) { l.rect = rect }
func (l *Label) Children() []View       { return nil }

// textMargin is the horizontal padding labels keep from their edges.
const textMargin = 8

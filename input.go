package rowan

// InputField is a single-line text field fed by the on-screen keyboard.
// Only the focused field consumes keyboard events; on submit the final
// text goes to the hub tagged with the field's identity, so the view that
// owns the interaction can react without knowing where the field sits.
type InputField struct {
	rect    Rectangle
	id      ViewID
	text    []rune
	partial rune
	focused bool
}

// NewInputField creates an empty field identified by id.
func NewInputField(rect Rectangle, id ViewID) *InputField {
	return &InputField{rect: rect, id: id}
}

// ID returns the field's identity.
func (f *InputField) ID() ViewID {
	return f.id
}

// Text returns the field's current content.
func (f *InputField) Text() string {
	return string(f.text)
}

// SetText replaces the field's content and queues a repaint.
func (f *InputField) SetText(text string, hub Hub) {
	f.text = []rune(text)
	f.partial = 0
	hub <- RenderEvent{Rect: f.rect, Mode: UpdateGui}
}

func (f *InputField) HandleEvent(evt Event, hub Hub, bus *Bus, _ *Context) bool {
	switch e := evt.(type) {
	case FocusEvent:
		focused := e.ID != nil && *e.ID == f.id
		if focused != f.focused {
			f.focused = focused
			f.partial = 0
			hub <- RenderEvent{Rect: f.rect, Mode: UpdateGui}
		}
		// Deliberately uncaptured so every field sees the focus change.
		return false
	case TapEvent:
		if !f.rect.Contains(e.Center) {
			return false
		}
		fid := f.id
		bus.Push(FocusEvent{ID: &fid})
		return true
	case KeyboardEvent:
		if !f.focused {
			return false
		}
		f.apply(e, hub)
		return true
	}
	return false
}

// apply mutates the field for one keyboard operation. Partial characters
// implement the keyboard's long-press accent picker: the candidate is
// shown but only committed by the next append.
func (f *InputField) apply(e KeyboardEvent, hub Hub) {
	switch e.Op {
	case KeyboardAppend:
		f.text = append(f.text, e.Char)
		f.partial = 0
	case KeyboardPartial:
		f.partial = e.Char
	case KeyboardDelete:
		if len(f.text) == 0 {
			return
		}
		if e.Dir == LinearBackward {
			switch e.Target {
			case TargetChar:
				f.text = f.text[:len(f.text)-1]
			case TargetWord:
				i := len(f.text)
				for i > 0 && f.text[i-1] == ' ' {
					i--
				}
				for i > 0 && f.text[i-1] != ' ' {
					i--
				}
				f.text = f.text[:i]
			case TargetExtremum:
				f.text = f.text[:0]
			}
		}
	case KeyboardSubmit:
		hub <- SubmitEvent{ID: f.id, Text: string(f.text)}
		return
	case KeyboardMove:
		// The field has no cursor: input is append-only, as on the device.
		return
	}
	hub <- RenderEvent{Rect: f.rect, Mode: UpdateFast}
}

func (f *InputField) Render(fb Framebuffer, res *Resources) {
	fb.Fill(f.rect, ShadeWhite)
	face := res.Face(FontRegular)
	text := string(f.text)
	if f.partial != 0 {
		text += string(f.partial)
	}
	if f.focused {
		text += "_"
	}
	// Show the tail when the text outgrows the field.
	for len(text) > 1 && face.Advance(text) > f.rect.Width()-2*textMargin {
		text = text[1:]
	}
	fb.DrawText(Rect(f.rect.Min.X+textMargin, f.rect.Min.Y, f.rect.Max.X-textMargin, f.rect.Max.Y),
		text, face, ShadeBlack)
}

func (f *InputField) Rect() Rectangle        { return f.rect }
func (f *InputField) SetRect(rect Rectangle) { f.rect = rect }
func (f *InputField) Children() []View       { return nil }

package rowan

// MenuEntryKind is the visual form of a menu entry.
type MenuEntryKind uint8

const (
	EntryCommand MenuEntryKind = iota
	EntryCheckBox
	EntryRadioButton
	EntrySubMenu
	EntrySeparator
)

// MenuEntry describes one row of a menu: its form, its display text, the
// identifier emitted when the user selects it, and — for check boxes and
// radio buttons — whether it is currently on.
type MenuEntry struct {
	Kind    MenuEntryKind
	Text    string
	ID      EntryID
	Checked bool
}

// IsSeparator reports whether the entry is a separator row.
func (e MenuEntry) IsSeparator() bool {
	return e.Kind == EntrySeparator
}

// Menu is a floating list of entries anchored near the control that opened
// it. A tap on an entry emits SelectEvent on the hub and closes the menu;
// any other gesture inside the rectangle is swallowed so views underneath
// never see it; a tap outside closes the menu without selecting.
type Menu struct {
	rect    Rectangle
	id      ViewID
	entries []MenuEntry
	rows    []Rectangle
}

// menu row geometry.
const (
	menuRowHeight  = 48
	menuSepHeight  = 4
	menuWidthMin   = 240
	menuTextMargin = 16
)

// NewMenu builds a menu from entries, anchored below (or above, when there
// is no room) the anchor rectangle and clamped to the screen.
func NewMenu(anchor Rectangle, screen Rectangle, id ViewID, entries []MenuEntry, res *Resources) *Menu {
	face := res.Face(FontRegular)
	width := menuWidthMin
	height := 0
	for _, e := range entries {
		if e.IsSeparator() {
			height += menuSepHeight
			continue
		}
		height += menuRowHeight
		if w := face.Advance(e.Text) + 2*menuTextMargin; w > width {
			width = w
		}
	}

	x := anchor.Center().X - width/2
	if x < screen.Min.X {
		x = screen.Min.X
	}
	if x+width > screen.Max.X {
		x = screen.Max.X - width
	}
	y := anchor.Max.Y
	if y+height > screen.Max.Y {
		y = anchor.Min.Y - height
	}

	m := &Menu{
		rect:    Rect(x, y, x+width, y+height),
		id:      id,
		entries: entries,
	}
	rowY := y
	for _, e := range entries {
		h := menuRowHeight
		if e.IsSeparator() {
			h = menuSepHeight
		}
		m.rows = append(m.rows, Rect(x, rowY, x+width, rowY+h))
		rowY += h
	}
	return m
}

// ID returns the menu's singleton identity.
func (m *Menu) ID() ViewID {
	return m.id
}

func (m *Menu) HandleEvent(evt Event, hub Hub, _ *Bus, _ *Context) bool {
	switch e := evt.(type) {
	case TapEvent:
		if !m.rect.Contains(e.Center) {
			hub <- CloseEvent{ID: m.id}
			return true
		}
		for i, row := range m.rows {
			entry := m.entries[i]
			if entry.IsSeparator() || !row.Contains(e.Center) {
				continue
			}
			hub <- SelectEvent{ID: entry.ID}
			hub <- CloseEvent{ID: m.id}
			return true
		}
		return true
	case HoldEvent, SwipeEvent:
		// Swallow every other gesture so the views underneath stay inert
		// while the menu is open.
		return true
	}
	return false
}

func (m *Menu) Render(fb Framebuffer, res *Resources) {
	fb.Fill(m.rect, ShadeWhite)
	face := res.Face(FontRegular)
	for i, row := range m.rows {
		entry := m.entries[i]
		if entry.IsSeparator() {
			fb.Fill(row, ShadeBlack)
			continue
		}
		text := entry.Text
		if entry.Kind == EntryCheckBox || entry.Kind == EntryRadioButton {
			mark := "  "
			if entry.Checked {
				mark = "* "
			}
			text = mark + text
		}
		inset := Rect(row.Min.X+menuTextMargin, row.Min.Y, row.Max.X-menuTextMargin, row.Max.Y)
		fb.DrawText(inset, text, face, ShadeBlack)
		if entry.Kind == EntrySubMenu {
			fb.DrawText(Rect(row.Max.X-menuTextMargin-8, row.Min.Y, row.Max.X, row.Max.Y), ">", face, ShadeBlack)
		}
	}
}

func (m *Menu) Rect() Rectangle        { return m.rect }
func (m *Menu) SetRect(rect Rectangle) { m.rect = rect }
func (m *Menu) Children() []View       { return nil }

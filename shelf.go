package rowan

import (
	"fmt"

	"github.com/inkforge/rowan/catalog"
)

// Shelf shows one page of the visible entries, one row per entry. A tap
// on a row opens the entry; a hold asks to remove it; a horizontal swipe
// anywhere on the shelf turns the page.
type Shelf struct {
	rect    Rectangle
	entries []catalog.Entry
	rowH    int
}

// NewShelf creates an empty shelf with the given row height.
func NewShelf(rect Rectangle, rowH int) *Shelf {
	return &Shelf{rect: rect, rowH: rowH}
}

// MaxLines returns how many rows currently fit on the shelf.
func (s *Shelf) MaxLines() int {
	n := s.rect.Height() / s.rowH
	if n < 1 {
		n = 1
	}
	return n
}

// Update replaces the page of entries on display.
func (s *Shelf) Update(entries []catalog.Entry, hub Hub) {
	s.entries = entries
	hub <- RenderEvent{Rect: s.rect, Mode: UpdateGui}
}

// entryAt returns the entry whose row contains p.
func (s *Shelf) entryAt(p Point) *catalog.Entry {
	if !s.rect.Contains(p) {
		return nil
	}
	i := (p.Y - s.rect.Min.Y) / s.rowH
	if i < 0 || i >= len(s.entries) {
		return nil
	}
	return &s.entries[i]
}

func (s *Shelf) HandleEvent(evt Event, _ Hub, bus *Bus, _ *Context) bool {
	switch e := evt.(type) {
	case TapEvent:
		entry := s.entryAt(e.Center)
		if entry == nil {
			return false
		}
		bus.Push(OpenEvent{Entry: entry})
		return true
	case HoldEvent:
		entry := s.entryAt(e.Center)
		if entry == nil {
			return false
		}
		bus.Push(RemoveEvent{Entry: entry})
		return true
	case SwipeEvent:
		if !s.rect.Contains(e.Start) {
			return false
		}
		switch e.Dir {
		case DirWest:
			bus.Push(PageEvent{Dir: CycleNext})
			return true
		case DirEast:
			bus.Push(PageEvent{Dir: CyclePrevious})
			return true
		}
	}
	return false
}

func (s *Shelf) Render(fb Framebuffer, res *Resources) {
	fb.Fill(s.rect, ShadeWhite)
	face := res.Face(FontRegular)
	small := res.Face(FontSmall)
	y := s.rect.Min.Y
	for i := range s.entries {
		e := &s.entries[i]
		row := Rect(s.rect.Min.X+textMargin, y, s.rect.Max.X-textMargin, y+s.rowH)
		fb.DrawText(row, e.Label(), face, ShadeBlack)
		size := fmt.Sprintf("%d KiB", e.File.Size/1024)
		w := small.Advance(size)
		fb.DrawText(Rect(row.Max.X-w, y, row.Max.X, y+s.rowH), size, small, ShadeGray)
		y += s.rowH
	}
}

func (s *Shelf) Rect() Rectangle        { return s.rect }
func (s *Shelf) SetRect(rect Rectangle) { s.rect = rect }
func (s *Shelf) Children() []View       { return nil }
func (s *Shelf) IsBackground() bool     { return true }

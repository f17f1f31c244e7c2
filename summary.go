package rowan

import (
	"sort"

	"github.com/inkforge/rowan/catalog"
)

// Summary is the category strip above the shelf: the visible categories
// flowed into rows of labels. A tap on a label toggles its selection, a
// hold toggles its negation, and a hold on the trailing marker of a
// category that has visible children negates all of them at once. A
// vertical swipe over the summary asks the browser to resize it by one
// row.
type Summary struct {
	rect     Rectangle
	children []View
}

// NewSummary creates an empty summary; Update lays out its labels.
func NewSummary(rect Rectangle) *Summary {
	return &Summary{rect: rect}
}

// Update relays out the summary for the given category sets. Labels for
// selected categories render inverted, negated ones render struck. Labels
// that do not fit the current height are dropped; the selected and
// negated ones lay out first so they never fall off and can always be
// toggled back.
func (s *Summary) Update(visible catalog.PathSet, sel *catalog.Selection, res *Resources, hub Hub) {
	face := res.Face(FontSmall)
	rowH := face.Height() + 2*categoryPadV

	active := func(p catalog.Path) bool {
		return sel.Selected.Contains(p) || sel.Negated.Contains(p)
	}
	paths := visible.Sorted()
	sort.SliceStable(paths, func(i, j int) bool {
		return active(paths[i]) && !active(paths[j])
	})

	s.children = s.children[:0]
	x, y := s.rect.Min.X+textMargin, s.rect.Min.Y+categoryPadV
	for _, p := range paths {
		hasChildren := false
		for q := range visible {
			if q.IsChildOf(p) {
				hasChildren = true
				break
			}
		}
		w := face.Advance(string(p)) + 2*categoryPadH
		if hasChildren {
			w += categoryMarkW
		}
		if x+w > s.rect.Max.X-textMargin && x > s.rect.Min.X+textMargin {
			x = s.rect.Min.X + textMargin
			y += rowH
		}
		if y+rowH > s.rect.Max.Y {
			break
		}
		label := &categoryLabel{
			rect:        Rect(x, y, x+w, y+rowH),
			path:        p,
			selected:    sel.Selected.Contains(p),
			negated:     sel.Negated.Contains(p),
			hasChildren: hasChildren,
		}
		s.children = append(s.children, label)
		x += w + categoryGap
	}

	hub <- RenderEvent{Rect: s.rect, Mode: UpdateGui}
}

func (s *Summary) HandleEvent(evt Event, _ Hub, bus *Bus, _ *Context) bool {
	if e, ok := evt.(SwipeEvent); ok && s.rect.Contains(e.Start) {
		switch e.Dir {
		case DirSouth:
			bus.Push(ResizeSummaryEvent{DeltaY: e.End.Y - e.Start.Y})
			return true
		case DirNorth:
			bus.Push(ResizeSummaryEvent{DeltaY: e.End.Y - e.Start.Y})
			return true
		}
	}
	return false
}

func (s *Summary) Render(fb Framebuffer, _ *Resources) {
	fb.Fill(s.rect, ShadeWhite)
}

func (s *Summary) Rect() Rectangle        { return s.rect }
func (s *Summary) SetRect(rect Rectangle) { s.rect = rect }
func (s *Summary) Children() []View       { return s.children }
func (s *Summary) IsBackground() bool     { return true }

// category label geometry.
const (
	categoryPadH  = 10
	categoryPadV  = 6
	categoryGap   = 8
	categoryMarkW = 14
)

// categoryLabel is one tappable category in the summary.
type categoryLabel struct {
	rect        Rectangle
	path        catalog.Path
	selected    bool
	negated     bool
	hasChildren bool
}

// markRect is the trailing zone holding the children marker.
func (c *categoryLabel) markRect() Rectangle {
	return Rect(c.rect.Max.X-categoryMarkW, c.rect.Min.Y, c.rect.Max.X, c.rect.Max.Y)
}

func (c *categoryLabel) HandleEvent(evt Event, _ Hub, bus *Bus, _ *Context) bool {
	switch e := evt.(type) {
	case TapEvent:
		if !c.rect.Contains(e.Center) {
			return false
		}
		bus.Push(ToggleSelectCategoryEvent{Path: c.path})
		return true
	case HoldEvent:
		if !c.rect.Contains(e.Center) {
			return false
		}
		if c.hasChildren && c.markRect().Contains(e.Center) {
			bus.Push(ToggleNegateCategoryChildrenEvent{Path: c.path})
		} else {
			bus.Push(ToggleNegateCategoryEvent{Path: c.path})
		}
		return true
	}
	return false
}

func (c *categoryLabel) Render(fb Framebuffer, res *Resources) {
	face := res.Face(FontSmall)
	text := string(c.path.LastComponent())
	if c.path.Depth() > 1 {
		text = string(c.path)
	}
	if c.negated {
		text = "-" + text
	}
	fb.Fill(c.rect, ShadeWhite)
	fb.DrawText(Rect(c.rect.Min.X+categoryPadH, c.rect.Min.Y, c.rect.Max.X-categoryPadH, c.rect.Max.Y),
		text, face, ShadeBlack)
	if c.hasChildren {
		fb.DrawText(c.markRect(), "*", face, ShadeBlack)
	}
	if c.selected {
		fb.Invert(c.rect)
	}
}

func (c *categoryLabel) Rect() Rectangle        { return c.rect }
func (c *categoryLabel) SetRect(rect Rectangle) { c.rect = rect }
func (c *categoryLabel) Children() []View       { return nil }

package catalog

import "strings"

// Selection is the state of the category filter: the paths the user has
// selected, the paths they have negated, and the free-text query. Selected
// and negated are kept disjoint and each forms an antichain — inserting a
// path evicts any ancestor or descendant already in the same set.
type Selection struct {
	Selected PathSet
	Negated  PathSet
	Query    string
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{
		Selected: make(PathSet),
		Negated:  make(PathSet),
	}
}

// IsFiltering reports whether the selection restricts visibility at all.
func (s *Selection) IsFiltering() bool {
	return s.Query != "" || s.Selected.Len() > 0 || s.Negated.Len() > 0
}

// ToggleSelect toggles p in the selected set. When inserting, any selected
// relative of p and any negated path at or above p are evicted first. A
// negated descendant survives, so a selected parent can still carve out
// exceptions below itself.
func (s *Selection) ToggleSelect(p Path) {
	if s.Selected.Contains(p) {
		s.Selected.Remove(p)
		return
	}
	for sel := range s.Selected {
		if sel.Related(p) {
			s.Selected.Remove(sel)
		}
	}
	for neg := range s.Negated {
		if neg == p || p.IsDescendantOf(neg) {
			s.Negated.Remove(neg)
		}
	}
	s.Selected.Add(p)
}

// ToggleNegate toggles p in the negated set. When inserting, any negated
// relative of p and any selected path at or below p are evicted first.
func (s *Selection) ToggleNegate(p Path) {
	if s.Negated.Contains(p) {
		s.Negated.Remove(p)
		return
	}
	for neg := range s.Negated {
		if neg.Related(p) {
			s.Negated.Remove(neg)
		}
	}
	for sel := range s.Selected {
		if sel == p || sel.IsDescendantOf(p) {
			s.Selected.Remove(sel)
		}
	}
	s.Negated.Add(p)
}

// ToggleNegateChildren applies ToggleNegate to every member of visible
// that is a direct child of parent. Each toggle is self-contained, so the
// order the children are processed in does not matter.
func (s *Selection) ToggleNegateChildren(parent Path, visible PathSet) {
	var children []Path
	for p := range visible {
		if p.IsChildOf(parent) {
			children = append(children, p)
		}
	}
	for len(children) > 0 {
		p := children[len(children)-1]
		children = children[:len(children)-1]
		s.ToggleNegate(p)
	}
}

// Match reports whether the entry passes the filter: the query matches one
// of its text fields, every selected path is covered by one of its
// categories, and no category sits at or below a negated path.
func (s *Selection) Match(e *Entry) bool {
	return s.matchQuery(e) && s.matchSelected(e) && s.matchNegated(e)
}

// matchQuery is a case-sensitive substring search over the entry's text
// fields. The empty query matches everything, the same way a search for ""
// succeeds at offset zero.
func (s *Selection) matchQuery(e *Entry) bool {
	if s.Query == "" {
		return true
	}
	if strings.Contains(e.Title, s.Query) ||
		strings.Contains(e.Subtitle, s.Query) ||
		strings.Contains(e.Author, s.Query) ||
		strings.Contains(e.File.Path, s.Query) {
		return true
	}
	for c := range e.Categories {
		if strings.Contains(string(c), s.Query) {
			return true
		}
	}
	return false
}

func (s *Selection) matchSelected(e *Entry) bool {
	if s.Selected.IsSubsetOf(e.Categories) {
		return true
	}
	for sel := range s.Selected {
		covered := false
		for c := range e.Categories {
			if c == sel || c.IsDescendantOf(sel) {
				covered = true
				break
			}
		}
		if !covered {
			return false
		}
	}
	return true
}

func (s *Selection) matchNegated(e *Entry) bool {
	if s.Negated.Len() == 0 {
		return true
	}
	if !s.Negated.IsDisjointFrom(e.Categories) {
		return false
	}
	for c := range e.Categories {
		for _, a := range c.Ancestors() {
			if s.Negated.Contains(a) {
				return false
			}
		}
	}
	return true
}

// Visible returns an owned copy of the entries that pass the filter, in
// their current order.
func (s *Selection) Visible(entries []Entry) []Entry {
	var out []Entry
	for i := range entries {
		if s.Match(&entries[i]) {
			out = append(out, entries[i])
		}
	}
	return out
}

// VisibleCategories reduces the categories of the visible entries to the
// list the summary displays. A category collapses to its top-level
// component unless its immediate parent is selected, which keeps one level
// of drill-down below each selection open. Every selected and negated path
// and all of their ancestors are force-included so the user can always
// deselect.
func (s *Selection) VisibleCategories(visible []Entry) PathSet {
	out := make(PathSet)
	for i := range visible {
		for c := range visible[i].Categories {
			if parent, ok := c.Parent(); ok && s.Selected.Contains(parent) {
				out.Add(c)
				continue
			}
			out.Add(c.FirstComponent())
		}
	}
	for sel := range s.Selected {
		out.Add(sel)
		for _, a := range sel.Ancestors() {
			out.Add(a)
		}
	}
	for neg := range s.Negated {
		out.Add(neg)
		for _, a := range neg.Ancestors() {
			out.Add(a)
		}
	}
	return out
}

// Package catalog holds the library's domain model: catalog entries, their
// hierarchical category paths, the selection/negation filter driven by the
// browser, JSON persistence, and the on-disk scan.
package catalog

import (
	"encoding/json"
	"sort"
	"strings"
)

// Separator splits the levels of a category path. It never appears inside
// a level: the scan strips it from directory names before deriving paths.
const Separator = '/'

// Path is a hierarchical category label such as "fiction/sci-fi". Paths are
// immutable string values; equality is plain string equality.
type Path string

// FirstComponent returns the top-level component of p.
func (p Path) FirstComponent() Path {
	if i := strings.IndexByte(string(p), Separator); i >= 0 {
		return p[:i]
	}
	return p
}

// LastComponent returns the deepest component of p.
func (p Path) LastComponent() Path {
	if i := strings.LastIndexByte(string(p), Separator); i >= 0 {
		return p[i+1:]
	}
	return p
}

// Parent returns the immediate parent of p, or "" and false when p is a
// top-level path.
func (p Path) Parent() (Path, bool) {
	if i := strings.LastIndexByte(string(p), Separator); i >= 0 {
		return p[:i], true
	}
	return "", false
}

// Depth returns the number of levels in p. The empty path has depth 0.
func (p Path) Depth() int {
	if p == "" {
		return 0
	}
	return strings.Count(string(p), string(Separator)) + 1
}

// IsDescendantOf reports whether other is a strict, separator-aligned
// prefix of p.
func (p Path) IsDescendantOf(other Path) bool {
	return len(p) > len(other)+1 &&
		strings.HasPrefix(string(p), string(other)) &&
		p[len(other)] == Separator
}

// IsAncestorOf reports whether p is a strict, separator-aligned prefix of
// other.
func (p Path) IsAncestorOf(other Path) bool {
	return other.IsDescendantOf(p)
}

// IsChildOf reports whether p is a direct child of other.
func (p Path) IsChildOf(other Path) bool {
	parent, ok := p.Parent()
	return ok && parent == other
}

// Related reports whether p and other are in an ancestor/descendant
// relation in either direction.
func (p Path) Related(other Path) bool {
	return p.IsDescendantOf(other) || other.IsDescendantOf(p)
}

// Ancestors returns the strict ancestors of p, nearest first. A top-level
// path has none.
func (p Path) Ancestors() []Path {
	var out []Path
	for {
		parent, ok := p.Parent()
		if !ok {
			return out
		}
		out = append(out, parent)
		p = parent
	}
}

// Join returns p extended by one more level.
func (p Path) Join(component string) Path {
	if p == "" {
		return Path(component)
	}
	return p + Path(string(Separator)) + Path(component)
}

// --- PathSet ---

// PathSet is an unordered set of unique paths. The zero value is an empty,
// usable set. It marshals to JSON as a sorted array to keep the metadata
// database diffable.
type PathSet map[Path]struct{}

// NewPathSet builds a set from the given paths.
func NewPathSet(paths ...Path) PathSet {
	s := make(PathSet, len(paths))
	for _, p := range paths {
		s[p] = struct{}{}
	}
	return s
}

// Add inserts p into the set.
func (s PathSet) Add(p Path) {
	s[p] = struct{}{}
}

// Remove deletes p from the set.
func (s PathSet) Remove(p Path) {
	delete(s, p)
}

// Contains reports whether p is in the set.
func (s PathSet) Contains(p Path) bool {
	_, ok := s[p]
	return ok
}

// Len returns the number of paths in the set.
func (s PathSet) Len() int {
	return len(s)
}

// IsSubsetOf reports whether every path in s is also in other.
func (s PathSet) IsSubsetOf(other PathSet) bool {
	for p := range s {
		if !other.Contains(p) {
			return false
		}
	}
	return true
}

// IsDisjointFrom reports whether s and other share no path.
func (s PathSet) IsDisjointFrom(other PathSet) bool {
	for p := range s {
		if other.Contains(p) {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of s.
func (s PathSet) Clone() PathSet {
	out := make(PathSet, len(s))
	for p := range s {
		out[p] = struct{}{}
	}
	return out
}

// Sorted returns the paths in lexicographic order.
func (s PathSet) Sorted() []Path {
	out := make([]Path, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// MarshalJSON encodes the set as a sorted array.
func (s PathSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// UnmarshalJSON decodes an array of paths, dropping duplicates.
func (s *PathSet) UnmarshalJSON(data []byte) error {
	var paths []Path
	if err := json.Unmarshal(data, &paths); err != nil {
		return err
	}
	*s = NewPathSet(paths...)
	return nil
}

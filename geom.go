package rowan

import "fmt"

// Point is an integer position on the display, origin at the top-left,
// Y increasing downward.
type Point struct {
	X, Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p translated by -q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y int) Point {
	return Point{x, y}
}

// Rectangle is an axis-aligned integer rectangle. Min is inclusive, Max is
// exclusive. Rectangles are plain values: comparison with == is structural
// equality, which the render gate relies on.
type Rectangle struct {
	Min, Max Point
}

// Rect is shorthand for Rectangle{Point{x0, y0}, Point{x1, y1}}.
func Rect(x0, y0, x1, y1 int) Rectangle {
	return Rectangle{Point{x0, y0}, Point{x1, y1}}
}

// Width returns the horizontal extent of r.
func (r Rectangle) Width() int {
	return r.Max.X - r.Min.X
}

// Height returns the vertical extent of r.
func (r Rectangle) Height() int {
	return r.Max.Y - r.Min.Y
}

// IsEmpty reports whether r encloses no pixels.
func (r Rectangle) IsEmpty() bool {
	return r.Max.X <= r.Min.X || r.Max.Y <= r.Min.Y
}

// Center returns the midpoint of r.
func (r Rectangle) Center() Point {
	return Point{(r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2}
}

// Contains reports whether p lies inside r.
func (r Rectangle) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X < r.Max.X &&
		p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Overlaps reports whether r and other share at least one pixel.
func (r Rectangle) Overlaps(other Rectangle) bool {
	return r.Min.X < other.Max.X && r.Max.X > other.Min.X &&
		r.Min.Y < other.Max.Y && r.Max.Y > other.Min.Y
}

// Absorb grows r in place to the smallest rectangle covering both r and
// other. Empty rectangles are absorbed as-is; callers never pass them on
// the paint path.
func (r *Rectangle) Absorb(other Rectangle) {
	if other.Min.X < r.Min.X {
		r.Min.X = other.Min.X
	}
	if other.Min.Y < r.Min.Y {
		r.Min.Y = other.Min.Y
	}
	if other.Max.X > r.Max.X {
		r.Max.X = other.Max.X
	}
	if other.Max.Y > r.Max.Y {
		r.Max.Y = other.Max.Y
	}
}

// Intersection returns the overlapping region of r and other, or an empty
// rectangle when they are disjoint.
func (r Rectangle) Intersection(other Rectangle) Rectangle {
	out := r
	if other.Min.X > out.Min.X {
		out.Min.X = other.Min.X
	}
	if other.Min.Y > out.Min.Y {
		out.Min.Y = other.Min.Y
	}
	if other.Max.X < out.Max.X {
		out.Max.X = other.Max.X
	}
	if other.Max.Y < out.Max.Y {
		out.Max.Y = other.Max.Y
	}
	if out.IsEmpty() {
		return Rectangle{}
	}
	return out
}

// Translate returns r shifted by delta.
func (r Rectangle) Translate(delta Point) Rectangle {
	return Rectangle{r.Min.Add(delta), r.Max.Add(delta)}
}

// String formats r as [x0, y0, x1, y1].
func (r Rectangle) String() string {
	return fmt.Sprintf("[%d, %d, %d, %d]", r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
}

// Halves splits a separator thickness into a small and a big half so that
// small+big == n. Used when centering separators between bars.
func Halves(n int) (small, big int) {
	small = n / 2
	return small, n - small
}

// CycleDir selects the next or previous item in a cyclic sequence
// (pages, chapters).
type CycleDir uint8

const (
	CycleNext CycleDir = iota
	CyclePrevious
)

// LinearDir selects a direction along a line of text.
type LinearDir uint8

const (
	LinearForward LinearDir = iota
	LinearBackward
)

// Dir is one of the four cardinal swipe directions.
type Dir uint8

const (
	DirNorth Dir = iota
	DirEast
	DirSouth
	DirWest
)

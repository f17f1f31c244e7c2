package rowan

import (
	"errors"
	"fmt"
)

// UpdateMode classifies a display refresh. On e-paper the modes trade
// ghosting against latency; the core only carries them through to the
// driver.
type UpdateMode uint8

const (
	UpdateGui UpdateMode = iota
	UpdatePartial
	UpdateFull
	UpdateFast
)

// Shades the widgets use. The surface works in 8-bit grayscale.
const (
	ShadeBlack uint8 = 0x00
	ShadeGray  uint8 = 0xc0
	ShadeWhite uint8 = 0xff
)

// Framebuffer is the shared display surface. Drawing is synchronous;
// refresh is not: Update pushes a region to the display and returns an
// opaque token, and Wait blocks until that refresh settles. The render
// engine waits out a token before repainting pixels it covers.
//
// Text shaping and glyph rasterization belong to the surface collaborator,
// so DrawText takes a string, not glyphs.
type Framebuffer interface {
	Bounds() Rectangle
	Fill(rect Rectangle, shade uint8)
	Invert(rect Rectangle)
	DrawText(rect Rectangle, text string, face FontFace, shade uint8)
	Update(rect Rectangle, mode UpdateMode) (uint32, error)
	Wait(token uint32) error
}

// FontFace measures text. Rasterization happens behind DrawText; views
// only need metrics for layout.
type FontFace interface {
	Advance(text string) int
	Height() int
}

// FontKind selects one of the reader's font roles.
type FontKind uint8

const (
	FontRegular FontKind = iota
	FontBold
	FontSmall
	FontMono
)

// Resources bundles the font faces and images views render with. Views
// borrow it during Render and must not retain it.
type Resources struct {
	Fonts map[FontKind]FontFace
}

// Face returns the face for kind, falling back to FontRegular.
func (r *Resources) Face(kind FontKind) FontFace {
	if f, ok := r.Fonts[kind]; ok {
		return f
	}
	return r.Fonts[FontRegular]
}

// FixedFace is a fixed-advance face used by the software framebuffer and
// by tests, where layout matters but rasterization does not.
type FixedFace struct {
	CharWidth  int
	LineHeight int
}

// Advance returns the width of text at a fixed advance per rune.
func (f FixedFace) Advance(text string) int {
	n := 0
	for range text {
		n++
	}
	return n * f.CharWidth
}

// Height returns the line height of the face.
func (f FixedFace) Height() int {
	return f.LineHeight
}

// --- Software framebuffer ---

// ErrStaleToken is returned by Pixmap.Wait for a token that was never
// issued or has already been waited on.
var ErrStaleToken = errors.New("rowan: unknown update token")

// Pixmap is an in-memory grayscale framebuffer. Updates settle
// immediately, so Wait succeeds exactly once per issued token. It backs
// tests and the desktop emulator; on a device the driver provides the real
// implementation.
type Pixmap struct {
	rect      Rectangle
	data      []uint8
	nextToken uint32
	inFlight  map[uint32]Rectangle
}

// NewPixmap creates a white pixmap of the given size.
func NewPixmap(width, height int) *Pixmap {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("rowan: invalid pixmap size %dx%d", width, height))
	}
	data := make([]uint8, width*height)
	for i := range data {
		data[i] = ShadeWhite
	}
	return &Pixmap{
		rect:     Rect(0, 0, width, height),
		data:     data,
		inFlight: make(map[uint32]Rectangle),
	}
}

// Bounds returns the full pixmap rectangle.
func (p *Pixmap) Bounds() Rectangle {
	return p.rect
}

// Pixel returns the shade at (x, y). Out-of-bounds reads return white.
func (p *Pixmap) Pixel(x, y int) uint8 {
	if !p.rect.Contains(Pt(x, y)) {
		return ShadeWhite
	}
	return p.data[y*p.rect.Width()+x]
}

// Fill paints the intersection of rect and the pixmap with shade.
func (p *Pixmap) Fill(rect Rectangle, shade uint8) {
	r := rect.Intersection(p.rect)
	w := p.rect.Width()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := p.data[y*w : y*w+w]
		for x := r.Min.X; x < r.Max.X; x++ {
			row[x] = shade
		}
	}
}

// Invert flips every shade inside rect.
func (p *Pixmap) Invert(rect Rectangle) {
	r := rect.Intersection(p.rect)
	w := p.rect.Width()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := p.data[y*w : y*w+w]
		for x := r.Min.X; x < r.Max.X; x++ {
			row[x] = ^row[x]
		}
	}
}

// DrawText fills the text's measured extent as a solid block. The software
// surface has no rasterizer; the block keeps layout and dirty-region tests
// honest about where text would land.
func (p *Pixmap) DrawText(rect Rectangle, text string, face FontFace, shade uint8) {
	if face == nil || text == "" {
		return
	}
	w := face.Advance(text)
	h := face.Height()
	if w > rect.Width() {
		w = rect.Width()
	}
	if h > rect.Height() {
		h = rect.Height()
	}
	top := rect.Min.Y + (rect.Height()-h)/2
	p.Fill(Rect(rect.Min.X, top, rect.Min.X+w, top+h), shade)
}

// Update issues a refresh token for rect. The pixmap refreshes instantly,
// but the token must still be waited on, which is what the render engine's
// serialization tests exercise.
func (p *Pixmap) Update(rect Rectangle, _ UpdateMode) (uint32, error) {
	p.nextToken++
	p.inFlight[p.nextToken] = rect
	return p.nextToken, nil
}

// Wait settles the refresh identified by token.
func (p *Pixmap) Wait(token uint32) error {
	if _, ok := p.inFlight[token]; !ok {
		return ErrStaleToken
	}
	delete(p.inFlight, token)
	return nil
}

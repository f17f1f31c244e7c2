package rowan

// Pending maps an in-flight display update token to the rectangle it will
// eventually refresh. The event loop adds a token when it issues an update
// and the render engine removes one after waiting it out. Every issued
// token is eventually completed by the display; the core never hangs as
// long as that holds.
type Pending map[uint32]Rectangle

// Render repaints the part of the tree that overlaps rect, growing rect as
// it absorbs the rectangle of every view it paints. Overlapping in-flight
// updates are waited out before each paint so no two asynchronous display
// writes race on the same pixels.
func Render(view View, rect *Rectangle, fb Framebuffer, res *Resources, updating Pending) {
	above := false
	renderAux(view, rect, fb, res, &above, true, updating)
}

// RenderNoWait is Render without the pending-update wait. It is used when
// the paint feeds a software composite that ends in a single flush, where
// intermediate races cannot become visible.
func RenderNoWait(view View, rect *Rectangle, fb Framebuffer, res *Resources, updating Pending) {
	above := false
	renderAux(view, rect, fb, res, &above, false, updating)
}

// renderAux walks the tree in structural order. Nothing paints until the
// walk reaches the view whose rectangle equals *rect exactly — the view
// that originated the change — so views z-ordered below the origin stay
// untouched even when their rectangles overlap it. From there, every view
// overlapping the growing rectangle is painted and absorbed, which is how
// one pass catches the siblings that only overlap the enlarged region.
// Children are visited even when their parent did not paint: a child may
// extend outside its parent's rectangle.
//
// The gate compares rectangles, not identities. Two distinct views with
// identical rectangles trip it early; composites avoid aliasing top-level
// rectangles for that reason.
func renderAux(view View, rect *Rectangle, fb Framebuffer, res *Resources, above *bool, wait bool, updating Pending) {
	if !*above && view.Rect() == *rect {
		*above = true
	}

	if *above && view.Rect().Overlaps(*rect) {
		if wait {
			waitOverlapping(view.Rect(), fb, updating)
		}
		view.Render(fb, res)
		rect.Absorb(view.Rect())
	}

	for _, child := range view.Children() {
		renderAux(child, rect, fb, res, above, wait, updating)
	}
}

// FillCrack repaints the rectangle a removed floating view used to occupy.
// There is no originating view left in the tree, so there is no gate:
// every leaf, and every opaque background, overlapping the crack is
// repainted and absorbed, with the same pending-update waits as Render.
func FillCrack(view View, rect *Rectangle, fb Framebuffer, res *Resources, updating Pending) {
	paints := len(view.Children()) == 0
	if bg, ok := view.(Background); ok && bg.IsBackground() {
		paints = true
	}
	if paints && view.Rect().Overlaps(*rect) {
		waitOverlapping(view.Rect(), fb, updating)
		view.Render(fb, res)
		rect.Absorb(view.Rect())
	}

	for _, child := range view.Children() {
		FillCrack(child, rect, fb, res, updating)
	}
}

// waitOverlapping settles and removes every pending token whose rectangle
// overlaps rect. A token whose wait fails stays pending: the display still
// owns those pixels.
func waitOverlapping(rect Rectangle, fb Framebuffer, updating Pending) {
	for token, urect := range updating {
		if !rect.Overlaps(urect) {
			continue
		}
		if err := fb.Wait(token); err == nil {
			delete(updating, token)
		}
	}
}

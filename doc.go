// Package rowan is the view-tree engine of an e-paper book library: event
// dispatch over a z-ordered tree of views, dirty-region rendering tuned
// for slow displays, and the screens of a filterable catalog browser.
//
// # View tree
//
// Every visual element is a [View]. Views form a tree whose child order
// is the z-order: later children sit above earlier ones. Input events
// walk the tree topmost-first until a view captures them; render passes
// walk it bottom-up so backgrounds paint before what overlaps them.
//
// Views communicate through two one-way channels. The hub ([Hub]) goes
// to the event loop and carries commands that need the whole tree, like
// repaints. The bus ([Bus]) goes to the parent and carries reactions a
// parent may consume on the way up, like a tapped book.
//
//	shelf.HandleEvent(evt, hub, bus, ctx)
//
// # Rendering
//
// An e-paper refresh is slow and asynchronous, so the engine repaints
// the smallest possible region and tracks every in-flight display update
// by token ([Pending]). [Render] starts from the view that changed and
// absorbs the rectangles of everything it touches; [FillCrack] repaints
// what a closed overlay used to cover.
//
// # Event loop
//
// [Loop] owns the hub and is the only goroutine touching the tree and
// the framebuffer. Call [Loop.Run] to block on the hub, or [Loop.Step]
// once per frame from a host with its own loop, like the ebiten-based
// emulator in examples/browser.
//
// # Library screens
//
// [Browser] is the top-level screen: a shelf of books, a category
// summary with hierarchical select/negate filtering (see the catalog
// package), a search bar, menus and pagination. The importer in
// cmd/rowan-import maintains the on-disk metadata it reads.
package rowan

package rowan

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/inkforge/rowan/catalog"
)

// --- layout constants ---

const (
	browserBarHeight  = 56
	browserThickness  = 2
	searchBarHeight   = 56
	keyboardHeight    = 168
	summaryRowHeight  = 36
	summaryRowsMin    = 1
	summaryRowsMax    = 6
	pageLabelWidth    = 120
	pageArrowWidth    = 56
	exportTimeLayout  = "20060102_150405"
)

// Browser is the library screen: a top bar, the category summary, the
// book shelf and a bottom pagination bar, with the search bar, the
// keyboard and the menus coming and going around them.
type Browser struct {
	rect Rectangle

	sel         *catalog.Selection
	visible     []catalog.Entry
	visibleCats catalog.PathSet

	sortMethod   catalog.SortMethod
	reverseOrder bool
	summaryRows  int
	currentPage  int
	pagesCount   int

	focus *ViewID

	summary     *Summary
	shelf       *Shelf
	searchField *InputField
	keyboard    *Keyboard

	searchVisible   bool
	keyboardVisible bool

	children []View
	overlays []View
}

// NewBrowser builds the library screen over the whole of rect and
// queues a full-screen refresh.
func NewBrowser(rect Rectangle, hub Hub, ctx *Context) *Browser {
	b := &Browser{
		rect:         rect,
		sel:          catalog.NewSelection(),
		sortMethod:   catalog.SortByOpened,
		reverseOrder: catalog.SortByOpened.ReverseOrder(),
		summaryRows:  summaryRowsMin,
	}
	if ctx.Settings != nil {
		if rows := ctx.Settings.SummarySize; rows >= summaryRowsMin && rows <= summaryRowsMax {
			b.summaryRows = rows
		}
		if m, ok := catalog.SortMethodFromName(ctx.Settings.SortMethod); ok {
			b.sortMethod = m
			b.reverseOrder = m.ReverseOrder()
		}
	}

	b.summary = NewSummary(Rectangle{})
	b.shelf = NewShelf(Rectangle{}, summaryRowHeight+summaryRowHeight/2)
	b.searchField = NewInputField(Rectangle{}, ViewSearchInput)
	b.keyboard = NewKeyboard(Rectangle{})

	b.layout()
	b.refreshVisibles(hub, ctx, true, true)
	hub <- RenderEvent{Rect: rect, Mode: UpdateFull}
	return b
}

// --- view contract ---

func (b *Browser) ID() ViewID { return ViewBrowser }

func (b *Browser) Rect() Rectangle        { return b.rect }
func (b *Browser) SetRect(rect Rectangle) { b.rect = rect; b.layout() }

func (b *Browser) Children() []View {
	views := make([]View, 0, len(b.children)+len(b.overlays))
	views = append(views, b.children...)
	views = append(views, b.overlays...)
	return views
}

func (b *Browser) Render(Framebuffer, *Resources) {}

func (b *Browser) HandleEvent(evt Event, hub Hub, bus *Bus, ctx *Context) bool {
	switch e := evt.(type) {
	case FocusEvent:
		b.focus = e.ID
		if e.ID != nil {
			b.toggleKeyboard(true, hub, ctx)
		}
		return false
	case ShowEvent:
		if e.ID == ViewKeyboard {
			b.toggleKeyboard(true, hub, ctx)
			return true
		}
		return false
	case ToggleEvent:
		switch e.ID {
		case ViewSearchBar:
			b.toggleSearchBar(nil, hub, ctx)
			return true
		case ViewGoToPage:
			b.toggleGoToPage(nil, hub, ctx)
			return true
		}
		return false
	case ToggleNearEvent:
		switch e.ID {
		case ViewSortMenu:
			b.toggleSortMenu(e.Rect, nil, hub, ctx)
			return true
		case ViewMainMenu:
			b.toggleMainMenu(e.Rect, nil, hub, ctx)
			return true
		case ViewMatchesMenu:
			b.toggleMatchesMenu(e.Rect, nil, hub, ctx)
			return true
		}
		return false
	case CloseEvent:
		disable := false
		switch e.ID {
		case ViewSearchBar:
			b.toggleSearchBar(&disable, hub, ctx)
			return true
		case ViewGoToPage:
			b.toggleGoToPage(&disable, hub, ctx)
			return true
		case ViewSortMenu, ViewMainMenu, ViewMatchesMenu:
			b.closeMenu(e.ID, hub)
			return true
		case ViewKeyboard:
			b.toggleKeyboard(false, hub, ctx)
			return true
		}
		return false
	case SelectEvent:
		switch id := e.ID.(type) {
		case SortBy:
			b.setSortMethod(id.Method, hub, ctx)
			return true
		case ReverseOrder:
			b.reverseOrder = !b.reverseOrder
			b.sortVisibles()
			b.goToPage(0, hub, ctx)
			return true
		case ExportMatches:
			b.exportMatches(hub, ctx)
			return true
		}
		return false
	case SubmitEvent:
		switch e.ID {
		case ViewSearchInput:
			b.sel.Query = e.Text
			b.toggleKeyboard(false, hub, ctx)
			b.refreshVisibles(hub, ctx, true, true)
			return true
		case ViewGoToPageInput:
			if page, err := strconv.Atoi(e.Text); err == nil && page >= 1 {
				disable := false
				b.toggleGoToPage(&disable, hub, ctx)
				b.goToPage(page-1, hub, ctx)
			}
			return true
		}
		return false
	case ResizeSummaryEvent:
		b.resizeSummary(e.DeltaY, hub, ctx)
		return true
	case ToggleSelectCategoryEvent:
		b.sel.ToggleSelect(e.Path)
		b.refreshVisibles(hub, ctx, true, true)
		return true
	case ToggleNegateCategoryEvent:
		b.sel.ToggleNegate(e.Path)
		b.refreshVisibles(hub, ctx, true, true)
		return true
	case ToggleNegateCategoryChildrenEvent:
		b.sel.ToggleNegateChildren(e.Path, b.visibleCats)
		b.refreshVisibles(hub, ctx, true, true)
		return true
	case GoToEvent:
		b.goToPage(e.Page, hub, ctx)
		return true
	case PageEvent:
		b.cyclePage(e.Dir, hub, ctx)
		return true
	case KeyEvent:
		switch e.Key {
		case KeyPageForward:
			b.cyclePage(CycleNext, hub, ctx)
			return true
		case KeyPageBackward:
			b.cyclePage(CyclePrevious, hub, ctx)
			return true
		}
		return false
	case LibraryChangedEvent:
		b.applyLibraryChange(e.Change, hub, ctx)
		return true
	case BackEvent:
		b.reseed(hub, ctx)
		return true
	}
	return false
}

// applyLibraryChange folds a watcher notification into the in-memory
// library. A created file enters with the category derived from its
// directory, the same way the importer seeds new entries; a removed file
// drops its entry.
func (b *Browser) applyLibraryChange(c catalog.Change, hub Hub, ctx *Context) {
	switch c.Kind {
	case catalog.FileCreated:
		for i := range ctx.Library {
			if ctx.Library[i].File.Path == c.File.Path {
				ctx.Library[i].File = c.File
				b.refreshVisibles(hub, ctx, true, false)
				return
			}
		}
		entry := catalog.Entry{File: c.File, Added: time.Now()}
		if categ := catalog.CategoryFromDir(filepath.Dir(c.File.Path)); categ != "" {
			entry.Categories = catalog.NewPathSet(categ)
		}
		ctx.Library = append(ctx.Library, entry)
	case catalog.FileRemoved:
		for i := range ctx.Library {
			if ctx.Library[i].File.Path == c.File.Path {
				ctx.Library = append(ctx.Library[:i], ctx.Library[i+1:]...)
				break
			}
		}
	}
	b.refreshVisibles(hub, ctx, true, false)
}

// --- filtering ---

// refreshVisibles recomputes the visible books and categories from the
// current selection. When resetPage is set the shelf goes back to the
// first page, otherwise the current page is clamped.
func (b *Browser) refreshVisibles(hub Hub, ctx *Context, update, resetPage bool) {
	b.visible = b.sel.Visible(ctx.Library)
	b.visibleCats = b.sel.VisibleCategories(b.visible)
	b.sortVisibles()

	b.pagesCount = b.computePagesCount()
	if resetPage {
		b.currentPage = 0
	} else if b.currentPage >= b.pagesCount {
		b.currentPage = b.pagesCount - 1
	}

	if update {
		b.summary.Update(b.visibleCats, b.sel, ctx.Res, hub)
		b.updateShelf(hub)
		b.updateBottomBar(hub, ctx)
	}
}

func (b *Browser) sortVisibles() {
	catalog.Sort(b.visible, b.sortMethod, b.reverseOrder)
}

func (b *Browser) computePagesCount() int {
	max := b.shelf.MaxLines()
	if max < 1 {
		max = 1
	}
	pages := (len(b.visible) + max - 1) / max
	if pages < 1 {
		pages = 1
	}
	return pages
}

func (b *Browser) pageWindow() []catalog.Entry {
	max := b.shelf.MaxLines()
	if max < 1 {
		max = 1
	}
	lo := b.currentPage * max
	if lo > len(b.visible) {
		lo = len(b.visible)
	}
	hi := lo + max
	if hi > len(b.visible) {
		hi = len(b.visible)
	}
	return b.visible[lo:hi]
}

func (b *Browser) updateShelf(hub Hub) {
	b.shelf.Update(b.pageWindow(), hub)
}

func (b *Browser) goToPage(page int, hub Hub, ctx *Context) {
	if page < 0 {
		page = 0
	}
	if page > b.pagesCount-1 {
		page = b.pagesCount - 1
	}
	b.currentPage = page
	b.updateShelf(hub)
	b.updateBottomBar(hub, ctx)
}

func (b *Browser) cyclePage(dir CycleDir, hub Hub, ctx *Context) {
	switch dir {
	case CycleNext:
		if b.currentPage < b.pagesCount-1 {
			b.goToPage(b.currentPage+1, hub, ctx)
		}
	case CyclePrevious:
		if b.currentPage > 0 {
			b.goToPage(b.currentPage-1, hub, ctx)
		}
	}
}

func (b *Browser) setSortMethod(method catalog.SortMethod, hub Hub, ctx *Context) {
	b.sortMethod = method
	b.reverseOrder = method.ReverseOrder()
	b.closeMenu(ViewSortMenu, hub)
	b.sortVisibles()
	b.goToPage(0, hub, ctx)
	b.updateTopBar(hub)
}

// reseed drops the whole selection and shows the full library again.
func (b *Browser) reseed(hub Hub, ctx *Context) {
	b.sel = catalog.NewSelection()
	if b.searchVisible {
		disable := false
		b.toggleSearchBar(&disable, hub, ctx)
	}
	b.refreshVisibles(hub, ctx, true, true)
	b.updateTopBar(hub)
	hub <- RenderEvent{Rect: b.rect, Mode: UpdateFull}
}

// --- layout ---

// layout recomputes every child rect from the current state and
// rebuilds the child list top to bottom.
func (b *Browser) layout() {
	rect := b.rect
	y := rect.Min.Y

	topRect := Rect(rect.Min.X, y, rect.Max.X, y+browserBarHeight)
	y = topRect.Max.Y

	sepA := Rect(rect.Min.X, y, rect.Max.X, y+browserThickness)
	y = sepA.Max.Y

	sumRect := Rect(rect.Min.X, y, rect.Max.X, y+b.summaryRows*summaryRowHeight)
	y = sumRect.Max.Y

	sepB := Rect(rect.Min.X, y, rect.Max.X, y+browserThickness)
	y = sepB.Max.Y

	bottom := rect.Max.Y - browserBarHeight
	sepCyTop := bottom - browserThickness
	if b.keyboardVisible {
		sepCyTop -= keyboardHeight + browserThickness
	}
	if b.searchVisible {
		sepCyTop -= searchBarHeight + browserThickness
	}

	shelfRect := Rect(rect.Min.X, y, rect.Max.X, sepCyTop)
	y = shelfRect.Max.Y

	b.summary.SetRect(sumRect)
	b.shelf.SetRect(shelfRect)

	children := []View{
		b.newTopBar(topRect),
		NewFiller(sepA, ShadeBlack),
		b.summary,
		NewFiller(sepB, ShadeBlack),
		b.shelf,
	}

	sep := Rect(rect.Min.X, y, rect.Max.X, y+browserThickness)
	children = append(children, NewFiller(sep, ShadeBlack))
	y = sep.Max.Y

	if b.searchVisible {
		barRect := Rect(rect.Min.X, y, rect.Max.X, y+searchBarHeight)
		b.searchField.SetRect(barRect)
		children = append(children, b.searchField)
		y = barRect.Max.Y
		sep = Rect(rect.Min.X, y, rect.Max.X, y+browserThickness)
		children = append(children, NewFiller(sep, ShadeBlack))
		y = sep.Max.Y
	}

	if b.keyboardVisible {
		kbRect := Rect(rect.Min.X, y, rect.Max.X, y+keyboardHeight)
		b.keyboard.SetRect(kbRect)
		children = append(children, b.keyboard)
		y = kbRect.Max.Y
		sep = Rect(rect.Min.X, y, rect.Max.X, y+browserThickness)
		children = append(children, NewFiller(sep, ShadeBlack))
		y = sep.Max.Y
	}

	bottomRect := Rect(rect.Min.X, y, rect.Max.X, rect.Max.Y)
	children = append(children, b.newBottomBar(bottomRect))

	b.children = children
}

func (b *Browser) newTopBar(rect Rectangle) View {
	bar := NewOpaquePanel(rect).WithID(ViewTopBottomBars)
	x := rect.Min.X

	searchText := "Search"
	if b.searchVisible {
		searchText = "Back"
	}
	searchRect := Rect(x, rect.Min.Y, x+pageLabelWidth, rect.Max.Y)
	bar.Append(NewTappableLabel(searchRect, searchText, FontRegular, AlignLeft,
		ToggleEvent{ID: ViewSearchBar}))

	sortText := "Sort: " + b.sortMethod.Label()
	sortRect := Rect(searchRect.Max.X, rect.Min.Y, searchRect.Max.X+2*pageLabelWidth, rect.Max.Y)
	bar.Append(NewTappableLabel(sortRect, sortText, FontRegular, AlignLeft,
		ToggleNearEvent{ID: ViewSortMenu, Rect: sortRect}))

	menuRect := Rect(rect.Max.X-pageArrowWidth, rect.Min.Y, rect.Max.X, rect.Max.Y)
	bar.Append(NewTappableLabel(menuRect, "=", FontRegular, AlignCenter,
		ToggleNearEvent{ID: ViewMainMenu, Rect: menuRect}))

	clockRect := Rect(menuRect.Min.X-pageLabelWidth, rect.Min.Y, menuRect.Min.X, rect.Max.Y)
	bar.Append(NewClock(clockRect))

	return bar
}

func (b *Browser) newBottomBar(rect Rectangle) View {
	bar := NewOpaquePanel(rect).WithID(ViewTopBottomBars)

	matchesText := fmt.Sprintf("%d books", len(b.visible))
	if b.sel.IsFiltering() {
		matchesText += " (filtered)"
	}
	matchesRect := Rect(rect.Min.X, rect.Min.Y, rect.Min.X+3*pageLabelWidth, rect.Max.Y)
	bar.Append(NewTappableLabel(matchesRect, matchesText, FontRegular, AlignLeft,
		ToggleNearEvent{ID: ViewMatchesMenu, Rect: matchesRect}))

	prevRect := Rect(rect.Max.X-pageLabelWidth-2*pageArrowWidth, rect.Min.Y,
		rect.Max.X-pageLabelWidth-pageArrowWidth, rect.Max.Y)
	bar.Append(NewTappableLabel(prevRect, "<", FontRegular, AlignCenter,
		PageEvent{Dir: CyclePrevious}))

	pageRect := Rect(prevRect.Max.X, rect.Min.Y, prevRect.Max.X+pageLabelWidth, rect.Max.Y)
	pageText := fmt.Sprintf("%d/%d", b.currentPage+1, b.pagesCount)
	bar.Append(NewTappableLabel(pageRect, pageText, FontRegular, AlignCenter,
		ToggleEvent{ID: ViewGoToPage}))

	nextRect := Rect(pageRect.Max.X, rect.Min.Y, rect.Max.X, rect.Max.Y)
	bar.Append(NewTappableLabel(nextRect, ">", FontRegular, AlignCenter,
		PageEvent{Dir: CycleNext}))

	return bar
}

func (b *Browser) updateTopBar(hub Hub) {
	b.children[0] = b.newTopBar(b.children[0].Rect())
	hub <- RenderEvent{Rect: b.children[0].Rect(), Mode: UpdateGui}
}

func (b *Browser) updateBottomBar(hub Hub, ctx *Context) {
	last := len(b.children) - 1
	b.children[last] = b.newBottomBar(b.children[last].Rect())
	hub <- RenderEvent{Rect: b.children[last].Rect(), Mode: UpdateGui}
}

// --- search bar, keyboard, go-to-page ---

// toggleSearchBar shows or hides the search bar. A nil enable flips
// the current state.
func (b *Browser) toggleSearchBar(enable *bool, hub Hub, ctx *Context) {
	next := !b.searchVisible
	if enable != nil {
		next = *enable
	}
	if next == b.searchVisible {
		return
	}
	b.searchVisible = next
	if next {
		b.searchField.SetText(b.sel.Query, hub)
		b.focus = idPtr(ViewSearchInput)
		b.keyboardVisible = true
		hub <- FocusEvent{ID: idPtr(ViewSearchInput)}
	} else {
		b.focus = nil
		b.keyboardVisible = false
		if b.sel.Query != "" {
			b.sel.Query = ""
			b.refreshVisibles(hub, ctx, true, true)
		}
	}
	b.layout()
	b.updateTopBar(hub)
	hub <- RenderEvent{Rect: b.rect, Mode: UpdateGui}
}

// toggleKeyboard shows or hides the keyboard without touching the
// search bar itself.
func (b *Browser) toggleKeyboard(enable bool, hub Hub, ctx *Context) {
	if enable == b.keyboardVisible {
		return
	}
	if enable && !b.searchVisible {
		// The keyboard only ever types into the search bar here.
		b.toggleSearchBar(&enable, hub, ctx)
		return
	}
	b.keyboardVisible = enable
	if !enable {
		b.focus = nil
	}
	b.layout()
	hub <- RenderEvent{Rect: b.rect, Mode: UpdateGui}
}

// toggleGoToPage shows or hides the page-number prompt overlay.
func (b *Browser) toggleGoToPage(enable *bool, hub Hub, ctx *Context) {
	idx := LocateOverlayID(b.overlays, ViewGoToPage)
	show := idx < 0
	if enable != nil {
		show = *enable
	}
	if show == (idx >= 0) {
		return
	}
	if show {
		w, h := 3*pageLabelWidth, 2*browserBarHeight
		c := b.rect.Center()
		rect := Rect(c.X-w/2, c.Y-h/2, c.X+w/2, c.Y+h/2)
		prompt := NewOpaquePanel(rect).WithID(ViewGoToPage)
		labelRect := Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+browserBarHeight)
		prompt.Append(NewLabel(labelRect, "Go to page", FontRegular, AlignCenter))
		inputRect := Rect(rect.Min.X, labelRect.Max.Y, rect.Max.X, rect.Max.Y)
		input := NewInputField(inputRect, ViewGoToPageInput)
		prompt.Append(input)
		b.overlays = append(b.overlays, prompt)
		b.focus = idPtr(ViewGoToPageInput)
		b.keyboardVisible = true
		b.layout()
		hub <- FocusEvent{ID: idPtr(ViewGoToPageInput)}
		hub <- RenderEvent{Rect: b.rect, Mode: UpdateGui}
	} else {
		rect := b.overlays[idx].Rect()
		b.overlays = append(b.overlays[:idx], b.overlays[idx+1:]...)
		b.focus = nil
		b.keyboardVisible = false
		b.layout()
		hub <- ExposeEvent{Rect: rect}
		hub <- RenderEvent{Rect: b.rect, Mode: UpdateGui}
	}
}

// --- menus ---

func (b *Browser) toggleSortMenu(anchor Rectangle, enable *bool, hub Hub, ctx *Context) {
	entries := make([]MenuEntry, 0, 8)
	for _, m := range catalog.SortMethods() {
		entries = append(entries, MenuEntry{
			Kind:    EntryRadioButton,
			Text:    m.Label(),
			ID:      SortBy{Method: m},
			Checked: m == b.sortMethod,
		})
	}
	entries = append(entries,
		MenuEntry{Kind: EntrySeparator},
		MenuEntry{Kind: EntryCheckBox, Text: "Reverse order", ID: ReverseOrder{}, Checked: b.reverseOrder})
	b.toggleMenu(ViewSortMenu, anchor, enable, entries, hub, ctx)
}

func (b *Browser) toggleMainMenu(anchor Rectangle, enable *bool, hub Hub, ctx *Context) {
	entries := []MenuEntry{
		{Kind: EntryCommand, Text: "Take screenshot", ID: TakeScreenshot{}},
		{Kind: EntrySeparator},
		{Kind: EntryCommand, Text: "Quit", ID: Quit{}},
	}
	b.toggleMenu(ViewMainMenu, anchor, enable, entries, hub, ctx)
}

func (b *Browser) toggleMatchesMenu(anchor Rectangle, enable *bool, hub Hub, ctx *Context) {
	entries := []MenuEntry{
		{Kind: EntryCommand, Text: "Export matches", ID: ExportMatches{}},
	}
	b.toggleMenu(ViewMatchesMenu, anchor, enable, entries, hub, ctx)
}

func (b *Browser) toggleMenu(id ViewID, anchor Rectangle, enable *bool, entries []MenuEntry, hub Hub, ctx *Context) {
	idx := LocateOverlayID(b.overlays, id)
	show := idx < 0
	if enable != nil {
		show = *enable
	}
	if show == (idx >= 0) {
		return
	}
	if show {
		menu := NewMenu(anchor, b.rect, id, entries, ctx.Res)
		b.overlays = append(b.overlays, menu)
		hub <- RenderEvent{Rect: menu.Rect(), Mode: UpdateGui}
	} else {
		b.closeMenu(id, hub)
	}
}

func (b *Browser) closeMenu(id ViewID, hub Hub) {
	idx := LocateOverlayID(b.overlays, id)
	if idx < 0 {
		return
	}
	rect := b.overlays[idx].Rect()
	b.overlays = append(b.overlays[:idx], b.overlays[idx+1:]...)
	hub <- ExposeEvent{Rect: rect}
}

// LocateOverlayID returns the index of the overlay carrying the given
// id, or -1 when absent.
func LocateOverlayID(overlays []View, id ViewID) int {
	for i, v := range overlays {
		if ident, ok := v.(Identified); ok && ident.ID() == id {
			return i
		}
	}
	return -1
}

// --- summary resizing ---

// resizeSummary grows or shrinks the summary by whole rows, following
// a vertical drag on it.
func (b *Browser) resizeSummary(deltaY int, hub Hub, ctx *Context) {
	rows := b.summaryRows + (deltaY+summaryRowHeight/2)/summaryRowHeight
	if deltaY < 0 {
		rows = b.summaryRows + (deltaY-summaryRowHeight/2)/summaryRowHeight
	}
	if rows < summaryRowsMin {
		rows = summaryRowsMin
	}
	if rows > summaryRowsMax {
		rows = summaryRowsMax
	}
	if rows == b.summaryRows {
		return
	}
	b.summaryRows = rows
	if ctx.Settings != nil {
		ctx.Settings.SummarySize = rows
	}
	b.layout()
	b.refreshVisibles(hub, ctx, true, false)
	hub <- RenderEvent{Rect: b.rect, Mode: UpdateGui}
}

// --- export ---

// exportMatches writes the currently visible books next to the library
// metadata as a timestamped JSON file.
func (b *Browser) exportMatches(hub Hub, ctx *Context) {
	b.closeMenu(ViewMatchesMenu, hub)
	if ctx.Settings == nil {
		return
	}
	name := fmt.Sprintf(".metadata-matches_%s.json", time.Now().Format(exportTimeLayout))
	path := filepath.Join(ctx.Settings.LibraryPath, name)
	entries := make([]catalog.Entry, len(b.visible))
	copy(entries, b.visible)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].File.Path < entries[j].File.Path
	})
	if err := catalog.Save(path, entries); err != nil {
		if ctx.Log != nil {
			ctx.Log.Error("export matches", "path", path, "error", err)
		}
		return
	}
	if ctx.Log != nil {
		ctx.Log.Info("exported matches", "path", path, "count", len(entries))
	}
}

func idPtr(id ViewID) *ViewID { return &id }

package rowan

import (
	"testing"

	"github.com/inkforge/rowan/catalog"
)

func testLibrary() []catalog.Entry {
	mk := func(title, author, category string) catalog.Entry {
		e := catalog.Entry{
			Title:      title,
			Author:     author,
			Categories: catalog.NewPathSet(),
			File:       catalog.FileRecord{Path: title + ".epub", Kind: "epub", Size: 2048},
		}
		if category != "" {
			e.Categories.Add(catalog.Path(category))
		}
		return e
	}
	return []catalog.Entry{
		mk("Dune", "Frank Herbert", "Fiction/SF"),
		mk("Solaris", "Stanislaw Lem", "Fiction/SF"),
		mk("Emma", "Jane Austen", "Fiction/Classics"),
		mk("Cosmos", "Carl Sagan", "Science"),
		mk("Relativity", "Albert Einstein", "Science/Physics"),
		mk("Walden", "Henry Thoreau", ""),
	}
}

func newBrowserFixture(t *testing.T) (*Loop, *Browser) {
	t.Helper()
	fb := NewPixmap(720, 960)
	ctx := &Context{Library: testLibrary(), Res: testResources()}
	loop := NewLoop(fb, ctx)
	b := NewBrowser(Rect(0, 0, 720, 960), loop.Hub(), ctx)
	if !loop.Step(b) {
		t.Fatal("setup should not quit")
	}
	return loop, b
}

// --- Construction ---

func TestBrowserShowsWholeLibrary(t *testing.T) {
	_, b := newBrowserFixture(t)
	if len(b.visible) != 6 {
		t.Errorf("visible = %d, want 6", len(b.visible))
	}
	if b.pagesCount < 1 {
		t.Errorf("pagesCount = %d, want at least 1", b.pagesCount)
	}
	// Top-level categories plus the uncollapsed leaves: Fiction and
	// Science collapse their descendants, Walden has no category.
	cats := b.visibleCats.Sorted()
	want := []catalog.Path{"Fiction", "Science"}
	if len(cats) != len(want) {
		t.Fatalf("visible categories = %v, want %v", cats, want)
	}
	for i := range want {
		if cats[i] != want[i] {
			t.Fatalf("visible categories = %v, want %v", cats, want)
		}
	}
}

// --- Category filtering ---

func TestBrowserSelectCategoryFilters(t *testing.T) {
	loop, b := newBrowserFixture(t)

	loop.Hub() <- ToggleSelectCategoryEvent{Path: "Fiction"}
	loop.Step(b)
	if len(b.visible) != 3 {
		t.Errorf("visible = %d, want 3 fiction books", len(b.visible))
	}
	if !b.visibleCats.Contains("Fiction/SF") || !b.visibleCats.Contains("Fiction/Classics") {
		t.Errorf("children of a selected category should be visible, got %v", b.visibleCats.Sorted())
	}

	// Toggling again clears the filter.
	loop.Hub() <- ToggleSelectCategoryEvent{Path: "Fiction"}
	loop.Step(b)
	if len(b.visible) != 6 {
		t.Errorf("visible = %d, want 6 after clearing", len(b.visible))
	}
}

func TestBrowserNegateCategoryHides(t *testing.T) {
	loop, b := newBrowserFixture(t)

	loop.Hub() <- ToggleNegateCategoryEvent{Path: "Science"}
	loop.Step(b)
	if len(b.visible) != 4 {
		t.Errorf("visible = %d, want 4 with Science negated", len(b.visible))
	}
	for i := range b.visible {
		if b.visible[i].Title == "Cosmos" || b.visible[i].Title == "Relativity" {
			t.Errorf("%s should be hidden", b.visible[i].Title)
		}
	}
}

func TestBrowserNegateChildren(t *testing.T) {
	loop, b := newBrowserFixture(t)

	// Drill into Fiction, then negate all of its visible children.
	loop.Hub() <- ToggleSelectCategoryEvent{Path: "Fiction"}
	loop.Step(b)
	loop.Hub() <- ToggleNegateCategoryChildrenEvent{Path: "Fiction"}
	loop.Step(b)

	if len(b.visible) != 0 {
		t.Errorf("visible = %d, want 0 with every subcategory negated", len(b.visible))
	}
}

// --- Search ---

func TestBrowserSearchSubmitFilters(t *testing.T) {
	loop, b := newBrowserFixture(t)

	loop.Hub() <- SubmitEvent{ID: ViewSearchInput, Text: "Dune"}
	loop.Step(b)
	if len(b.visible) != 1 || b.visible[0].Title != "Dune" {
		t.Errorf("visible = %v, want just Dune", len(b.visible))
	}
}

func TestBrowserBackClearsEverything(t *testing.T) {
	loop, b := newBrowserFixture(t)

	loop.Hub() <- ToggleSelectCategoryEvent{Path: "Fiction"}
	loop.Hub() <- SubmitEvent{ID: ViewSearchInput, Text: "Dune"}
	loop.Step(b)
	loop.Hub() <- BackEvent{}
	loop.Step(b)

	if len(b.visible) != 6 {
		t.Errorf("visible = %d, want the whole library", len(b.visible))
	}
	if b.sel.IsFiltering() {
		t.Error("the selection should be empty again")
	}
}

// --- Paging ---

func TestBrowserGoToPageClamps(t *testing.T) {
	loop, b := newBrowserFixture(t)

	loop.Hub() <- GoToEvent{Page: 99}
	loop.Step(b)
	if b.currentPage != b.pagesCount-1 {
		t.Errorf("currentPage = %d, want last page %d", b.currentPage, b.pagesCount-1)
	}

	loop.Hub() <- GoToEvent{Page: -3}
	loop.Step(b)
	if b.currentPage != 0 {
		t.Errorf("currentPage = %d, want 0", b.currentPage)
	}
}

func TestBrowserHardwareKeysTurnPages(t *testing.T) {
	loop, b := newBrowserFixture(t)
	if b.pagesCount < 2 {
		t.Skip("library fits on one page at this size")
	}

	loop.Hub() <- KeyEvent{Key: KeyPageForward}
	loop.Step(b)
	if b.currentPage != 1 {
		t.Errorf("currentPage = %d, want 1", b.currentPage)
	}
	loop.Hub() <- KeyEvent{Key: KeyPageBackward}
	loop.Step(b)
	if b.currentPage != 0 {
		t.Errorf("currentPage = %d, want 0", b.currentPage)
	}
}

// --- Summary sizing ---

func TestBrowserResizeSummaryClamps(t *testing.T) {
	loop, b := newBrowserFixture(t)

	loop.Hub() <- ResizeSummaryEvent{DeltaY: 10 * summaryRowHeight}
	loop.Step(b)
	if b.summaryRows != summaryRowsMax {
		t.Errorf("summaryRows = %d, want the maximum %d", b.summaryRows, summaryRowsMax)
	}

	loop.Hub() <- ResizeSummaryEvent{DeltaY: -20 * summaryRowHeight}
	loop.Step(b)
	if b.summaryRows != summaryRowsMin {
		t.Errorf("summaryRows = %d, want the minimum %d", b.summaryRows, summaryRowsMin)
	}
}

// --- Sorting ---

func TestBrowserSortSelection(t *testing.T) {
	loop, b := newBrowserFixture(t)

	loop.Hub() <- SelectEvent{ID: SortBy{Method: catalog.SortByTitle}}
	loop.Step(b)
	if b.sortMethod != catalog.SortByTitle {
		t.Errorf("sortMethod = %v, want SortByTitle", b.sortMethod)
	}
	if len(b.visible) > 1 && b.visible[0].Title != "Cosmos" {
		t.Errorf("first visible = %q, want Cosmos", b.visible[0].Title)
	}

	loop.Hub() <- SelectEvent{ID: ReverseOrder{}}
	loop.Step(b)
	if b.visible[0].Title != "Walden" {
		t.Errorf("first visible after reversing = %q, want Walden", b.visible[0].Title)
	}
}

// --- Overlays ---

func TestBrowserMenuLifecycle(t *testing.T) {
	loop, b := newBrowserFixture(t)

	anchor := Rect(600, 0, 656, 56)
	loop.Hub() <- ToggleNearEvent{ID: ViewMainMenu, Rect: anchor}
	loop.Step(b)
	if LocateOverlayID(b.overlays, ViewMainMenu) < 0 {
		t.Fatal("the main menu should be open")
	}

	loop.Hub() <- CloseEvent{ID: ViewMainMenu}
	loop.Step(b)
	if LocateOverlayID(b.overlays, ViewMainMenu) >= 0 {
		t.Error("the main menu should be closed")
	}
}

func TestBrowserGoToPagePrompt(t *testing.T) {
	loop, b := newBrowserFixture(t)

	loop.Hub() <- ToggleEvent{ID: ViewGoToPage}
	loop.Step(b)
	if LocateOverlayID(b.overlays, ViewGoToPage) < 0 {
		t.Fatal("the prompt should be open")
	}
	if !b.keyboardVisible {
		t.Error("the keyboard should come up with the prompt")
	}

	loop.Hub() <- SubmitEvent{ID: ViewGoToPageInput, Text: "1"}
	loop.Step(b)
	if LocateOverlayID(b.overlays, ViewGoToPage) >= 0 {
		t.Error("the prompt should close on submit")
	}
	if b.currentPage != 0 {
		t.Errorf("currentPage = %d, want 0", b.currentPage)
	}
}

// --- Watcher changes ---

func TestBrowserLibraryChange(t *testing.T) {
	loop, b := newBrowserFixture(t)

	created := catalog.Change{
		Kind: catalog.FileCreated,
		File: catalog.FileRecord{Path: "Science/Contact.epub", Kind: "epub", Size: 4096},
	}
	loop.Hub() <- LibraryChangedEvent{Change: created}
	loop.Step(b)
	if len(b.visible) != 7 {
		t.Errorf("visible = %d, want 7 after a file appeared", len(b.visible))
	}
	if !b.visibleCats.Contains("Science") {
		t.Errorf("the new file's category should stay visible, got %v", b.visibleCats.Sorted())
	}

	// The same path again must not duplicate the entry.
	loop.Hub() <- LibraryChangedEvent{Change: created}
	loop.Step(b)
	if len(b.visible) != 7 {
		t.Errorf("visible = %d, want 7 after a duplicate notification", len(b.visible))
	}

	removed := catalog.Change{
		Kind: catalog.FileRemoved,
		File: catalog.FileRecord{Path: "Walden.epub"},
	}
	loop.Hub() <- LibraryChangedEvent{Change: removed}
	loop.Step(b)
	if len(b.visible) != 6 {
		t.Errorf("visible = %d, want 6 after a file disappeared", len(b.visible))
	}
}

package rowan

import "github.com/inkforge/rowan/catalog"

// Event is the closed set of messages that travel through the view tree.
// Variants are plain structs with a marker method so that handlers can
// type-switch exhaustively and nothing outside the package can add one.
//
// Events delivered to the root travel toward the leaves; events emitted by
// a view travel toward the root on the bus and, if nothing consumes them,
// end up on the hub to be re-delivered on a later loop iteration.
type Event interface {
	isEvent()
}

// --- Render commands (executed by the event loop, not dispatched) ---

// RenderEvent requests a repaint of Rect with the given refresh mode,
// waiting out any overlapping in-flight display update first.
type RenderEvent struct {
	Rect Rectangle
	Mode UpdateMode
}

// RenderNoWaitEvent is RenderEvent without the pending-update wait.
type RenderNoWaitEvent struct {
	Rect Rectangle
	Mode UpdateMode
}

// ExposeEvent requests a crack fill of the region a removed floating view
// used to occupy.
type ExposeEvent struct {
	Rect Rectangle
}

// --- Input ---

// TapEvent is a single finger tap.
type TapEvent struct {
	Center Point
}

// HoldEvent is a long press.
type HoldEvent struct {
	Center Point
}

// SwipeEvent is a directional swipe.
type SwipeEvent struct {
	Dir   Dir
	Start Point
	End   Point
}

// HardwareKey identifies a physical device button.
type HardwareKey uint8

const (
	KeyPageForward HardwareKey = iota
	KeyPageBackward
	KeyPower
	KeyLight
)

// KeyEvent is a raw hardware button press.
type KeyEvent struct {
	Key HardwareKey
}

// TextTarget selects the unit an on-screen keyboard operation acts on.
type TextTarget uint8

const (
	TargetChar TextTarget = iota
	TargetWord
	TargetExtremum
)

// KeyboardOp is the kind of an on-screen keyboard event.
type KeyboardOp uint8

const (
	KeyboardAppend KeyboardOp = iota
	KeyboardPartial
	KeyboardMove
	KeyboardDelete
	KeyboardSubmit
)

// KeyboardEvent is an operation produced by the on-screen keyboard and
// consumed by whichever input field currently has focus.
type KeyboardEvent struct {
	Op     KeyboardOp
	Char   rune
	Target TextTarget
	Dir    LinearDir
}

// --- Catalog lifecycle ---

// OpenEvent asks the application to open a catalog entry.
type OpenEvent struct {
	Entry *catalog.Entry
}

// RemoveEvent asks the application to remove a catalog entry.
type RemoveEvent struct {
	Entry *catalog.Entry
}

// InvalidEvent reports that a catalog entry could not be opened.
type InvalidEvent struct {
	Entry *catalog.Entry
}

// LibraryChangedEvent carries a filesystem change observed by the library
// watcher. The watcher goroutine only pushes these onto the hub; the view
// tree folds them into the library on its own turn.
type LibraryChangedEvent struct {
	Change catalog.Change
}

// --- Navigation ---

// PageEvent turns one page in the given direction.
type PageEvent struct {
	Dir CycleDir
}

// GoToEvent jumps to an absolute page index.
type GoToEvent struct {
	Page int
}

// ChapterEvent jumps one chapter in the given direction.
type ChapterEvent struct {
	Dir CycleDir
}

// --- Sorting and filtering ---

// SortEvent changes the catalog sort method.
type SortEvent struct {
	Method catalog.SortMethod
}

// ToggleSelectCategoryEvent toggles a category in the selected set.
type ToggleSelectCategoryEvent struct {
	Path catalog.Path
}

// ToggleNegateCategoryEvent toggles a category in the negated set.
type ToggleNegateCategoryEvent struct {
	Path catalog.Path
}

// ToggleNegateCategoryChildrenEvent negates every visible direct child of
// the given category.
type ToggleNegateCategoryChildrenEvent struct {
	Path catalog.Path
}

// --- Structural commands ---

// ResizeSummaryEvent moves the bottom edge of the category summary by
// DeltaY pixels, rounded to whole rows.
type ResizeSummaryEvent struct {
	DeltaY int
}

// FocusEvent moves input focus to the identified view, or clears it when
// ID is nil. It is deliberately never captured so that every input field
// sees it.
type FocusEvent struct {
	ID *ViewID
}

// ToggleEvent shows or hides the identified singleton view.
type ToggleEvent struct {
	ID ViewID
}

// ToggleNearEvent shows or hides the identified singleton view, anchored
// near the given rectangle (typically the icon that was tapped).
type ToggleNearEvent struct {
	ID   ViewID
	Rect Rectangle
}

// ShowEvent shows the identified singleton view if it is not present.
type ShowEvent struct {
	ID ViewID
}

// CloseEvent hides the identified singleton view if it is present.
type CloseEvent struct {
	ID ViewID
}

// --- Selections and submissions ---

// SelectEvent reports that a menu entry was chosen.
type SelectEvent struct {
	ID EntryID
}

// SubmitEvent carries the final text of an input field, tagged with the
// identity of the originating field.
type SubmitEvent struct {
	ID   ViewID
	Text string
}

// --- Lifecycle signals ---

// FinishedEvent reports that an asynchronous collaborator completed.
type FinishedEvent struct{}

// ClockTickEvent fires once a minute so clocks can repaint.
type ClockTickEvent struct{}

// ValidateEvent confirms the current modal interaction.
type ValidateEvent struct{}

// CancelEvent aborts the current modal interaction.
type CancelEvent struct{}

// BackEvent returns to the previous screen and reseeds it.
type BackEvent struct{}

// QuitEvent stops the event loop.
type QuitEvent struct{}

func (RenderEvent) isEvent()                       {}
func (RenderNoWaitEvent) isEvent()                 {}
func (ExposeEvent) isEvent()                       {}
func (TapEvent) isEvent()                          {}
func (HoldEvent) isEvent()                         {}
func (SwipeEvent) isEvent()                        {}
func (KeyEvent) isEvent()                          {}
func (KeyboardEvent) isEvent()                     {}
func (OpenEvent) isEvent()                         {}
func (RemoveEvent) isEvent()                       {}
func (InvalidEvent) isEvent()                      {}
func (LibraryChangedEvent) isEvent()               {}
func (PageEvent) isEvent()                         {}
func (GoToEvent) isEvent()                         {}
func (ChapterEvent) isEvent()                      {}
func (SortEvent) isEvent()                         {}
func (ToggleSelectCategoryEvent) isEvent()         {}
func (ToggleNegateCategoryEvent) isEvent()         {}
func (ToggleNegateCategoryChildrenEvent) isEvent() {}
func (ResizeSummaryEvent) isEvent()                {}
func (FocusEvent) isEvent()                        {}
func (ToggleEvent) isEvent()                       {}
func (ToggleNearEvent) isEvent()                   {}
func (ShowEvent) isEvent()                         {}
func (CloseEvent) isEvent()                        {}
func (SelectEvent) isEvent()                       {}
func (SubmitEvent) isEvent()                       {}
func (FinishedEvent) isEvent()                     {}
func (ClockTickEvent) isEvent()                    {}
func (ValidateEvent) isEvent()                     {}
func (CancelEvent) isEvent()                       {}
func (BackEvent) isEvent()                         {}
func (QuitEvent) isEvent()                         {}

// --- View identities ---

// ViewID names a singleton view so it can be addressed structurally
// (toggled, closed, focused) without knowing its position in the tree.
type ViewID uint8

const (
	// ViewNone is the zero identity of views that opted out of lookup.
	ViewNone ViewID = iota
	ViewBrowser
	ViewReader
	ViewSortMenu
	ViewMainMenu
	ViewMatchesMenu
	ViewGoToPage
	ViewGoToPageInput
	ViewSearchInput
	ViewSearchBar
	ViewKeyboard
	ViewTopBottomBars
)

// --- Menu entry identities ---

// EntryID identifies a menu entry in a SelectEvent. The set is closed.
type EntryID interface {
	isEntryID()
}

// SortBy selects a catalog sort method.
type SortBy struct {
	Method catalog.SortMethod
}

// ReverseOrder toggles the sort direction.
type ReverseOrder struct{}

// ExportMatches writes the currently visible entries to a JSON file.
type ExportMatches struct{}

// TakeScreenshot dumps the framebuffer to a PNG file.
type TakeScreenshot struct{}

// Quit exits the application.
type Quit struct{}

func (SortBy) isEntryID()         {}
func (ReverseOrder) isEntryID()   {}
func (ExportMatches) isEntryID()  {}
func (TakeScreenshot) isEntryID() {}
func (Quit) isEntryID()           {}

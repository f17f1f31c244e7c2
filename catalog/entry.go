package catalog

import (
	"sort"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// FileRecord describes the file backing a catalog entry. Path is relative
// to the library root.
type FileRecord struct {
	Path string `json:"path"`
	Kind string `json:"kind"`
	Size uint64 `json:"size"`
}

// Entry is one item of the library. Entries are created by the scan and
// enriched by the importer; the view core treats them as read-only and
// works on derived copies.
type Entry struct {
	Title      string     `json:"title"`
	Subtitle   string     `json:"subtitle,omitempty"`
	Author     string     `json:"author"`
	Series     string     `json:"series,omitempty"`
	Volume     string     `json:"volume,omitempty"`
	Number     string     `json:"number,omitempty"`
	Year       string     `json:"year,omitempty"`
	Publisher  string     `json:"publisher,omitempty"`
	Language   string     `json:"language,omitempty"`
	ISBN       string     `json:"isbn,omitempty"`
	Categories PathSet    `json:"categories,omitempty"`
	File       FileRecord `json:"file"`
	Added      time.Time  `json:"added,omitzero"`
	Opened     time.Time  `json:"opened,omitzero"`
}

// Label returns a short human-readable identification of the entry,
// falling back to the file path when the title is unknown.
func (e *Entry) Label() string {
	if e.Title == "" {
		return e.File.Path
	}
	if e.Author == "" {
		return e.Title
	}
	return e.Title + " - " + e.Author
}

// Validate checks the fields the importer is allowed to persist.
func (e *Entry) Validate() error {
	return validation.ValidateStruct(e,
		validation.Field(&e.File, validation.Required),
		validation.Field(&e.Year, validation.Length(0, 4)),
		validation.Field(&e.ISBN, validation.Length(0, 13)),
	)
}

// Validate checks that a file record points somewhere.
func (f FileRecord) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Path, validation.Required),
	)
}

// --- Sorting ---

// SortMethod selects the ordering of the shelf.
type SortMethod uint8

const (
	SortByOpened SortMethod = iota
	SortByAdded
	SortByAuthor
	SortBySize
	SortByKind
	SortByTitle
)

// Label returns the display name of the sort method.
func (m SortMethod) Label() string {
	switch m {
	case SortByOpened:
		return "Date Opened"
	case SortByAdded:
		return "Date Added"
	case SortByAuthor:
		return "Author"
	case SortBySize:
		return "File Size"
	case SortByKind:
		return "File Type"
	case SortByTitle:
		return "Title"
	}
	return "Unknown"
}

// SortMethods returns every sort method in menu order.
func SortMethods() []SortMethod {
	return []SortMethod{SortByOpened, SortByAdded, SortByAuthor, SortBySize, SortByKind, SortByTitle}
}

// SortMethodFromName resolves a settings-file name to a sort method.
func SortMethodFromName(name string) (SortMethod, bool) {
	switch name {
	case "opened":
		return SortByOpened, true
	case "added":
		return SortByAdded, true
	case "author":
		return SortByAuthor, true
	case "size":
		return SortBySize, true
	case "kind":
		return SortByKind, true
	case "title":
		return SortByTitle, true
	}
	return SortByOpened, false
}

// ReverseOrder returns the default direction of the method: date-based
// orderings show the most recent entry first.
func (m SortMethod) ReverseOrder() bool {
	return m == SortByOpened || m == SortByAdded || m == SortBySize
}

// Sort orders entries by the given method. Ties fall back to the title so
// the ordering is stable across runs.
func Sort(entries []Entry, method SortMethod, reverse bool) {
	less := func(a, b *Entry) bool {
		switch method {
		case SortByOpened:
			if !a.Opened.Equal(b.Opened) {
				return a.Opened.Before(b.Opened)
			}
		case SortByAdded:
			if !a.Added.Equal(b.Added) {
				return a.Added.Before(b.Added)
			}
		case SortByAuthor:
			if a.Author != b.Author {
				return strings.ToLower(a.Author) < strings.ToLower(b.Author)
			}
		case SortBySize:
			if a.File.Size != b.File.Size {
				return a.File.Size < b.File.Size
			}
		case SortByKind:
			if a.File.Kind != b.File.Kind {
				return a.File.Kind < b.File.Kind
			}
		}
		return strings.ToLower(a.Title) < strings.ToLower(b.Title)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if reverse {
			return less(&entries[j], &entries[i])
		}
		return less(&entries[i], &entries[j])
	})
}
